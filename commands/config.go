package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ems-cli/config"
)

func newConfigCmd(appRef func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings in config.yml",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(appRef())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Change one setting",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(appRef(), args[0], args[1])
		},
	})

	return cmd
}

// runConfigShow prints the loaded config, including environment overrides
func runConfigShow(a *app) error {
	data, err := yaml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Fprintf(a.out, "# %s\n%s", a.paths.ConfigFile(), data)
	return nil
}

func runConfigSet(a *app, key, value string) error {
	if err := config.NewConfigManager(a.paths).Set(key, value); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Set %s = %s\n", key, value)
	return nil
}
