package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ems-cli/tui"
	"ems-cli/tui/controller"
)

var version = "dev" // Will be set during build

type rootFlags struct {
	home      string
	verbose   bool
	ephemeral bool
}

// cli owns the app built for the running command
type cli struct {
	flags rootFlags
	app   *app
}

func (c *cli) current() *app {
	return c.app
}

// close releases the log file. cobra skips post-run hooks when a command
// fails, so Execute calls this itself.
func (c *cli) close() {
	if c.app != nil {
		c.app.close()
		c.app = nil
	}
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "ems",
		Short: "Event Management System client",
		Long: `ems is a terminal client for the Event Management System.

Run it without arguments for the interactive interface, or use the
subcommands for scripted login, logout and user administration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			var err error
			c.app, err = newApp(cmd, &c.flags, cmd == cmd.Root())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := c.current()
			return tui.Run(cmd.Context(), controller.Options{
				Authorizer:   a.authorizer,
				AuthService:  a.auth,
				Client:       a.client,
				ErrorDismiss: a.cfg.ErrorDismiss,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&c.flags.home, "home", "", "Directory for config, session and log files (default ~/.ems)")
	cmd.PersistentFlags().BoolVarP(&c.flags.verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.PersistentFlags().BoolVar(&c.flags.ephemeral, "ephemeral", false, "Keep the session in memory only; nothing is written to disk or the keyring")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ems version %s\n", version)
		},
	})
	cmd.AddCommand(newLoginCmd(c.current))
	cmd.AddCommand(newRegisterCmd(c.current))
	cmd.AddCommand(newLogoutCmd(c.current))
	cmd.AddCommand(newWhoamiCmd(c.current))
	cmd.AddCommand(newUsersCmd(c.current))
	cmd.AddCommand(newEventsCmd(c.current))
	cmd.AddCommand(newConfigCmd(c.current))

	return cmd, c
}

// Execute runs the root command
func Execute() error {
	cmd, c := newRootCmd()
	defer c.close()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
