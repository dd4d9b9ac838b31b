package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ems-cli/tui/components/confirm"
)

func newLogoutCmd(appRef func() *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(appRef(), yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func runLogout(a *app, yes bool) error {
	if !a.authorizer.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	if !yes {
		ok, err := a.confirm(confirm.LogoutQuestion)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Logout cancelled")
			return nil
		}
	}

	a.authorizer.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
