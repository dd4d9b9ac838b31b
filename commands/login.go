package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(appRef func() *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Long: `Log in with email and password. Missing values are prompted for;
the password is read without echo when stdin is a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, appRef(), email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	return cmd
}

func runLogin(cmd *cobra.Command, a *app, email, password string) error {
	var err error
	if email == "" {
		if email, err = a.prompt("Email: "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = a.promptPassword("Password: "); err != nil {
			return err
		}
	}

	result := a.auth.AttemptLogin(cmd.Context(), email, password)
	if !result.Success {
		return errors.New(result.Error)
	}

	fmt.Fprintf(a.out, "Logged in as %s", email)
	if result.Role != "" {
		fmt.Fprintf(a.out, " (%s)", result.Role)
	}
	fmt.Fprintln(a.out)
	return nil
}
