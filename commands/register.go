package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ems-cli/auth"
)

func newRegisterCmd(appRef func() *app) *cobra.Command {
	var r auth.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(cmd, appRef(), r)
		},
	}

	cmd.Flags().StringVar(&r.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&r.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&r.Password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().StringVar(&r.Role, "role", "", "Requested role (optional)")
	return cmd
}

func runRegister(cmd *cobra.Command, a *app, r auth.Registration) error {
	var err error
	if r.Name == "" {
		if r.Name, err = a.prompt("Name: "); err != nil {
			return err
		}
	}
	if r.Email == "" {
		if r.Email, err = a.prompt("Email: "); err != nil {
			return err
		}
	}
	if r.Password == "" {
		if r.Password, err = a.promptPassword("Password: "); err != nil {
			return err
		}
	}

	result := a.auth.AttemptRegister(cmd.Context(), r)
	if !result.Success {
		return errors.New(result.Error)
	}
	fmt.Fprintln(a.out, result.Message)
	fmt.Fprintln(a.out, "Run 'ems login' to sign in.")
	return nil
}
