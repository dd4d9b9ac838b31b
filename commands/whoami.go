package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(appRef func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(appRef(), time.Now())
		},
	}
}

func runWhoami(a *app, now time.Time) error {
	if !a.authorizer.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	role, ok := a.authorizer.CurrentRole()
	if !ok {
		role = "-"
	}
	fmt.Fprintf(a.out, "User:  %s\n", a.authorizer.Username())
	fmt.Fprintf(a.out, "Role:  %s\n", role)
	fmt.Fprintf(a.out, "Admin: %t\n", a.authorizer.IsAdmin())

	if claims, ok := a.authorizer.Claims(); ok && claims.HasExpiry() {
		line := claims.ExpiresAt.Local().Format(time.RFC1123)
		if claims.ExpiredAt(now) {
			line += " (expired)"
		}
		fmt.Fprintf(a.out, "Token: expires %s\n", line)
	}
	return nil
}
