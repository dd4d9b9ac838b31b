package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"ems-cli/api"
)

var errAdminOnly = errors.New("this command requires an admin session")

func newUsersCmd(appRef func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List registered users (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsersList(cmd, appRef())
		},
	}

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user by id (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			return runUsersDelete(cmd, appRef(), id, yes)
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.AddCommand(deleteCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one user by id (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			return runUsersShow(cmd, appRef(), id)
		},
	})

	return cmd
}

// requireAdmin checks the stored role before calling the API. The server
// makes the real decision.
func requireAdmin(a *app) error {
	if !a.authorizer.IsAuthenticated() {
		return errors.New("not logged in; run 'ems login' first")
	}
	if !a.authorizer.IsAdmin() {
		return errAdminOnly
	}
	return nil
}

func runUsersList(cmd *cobra.Command, a *app) error {
	if err := requireAdmin(a); err != nil {
		return err
	}

	users, err := a.client.ListUsers(cmd.Context())
	if err != nil {
		return requestFailure(a, "list users", err)
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found")
		return nil
	}
	return renderUsers(a.out, users)
}

func runUsersShow(cmd *cobra.Command, a *app, id int) error {
	if err := requireAdmin(a); err != nil {
		return err
	}

	user, err := a.client.GetUser(cmd.Context(), id)
	if err != nil {
		return requestFailure(a, "get user", err)
	}
	return renderUsers(a.out, []api.User{*user})
}

func parseUserID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}

func runUsersDelete(cmd *cobra.Command, a *app, id int, yes bool) error {
	if err := requireAdmin(a); err != nil {
		return err
	}
	if !yes {
		ok, err := a.confirm(fmt.Sprintf("Delete user %d?", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Delete cancelled")
			return nil
		}
	}

	if err := a.client.DeleteUser(cmd.Context(), id); err != nil {
		return requestFailure(a, "delete user", err)
	}
	fmt.Fprintf(a.out, "User %d deleted\n", id)
	return nil
}

// requestFailure clears the session on 401 the same way the interactive
// interface does
func requestFailure(a *app, op string, err error) error {
	if api.IsUnauthorized(err) {
		a.authorizer.Logout()
		return errors.New("session expired; run 'ems login' again")
	}
	a.log.Error().Err(err).Str("op", op).Msg("request failed")
	return fmt.Errorf("failed to %s: %w", op, err)
}

func renderUsers(w io.Writer, users []api.User) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Email", "Role")
	for _, u := range users {
		if err := table.Append([]string{strconv.Itoa(u.ID), u.Name, u.Email, u.Role}); err != nil {
			return err
		}
	}
	return table.Render()
}
