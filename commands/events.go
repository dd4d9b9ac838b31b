package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"ems-cli/api"
)

func newEventsCmd(appRef func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List scheduled events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, appRef())
		},
	}
}

func runEvents(cmd *cobra.Command, a *app) error {
	if !a.authorizer.IsAuthenticated() {
		return fmt.Errorf("not logged in; run 'ems login' first")
	}

	events, err := a.client.ListEvents(cmd.Context())
	if err != nil {
		return requestFailure(a, "list events", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events scheduled")
		return nil
	}
	return renderEvents(a.out, events)
}

func renderEvents(w io.Writer, events []api.Event) error {
	table := tablewriter.NewWriter(w)
	table.Header("Title", "Date", "Location")
	for _, e := range events {
		if err := table.Append([]string{e.Title, e.Date, e.Location}); err != nil {
			return err
		}
	}
	return table.Render()
}
