package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/tui/components/footer"
	"ems-cli/tui/components/table"
	"ems-cli/tui/domain"
	"ems-cli/tui/styles"
)

// Component lists events
type Component struct {
	service *domain.Service
	table   *table.Component
	loading bool
	err     string
	footer  *footer.Component
}

// New creates the events screen
func New(service *domain.Service) *Component {
	t := table.NewEvents()
	t.SetFocused(true)
	return &Component{
		service: service,
		table:   t,
		footer:  footer.New(),
	}
}

// Load starts fetching events
func (c *Component) Load() tea.Cmd {
	c.loading = true
	c.err = ""
	return c.service.FetchEvents()
}

// Len returns the number of listed events
func (c *Component) Len() int {
	return c.table.Len()
}

// Update handles event results, the reload key and row navigation
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	switch msg := msg.(type) {
	case domain.EventsLoadedMsg:
		c.loading = false
		c.table.SetEvents(msg.Events)
		return c, nil
	case domain.RequestErrorMsg:
		c.loading = false
		c.err = fmt.Sprintf("Could not %s: %v", msg.Op, msg.Error)
		return c, nil
	case tea.KeyMsg:
		if msg.String() == "r" && !c.loading {
			return c, c.Load()
		}
	}

	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	return c, cmd
}

// View renders the event table
func (c *Component) View() string {
	if c.loading {
		return styles.Loading("Loading events...")
	}

	view := styles.HeaderStyle.Render("Events") + "\n\n"
	if c.err != "" {
		view += styles.ErrorStyle.Render(c.err) + "\n"
	}
	view += c.table.View() + "\n\n"
	return view + c.footer.View(footer.NavBinding, footer.RowsBinding, footer.RefreshBinding, footer.QuitBinding)
}
