package users

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/tui/components/confirm"
	"ems-cli/tui/components/footer"
	"ems-cli/tui/components/table"
	"ems-cli/tui/domain"
	"ems-cli/tui/styles"
)

const deleteAction = "delete-user"

// Component is the admin user management screen
type Component struct {
	service  *domain.Service
	table    *table.Component
	dialog   *confirm.Component
	pending  int
	loading  bool
	deleting bool
	err      string
	notice   string
	footer   *footer.Component
}

// New creates the user management screen
func New(service *domain.Service) *Component {
	t := table.NewUsers()
	t.SetFocused(true)
	return &Component{
		service: service,
		table:   t,
		dialog:  confirm.New(),
		footer:  footer.New(),
	}
}

// Load starts fetching users
func (c *Component) Load() tea.Cmd {
	c.loading = true
	c.err = ""
	return c.service.FetchUsers()
}

// Len returns the number of listed users
func (c *Component) Len() int {
	return c.table.Len()
}

// Busy reports whether the screen is waiting on a request or an answer.
// Navbar keys are not forwarded while busy.
func (c *Component) Busy() bool {
	return c.loading || c.deleting || c.dialog.Active()
}

// Update handles listing, deletion and confirmation
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	switch msg := msg.(type) {
	case domain.UsersLoadedMsg:
		c.loading = false
		c.table.SetUsers(msg.Users)
		return c, nil
	case domain.UserDeletedMsg:
		c.deleting = false
		c.notice = fmt.Sprintf("User %d deleted", msg.ID)
		return c, c.Load()
	case domain.RequestErrorMsg:
		c.loading = false
		c.deleting = false
		c.err = fmt.Sprintf("Could not %s: %v", msg.Op, msg.Error)
		return c, nil
	case confirm.ResultMsg:
		if msg.Action != deleteAction {
			return c, nil
		}
		if !msg.Confirmed {
			return c, nil
		}
		c.deleting = true
		c.err = ""
		return c, c.service.DeleteUser(c.pending)
	case tea.KeyMsg:
		if c.dialog.Active() {
			var cmd tea.Cmd
			c.dialog, cmd = c.dialog.Update(msg)
			return c, cmd
		}
		if c.loading || c.deleting {
			return c, nil
		}
		switch msg.String() {
		case "r":
			c.notice = ""
			return c, c.Load()
		case "d":
			if id, ok := c.table.HighlightedID(); ok {
				c.pending = id
				c.notice = ""
				c.dialog.Ask(deleteAction, fmt.Sprintf("Delete user %d?", id))
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	return c, cmd
}

// View renders the user table
func (c *Component) View() string {
	if c.loading {
		return styles.Loading("Loading users...")
	}

	view := styles.HeaderStyle.Render("User Management") + "\n\n"
	if c.err != "" {
		view += styles.ErrorStyle.Render(c.err) + "\n"
	}
	if c.notice != "" {
		view += styles.SuccessStyle.Render(c.notice) + "\n"
	}
	view += c.table.View() + "\n"
	if c.dialog.Active() {
		return view + "\n" + c.dialog.View()
	}
	if c.deleting {
		view += styles.Loading("Deleting...")
	}
	return view + "\n" + c.footer.View(footer.NavBinding, footer.RowsBinding, footer.DeleteBinding, footer.RefreshBinding, footer.QuitBinding)
}
