package table

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	btable "github.com/evertras/bubble-table/table"

	"ems-cli/api"
	"ems-cli/tui/styles"
)

const pageSize = 10

// Component wraps a bubble-table model for users or events
type Component struct {
	table   btable.Model
	focused bool
	rows    int
	empty   string
}

// New creates a table with the given columns. empty is shown when there
// are no rows.
func New(columns []btable.Column, empty string) *Component {
	return &Component{
		table: btable.New(columns).WithPageSize(pageSize),
		empty: empty,
	}
}

// NewUsers creates the admin user table
func NewUsers() *Component {
	return New(styles.UserColumns, "No users found")
}

// NewEvents creates the event table
func NewEvents() *Component {
	return New(styles.EventColumns, "No events scheduled")
}

// SetUsers replaces the rows with users
func (c *Component) SetUsers(users []api.User) {
	rows := make([]btable.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, btable.NewRow(btable.RowData{
			"id":    strconv.Itoa(u.ID),
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		}))
	}
	c.setRows(rows)
}

// SetEvents replaces the rows with events
func (c *Component) SetEvents(events []api.Event) {
	rows := make([]btable.Row, 0, len(events))
	for _, e := range events {
		rows = append(rows, btable.NewRow(btable.RowData{
			"id":       strconv.Itoa(e.ID),
			"title":    e.Title,
			"date":     e.Date,
			"location": e.Location,
		}))
	}
	c.setRows(rows)
}

// SetFocused sets whether the table reacts to row navigation keys
func (c *Component) SetFocused(focused bool) {
	c.focused = focused
	c.table = c.table.Focused(focused)
}

// Len returns the number of rows
func (c *Component) Len() int {
	return c.rows
}

// HighlightedID returns the id column of the highlighted row
func (c *Component) HighlightedID() (int, bool) {
	row := c.table.HighlightedRow()
	if row.Data == nil {
		return 0, false
	}
	raw, ok := row.Data["id"].(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Update handles Bubble Tea messages
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	var cmd tea.Cmd
	c.table, cmd = c.table.Update(msg)
	return c, cmd
}

// View renders the table
func (c *Component) View() string {
	if c.Len() == 0 {
		return styles.HelpStyle.Render(c.empty)
	}
	return c.table.View()
}

func (c *Component) setRows(rows []btable.Row) {
	c.rows = len(rows)
	c.table = c.table.WithRows(rows)
	if c.focused {
		c.table = c.table.Focused(true)
	}
}
