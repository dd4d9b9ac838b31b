package navbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ems-cli/tui/state"
	"ems-cli/tui/styles"
)

// Item is one navbar entry. Logout entries have no target screen.
type Item struct {
	Label  string
	Target state.State
	Logout bool
}

// Labels
const (
	RegisterLabel = "Register"
	LoginLabel    = "Login"
	EventsLabel   = "Events"
	ProfileLabel  = "Profile"
	AdminLabel    = "Admin Page"
	LogoutLabel   = "Logout"
)

// Items returns the entries visible for the current session. It reads the
// session on every call so a login or logout elsewhere is reflected at once.
func Items(access state.Access) []Item {
	if !access.IsAuthenticated() {
		return []Item{
			{Label: RegisterLabel, Target: state.Register},
			{Label: LoginLabel, Target: state.Login},
		}
	}

	items := []Item{
		{Label: EventsLabel, Target: state.Events},
		{Label: ProfileLabel, Target: state.Profile},
	}
	if access.IsAdmin() {
		items = append(items, Item{Label: AdminLabel, Target: state.UserManagement})
	}
	return append(items, Item{Label: LogoutLabel, Logout: true})
}

// Styles defines the visual styling for the navbar
type Styles struct {
	ItemStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	BarStyle      lipgloss.Style
}

// DefaultStyles returns the application navbar styling
func DefaultStyles() Styles {
	return Styles{
		ItemStyle:     styles.NavItemStyle,
		SelectedStyle: styles.SelectedNavItemStyle,
		BarStyle:      styles.NavBarStyle,
	}
}

// Component is a horizontal menu whose items depend on the session
type Component struct {
	access        state.Access
	selectedIndex int
	styles        Styles
}

// New creates a navbar reading session state from access
func New(access state.Access) *Component {
	return &Component{
		access: access,
		styles: DefaultStyles(),
	}
}

// SelectMsg is sent when an item is chosen with enter
type SelectMsg struct {
	Item Item
}

// Items returns the entries for the current session
func (c *Component) Items() []Item {
	return Items(c.access)
}

// SelectedItem returns the highlighted entry
func (c *Component) SelectedItem() (Item, bool) {
	items := c.Items()
	if len(items) == 0 {
		return Item{}, false
	}
	return items[c.clamp(len(items))], true
}

// Highlight moves the cursor to the entry for s, if it is visible
func (c *Component) Highlight(s state.State) {
	for i, item := range c.Items() {
		if !item.Logout && item.Target == s {
			c.selectedIndex = i
			return
		}
	}
}

// Update handles left/right movement and selection
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	items := c.Items()
	if len(items) == 0 {
		return c, nil
	}
	c.selectedIndex = c.clamp(len(items))

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		c.selectedIndex--
		if c.selectedIndex < 0 {
			c.selectedIndex = len(items) - 1
		}
	case "right", "l":
		c.selectedIndex++
		if c.selectedIndex >= len(items) {
			c.selectedIndex = 0
		}
	case "enter":
		item := items[c.selectedIndex]
		return c, func() tea.Msg {
			return SelectMsg{Item: item}
		}
	}
	return c, nil
}

// View renders the navbar, marking current as the active screen
func (c *Component) View(current state.State) string {
	items := c.Items()
	selected := c.clamp(len(items))

	parts := make([]string, 0, len(items))
	for i, item := range items {
		label := item.Label
		if !item.Logout && item.Target == current {
			label = "• " + label
		}
		style := c.styles.ItemStyle
		if i == selected {
			style = c.styles.SelectedStyle
		}
		parts = append(parts, style.Render(label))
	}
	return c.styles.BarStyle.Render(strings.Join(parts, " "))
}

// clamp keeps the cursor inside a list that may have shrunk after logout
func (c *Component) clamp(n int) int {
	if n == 0 || c.selectedIndex < 0 {
		return 0
	}
	if c.selectedIndex >= n {
		return n - 1
	}
	return c.selectedIndex
}
