package confirm

import (
	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/tui/components/footer"
	"ems-cli/tui/styles"
)

// LogoutQuestion is asked before a session is cleared from the navbar
const LogoutQuestion = "Are you sure you want to logout this user?"

// ResultMsg reports the user's answer. Action echoes the value passed to Ask
// so the owner can tell dialogs apart.
type ResultMsg struct {
	Action    string
	Confirmed bool
}

// Component is a modal yes/no question
type Component struct {
	question string
	action   string
	active   bool
	footer   *footer.Component
}

// New creates an inactive dialog
func New() *Component {
	return &Component{footer: footer.New()}
}

// Ask activates the dialog
func (c *Component) Ask(action, question string) {
	c.action = action
	c.question = question
	c.active = true
}

// Active reports whether the dialog is waiting for an answer
func (c *Component) Active() bool {
	return c.active
}

// Update answers on y/enter or n/esc; other keys are swallowed
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	if !c.active {
		return c, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		return c, c.answer(true)
	case "n", "N", "esc":
		return c, c.answer(false)
	}
	return c, nil
}

func (c *Component) answer(confirmed bool) tea.Cmd {
	c.active = false
	action := c.action
	return func() tea.Msg {
		return ResultMsg{Action: action, Confirmed: confirmed}
	}
}

// View renders the dialog, or nothing when inactive
func (c *Component) View() string {
	if !c.active {
		return ""
	}
	return styles.DialogStyle.Render(
		c.question + "\n\n" + c.footer.View(footer.ConfirmBinding, footer.DeclineBinding),
	)
}
