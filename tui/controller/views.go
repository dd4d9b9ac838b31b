package controller

import (
	"github.com/charmbracelet/lipgloss"

	"ems-cli/tui/styles"
)

// View rendering functions

func (c *Controller) renderQuitting() string {
	return lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true).
		Render("Goodbye!") + "\n"
}

func (c *Controller) renderRefreshingToken() string {
	return styles.Loading("Refreshing session... Please wait.")
}

// renderScreen frames a screen with the navbar, the logout dialog and
// any controller-level error
func (c *Controller) renderScreen(body string) string {
	view := c.navbar.View(c.stateMachine.Current()) + "\n" + body
	if c.logoutDialog.Active() {
		view += "\n\n" + c.logoutDialog.View()
	}
	if c.errorMsg != "" {
		view += "\n" + styles.ErrorStyle.Render(c.errorMsg)
	}
	if !isForm(c.stateMachine.Current()) {
		view += "\n" + c.help.ShortHelpView(c.keyHandler.Keys().ShortHelp())
	}
	return view
}
