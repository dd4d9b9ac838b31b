package controller

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Command message types
type (
	// TokenRefreshMsg is sent when token refresh completes
	TokenRefreshMsg struct {
		Error error
	}
)

// refreshTokenCmd exchanges the stored token before the first screen is shown
func (c *Controller) refreshTokenCmd() tea.Cmd {
	return func() tea.Msg {
		err := c.authService.RefreshSession(c.ctx)
		return TokenRefreshMsg{Error: err}
	}
}
