package login

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/auth"
	"ems-cli/tui/components/footer"
	"ems-cli/tui/styles"
)

const (
	emailField = iota
	passwordField
)

// Authenticator performs the login round trip and stores the session
type Authenticator interface {
	AttemptLogin(ctx context.Context, email, password string) auth.LoginResult
}

// Component handles user authentication UI
type Component struct {
	ctx          context.Context
	inputs       []textinput.Model
	focusIdx     int
	errorMsg     string
	notice       string
	errorSeq     int
	dismissAfter time.Duration
	loggingIn    bool
	spinner      spinner.Model
	authService  Authenticator
	footer       *footer.Component
}

// New creates a new login component. API errors are cleared after
// dismissAfter; zero keeps them until the next attempt.
func New(ctx context.Context, authService Authenticator, dismissAfter time.Duration) *Component {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Focus()
	email.CharLimit = 254
	email.Width = 32

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return &Component{
		ctx:          ctx,
		inputs:       []textinput.Model{email, password},
		dismissAfter: dismissAfter,
		spinner:      s,
		authService:  authService,
		footer:       footer.New(),
	}
}

// Init initializes the login component
func (c *Component) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the login component
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.loggingIn {
			return c, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "down", "up":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				c.focusIdx--
			} else {
				c.focusIdx++
			}
			if c.focusIdx >= len(c.inputs) {
				c.focusIdx = 0
			} else if c.focusIdx < 0 {
				c.focusIdx = len(c.inputs) - 1
			}
			c.updateFocus()
			return c, nil
		case "enter":
			if c.focusIdx == passwordField {
				return c, c.submit()
			}
			c.focusIdx = passwordField
			c.updateFocus()
			return c, nil
		default:
			c.inputs[c.focusIdx], cmd = c.inputs[c.focusIdx].Update(msg)
			return c, cmd
		}
	case spinner.TickMsg:
		if !c.loggingIn {
			return c, nil
		}
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	case LoginSuccessMsg:
		c.errorMsg = ""
		c.loggingIn = false
		c.inputs[passwordField].SetValue("")
		return c, nil
	case LoginErrorMsg:
		c.loggingIn = false
		return c, c.showError(msg.Error)
	case clearErrorMsg:
		if msg.seq == c.errorSeq {
			c.errorMsg = ""
		}
		return c, nil
	}

	return c, nil
}

// GetEmail returns the current email input
func (c *Component) GetEmail() string {
	return c.inputs[emailField].Value()
}

// GetPassword returns the current password input
func (c *Component) GetPassword() string {
	return c.inputs[passwordField].Value()
}

// Error returns the message currently shown, if any
func (c *Component) Error() string {
	return c.errorMsg
}

// SetError shows msg until the next attempt. Used for redirects such as an
// expired session.
func (c *Component) SetError(msg string) {
	c.errorSeq++
	c.errorMsg = msg
}

// SetNotice shows an informational message, such as a completed registration
func (c *Component) SetNotice(msg string) {
	c.notice = msg
}

// IsLoggingIn reports whether a request is in flight
func (c *Component) IsLoggingIn() bool {
	return c.loggingIn
}

// Reset clears the form for a fresh visit
func (c *Component) Reset() {
	for i := range c.inputs {
		c.inputs[i].SetValue("")
	}
	c.focusIdx = emailField
	c.loggingIn = false
	c.updateFocus()
}

// View renders the login component
func (c *Component) View() string {
	labels := []string{"Email", "Password"}
	var rows []string
	for i := range c.inputs {
		rows = append(rows, styles.LabelStyle.Render(labels[i]+":")+c.inputs[i].View())
	}

	content := strings.Join(rows, "\n") + "\n\n" +
		c.footer.View(footer.TabBinding, footer.SubmitBinding, footer.RegisterBinding)

	if c.notice != "" {
		content += "\n\n" + styles.SuccessStyle.Render(c.notice)
	}
	if c.errorMsg != "" {
		content += "\n\n" + styles.ErrorStyle.Render(c.errorMsg)
	}
	if c.loggingIn {
		content += "\n\n" + c.spinner.View() + " Logging in..."
	}

	return styles.Banner() + "\n" + styles.FormBoxStyle.Render(content)
}

// updateFocus updates which input has focus
func (c *Component) updateFocus() {
	for i := 0; i < len(c.inputs); i++ {
		if i == c.focusIdx {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}
}

// submit validates locally, then starts the login request. Validation
// failures never reach the network and are not auto-dismissed.
func (c *Component) submit() tea.Cmd {
	email := strings.TrimSpace(c.GetEmail())
	password := c.GetPassword()

	if err := auth.ValidateCredentials(auth.Credentials{Email: email, Password: password}); err != nil {
		c.SetError(err.Error())
		return nil
	}

	c.loggingIn = true
	c.notice = ""
	c.errorSeq++
	c.errorMsg = ""
	return tea.Batch(c.spinner.Tick, c.tryLogin(email, password))
}

// showError displays msg and schedules its dismissal
func (c *Component) showError(msg string) tea.Cmd {
	c.SetError(msg)
	if c.dismissAfter <= 0 {
		return nil
	}
	seq := c.errorSeq
	return tea.Tick(c.dismissAfter, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// tryLogin attempts to log in with the given credentials
func (c *Component) tryLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		result := c.authService.AttemptLogin(c.ctx, email, password)
		if result.Success {
			return LoginSuccessMsg{Role: result.Role}
		}
		return LoginErrorMsg{Error: result.Error}
	}
}
