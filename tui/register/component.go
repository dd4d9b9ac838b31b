package register

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/auth"
	"ems-cli/tui/components/footer"
	"ems-cli/tui/styles"
)

const (
	nameField = iota
	emailField
	passwordField
	roleField
)

// Registrar submits a registration
type Registrar interface {
	AttemptRegister(ctx context.Context, r auth.Registration) auth.RegisterResult
}

// RegisterSuccessMsg is sent when the backend accepts the registration
type RegisterSuccessMsg struct {
	Message string
}

// RegisterErrorMsg is sent when the registration is rejected or fails
type RegisterErrorMsg struct {
	Error string
}

// Component is the account creation form
type Component struct {
	ctx         context.Context
	inputs      []textinput.Model
	focusIdx    int
	errorMsg    string
	submitting  bool
	spinner     spinner.Model
	authService Registrar
	footer      *footer.Component
}

// New creates the registration form
func New(ctx context.Context, authService Registrar) *Component {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.Focus()
	name.CharLimit = 100
	name.Width = 32

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 32

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	role := textinput.New()
	role.Placeholder = "optional, e.g. USER"
	role.CharLimit = 64
	role.Width = 32

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return &Component{
		ctx:         ctx,
		inputs:      []textinput.Model{name, email, password, role},
		spinner:     s,
		authService: authService,
		footer:      footer.New(),
	}
}

// Init initializes the registration component
func (c *Component) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the registration form
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if c.submitting {
			return c, nil
		}
		switch msg.String() {
		case "tab", "down":
			c.focus(c.focusIdx + 1)
			return c, nil
		case "shift+tab", "up":
			c.focus(c.focusIdx - 1)
			return c, nil
		case "enter":
			if c.focusIdx == len(c.inputs)-1 {
				return c, c.submit()
			}
			c.focus(c.focusIdx + 1)
			return c, nil
		default:
			c.inputs[c.focusIdx], cmd = c.inputs[c.focusIdx].Update(msg)
			return c, cmd
		}
	case spinner.TickMsg:
		if !c.submitting {
			return c, nil
		}
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd
	case RegisterSuccessMsg:
		c.submitting = false
		c.Reset()
		return c, nil
	case RegisterErrorMsg:
		c.submitting = false
		c.errorMsg = msg.Error
		return c, nil
	}
	return c, nil
}

// Registration returns the form values
func (c *Component) Registration() auth.Registration {
	return auth.Registration{
		Name:     strings.TrimSpace(c.inputs[nameField].Value()),
		Email:    strings.TrimSpace(c.inputs[emailField].Value()),
		Password: c.inputs[passwordField].Value(),
		Role:     strings.TrimSpace(c.inputs[roleField].Value()),
	}
}

// Error returns the message currently shown, if any
func (c *Component) Error() string {
	return c.errorMsg
}

// IsSubmitting reports whether a request is in flight
func (c *Component) IsSubmitting() bool {
	return c.submitting
}

// Reset clears every field
func (c *Component) Reset() {
	for i := range c.inputs {
		c.inputs[i].SetValue("")
	}
	c.errorMsg = ""
	c.focus(nameField)
}

// View renders the registration form
func (c *Component) View() string {
	labels := []string{"Name", "Email", "Password", "Role"}
	var rows []string
	for i := range c.inputs {
		rows = append(rows, styles.LabelStyle.Render(labels[i]+":")+c.inputs[i].View())
	}

	content := strings.Join(rows, "\n") + "\n\n" +
		c.footer.View(footer.TabBinding, footer.SubmitBinding, footer.LoginBinding)

	if c.errorMsg != "" {
		content += "\n\n" + styles.ErrorStyle.Render(c.errorMsg)
	}
	if c.submitting {
		content += "\n\n" + c.spinner.View() + " Registering..."
	}

	return styles.Banner() + "\n" + styles.FormBoxStyle.Render(content)
}

func (c *Component) focus(idx int) {
	if idx >= len(c.inputs) {
		idx = 0
	} else if idx < 0 {
		idx = len(c.inputs) - 1
	}
	c.focusIdx = idx
	for i := range c.inputs {
		if i == idx {
			c.inputs[i].Focus()
		} else {
			c.inputs[i].Blur()
		}
	}
}

func (c *Component) submit() tea.Cmd {
	reg := c.Registration()
	if err := auth.ValidateRegistration(reg); err != nil {
		c.errorMsg = err.Error()
		return nil
	}

	c.submitting = true
	c.errorMsg = ""
	return tea.Batch(c.spinner.Tick, func() tea.Msg {
		result := c.authService.AttemptRegister(c.ctx, reg)
		if result.Success {
			return RegisterSuccessMsg{Message: result.Message}
		}
		return RegisterErrorMsg{Error: result.Error}
	})
}
