package profile

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/api"
	"ems-cli/session"
	"ems-cli/tui/components/footer"
	"ems-cli/tui/domain"
	"ems-cli/tui/styles"
)

// ClaimsSource exposes the decoded session token
type ClaimsSource interface {
	Claims() (session.TokenClaims, bool)
}

// Component shows the logged-in user's profile
type Component struct {
	service *domain.Service
	claims  ClaimsSource
	user    *api.User
	loading bool
	err     string
	now     func() time.Time
	footer  *footer.Component
}

// New creates the profile screen
func New(service *domain.Service, claims ClaimsSource) *Component {
	return &Component{
		service: service,
		claims:  claims,
		now:     time.Now,
		footer:  footer.New(),
	}
}

// Load starts fetching the profile
func (c *Component) Load() tea.Cmd {
	c.loading = true
	c.err = ""
	return c.service.FetchProfile()
}

// User returns the loaded profile, if any
func (c *Component) User() *api.User {
	return c.user
}

// Update handles profile results and the reload key
func (c *Component) Update(msg tea.Msg) (*Component, tea.Cmd) {
	switch msg := msg.(type) {
	case domain.ProfileLoadedMsg:
		c.loading = false
		c.user = msg.User
	case domain.RequestErrorMsg:
		c.loading = false
		c.err = fmt.Sprintf("Could not %s: %v", msg.Op, msg.Error)
	case tea.KeyMsg:
		if msg.String() == "r" && !c.loading {
			return c, c.Load()
		}
	}
	return c, nil
}

// View renders the profile
func (c *Component) View() string {
	if c.loading {
		return styles.Loading("Loading profile...")
	}

	view := styles.HeaderStyle.Render("Profile") + "\n\n"
	if c.err != "" {
		view += styles.ErrorStyle.Render(c.err) + "\n"
	}
	if c.user != nil {
		view += row("Name", c.user.Name) +
			row("Email", c.user.Email) +
			row("Role", c.user.Role)
	}
	if claims, ok := c.claims.Claims(); ok && claims.HasExpiry() {
		status := claims.ExpiresAt.Local().Format(time.RFC1123)
		if claims.ExpiredAt(c.now()) {
			status += " (expired)"
		}
		view += row("Session", status)
	}
	return view + "\n" + c.footer.View(footer.NavBinding, footer.OpenBinding, footer.RefreshBinding, footer.QuitBinding)
}

func row(label, value string) string {
	return styles.LabelStyle.Render(label+":") + value + "\n"
}
