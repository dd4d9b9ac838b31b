package controller

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"ems-cli/api"
	"ems-cli/auth"
	"ems-cli/logger"
	"ems-cli/session"
	"ems-cli/tui/components/confirm"
	"ems-cli/tui/components/navbar"
	"ems-cli/tui/domain"
	"ems-cli/tui/events"
	"ems-cli/tui/keys"
	"ems-cli/tui/login"
	"ems-cli/tui/profile"
	"ems-cli/tui/register"
	"ems-cli/tui/state"
	"ems-cli/tui/users"
)

// SessionExpiredMessage is shown on the login screen after the API rejects the stored token
const SessionExpiredMessage = "Session expired. Please log in again."

const logoutAction = "logout"

// SessionRefresher exchanges the stored token for a new one
type SessionRefresher interface {
	RefreshSession(ctx context.Context) error
}

// AuthService is what the login, registration and startup flows need
type AuthService interface {
	login.Authenticator
	register.Registrar
	SessionRefresher
}

// Options are the controller's dependencies
type Options struct {
	Context      context.Context
	Authorizer   *session.Authorizer
	AuthService  AuthService
	Client       api.ClientInterface
	ErrorDismiss time.Duration
}

// Controller manages the overall TUI state and coordinates between components
type Controller struct {
	ctx context.Context

	// State management
	stateMachine *state.Machine

	// Key handling
	keyHandler *keys.Handler

	// Components
	navbar            *navbar.Component
	logoutDialog      *confirm.Component
	loginComponent    *login.Component
	registerComponent *register.Component
	profileComponent  *profile.Component
	eventsComponent   *events.Component
	usersComponent    *users.Component
	help              help.Model

	// Dependencies
	authorizer  *session.Authorizer
	authService AuthService
	log         zerolog.Logger

	// Application state
	errorMsg string
	quitting bool
}

// New creates a new TUI controller. A stored session starts in the
// refreshing state; otherwise the login screen is shown.
func New(opts Options) *Controller {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	initialState := state.Login
	if opts.Authorizer.IsAuthenticated() {
		initialState = state.RefreshingToken
	}

	service := domain.NewService(ctx, opts.Client)

	c := &Controller{
		ctx:               ctx,
		stateMachine:      state.NewMachine(initialState),
		keyHandler:        keys.NewHandler(),
		navbar:            navbar.New(opts.Authorizer),
		logoutDialog:      confirm.New(),
		loginComponent:    login.New(ctx, opts.AuthService, opts.ErrorDismiss),
		registerComponent: register.New(ctx, opts.AuthService),
		profileComponent:  profile.New(service, opts.Authorizer),
		eventsComponent:   events.New(service),
		usersComponent:    users.New(service),
		help:              help.New(),
		authorizer:        opts.Authorizer,
		authService:       opts.AuthService,
		log:               logger.Component("tui"),
	}
	c.navbar.Highlight(initialState)
	return c
}

// Init initializes the controller and returns initial commands
func (c *Controller) Init() tea.Cmd {
	if c.stateMachine.Current() == state.RefreshingToken {
		return c.refreshTokenCmd()
	}
	return c.loginComponent.Init()
}

// Update handles incoming messages and updates the controller state
func (c *Controller) Update(msg tea.Msg) (*Controller, tea.Cmd) {
	current := c.stateMachine.Current()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if c.keyHandler.IsQuit(keyMsg, isForm(current) || c.textCaptured()) {
			c.quitting = true
			c.log.Debug().Str("state", current.String()).Msg("quit")
			return c, tea.Quit
		}
		if c.logoutDialog.Active() {
			var cmd tea.Cmd
			c.logoutDialog, cmd = c.logoutDialog.Update(keyMsg)
			return c, cmd
		}
	}

	switch msg := msg.(type) {
	case state.ErrorMsg:
		c.errorMsg = msg.Error.Error()
		return c, nil
	case state.TransitionMsg:
		c.log.Debug().Str("transition", msg.Transition.String()).Msg("navigate")
		return c, nil
	case domain.SessionExpiredMsg:
		return c, c.expireSession(msg.Op)
	case navbar.SelectMsg:
		if msg.Item.Logout {
			c.logoutDialog.Ask(logoutAction, confirm.LogoutQuestion)
			return c, nil
		}
		return c, c.navigate(msg.Item.Target)
	case confirm.ResultMsg:
		if msg.Action == logoutAction {
			if msg.Confirmed {
				return c, c.logout()
			}
			return c, nil
		}
	}

	return c.handleStateUpdate(msg)
}

// handleStateUpdate delegates message handling based on current state
func (c *Controller) handleStateUpdate(msg tea.Msg) (*Controller, tea.Cmd) {
	switch c.stateMachine.Current() {
	case state.RefreshingToken:
		return c.handleRefreshingTokenState(msg)
	case state.Login:
		return c.handleLoginState(msg)
	case state.Register:
		return c.handleRegisterState(msg)
	case state.Profile:
		return c.handleScreenState(msg, func(m tea.Msg) tea.Cmd {
			var cmd tea.Cmd
			c.profileComponent, cmd = c.profileComponent.Update(m)
			return cmd
		})
	case state.Events:
		return c.handleScreenState(msg, func(m tea.Msg) tea.Cmd {
			var cmd tea.Cmd
			c.eventsComponent, cmd = c.eventsComponent.Update(m)
			return cmd
		})
	case state.UserManagement:
		return c.handleScreenState(msg, func(m tea.Msg) tea.Cmd {
			var cmd tea.Cmd
			c.usersComponent, cmd = c.usersComponent.Update(m)
			return cmd
		})
	default:
		return c, nil
	}
}

func (c *Controller) handleRefreshingTokenState(msg tea.Msg) (*Controller, tea.Cmd) {
	refresh, ok := msg.(TokenRefreshMsg)
	if !ok {
		// Block all other input during token refresh
		return c, nil
	}

	switch {
	case refresh.Error == nil:
		return c, c.start(state.Profile)
	case errors.Is(refresh.Error, auth.ErrSessionRejected), errors.Is(refresh.Error, session.ErrNotAuthenticated):
		c.log.Info().Err(refresh.Error).Msg("stored session is no longer valid")
		c.loginComponent.SetError(SessionExpiredMessage)
		return c, c.start(state.Login)
	default:
		c.log.Warn().Err(refresh.Error).Msg("could not refresh session, continuing with stored token")
		return c, c.start(state.Profile)
	}
}

func (c *Controller) handleLoginState(msg tea.Msg) (*Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !c.loginComponent.IsLoggingIn() && c.keyHandler.IsOpenRegister(msg) {
			return c, c.navigate(state.Register)
		}
	case login.LoginSuccessMsg:
		c.loginComponent, _ = c.loginComponent.Update(msg)
		c.log.Info().Str("role", msg.Role).Msg("login succeeded")
		return c, c.start(state.Profile)
	}

	var cmd tea.Cmd
	c.loginComponent, cmd = c.loginComponent.Update(msg)
	return c, cmd
}

func (c *Controller) handleRegisterState(msg tea.Msg) (*Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !c.registerComponent.IsSubmitting() && (c.keyHandler.IsOpenLogin(msg) || c.keyHandler.IsBack(msg)) {
			return c, c.navigate(state.Login)
		}
	case register.RegisterSuccessMsg:
		c.registerComponent, _ = c.registerComponent.Update(msg)
		c.loginComponent.SetNotice(msg.Message)
		return c, c.navigate(state.Login)
	}

	var cmd tea.Cmd
	c.registerComponent, cmd = c.registerComponent.Update(msg)
	return c, cmd
}

// handleScreenState routes navbar keys to the navbar and everything else to
// the screen. The admin screen keeps its keys while a dialog or request is open.
func (c *Controller) handleScreenState(msg tea.Msg, screen func(tea.Msg) tea.Cmd) (*Controller, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !c.textCaptured() {
		if c.keyHandler.IsBack(keyMsg) && c.stateMachine.CanGoBack() {
			return c, c.goBack()
		}
		if c.keyHandler.IsNav(keyMsg) {
			var cmd tea.Cmd
			c.navbar, cmd = c.navbar.Update(keyMsg)
			return c, cmd
		}
	}
	return c, screen(msg)
}

// View renders the current state
func (c *Controller) View() string {
	if c.quitting {
		return c.renderQuitting()
	}

	switch c.stateMachine.Current() {
	case state.RefreshingToken:
		return c.renderRefreshingToken()
	case state.Login:
		return c.renderScreen(c.loginComponent.View())
	case state.Register:
		return c.renderScreen(c.registerComponent.View())
	case state.Profile:
		return c.renderScreen(c.profileComponent.View())
	case state.Events:
		return c.renderScreen(c.eventsComponent.View())
	case state.UserManagement:
		return c.renderScreen(c.usersComponent.View())
	default:
		return "Unknown state"
	}
}

// Getters for accessing controller state
func (c *Controller) IsQuitting() bool {
	return c.quitting
}

func (c *Controller) CurrentState() state.State {
	return c.stateMachine.Current()
}

// navigate applies the route guards and shows the resulting screen
func (c *Controller) navigate(target state.State) tea.Cmd {
	resolved := state.Guard(target, c.authorizer)
	if resolved != target {
		c.log.Info().Str("requested", target.Path()).Str("redirect", resolved.Path()).Msg("route guard redirect")
	}
	c.navbar.Highlight(resolved)

	if resolved == c.stateMachine.Current() {
		return c.enter(resolved)
	}
	return tea.Batch(c.stateMachine.Transition(resolved), c.enter(resolved))
}

// goBack returns to the previous screen, re-checking its guard
func (c *Controller) goBack() tea.Cmd {
	history := c.stateMachine.History()
	previous := history[len(history)-2]
	if !state.Allowed(previous, c.authorizer) {
		return c.navigate(previous)
	}
	return tea.Batch(c.stateMachine.GoBack(), c.enter(previous))
}

// enter starts whatever loading a screen needs when it becomes visible
func (c *Controller) enter(s state.State) tea.Cmd {
	switch s {
	case state.Login:
		return c.loginComponent.Init()
	case state.Register:
		return c.registerComponent.Init()
	case state.Profile:
		return c.profileComponent.Load()
	case state.Events:
		return c.eventsComponent.Load()
	case state.UserManagement:
		return c.usersComponent.Load()
	}
	return nil
}

// logout clears the session and returns to the login screen with a fresh history
func (c *Controller) logout() tea.Cmd {
	c.authorizer.Logout()
	c.loginComponent.Reset()
	return c.start(state.Login)
}

// start shows s with an empty history, so back cannot reach the previous screen
func (c *Controller) start(s state.State) tea.Cmd {
	s = state.Guard(s, c.authorizer)
	c.stateMachine.Reset(s)
	c.navbar.Highlight(s)
	return c.enter(s)
}

// expireSession handles a 401/403 from any screen. Replies to requests sent
// before a logout are dropped.
func (c *Controller) expireSession(op string) tea.Cmd {
	if !c.authorizer.IsAuthenticated() {
		c.log.Debug().Str("op", op).Msg("ignoring rejection after logout")
		return nil
	}
	c.log.Info().Str("op", op).Msg("api rejected session token")
	cmd := c.logout()
	c.loginComponent.SetError(SessionExpiredMessage)
	return cmd
}

// textCaptured reports whether the current screen is consuming keystrokes
func (c *Controller) textCaptured() bool {
	return c.stateMachine.Current() == state.UserManagement && c.usersComponent.Busy()
}

func isForm(s state.State) bool {
	return s == state.Login || s == state.Register
}
