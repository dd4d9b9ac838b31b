package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current screen of the TUI application
type State int

const (
	// RefreshingToken - Application is exchanging the stored token for a fresh one
	RefreshingToken State = iota

	// Login - User authentication screen for entering credentials
	Login

	// Register - Account creation screen
	Register

	// Events - Event listing, requires a session
	Events

	// Profile - Current user's profile, requires a session
	Profile

	// UserManagement - Admin user listing and deletion, requires the admin role
	UserManagement
)

// String returns a human-readable representation of the state
func (s State) String() string {
	switch s {
	case RefreshingToken:
		return "RefreshingToken"
	case Login:
		return "Login"
	case Register:
		return "Register"
	case Events:
		return "Events"
	case Profile:
		return "Profile"
	case UserManagement:
		return "UserManagement"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Path returns the route the state stands for
func (s State) Path() string {
	switch s {
	case Login:
		return "/login"
	case Register:
		return "/register"
	case Events:
		return "/events"
	case Profile:
		return "/profile"
	case UserManagement:
		return "/admin/user-management"
	default:
		return ""
	}
}

// IsValid checks if the state is a valid state
func (s State) IsValid() bool {
	return s >= RefreshingToken && s <= UserManagement
}

// Transition represents a state transition
type Transition struct {
	From State
	To   State
}

// String returns a human-readable representation of the transition
func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// Machine manages state transitions and validation
type Machine struct {
	current State
	history []State
}

// NewMachine creates a new state machine with the given initial state
func NewMachine(initial State) *Machine {
	return &Machine{
		current: initial,
		history: []State{initial},
	}
}

// Current returns the current state
func (m *Machine) Current() State {
	return m.current
}

// Transition transitions to a new state
func (m *Machine) Transition(to State) tea.Cmd {
	if !to.IsValid() {
		return func() tea.Msg {
			return ErrorMsg{
				Error: fmt.Errorf("invalid state transition to %s", to),
			}
		}
	}

	transition := Transition{From: m.current, To: to}
	m.current = to
	m.history = append(m.history, to)

	return func() tea.Msg {
		return TransitionMsg{Transition: transition}
	}
}

// CanGoBack returns true if there's a previous state to go back to
func (m *Machine) CanGoBack() bool {
	return len(m.history) > 1
}

// GoBack transitions to the previous state
func (m *Machine) GoBack() tea.Cmd {
	if !m.CanGoBack() {
		return nil
	}

	m.history = m.history[:len(m.history)-1]
	previous := m.history[len(m.history)-1]

	transition := Transition{From: m.current, To: previous}
	m.current = previous

	return func() tea.Msg {
		return TransitionMsg{Transition: transition}
	}
}

// History returns a copy of the state history
func (m *Machine) History() []State {
	history := make([]State, len(m.history))
	copy(history, m.history)
	return history
}

// Reset resets the state machine to the given state.
// Used on logout so back navigation cannot return to a protected screen.
func (m *Machine) Reset(initial State) {
	m.current = initial
	m.history = []State{initial}
}

// Messages for state machine events
type (
	// TransitionMsg is sent when a state transition occurs
	TransitionMsg struct {
		Transition Transition
	}

	// ErrorMsg is sent when a state machine error occurs
	ErrorMsg struct {
		Error error
	}
)
