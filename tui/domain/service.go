package domain

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/api"
)

// Messages produced by Service commands
type (
	// ProfileLoadedMsg carries the logged-in user's profile
	ProfileLoadedMsg struct {
		User *api.User
	}

	// EventsLoadedMsg carries the event listing
	EventsLoadedMsg struct {
		Events []api.Event
	}

	// UsersLoadedMsg carries the admin user listing
	UsersLoadedMsg struct {
		Users []api.User
	}

	// UserDeletedMsg reports a successful deletion
	UserDeletedMsg struct {
		ID int
	}

	// RequestErrorMsg reports a failed call. Op names the call for display.
	RequestErrorMsg struct {
		Op    string
		Error error
	}

	// SessionExpiredMsg is sent instead of RequestErrorMsg when the API
	// rejects the stored token
	SessionExpiredMsg struct {
		Op string
	}
)

// Service runs API calls as tea commands
type Service struct {
	ctx    context.Context
	client api.ClientInterface
}

// NewService creates a service bound to the program lifetime context
func NewService(ctx context.Context, client api.ClientInterface) *Service {
	return &Service{ctx: ctx, client: client}
}

// FetchProfile loads the current user's profile
func (s *Service) FetchProfile() tea.Cmd {
	return func() tea.Msg {
		user, err := s.client.GetProfile(s.ctx)
		if err != nil {
			return failure("load profile", err)
		}
		return ProfileLoadedMsg{User: user}
	}
}

// FetchEvents loads the event listing
func (s *Service) FetchEvents() tea.Cmd {
	return func() tea.Msg {
		events, err := s.client.ListEvents(s.ctx)
		if err != nil {
			return failure("load events", err)
		}
		return EventsLoadedMsg{Events: events}
	}
}

// FetchUsers loads all users
func (s *Service) FetchUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := s.client.ListUsers(s.ctx)
		if err != nil {
			return failure("load users", err)
		}
		return UsersLoadedMsg{Users: users}
	}
}

// DeleteUser removes the user with id
func (s *Service) DeleteUser(id int) tea.Cmd {
	return func() tea.Msg {
		if err := s.client.DeleteUser(s.ctx, id); err != nil {
			return failure("delete user", err)
		}
		return UserDeletedMsg{ID: id}
	}
}

func failure(op string, err error) tea.Msg {
	if api.IsUnauthorized(err) {
		return SessionExpiredMsg{Op: op}
	}
	return RequestErrorMsg{Op: op, Error: err}
}
