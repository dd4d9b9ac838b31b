package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ems-cli/logger"
	"ems-cli/session"
)

// ErrSessionRejected is returned by RefreshSession when the backend refuses
// the stored token. The session has already been cleared.
var ErrSessionRejected = errors.New("session rejected")

// AuthService ties the auth client to the session store
type AuthService struct {
	client *Client
	repo   session.Repository
	log    zerolog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(provider Provider, repo session.Repository) *AuthService {
	return &AuthService{
		client: NewClient(provider),
		repo:   repo,
		log:    logger.Component("auth"),
	}
}

// AttemptLogin performs the complete login flow
func (s *AuthService) AttemptLogin(ctx context.Context, email, password string) LoginResult {
	if err := ValidateCredentials(Credentials{Email: email, Password: password}); err != nil {
		return LoginResult{Error: err.Error()}
	}

	result := s.client.Login(ctx, email, password)
	if !result.Succeeded() {
		return LoginResult{Error: result.Message}
	}

	if err := s.repo.Set(session.Session{Token: result.Token, Role: result.Role, Username: email}); err != nil {
		s.log.Error().Err(err).Msg("failed to persist session")
		return LoginResult{Error: fmt.Sprintf("Failed to save session: %v", err)}
	}

	s.log.Info().Str("role", result.Role).Msg("logged in")
	return LoginResult{Success: true, Role: result.Role}
}

// RegisterTransportFailure is shown when the registration request never got an answer
const RegisterTransportFailure = "An error occurred while registering user"

// AttemptRegister validates and submits a registration. The session is not
// touched; the new user still has to log in.
func (s *AuthService) AttemptRegister(ctx context.Context, r Registration) RegisterResult {
	if err := ValidateRegistration(r); err != nil {
		return RegisterResult{Error: err.Error()}
	}

	result, err := s.client.Register(ctx, r)
	if err != nil {
		s.log.Error().Err(err).Msg("registration request failed")
		return RegisterResult{Error: RegisterTransportFailure}
	}
	if !result.Registered() {
		return RegisterResult{Error: messageOr(result.Message, "Registration failed. Please try again.")}
	}
	return RegisterResult{Success: true, Message: messageOr(result.Message, "User registered successfully")}
}

// RefreshSession exchanges the stored token for a new one. A rejected token
// clears the session and returns ErrSessionRejected. Transport failures
// leave the session as it was.
func (s *AuthService) RefreshSession(ctx context.Context) error {
	current := s.repo.Get()
	if current.Token == "" {
		return session.ErrNotAuthenticated
	}

	result, err := s.client.Refresh(ctx, current.Token)
	if err != nil {
		s.log.Warn().Err(err).Msg("token refresh unavailable, keeping session")
		return fmt.Errorf("refresh: %w", err)
	}
	if !result.Succeeded() {
		s.log.Info().Int("status", result.StatusCode).Str("reason", result.Message).Msg("token refresh rejected")
		if err := s.repo.Clear(); err != nil {
			s.log.Error().Err(err).Msg("failed to clear rejected session")
		}
		return ErrSessionRejected
	}

	role := current.Role
	if result.Role != "" {
		role = result.Role
	}
	if err := s.repo.Set(session.Session{Token: result.Token, Role: role, Username: current.Username}); err != nil {
		return fmt.Errorf("failed to save refreshed session: %w", err)
	}
	s.log.Debug().Msg("token refreshed")
	return nil
}
