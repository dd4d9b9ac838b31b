package session

import (
	"errors"

	"github.com/rs/zerolog"

	"ems-cli/logger"
)

// AdminRole is the only role the client distinguishes. Comparison is exact.
const AdminRole = "ADMIN"

// ErrNotAuthenticated is returned when a token is required but none is stored
var ErrNotAuthenticated = errors.New("not authenticated")

// Authorizer derives authentication and role state from a Repository.
//
// Every read goes back to the repository, so a login or logout performed by
// another screen is visible on the next call. None of the predicates fail:
// missing or malformed data means logged out.
type Authorizer struct {
	repo Repository
	log  zerolog.Logger
}

// NewAuthorizer creates an authorizer reading from repo
func NewAuthorizer(repo Repository) *Authorizer {
	return &Authorizer{
		repo: repo,
		log:  logger.Component("session"),
	}
}

// IsAuthenticated reports whether a non-empty token is stored.
// Expiry is not checked; the API rejects stale tokens.
func (a *Authorizer) IsAuthenticated() bool {
	return a.repo.Get().Token != ""
}

// IsAdmin reports whether a token is stored and the stored role is AdminRole
func (a *Authorizer) IsAdmin() bool {
	s := a.repo.Get()
	if s.Token == "" {
		return false
	}
	return s.Role == AdminRole
}

// CurrentRole returns the stored role verbatim
func (a *Authorizer) CurrentRole() (string, bool) {
	role := a.repo.Get().Role
	return role, role != ""
}

// Username returns the stored login name, or "" when unknown
func (a *Authorizer) Username() string {
	return a.repo.Get().Username
}

// Token returns the stored token for API calls
func (a *Authorizer) Token() (string, error) {
	token := a.repo.Get().Token
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// Logout clears the repository. It never fails; storage errors are logged.
// Callers handle any redirect.
func (a *Authorizer) Logout() {
	if err := a.repo.Clear(); err != nil {
		a.log.Error().Err(err).Msg("failed to clear session")
		return
	}
	a.log.Info().Msg("session cleared")
}

// Claims decodes the stored token for display. ok is false when logged out
// or when the token is not a JWT.
func (a *Authorizer) Claims() (TokenClaims, bool) {
	token := a.repo.Get().Token
	if token == "" {
		return TokenClaims{}, false
	}
	claims, err := DecodeClaims(token)
	if err != nil {
		a.log.Debug().Err(err).Msg("token is not a decodable JWT")
		return TokenClaims{}, false
	}
	return claims, true
}
