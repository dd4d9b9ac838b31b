package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"

	"ems-cli/api"
)

// SupabaseProvider implements Provider against Supabase Auth. Roles are read
// from app_metadata.role, falling back to the GoTrue user role.
type SupabaseProvider struct {
	client *supabase.Client
}

// NewSupabaseProvider creates a new Supabase authentication provider
func NewSupabaseProvider(client *supabase.Client) *SupabaseProvider {
	return &SupabaseProvider{client: client}
}

// Login authenticates a user with Supabase
func (s *SupabaseProvider) Login(ctx context.Context, req api.LoginRequest) (*api.Envelope, error) {
	sess, err := s.client.SignInWithEmailPassword(req.Email, req.Password)
	if err != nil {
		if httpErr := gotrueError(err); httpErr != nil {
			if !httpErr.Unavailable() {
				httpErr.StatusCode = http.StatusUnauthorized
			}
			return nil, httpErr
		}
		return nil, err
	}
	return &api.Envelope{
		StatusCode:   http.StatusOK,
		Message:      "Successfully Logged In",
		Token:        sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		Role:         roleOf(sess.User),
	}, nil
}

// Register signs a user up. The requested role is stored as user metadata;
// only app_metadata is trusted for authorization.
func (s *SupabaseProvider) Register(ctx context.Context, req api.RegisterRequest) (*api.Envelope, error) {
	data := map[string]interface{}{"name": req.Name}
	if req.Role != "" {
		data["role"] = req.Role
	}
	_, err := s.client.Auth.Signup(types.SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Data:     data,
	})
	if err != nil {
		if httpErr := gotrueError(err); httpErr != nil {
			if !httpErr.Unavailable() {
				httpErr.StatusCode = http.StatusBadRequest
			}
			return nil, httpErr
		}
		return nil, err
	}
	return &api.Envelope{StatusCode: http.StatusOK, Message: "User registered successfully"}, nil
}

// Refresh validates token by fetching its user. Supabase access tokens are
// refreshed with the refresh token, which is not persisted, so a valid token
// is returned unchanged.
func (s *SupabaseProvider) Refresh(ctx context.Context, token string) (*api.Envelope, error) {
	user, err := s.client.Auth.WithToken(token).GetUser()
	if err != nil {
		httpErr := gotrueError(err)
		if httpErr == nil {
			return nil, err
		}
		if !httpErr.Unavailable() {
			return nil, &api.HTTPError{StatusCode: http.StatusBadRequest, Message: "Invalid token"}
		}
		return nil, httpErr
	}
	return &api.Envelope{
		StatusCode: http.StatusOK,
		Token:      token,
		Role:       roleOf(user.User),
	}, nil
}

func roleOf(user types.User) string {
	if role, ok := user.AppMetadata["role"].(string); ok && role != "" {
		return role
	}
	return user.Role
}

// gotrueError recovers the HTTP status from a GoTrue client error, which
// reads "response status code <n>: <body>". Errors without a status are
// transport failures and yield nil.
func gotrueError(err error) *api.HTTPError {
	var code int
	if _, scanErr := fmt.Sscanf(err.Error(), "response status code %d", &code); scanErr != nil {
		return nil
	}

	body := ""
	if i := strings.Index(err.Error(), ": "); i >= 0 {
		body = strings.TrimSpace(err.Error()[i+2:])
	}
	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal([]byte(body), &payload) != nil {
		return &api.HTTPError{StatusCode: code, Message: messageOr(body, http.StatusText(code)), Raw: true}
	}
	msg := payload.ErrorDescription
	if msg == "" {
		msg = payload.Msg
	}
	if msg == "" {
		msg = payload.Message
	}
	return &api.HTTPError{StatusCode: code, Message: messageOr(msg, http.StatusText(code))}
}
