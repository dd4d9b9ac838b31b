package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"ems-cli/api"
	"ems-cli/logger"
)

// GenericLoginFailure is shown when a failed login carries no explanation
const GenericLoginFailure = "Login failed. Please try again."

// Client issues login and registration requests and interprets their
// result and error shapes. It never renders anything and never retries.
type Client struct {
	provider Provider
	log      zerolog.Logger
}

// NewClient creates an auth client over provider
func NewClient(provider Provider) *Client {
	return &Client{
		provider: provider,
		log:      logger.Component("auth"),
	}
}

// Login sends credentials. Every failure, transport or server, comes back as
// a result without a token and with the best available message.
func (c *Client) Login(ctx context.Context, email, password string) AuthResult {
	env, err := c.provider.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			c.log.Info().Int("status", httpErr.StatusCode).Msg("login rejected")
			return AuthResult{Message: messageOr(httpErr.Message, GenericLoginFailure), StatusCode: httpErr.StatusCode}
		}
		c.log.Error().Err(err).Msg("login request failed")
		return AuthResult{Message: GenericLoginFailure}
	}

	if env.Token == "" {
		return AuthResult{Message: messageOr(env.Reason(), GenericLoginFailure), StatusCode: env.StatusCode}
	}
	return AuthResult{
		Token:          env.Token,
		Role:           env.Role,
		Message:        env.Message,
		StatusCode:     statusOr(env.StatusCode, http.StatusOK),
		RefreshToken:   env.RefreshToken,
		ExpirationTime: env.ExpirationTime,
	}
}

// Register sends the registration payload. Backend rejections such as a
// duplicate email are returned as a result; transport failures as an error.
func (c *Client) Register(ctx context.Context, r Registration) (AuthResult, error) {
	env, err := c.provider.Register(ctx, api.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	})
	if err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			c.log.Info().Int("status", httpErr.StatusCode).Msg("registration rejected")
			return AuthResult{Message: httpErr.Message, StatusCode: httpErr.StatusCode}, nil
		}
		return AuthResult{}, err
	}
	return AuthResult{Message: env.Message, StatusCode: statusOr(env.StatusCode, http.StatusOK)}, nil
}

// Refresh exchanges token for a new one. An explicit rejection is a result
// without a token. Transport failures and gateway errors are returned as
// errors.
func (c *Client) Refresh(ctx context.Context, token string) (AuthResult, error) {
	env, err := c.provider.Refresh(ctx, token)
	if err != nil {
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) && !httpErr.Unavailable() {
			return AuthResult{Message: httpErr.Message, StatusCode: httpErr.StatusCode}, nil
		}
		return AuthResult{}, err
	}
	if env.Token == "" {
		return AuthResult{Message: env.Reason(), StatusCode: env.StatusCode}, nil
	}
	return AuthResult{
		Token:          env.Token,
		Role:           env.Role,
		Message:        env.Message,
		StatusCode:     statusOr(env.StatusCode, http.StatusOK),
		RefreshToken:   env.RefreshToken,
		ExpirationTime: env.ExpirationTime,
	}, nil
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}

func statusOr(code, fallback int) int {
	if code == 0 {
		return fallback
	}
	return code
}
