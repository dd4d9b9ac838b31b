package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ems-cli/logger"
)

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 1 << 20

// TokenProvider defines the interface for token management
type TokenProvider interface {
	Token() (string, error)
}

// ClientInterface defines the interface for API client operations
type ClientInterface interface {
	Login(ctx context.Context, req LoginRequest) (*Envelope, error)
	Register(ctx context.Context, req RegisterRequest) (*Envelope, error)
	Refresh(ctx context.Context, token string) (*Envelope, error)
	GetProfile(ctx context.Context) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int) (*User, error)
	DeleteUser(ctx context.Context, id int) error
	ListEvents(ctx context.Context) ([]Event, error)
}

// Client represents the API client
type Client struct {
	httpClient    *http.Client
	baseURL       string
	tokenProvider TokenProvider
	log           zerolog.Logger
}

// NewClient creates a new API client. A zero timeout leaves the transport default in place.
func NewClient(baseURL string, tokenProvider TokenProvider, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:       strings.TrimRight(baseURL, "/"),
		tokenProvider: tokenProvider,
		log:           logger.Component("api"),
	}
}

// BaseURL returns the API root this client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login exchanges credentials for a token. Error statuses are returned as
// *HTTPError carrying the backend's message.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Envelope, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &env, false); err != nil {
		return nil, fmt.Errorf("client.Login: %w", err)
	}
	return &env, nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Envelope, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodPost, "/auth/register", req, &env, false); err != nil {
		return nil, fmt.Errorf("client.Register: %w", err)
	}
	return &env, nil
}

// Refresh exchanges a still-valid token for a fresh one
func (c *Client) Refresh(ctx context.Context, token string) (*Envelope, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", RefreshRequest{Token: token}, &env, false); err != nil {
		return nil, fmt.Errorf("client.Refresh: %w", err)
	}
	return &env, nil
}

// GetProfile returns the authenticated user's account
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodGet, "/adminuser/get-profile", nil, &env, true); err != nil {
		return nil, fmt.Errorf("client.GetProfile: %w", err)
	}
	if env.User == nil {
		return nil, fmt.Errorf("client.GetProfile: response has no user")
	}
	return env.User, nil
}

// ListUsers returns every account (admin only)
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodGet, "/admin/get-all-users", nil, &env, true); err != nil {
		// The backend answers 404 for an empty user table.
		if IsStatus(err, http.StatusNotFound) {
			return []User{}, nil
		}
		return nil, fmt.Errorf("client.ListUsers: %w", err)
	}
	return env.Users, nil
}

// GetUser fetches a single account by ID (admin only)
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodGet, "/admin/get-users/"+strconv.Itoa(id), nil, &env, true); err != nil {
		return nil, fmt.Errorf("client.GetUser: %w", err)
	}
	if env.User == nil {
		return nil, fmt.Errorf("client.GetUser: response has no user")
	}
	return env.User, nil
}

// DeleteUser removes an account by ID (admin only)
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	var env Envelope
	if err := c.doRequest(ctx, http.MethodDelete, "/admin/delete/"+strconv.Itoa(id), nil, &env, true); err != nil {
		return fmt.Errorf("client.DeleteUser: %w", err)
	}
	return nil
}

// ListEvents returns the events visible to the current user
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.doRequest(ctx, http.MethodGet, "/events", nil, &events, true); err != nil {
		return nil, fmt.Errorf("client.ListEvents: %w", err)
	}
	return events, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any, authenticated bool) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if authenticated {
		token, err := c.tokenProvider.Token()
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", requestID).Msg("request failed")
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode >= 400 {
		return readHTTPError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if env, ok := out.(*Envelope); ok && env.Failed() {
		return &HTTPError{StatusCode: env.StatusCode, Message: env.Reason()}
	}
	return nil
}

// readHTTPError builds an HTTPError from an error response, preferring the
// backend's message field, then its error field, then the raw body.
func readHTTPError(resp *http.Response) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if readErr != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr), Raw: true}
	}
	var env Envelope
	if json.Unmarshal(respBody, &env) == nil && env.Reason() != "" {
		return &HTTPError{StatusCode: resp.StatusCode, Message: env.Reason()}
	}
	return &HTTPError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody)), Raw: true}
}
