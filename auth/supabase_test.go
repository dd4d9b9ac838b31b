package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"

	"ems-cli/api"
)

func TestRoleOf(t *testing.T) {
	tests := []struct {
		name string
		user types.User
		want string
	}{
		{"app metadata wins", types.User{Role: "authenticated", AppMetadata: map[string]interface{}{"role": "ADMIN"}}, "ADMIN"},
		{"falls back to user role", types.User{Role: "authenticated"}, "authenticated"},
		{"non-string metadata ignored", types.User{Role: "authenticated", AppMetadata: map[string]interface{}{"role": 7}}, "authenticated"},
		{"empty", types.User{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roleOf(tt.user); got != tt.want {
				t.Errorf("roleOf() = '%s', want '%s'", got, tt.want)
			}
		})
	}
}

// newGoTrueProvider points a supabase client at a fake GoTrue server
func newGoTrueProvider(t *testing.T, handler http.HandlerFunc) *SupabaseProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := supabase.NewClient(srv.URL, "anon-key", nil)
	require.NoError(t, err)
	return NewSupabaseProvider(client)
}

func writeGoTrue(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func TestSupabaseProvider_Login(t *testing.T) {
	t.Run("success reads app metadata role", func(t *testing.T) {
		provider := newGoTrueProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/token", r.URL.Path)
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			assert.Equal(t, "anon-key", r.Header.Get("apikey"))
			writeGoTrue(w, http.StatusOK, map[string]any{
				"access_token":  "jwt-1",
				"refresh_token": "r-1",
				"user":          map[string]any{"role": "authenticated", "app_metadata": map[string]any{"role": "ADMIN"}},
			})
		})

		env, err := provider.Login(context.Background(), api.LoginRequest{Email: "ada@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "jwt-1", env.Token)
		assert.Equal(t, "r-1", env.RefreshToken)
		assert.Equal(t, "ADMIN", env.Role)
	})

	t.Run("bad credentials are a 401 with the server message", func(t *testing.T) {
		provider := newGoTrueProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeGoTrue(w, http.StatusBadRequest, map[string]any{"error": "invalid_grant", "error_description": "Invalid login credentials"})
		})

		_, err := provider.Login(context.Background(), api.LoginRequest{Email: "ada@example.com", Password: "bad"})

		var httpErr *api.HTTPError
		require.True(t, errors.As(err, &httpErr), "got %v", err)
		assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
		assert.Equal(t, "Invalid login credentials", httpErr.Message)
	})

	t.Run("auth service shows the server message", func(t *testing.T) {
		provider := newGoTrueProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeGoTrue(w, http.StatusBadRequest, map[string]any{"error_description": "Invalid login credentials"})
		})

		result := NewClient(provider).Login(context.Background(), "ada@example.com", "bad")

		assert.False(t, result.Succeeded())
		assert.Equal(t, "Invalid login credentials", result.Message)
		assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
	})
}

func TestSupabaseProvider_Register(t *testing.T) {
	t.Run("sends name and role as metadata", func(t *testing.T) {
		provider := newGoTrueProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/signup", r.URL.Path)
			var req types.SignupRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ada@example.com", req.Email)
			assert.Equal(t, "Ada", req.Data["name"])
			assert.Equal(t, "USER", req.Data["role"])
			writeGoTrue(w, http.StatusOK, map[string]any{"email": "ada@example.com"})
		})

		env, err := provider.Register(context.Background(), api.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw", Role: "USER"})

		require.NoError(t, err)
		assert.Equal(t, "User registered successfully", env.Message)
	})

	t.Run("duplicate is a 400 with the server message", func(t *testing.T) {
		provider := newGoTrueProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeGoTrue(w, http.StatusUnprocessableEntity, map[string]any{"msg": "User already registered"})
		})

		_, err := provider.Register(context.Background(), api.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "pw"})

		var httpErr *api.HTTPError
		require.True(t, errors.As(err, &httpErr), "got %v", err)
		assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
		assert.Equal(t, "User already registered", httpErr.Message)
	})
}

func TestSupabaseProvider_Refresh(t *testing.T) {
	t.Run("valid token keeps token and reads role", func(t *testing.T) {
		provider := newGoTrueProvider(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "Bearer jwt-1", r.Header.Get("Authorization"))
			writeGoTrue(w, http.StatusOK, map[string]any{"role": "authenticated", "app_metadata": map[string]any{"role": "ADMIN"}})
		})

		env, err := provider.Refresh(context.Background(), "jwt-1")

		require.NoError(t, err)
		assert.Equal(t, "jwt-1", env.Token)
		assert.Equal(t, "ADMIN", env.Role)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		provider := newGoTrueProvider(t, func(w http.ResponseWriter, r *http.Request) {
			writeGoTrue(w, http.StatusUnauthorized, map[string]any{"msg": "invalid JWT"})
		})

		result, err := NewClient(provider).Refresh(context.Background(), "jwt-1")

		require.NoError(t, err)
		assert.False(t, result.Succeeded())
		assert.Equal(t, "Invalid token", result.Message)
		assert.Equal(t, http.StatusBadRequest, result.StatusCode)
	})

	t.Run("unavailable server is an error", func(t *testing.T) {
		provider := newGoTrueProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("<html>maintenance</html>")) //nolint:errcheck
		})

		_, err := NewClient(provider).Refresh(context.Background(), "jwt-1")

		require.Error(t, err)
	})
}

func TestGoTrueError(t *testing.T) {
	assert.Nil(t, gotrueError(errors.New("dial tcp: connection refused")))

	httpErr := gotrueError(errors.New(`response status code 422: {"msg":"Password too short"}`))
	require.NotNil(t, httpErr)
	assert.Equal(t, 422, httpErr.StatusCode)
	assert.Equal(t, "Password too short", httpErr.Message)
	assert.False(t, httpErr.Raw)

	httpErr = gotrueError(errors.New("response status code 502: <html>bad gateway</html>"))
	require.NotNil(t, httpErr)
	assert.True(t, httpErr.Unavailable())
}
