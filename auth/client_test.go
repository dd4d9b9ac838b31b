package auth

import (
	"context"
	"errors"
	"testing"

	"ems-cli/api"
)

// MockProvider implements Provider for testing
type MockProvider struct {
	loginFunc    func(ctx context.Context, req api.LoginRequest) (*api.Envelope, error)
	registerFunc func(ctx context.Context, req api.RegisterRequest) (*api.Envelope, error)
	refreshFunc  func(ctx context.Context, token string) (*api.Envelope, error)
}

func (m *MockProvider) Login(ctx context.Context, req api.LoginRequest) (*api.Envelope, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, req)
	}
	return &api.Envelope{StatusCode: 200, Token: "mock-token", Role: "USER"}, nil
}

func (m *MockProvider) Register(ctx context.Context, req api.RegisterRequest) (*api.Envelope, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return &api.Envelope{StatusCode: 200, Message: "User registered successfully"}, nil
}

func (m *MockProvider) Refresh(ctx context.Context, token string) (*api.Envelope, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, token)
	}
	return &api.Envelope{StatusCode: 200, Token: token + "-refreshed"}, nil
}

func TestClient_Login(t *testing.T) {
	tests := []struct {
		name        string
		loginFunc   func(ctx context.Context, req api.LoginRequest) (*api.Envelope, error)
		wantToken   string
		wantRole    string
		wantMessage string
		wantStatus  int
	}{
		{
			name: "success",
			loginFunc: func(ctx context.Context, req api.LoginRequest) (*api.Envelope, error) {
				return &api.Envelope{StatusCode: 200, Token: "t1", Role: "ADMIN", Message: "Successfully Logged In"}, nil
			},
			wantToken:   "t1",
			wantRole:    "ADMIN",
			wantMessage: "Successfully Logged In",
			wantStatus:  200,
		},
		{
			name: "unknown user keeps server message",
			loginFunc: func(ctx context.Context, req api.LoginRequest) (*api.Envelope, error) {
				return nil, &api.HTTPError{StatusCode: 404, Message: "User not found with email: a@b.c"}
			},
			wantMessage: "User not found with email: a@b.c",
			wantStatus:  404,
		},
		{
			name: "rejection without message gets fallback",
			loginFunc: func(ctx context.Context, req api.LoginRequest) (*api.Envelope, error) {
				return nil, &api.HTTPError{StatusCode: 500}
			},
			wantMessage: GenericLoginFailure,
			wantStatus:  500,
		},
		{
			name: "transport failure gets fallback",
			loginFunc: func(ctx context.Context, req api.LoginRequest) (*api.Envelope, error) {
				return nil, errors.New("connection refused")
			},
			wantMessage: GenericLoginFailure,
		},
		{
			name: "ok response without token is a failure",
			loginFunc: func(ctx context.Context, req api.LoginRequest) (*api.Envelope, error) {
				return &api.Envelope{StatusCode: 200}, nil
			},
			wantMessage: GenericLoginFailure,
			wantStatus:  200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			client := NewClient(&MockProvider{loginFunc: tt.loginFunc})

			// Act
			result := client.Login(context.Background(), "a@b.c", "pw")

			// Assert
			if result.Token != tt.wantToken {
				t.Errorf("Expected token '%s', got '%s'", tt.wantToken, result.Token)
			}
			if result.Role != tt.wantRole {
				t.Errorf("Expected role '%s', got '%s'", tt.wantRole, result.Role)
			}
			if result.Message != tt.wantMessage {
				t.Errorf("Expected message '%s', got '%s'", tt.wantMessage, result.Message)
			}
			if result.StatusCode != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, result.StatusCode)
			}
			if result.Succeeded() != (tt.wantToken != "") {
				t.Errorf("Succeeded() = %v with token '%s'", result.Succeeded(), result.Token)
			}
		})
	}
}

func TestClient_Login_SendsCredentials(t *testing.T) {
	// Arrange
	var got api.LoginRequest
	client := NewClient(&MockProvider{
		loginFunc: func(ctx context.Context, req api.LoginRequest) (*api.Envelope, error) {
			got = req
			return &api.Envelope{Token: "t"}, nil
		},
	})

	// Act
	client.Login(context.Background(), "user@example.com", "secret")

	// Assert
	if got.Email != "user@example.com" || got.Password != "secret" {
		t.Errorf("Unexpected request: %+v", got)
	}
}

func TestClient_Register_Duplicate(t *testing.T) {
	// Arrange
	client := NewClient(&MockProvider{
		registerFunc: func(ctx context.Context, req api.RegisterRequest) (*api.Envelope, error) {
			return nil, &api.HTTPError{StatusCode: 400, Message: "Email address already registered"}
		},
	})

	// Act
	result, err := client.Register(context.Background(), Registration{Name: "A", Email: "a@b.c", Password: "pw"})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Registered() {
		t.Error("Expected registration to be rejected")
	}
	if result.Message != "Email address already registered" {
		t.Errorf("Unexpected message '%s'", result.Message)
	}
}

func TestClient_Register_TransportError(t *testing.T) {
	// Arrange
	client := NewClient(&MockProvider{
		registerFunc: func(ctx context.Context, req api.RegisterRequest) (*api.Envelope, error) {
			return nil, errors.New("connection refused")
		},
	})

	// Act
	_, err := client.Register(context.Background(), Registration{Name: "A", Email: "a@b.c", Password: "pw"})

	// Assert
	if err == nil {
		t.Error("Expected transport error to be returned")
	}
}

func TestClient_Register_PassesRole(t *testing.T) {
	// Arrange
	var got api.RegisterRequest
	client := NewClient(&MockProvider{
		registerFunc: func(ctx context.Context, req api.RegisterRequest) (*api.Envelope, error) {
			got = req
			return &api.Envelope{StatusCode: 200, Message: "User registered successfully"}, nil
		},
	})

	// Act
	result, err := client.Register(context.Background(), Registration{Name: "A", Email: "a@b.c", Password: "pw", Role: "ADMIN"})

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !result.Registered() {
		t.Error("Expected registration to succeed")
	}
	if got.Role != "ADMIN" || got.Name != "A" {
		t.Errorf("Unexpected request: %+v", got)
	}
}

func TestClient_Refresh(t *testing.T) {
	t.Run("rejected token", func(t *testing.T) {
		client := NewClient(&MockProvider{
			refreshFunc: func(ctx context.Context, token string) (*api.Envelope, error) {
				return nil, &api.HTTPError{StatusCode: 400, Message: "Invalid token"}
			},
		})

		result, err := client.Refresh(context.Background(), "old")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.Succeeded() {
			t.Error("Expected refresh to fail")
		}
	})

	t.Run("gateway error is not a rejection", func(t *testing.T) {
		client := NewClient(&MockProvider{
			refreshFunc: func(ctx context.Context, token string) (*api.Envelope, error) {
				return nil, &api.HTTPError{StatusCode: 502, Message: "<html>Bad Gateway</html>", Raw: true}
			},
		})

		_, err := client.Refresh(context.Background(), "old")

		if err == nil {
			t.Fatal("Expected an error for a gateway failure")
		}
	})

	t.Run("body status is a rejection", func(t *testing.T) {
		client := NewClient(&MockProvider{
			refreshFunc: func(ctx context.Context, token string) (*api.Envelope, error) {
				return nil, &api.HTTPError{StatusCode: 500, Message: "JWT expired"}
			},
		})

		result, err := client.Refresh(context.Background(), "old")

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.Succeeded() || result.Message != "JWT expired" {
			t.Errorf("Expected rejection with message, got %+v", result)
		}
	})

	t.Run("new token", func(t *testing.T) {
		client := NewClient(&MockProvider{})

		result, err := client.Refresh(context.Background(), "old")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result.Token != "old-refreshed" {
			t.Errorf("Expected refreshed token, got '%s'", result.Token)
		}
	})
}
