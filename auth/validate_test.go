package auth

import "testing"

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr string
	}{
		{"valid", Credentials{Email: "user@example.com", Password: "pw"}, ""},
		{"missing email", Credentials{Password: "pw"}, "email is required"},
		{"missing password", Credentials{Email: "user@example.com"}, "password is required"},
		{"bad email", Credentials{Email: "user", Password: "pw"}, "email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.creds)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Expected error '%s', got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name    string
		reg     Registration
		wantErr string
	}{
		{"valid without role", Registration{Name: "Ann", Email: "ann@example.com", Password: "pw"}, ""},
		{"valid with role", Registration{Name: "Ann", Email: "ann@example.com", Password: "pw", Role: "USER"}, ""},
		{"missing name", Registration{Email: "ann@example.com", Password: "pw"}, "name is required"},
		{"name too long", Registration{Name: string(long), Email: "ann@example.com", Password: "pw"}, "name must be at most 100 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.reg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Expected error '%s', got %v", tt.wantErr, err)
			}
		})
	}
}
