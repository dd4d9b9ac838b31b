package auth

// Credentials are the login form fields
type Credentials struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=128"`
}

// Registration is the registration form. Role is optional free text.
type Registration struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,max=128"`
	Role     string `validate:"max=64"`
}

// AuthResult is the interpreted outcome of a login, registration or refresh.
// A non-empty Token means a login or refresh succeeded; otherwise Message and
// StatusCode explain the failure.
type AuthResult struct {
	Token          string
	Role           string
	Message        string
	StatusCode     int
	RefreshToken   string
	ExpirationTime string
}

// Succeeded reports whether a token was issued
func (r AuthResult) Succeeded() bool {
	return r.Token != ""
}

// Registered reports whether a registration was accepted
func (r AuthResult) Registered() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// LoginResult represents the result of a login attempt
type LoginResult struct {
	Success bool
	Error   string
	Role    string
}

// RegisterResult represents the result of a registration attempt.
// Message is set on success, Error on failure.
type RegisterResult struct {
	Success bool
	Message string
	Error   string
}
