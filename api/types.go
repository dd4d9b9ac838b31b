package api

// Envelope is the response body shared by the backend's auth and user endpoints
type Envelope struct {
	StatusCode     int    `json:"statusCode"`
	Error          string `json:"error,omitempty"`
	Message        string `json:"message,omitempty"`
	Token          string `json:"token,omitempty"`
	RefreshToken   string `json:"refreshToken,omitempty"`
	ExpirationTime string `json:"expirationTime,omitempty"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Role           string `json:"role,omitempty"`
	User           *User  `json:"ourUsers,omitempty"`
	Users          []User `json:"ourUsersList,omitempty"`
}

// Failed reports whether the body itself carries an error status
func (e Envelope) Failed() bool {
	return e.StatusCode >= 400
}

// Reason returns the human-readable explanation carried by the body
func (e Envelope) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// User represents an account as returned by the backend
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Event represents a scheduled event
type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// RefreshRequest is the payload for POST /auth/refresh
type RefreshRequest struct {
	Token string `json:"token"`
}
