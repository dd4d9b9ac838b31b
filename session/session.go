// Package session holds the client's belief about who is logged in.
//
// The token and role are persisted by a Repository and read back on every
// render. Nothing here is a security boundary: the token is opaque and the role
// is whatever the last login response said. The server re-checks every call.
package session

// Session is the persisted login state. Empty fields mean absent.
type Session struct {
	Token    string `yaml:"token,omitempty"`
	Role     string `yaml:"role,omitempty"`
	Username string `yaml:"username,omitempty"`
}

// IsZero reports whether nothing is stored
func (s Session) IsZero() bool {
	return s == Session{}
}

// Repository persists a Session.
//
// Get never fails: missing or unreadable data yields the zero Session.
// Set replaces any previous session. Clear is idempotent.
type Repository interface {
	Get() Session
	Set(s Session) error
	Clear() error
}
