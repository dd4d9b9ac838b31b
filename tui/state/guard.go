package state

// Access is the part of the session authorizer that guards read
type Access interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Guard returns the state to show when target is requested. Logged-out
// users are sent to Login; non-admins asking for UserManagement land on
// Profile. Public screens are always allowed.
func Guard(target State, access Access) State {
	switch target {
	case Events, Profile:
		if !access.IsAuthenticated() {
			return Login
		}
	case UserManagement:
		if !access.IsAuthenticated() {
			return Login
		}
		if !access.IsAdmin() {
			return Profile
		}
	}
	return target
}

// Allowed reports whether target can be shown without a redirect
func Allowed(target State, access Access) bool {
	return Guard(target, access) == target
}
