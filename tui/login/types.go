package login

// LoginSuccessMsg is sent when login is successful
type LoginSuccessMsg struct {
	Role string
}

// LoginErrorMsg is sent when login fails
type LoginErrorMsg struct {
	Error string
}

// clearErrorMsg dismisses the error shown for attempt seq
type clearErrorMsg struct {
	seq int
}
