package state

import "testing"

func TestStatePath_Unique(t *testing.T) {
	seen := map[string]State{}
	for _, s := range []State{Login, Register, Events, Profile, UserManagement} {
		path := s.Path()
		if path == "" {
			t.Errorf("Expected %s to have a route", s)
		}
		if other, ok := seen[path]; ok {
			t.Errorf("%s and %s share route %q", s, other, path)
		}
		seen[path] = s
	}

	if RefreshingToken.Path() != "" {
		t.Errorf("Expected RefreshingToken to have no route, got %q", RefreshingToken.Path())
	}
}

func TestMachine_TransitionAndBack(t *testing.T) {
	// Arrange
	m := NewMachine(Login)

	// Act
	cmd := m.Transition(Profile)

	// Assert
	if m.Current() != Profile {
		t.Fatalf("Expected Profile, got %s", m.Current())
	}
	msg, ok := cmd().(TransitionMsg)
	if !ok {
		t.Fatal("Expected TransitionMsg")
	}
	if msg.Transition.String() != "Login -> Profile" {
		t.Errorf("Unexpected transition %s", msg.Transition)
	}

	if !m.CanGoBack() {
		t.Fatal("Expected to be able to go back")
	}
	m.GoBack()
	if m.Current() != Login {
		t.Errorf("Expected Login after going back, got %s", m.Current())
	}
	if m.GoBack() != nil {
		t.Error("Expected no command when history is exhausted")
	}
}

func TestMachine_InvalidTransition(t *testing.T) {
	m := NewMachine(Login)

	cmd := m.Transition(State(99))

	if m.Current() != Login {
		t.Errorf("Expected state to stay Login, got %s", m.Current())
	}
	if _, ok := cmd().(ErrorMsg); !ok {
		t.Error("Expected ErrorMsg for invalid state")
	}
}

func TestMachine_ResetClearsHistory(t *testing.T) {
	m := NewMachine(Login)
	m.Transition(Profile)
	m.Transition(UserManagement)

	m.Reset(Login)

	if len(m.History()) != 1 || m.CanGoBack() {
		t.Errorf("Expected single-entry history, got %v", m.History())
	}
}
