package navbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/tui/state"
)

type fakeAccess struct {
	authenticated bool
	admin         bool
}

func (f *fakeAccess) IsAuthenticated() bool { return f.authenticated }
func (f *fakeAccess) IsAdmin() bool         { return f.authenticated && f.admin }

func labels(items []Item) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestItems_MatchSession(t *testing.T) {
	tests := []struct {
		name   string
		access *fakeAccess
		want   string
	}{
		{"logged out", &fakeAccess{}, "Register,Login"},
		{"user", &fakeAccess{authenticated: true}, "Events,Profile,Logout"},
		{"admin", &fakeAccess{authenticated: true, admin: true}, "Events,Profile,Admin Page,Logout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(labels(Items(tt.access)), ",")
			if got != tt.want {
				t.Errorf("Expected items '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestItems_AdminPageTargetsUserManagement(t *testing.T) {
	items := Items(&fakeAccess{authenticated: true, admin: true})

	if items[2].Target != state.UserManagement {
		t.Errorf("Expected Admin Page to open UserManagement, got %s", items[2].Target)
	}
	if !items[3].Logout {
		t.Error("Expected last item to be logout")
	}
}

func TestUpdate_NavigationWraps(t *testing.T) {
	// Arrange
	nav := New(&fakeAccess{})

	// Act
	nav, _ = nav.Update(tea.KeyMsg{Type: tea.KeyLeft})

	// Assert
	item, _ := nav.SelectedItem()
	if item.Label != LoginLabel {
		t.Errorf("Expected wrap to Login, got %s", item.Label)
	}

	nav, _ = nav.Update(tea.KeyMsg{Type: tea.KeyRight})
	item, _ = nav.SelectedItem()
	if item.Label != RegisterLabel {
		t.Errorf("Expected wrap to Register, got %s", item.Label)
	}
}

func TestUpdate_EnterSelects(t *testing.T) {
	nav := New(&fakeAccess{authenticated: true})
	nav.Highlight(state.Profile)

	_, cmd := nav.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("Expected command for enter")
	}
	msg, ok := cmd().(SelectMsg)
	if !ok {
		t.Fatal("Expected SelectMsg")
	}
	if msg.Item.Target != state.Profile {
		t.Errorf("Expected Profile, got %s", msg.Item.Target)
	}
}

func TestSelection_SurvivesShrinkingItems(t *testing.T) {
	// Arrange
	access := &fakeAccess{authenticated: true, admin: true}
	nav := New(access)
	nav.Highlight(state.UserManagement)
	nav, _ = nav.Update(tea.KeyMsg{Type: tea.KeyRight})

	// Act
	access.authenticated = false

	// Assert
	item, ok := nav.SelectedItem()
	if !ok || item.Label != LoginLabel {
		t.Errorf("Expected cursor clamped to Login, got %+v", item)
	}
}

func TestView_ReflectsSessionChanges(t *testing.T) {
	access := &fakeAccess{}
	nav := New(access)

	if view := nav.View(state.Login); !strings.Contains(view, "Register") || strings.Contains(view, "Logout") {
		t.Errorf("Unexpected logged-out navbar: %s", view)
	}

	access.authenticated = true
	if view := nav.View(state.Profile); !strings.Contains(view, "Logout") || strings.Contains(view, "Register") {
		t.Errorf("Unexpected logged-in navbar: %s", view)
	}
}
