package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHandler_IsQuit(t *testing.T) {
	h := NewHandler()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		inForm bool
		want   bool
	}{
		{"ctrl+c in form", tea.KeyMsg{Type: tea.KeyCtrlC}, true, true},
		{"ctrl+c outside form", tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
		{"q in form is text", runeKey("q"), true, false},
		{"q outside form", runeKey("q"), false, true},
		{"other key", runeKey("x"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.IsQuit(tt.msg, tt.inForm); got != tt.want {
				t.Errorf("IsQuit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandler_IsNav(t *testing.T) {
	h := NewHandler()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyEnter}, runeKey("h"), runeKey("l")} {
		if !h.IsNav(msg) {
			t.Errorf("Expected %q to be a navbar key", msg.String())
		}
	}
	if h.IsNav(runeKey("d")) {
		t.Error("Expected d not to be a navbar key")
	}
}

func TestHandler_Shortcuts(t *testing.T) {
	h := NewHandler()

	if !h.IsOpenRegister(tea.KeyMsg{Type: tea.KeyCtrlR}) {
		t.Error("Expected ctrl+r to open register")
	}
	if !h.IsOpenLogin(tea.KeyMsg{Type: tea.KeyCtrlL}) {
		t.Error("Expected ctrl+l to open login")
	}
	if !h.IsBack(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Error("Expected esc to go back")
	}
}

func TestGlobalKeyMap_Help(t *testing.T) {
	k := DefaultGlobalKeys()

	if len(k.ShortHelp()) == 0 || len(k.FullHelp()) != 3 {
		t.Error("Expected help bindings")
	}
}
