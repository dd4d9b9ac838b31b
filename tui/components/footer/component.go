package footer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ems-cli/tui/styles"
)

// Component renders the key hints under each screen
type Component struct {
	style lipgloss.Style
}

// New creates a new footer component
func New() *Component {
	return &Component{style: styles.HelpStyle}
}

// KeyBinding is one hint in the footer
type KeyBinding struct {
	Key         string
	Description string
}

// View renders the footer with the provided key bindings. Incomplete
// bindings are skipped.
func (c *Component) View(bindings ...KeyBinding) string {
	var parts []string
	for _, binding := range bindings {
		if formatted := binding.Format(); formatted != "" {
			parts = append(parts, formatted)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return c.style.Render(strings.Join(parts, "  "))
}

// Format renders a key binding as "[key] description"
func (kb KeyBinding) Format() string {
	if kb.Key == "" || kb.Description == "" {
		return ""
	}
	return "[" + kb.Key + "] " + kb.Description
}

// Common key bindings for reuse
var (
	QuitBinding     = KeyBinding{Key: "ctrl+c", Description: "quit"}
	BackBinding     = KeyBinding{Key: "esc", Description: "back"}
	SubmitBinding   = KeyBinding{Key: "enter", Description: "submit"}
	TabBinding      = KeyBinding{Key: "tab", Description: "next field"}
	NavBinding      = KeyBinding{Key: "←/→", Description: "menu"}
	OpenBinding     = KeyBinding{Key: "enter", Description: "open"}
	RowsBinding     = KeyBinding{Key: "↑/↓", Description: "rows"}
	RefreshBinding  = KeyBinding{Key: "r", Description: "reload"}
	DeleteBinding   = KeyBinding{Key: "d", Description: "delete"}
	ConfirmBinding  = KeyBinding{Key: "y", Description: "yes"}
	DeclineBinding  = KeyBinding{Key: "n", Description: "no"}
	RegisterBinding = KeyBinding{Key: "ctrl+r", Description: "register"}
	LoginBinding    = KeyBinding{Key: "ctrl+l", Description: "login"}
)
