package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// GlobalKeyMap defines key bindings the controller handles before screens do
type GlobalKeyMap struct {
	Quit         key.Binding
	QuitOutside  key.Binding
	Back         key.Binding
	NavLeft      key.Binding
	NavRight     key.Binding
	NavSelect    key.Binding
	OpenRegister key.Binding
	OpenLogin    key.Binding
}

// DefaultGlobalKeys returns the default global key bindings
func DefaultGlobalKeys() GlobalKeyMap {
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitOutside: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NavLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		NavRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		NavSelect: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		OpenRegister: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "register"),
		),
		OpenLogin: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "login"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NavLeft, k.NavRight, k.NavSelect, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap
func (k GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NavLeft, k.NavRight, k.NavSelect},
		{k.OpenRegister, k.OpenLogin},
		{k.Back, k.Quit, k.QuitOutside},
	}
}

// Handler provides a centralized way to handle common key patterns
type Handler struct {
	keys GlobalKeyMap
}

// NewHandler creates a new key handler with default bindings
func NewHandler() *Handler {
	return &Handler{
		keys: DefaultGlobalKeys(),
	}
}

// Keys returns the bindings for help rendering
func (h *Handler) Keys() GlobalKeyMap {
	return h.keys
}

// IsQuit reports a quit request. Plain q only counts outside text forms.
func (h *Handler) IsQuit(msg tea.KeyMsg, inForm bool) bool {
	if key.Matches(msg, h.keys.Quit) {
		return true
	}
	return !inForm && key.Matches(msg, h.keys.QuitOutside)
}

// IsBack returns true if the key message is a back command
func (h *Handler) IsBack(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.Back)
}

// IsNav reports keys owned by the navbar on non-form screens
func (h *Handler) IsNav(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.NavLeft, h.keys.NavRight, h.keys.NavSelect)
}

// IsOpenRegister returns true for the register shortcut
func (h *Handler) IsOpenRegister(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.OpenRegister)
}

// IsOpenLogin returns true for the login shortcut
func (h *Handler) IsOpenLogin(msg tea.KeyMsg) bool {
	return key.Matches(msg, h.keys.OpenLogin)
}
