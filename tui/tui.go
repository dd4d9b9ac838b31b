package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ems-cli/tui/controller"
)

// model adapts the controller to tea.Model
type model struct {
	controller *controller.Controller
}

func (m model) Init() tea.Cmd {
	return m.controller.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.controller, cmd = m.controller.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.controller.View()
}

// NewModel wraps a controller built from opts
func NewModel(opts controller.Options) tea.Model {
	return model{controller: controller.New(opts)}
}

// Run starts the full-screen application and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, opts controller.Options) error {
	opts.Context = ctx
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
