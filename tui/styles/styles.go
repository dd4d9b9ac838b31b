package styles

import (
	"github.com/charmbracelet/lipgloss"
	btable "github.com/evertras/bubble-table/table"
)

// Colors
var (
	Primary    = lipgloss.Color("#7dd3fc") // Sky
	Secondary  = lipgloss.Color("#64748b") // Slate
	Accent     = lipgloss.Color("#fbbf24") // Amber
	ErrorColor = lipgloss.Color("#ef4444") // Red
	Success    = lipgloss.Color("#22c55e") // Green
	Background = lipgloss.Color("#0f172a") // Navy
)

// Common Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Padding(0, 1)

	SelectedNavItemStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 1)

	NavBarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Secondary).
			MarginBottom(1)

	FormBoxStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 4).
			Width(60)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Accent).
			Padding(1, 3)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Width(10)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Faint(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Padding(0, 1)
)

// Table Configuration
var (
	UserColumns = []btable.Column{
		btable.NewColumn("id", "ID", 6),
		btable.NewColumn("name", "Name", 24),
		btable.NewColumn("email", "Email", 32),
		btable.NewColumn("role", "Role", 10),
	}

	EventColumns = []btable.Column{
		btable.NewColumn("title", "Title", 28),
		btable.NewColumn("date", "Date", 20),
		btable.NewColumn("location", "Location", 24),
	}
)

// Banner is shown above the login and registration forms
func Banner() string {
	return lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		Render(`
 _____                 _     __  __                                                   _
| ____|_   _____ _ __ | |_  |  \/  | __ _ _ __   __ _  __ _  ___ _ __ ___   ___ _ __ | |_
|  _| \ \ / / _ \ '_ \| __| | |\/| |/ _' | '_ \ / _' |/ _' |/ _ \ '_ ' _ \ / _ \ '_ \| __|
| |___ \ V /  __/ | | | |_  | |  | | (_| | | | | (_| | (_| |  __/ | | | | |  __/ | | | |_
|_____| \_/ \___|_| |_|\__| |_|  |_|\__,_|_| |_|\__,_|\__, |\___|_| |_| |_|\___|_| |_|\__|
                                                      |___/
`)
}

// Loading renders a one-line busy message
func Loading(text string) string {
	return LoadingStyle.Render("\n" + text)
}
