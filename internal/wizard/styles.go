package wizard

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#2563EB")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#16A34A")
	colorWarning = lipgloss.Color("#EA580C")
	colorError   = lipgloss.Color("#DC2626")
)

type styles struct {
	Title      lipgloss.Style
	StepDone   lipgloss.Style
	StepActive lipgloss.Style
	StepTodo   lipgloss.Style
	Label      lipgloss.Style
	Selected   lipgloss.Style
	Option     lipgloss.Style
	Good       lipgloss.Style
	Warn       lipgloss.Style
	Error      lipgloss.Style
	Help       lipgloss.Style
	Box        lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:      lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).MarginBottom(1),
		StepDone:   lipgloss.NewStyle().Foreground(colorPrimary),
		StepActive: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true),
		StepTodo:   lipgloss.NewStyle().Foreground(colorMuted),
		Label:      lipgloss.NewStyle().Bold(true).Width(24),
		Selected:   lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Option:     lipgloss.NewStyle(),
		Good:       lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Warn:       lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(colorError).MarginTop(1),
		Help:       lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1),
	}
}
