package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	headerStyle     = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle      = lipgloss.NewStyle().Faint(true).Width(14)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	menuBoxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	offlineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	alertStyles = map[alertKind]lipgloss.Style{
		alertInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		alertSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		alertFail:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
)
