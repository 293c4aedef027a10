package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorOrange  = lipgloss.Color("#FFB86C")
	colorPurple  = lipgloss.Color("#BD93F9")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")
	colorPanel   = lipgloss.Color("#44475A")
	colorBlack   = lipgloss.Color("#282A36")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle  = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	headerStyle = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorGray)
	idleStyle   = lipgloss.NewStyle().Background(colorPanel).Foreground(colorGray)
)

// processPalette colors Gantt cells; pids cycle through it.
var processPalette = []lipgloss.Color{colorCyan, colorGreen, colorMagenta, colorOrange, colorPurple, colorYellow, colorRed}

func processStyle(pid int) lipgloss.Style {
	if pid < 0 {
		return idleStyle
	}
	return lipgloss.NewStyle().
		Background(processPalette[pid%len(processPalette)]).
		Foreground(colorBlack).
		Bold(true)
}
