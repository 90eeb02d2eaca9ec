package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Label renders an info line key such as "CPU:"
func Label(name string) string {
	return labelStyle.Render(name + ":")
}

// ColorPercentage colours usage: green below 40, yellow below 80, red above
func ColorPercentage(percentage float64) string {
	text := formatPercent(percentage)
	switch {
	case percentage < 40:
		return greenStyle.Render(text)
	case percentage < 80:
		return yellowStyle.Render(text)
	default:
		return redStyle.Render(text)
	}
}

// ColorPercentageInverse colours remaining charge: red below 30,
// yellow below 70, green above
func ColorPercentageInverse(percentage float64) string {
	text := formatPercent(percentage)
	switch {
	case percentage < 30:
		return redStyle.Render(text)
	case percentage < 70:
		return yellowStyle.Render(text)
	default:
		return greenStyle.Render(text)
	}
}

func formatPercent(percentage float64) string {
	return fmt.Sprintf("%s%%", formatFloat(percentage))
}
