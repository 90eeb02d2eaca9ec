package display

import (
	"embed"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//go:embed ascii/*.txt
var logoFS embed.FS

// logoColors maps an os-release ID to the colour its logo is drawn in
var logoColors = map[string]lipgloss.Color{
	"arch":      lipgloss.Color("#1793d1"),
	"ubuntu":    lipgloss.Color("#e95420"),
	"debian":    lipgloss.Color("#d70a53"),
	"fedora":    lipgloss.Color("#3c6eb4"),
	"manjaro":   lipgloss.Color("#35bf5c"),
	"linuxmint": lipgloss.Color("#87cf3e"),
	"nixos":     lipgloss.Color("#7ebae4"),
	"macos":     lipgloss.Color("#a2aaad"),
}

// LogoLines returns the raw logo for a distribution ID, or nil when there
// is none. Trailing blank lines are dropped.
func LogoLines(distroID string) []string {
	if _, ok := logoColors[distroID]; !ok {
		return nil
	}
	data, err := logoFS.ReadFile("ascii/" + distroID + ".txt")
	if err != nil {
		return nil
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// colorLogoLine paints one logo line in the distribution colour
func colorLogoLine(distroID, line string) string {
	color, ok := logoColors[distroID]
	if !ok {
		return line
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(line)
}
