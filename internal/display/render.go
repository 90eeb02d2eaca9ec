package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const infoIndent = "  "

// Render prints the logo column beside the info column. Every logo line
// is padded to the widest line plus padding so the info column stays
// aligned. Without a logo the info lines are printed on their own.
func Render(w io.Writer, logo, info []string, distroID string, padding int) error {
	out := bufio.NewWriter(w)

	if len(logo) == 0 {
		for _, line := range info {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return fmt.Errorf("failed to write info line: %w", err)
			}
		}
		return out.Flush()
	}

	if padding < 0 {
		padding = 0
	}

	width := 0
	for _, line := range logo {
		width = max(width, lipgloss.Width(line))
	}
	column := width + padding

	rows := max(len(logo), len(info))
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(logo) {
			left = logo[i]
		}
		if i < len(info) {
			right = infoIndent + info[i]
		}

		gap := strings.Repeat(" ", column-lipgloss.Width(left))
		line := strings.TrimRight(colorLogoLine(distroID, left)+gap+right, " ")
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output line: %w", err)
		}
	}
	return out.Flush()
}
