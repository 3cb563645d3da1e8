package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel frames lines in the theme border with an optional title line.
func Panel(title string, lines []string, width int) string {
	t := Current()
	box := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if width > 4 {
		box = box.Width(width - 2)
	}
	body := strings.Join(lines, "\n")
	if title != "" {
		body = t.Title.Render(title) + "\n" + body
	}
	return box.Render(body)
}
