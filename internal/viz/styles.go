package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// keyHints renders "key desc" pairs in the theme's accent and muted colours.
func keyHints(hints [][2]string, t Theme) string {
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	desc := lipgloss.NewStyle().Foreground(t.Muted)
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h[0]) + desc.Render(" "+h[1])
	}
	return strings.Join(parts, "  ")
}
