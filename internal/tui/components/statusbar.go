package components

import (
	"fmt"

	"kharch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. filterLabel names the
// active month filter, count the number of expenses shown.
func RenderStatusBar(width int, filterLabel string, count int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [a]dd  [q]uit"
	right := fmt.Sprintf("%s · %d expenses ", filterLabel, count)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
