// Package components provides the reusable widgets of the dashboard.
package components

import (
	"kharch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one headline figure shown as a small card: a label, the
// value, and an optional secondary line underneath.
type Metric struct {
	Label string
	Value string
	Sub   string
}

// LayoutRow splits totalWidth into n column widths summing exactly to
// totalWidth; the leftmost columns absorb the division remainder.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
	}
	for i := 0; i < totalWidth%n; i++ {
		widths[i]++
	}
	return widths
}

func cardFrame(outerWidth int) lipgloss.Style {
	t := theme.Active
	inner := outerWidth - 2
	if inner < 10 {
		inner = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(inner).
		Padding(0, 1)
}

// MetricCard renders one metric in a bordered card of the given outer
// width.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(m.Value)
	if m.Sub != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Sub)
	}

	return cardFrame(outerWidth).Render(body)
}

// MetricCardRow renders metrics side by side across totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}
	widths := LayoutRow(totalWidth, len(metrics))
	cards := make([]string, len(metrics))
	for i, m := range metrics {
		cards[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// ContentCard renders arbitrary body text in a bordered card with an
// optional bold title line.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) +
			"\n" + body
	}
	return cardFrame(outerWidth).Render(content)
}

// CardRow joins pre-rendered cards horizontally, top-aligned.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth is the usable text width inside a card of the given
// outer width, after the border and padding.
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
