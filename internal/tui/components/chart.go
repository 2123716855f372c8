package components

import (
	"fmt"
	"math"
	"strings"

	"kharch/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders one row of block characters scaled to the peak
// value. A zero series renders as a flat baseline.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		if idx < 0 {
			idx = 0
		}
		if idx > len(sparkBlocks)-1 {
			idx = len(sparkBlocks) - 1
		}
		b.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(b.String())
}

// BarChart renders a vertical column chart with a y axis. Columns use
// partial block characters for sub-row precision. Falls back to a
// sparkline when the area is too small for axes.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}
	ceiling := roundUpNice(peak)

	topLabel := axisLabel(ceiling)
	midLabel := axisLabel(ceiling / 2)
	yLabelW := len(topLabel)
	if len(midLabel) > yLabelW {
		yLabelW = len(midLabel)
	}
	yLabelW++

	plotW := width - yLabelW - 1
	if plotW < 8 {
		plotW = 8
	}

	n := len(values)
	gap := 1
	colW := (plotW - (n-1)*gap) / n
	if colW < 1 {
		colW = 1
		gap = 0
	}
	if colW > 5 {
		colW = 5
	}
	axisLen := n*colW + (n-1)*gap

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	gapStyle := lipgloss.NewStyle().Background(t.Surface)

	// Height of each column in eighths of a row.
	eighths := make([]int, n)
	for i, v := range values {
		e := int(math.Round(v / ceiling * float64(height) * 8))
		if v > 0 && e == 0 {
			e = 1
		}
		eighths[i] = e
	}

	var b strings.Builder
	midRow := (height + 1) / 2
	for row := height; row >= 1; row-- {
		switch row {
		case height:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, topLabel)))
		case midRow:
			b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, midLabel)))
		default:
			b.WriteString(gapStyle.Render(strings.Repeat(" ", yLabelW)))
		}
		b.WriteString(axisStyle.Render("│"))

		floor := (row - 1) * 8
		for i := 0; i < n; i++ {
			if i > 0 && gap > 0 {
				b.WriteString(gapStyle.Render(" "))
			}
			above := eighths[i] - floor
			var cell string
			switch {
			case above >= 8:
				cell = strings.Repeat("█", colW)
			case above >= 1:
				cell = strings.Repeat(string(sparkBlocks[above-1]), colW)
			default:
				cell = strings.Repeat(" ", colW)
			}
			if above >= 1 {
				b.WriteString(barStyle.Render(cell))
			} else {
				b.WriteString(gapStyle.Render(cell))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(gapStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(xAxisRow(labels, colW, gap, axisLen)))
	}

	return b.String()
}

// xAxisRow lays the column labels under their columns, dropping any
// label that would collide with the previous one.
func xAxisRow(labels []string, colW, gap, axisLen int) string {
	row := make([]byte, axisLen)
	for i := range row {
		row[i] = ' '
	}
	lastEnd := -2
	for i, lbl := range labels {
		pos := i * (colW + gap)
		if pos <= lastEnd+1 {
			continue
		}
		end := pos + len(lbl)
		if end > axisLen {
			if axisLen-pos < 2 {
				break
			}
			lbl = lbl[:axisLen-pos]
			end = axisLen
		}
		copy(row[pos:end], lbl)
		lastEnd = end
	}
	return strings.TrimRight(string(row), " ")
}

// roundUpNice rounds v up to 1, 2, or 5 times a power of ten so the
// axis ceiling lands on a readable number.
func roundUpNice(v float64) float64 {
	base := math.Pow(10, math.Floor(math.Log10(v)))
	switch {
	case v <= base:
		return base
	case v <= 2*base:
		return 2 * base
	case v <= 5*base:
		return 5 * base
	default:
		return 10 * base
	}
}

func axisLabel(v float64) string {
	switch {
	case v >= 1e6:
		return trimZero(v/1e6) + "M"
	case v >= 1e3:
		return trimZero(v/1e3) + "k"
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func trimZero(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
