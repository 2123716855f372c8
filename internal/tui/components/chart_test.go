package components

import (
	"strings"
	"testing"

	"kharch/internal/tui/theme"
)

func TestSparklineOneCellPerValue(t *testing.T) {
	theme.SetActive("flexoki-dark")

	vals := []float64{0, 10, 50, 100, 25}
	out := Sparkline(vals, theme.Active.Blue)

	cells := 0
	for _, r := range out {
		for _, b := range sparkBlocks {
			if r == b {
				cells++
				break
			}
		}
	}
	if cells != len(vals) {
		t.Errorf("got %d block cells, want %d", cells, len(vals))
	}
}

func TestBarChartFallsBackWhenTiny(t *testing.T) {
	theme.SetActive("flexoki-dark")

	vals := []float64{1, 2, 3}
	spark := Sparkline(vals, theme.Active.Blue)
	if got := BarChart(vals, nil, theme.Active.Blue, 10, 2); got != spark {
		t.Error("small area should render as a sparkline")
	}
}

func TestBarChartHasAxis(t *testing.T) {
	theme.SetActive("terminal")

	out := BarChart([]float64{100, 5000, 900}, []string{"Jan", "Feb", "Mar"}, theme.Active.Blue, 40, 6)
	if !strings.Contains(out, "└") || !strings.Contains(out, "│") {
		t.Error("chart missing axis characters")
	}
	if !strings.Contains(out, "Jan") {
		t.Error("chart missing x labels")
	}
	if !strings.Contains(out, "5k") {
		t.Errorf("chart missing y ceiling label:\n%s", out)
	}
}

func TestRoundUpNice(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{1, 1},
		{3, 5},
		{5, 5},
		{7, 10},
		{900, 1000},
		{1200, 2000},
		{4800, 5000},
	}
	for _, tt := range tests {
		if got := roundUpNice(tt.in); got != tt.want {
			t.Errorf("roundUpNice(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAxisLabel(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{500, "500"},
		{1000, "1k"},
		{2500, "2.5k"},
		{1000000, "1M"},
	}
	for _, tt := range tests {
		if got := axisLabel(tt.in); got != tt.want {
			t.Errorf("axisLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
