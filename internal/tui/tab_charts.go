package tui

import (
	"strings"

	"kharch/internal/tui/components"
	"kharch/internal/tui/theme"
)

var monthAbbrevs = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

func (a App) renderChartsTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Full-year spending bar chart over the whole ledger
	vals := make([]float64, len(a.monthly))
	for i, mt := range a.monthly {
		vals[i] = mt.Total
	}

	chartH := 10
	if a.isCompactLayout() {
		chartH = 8
	}

	b.WriteString(components.ContentCard(
		"Spending by Month",
		components.BarChart(vals, monthAbbrevs, t.Blue, components.CardInnerWidth(cw), chartH),
		cw,
	))
	b.WriteString("\n")

	// Category chart for the filtered period
	if len(a.byCat) > 0 {
		catVals := make([]float64, 0, len(a.byCat))
		catLabels := make([]string, 0, len(a.byCat))
		reg := a.ls.Categories()
		shown := a.byCat
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for _, ct := range shown {
			catVals = append(catVals, ct.Total)
			catLabels = append(catLabels, truncStr(reg.Resolve(ct.Category).Name, 6))
		}
		b.WriteString(components.ContentCard(
			"Categories ("+a.filterLabel()+")",
			components.BarChart(catVals, catLabels, t.Accent, components.CardInnerWidth(cw), chartH),
			cw,
		))
	}

	return b.String()
}
