package tui

import (
	"fmt"
	"strings"

	"kharch/internal/cli"
	"kharch/internal/model"
	"kharch/internal/tui/components"
)

func (a App) renderOverviewTab(cw int) string {
	sum := a.summary
	cur := a.cfg.General.Currency
	var b strings.Builder

	// Row 1: Metric cards
	rangeDelta := ""
	if sum.HasRange {
		rangeDelta = fmt.Sprintf("%s – %s",
			cli.FormatAmount(sum.MinPrice, cur), cli.FormatAmount(sum.MaxPrice, cur))
	}

	cards := []components.Metric{
		{Label: "All-time", Value: cli.FormatAmount(sum.AllTimeTotal, cur)},
		{Label: sum.PeriodLabel, Value: cli.FormatAmount(sum.PeriodTotal, cur),
			Sub: fmt.Sprintf("%s/day", cli.FormatAmount(sum.AverageDaily, cur))},
		{Label: "Expenses", Value: cli.FormatNumber(int64(sum.Count)),
			Sub: fmt.Sprintf("avg %s", cli.FormatAmount(sum.AveragePerExpense, cur))},
		{Label: "Range", Value: rangeDelta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Budget bar for the active month
	bs := a.budget
	var budgetBody string
	if bs.Band == model.BandUnset {
		budgetBody = "No budget set for " + model.DisplayMonth(bs.Month) + ". Press b then s to set one."
	} else {
		barW := components.CardInnerWidth(cw) - 24
		if barW < 10 {
			barW = 10
		}
		budgetBody = components.BudgetBar(model.DisplayMonth(bs.Month), bs.Percent, 10, barW) + "\n" +
			fmt.Sprintf("%s of %s · %s",
				cli.FormatAmount(bs.Spent, cur),
				cli.FormatAmount(bs.Budget, cur),
				bs.Band)
	}
	b.WriteString(components.ContentCard("Budget", budgetBody, cw))
	b.WriteString("\n")

	// Row 3: category split + recent expenses side by side
	halves := components.LayoutRow(cw, 2)

	catCard := components.ContentCard("By Category",
		a.renderCategoryBars(components.CardInnerWidth(halves[0])), halves[0])

	recentCard := components.ContentCard("Recent",
		a.renderRecentList(components.CardInnerWidth(halves[1]), 8), halves[1])

	if a.isCompactLayout() {
		b.WriteString(catCard)
		b.WriteString("\n")
		b.WriteString(recentCard)
	} else {
		b.WriteString(components.CardRow([]string{catCard, recentCard}))
	}

	return b.String()
}

func (a App) renderCategoryBars(innerW int) string {
	if len(a.byCat) == 0 {
		return "No expenses in this period."
	}

	cur := a.cfg.General.Currency
	reg := a.ls.Categories()

	var max float64
	for _, ct := range a.byCat {
		if ct.Total > max {
			max = ct.Total
		}
	}

	barW := innerW - 40
	if barW < 8 {
		barW = 8
	}

	var b strings.Builder
	shown := a.byCat
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for _, ct := range shown {
		cat := reg.Resolve(ct.Category)
		fill := 0
		if max > 0 {
			fill = int(ct.Total / max * float64(barW))
		}
		fmt.Fprintf(&b, "%-24s %10s %s\n",
			cat.Emoji+" "+truncStr(cat.Name, 20),
			cli.FormatAmount(ct.Total, cur),
			strings.Repeat("█", fill))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a App) renderRecentList(innerW, n int) string {
	if len(a.filtered) == 0 {
		return "Nothing yet. Press a to add an expense."
	}

	cur := a.cfg.General.Currency
	reg := a.ls.Categories()

	recent := a.filtered
	if len(recent) > n {
		recent = recent[:n]
	}

	itemW := innerW - 16
	if itemW < 12 {
		itemW = 12
	}

	var b strings.Builder
	for _, e := range recent {
		cat := reg.Resolve(e.Category)
		fmt.Fprintf(&b, "%s %-*s %10s\n",
			cat.Emoji,
			itemW, truncStr(e.Item, itemW),
			cli.FormatAmount(e.Price, cur))
	}
	return strings.TrimRight(b.String(), "\n")
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
