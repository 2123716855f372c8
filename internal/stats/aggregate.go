// Package stats computes derived aggregates over ledger snapshots.
// Every function is pure: it takes slices and a clock value and never
// touches the store.
package stats

import (
	"time"

	"kharch/internal/model"
	"kharch/internal/query"
)

// TotalAllTime sums every expense in the full ledger, ignoring all
// filters.
func TotalAllTime(ledger []model.Expense) float64 {
	var sum float64
	for _, e := range ledger {
		sum += e.Price
	}
	return sum
}

// MonthTotalOf sums the full-ledger spend for one canonical month.
func MonthTotalOf(ledger []model.Expense, month string) float64 {
	var sum float64
	for _, e := range ledger {
		if e.Month == month {
			sum += e.Price
		}
	}
	return sum
}

// PeriodTotal computes the headline total for the active month filter.
// With a named month it is the sum of the filtered set. With "all" the
// table shows everything but the headline stays monthly: it falls back
// to the full-ledger total for the current calendar month.
func PeriodTotal(ledger, filtered []model.Expense, filterMonth string, now time.Time) (float64, string) {
	if filterMonth == "" || filterMonth == query.MonthAll {
		cm := model.CurrentMonth(now)
		return MonthTotalOf(ledger, cm), "This Month"
	}
	var sum float64
	for _, e := range filtered {
		sum += e.Price
	}
	return sum, model.DisplayMonth(filterMonth)
}

// AveragePerExpense spreads the period's headline total over the
// filtered count, 0 for an empty set. Under the "all" filter the
// total is the current month's while the count covers everything
// shown; the mismatch is intentional and mirrors the headline.
func AveragePerExpense(periodTotal float64, filteredCount int) float64 {
	if filteredCount == 0 {
		return 0
	}
	return periodTotal / float64(filteredCount)
}

// DaysInPeriod returns the divisor for the daily average. Named
// months use a fixed-length table (February always 28); the "all"
// filter uses the real day count of the current calendar month.
func DaysInPeriod(filterMonth string, now time.Time) int {
	if filterMonth == "" || filterMonth == query.MonthAll {
		return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	}
	return model.MonthDays(filterMonth)
}

// AverageDaily spreads the period total over the period's day count.
func AverageDaily(periodTotal float64, filterMonth string, now time.Time) float64 {
	return periodTotal / float64(DaysInPeriod(filterMonth, now))
}

// PriceRange returns the extremes of the filtered set. ok is false
// when the set is empty.
func PriceRange(filtered []model.Expense) (min, max float64, ok bool) {
	if len(filtered) == 0 {
		return 0, 0, false
	}
	min, max = filtered[0].Price, filtered[0].Price
	for _, e := range filtered[1:] {
		if e.Price < min {
			min = e.Price
		}
		if e.Price > max {
			max = e.Price
		}
	}
	return min, max, true
}

// Summarize bundles the headline aggregates for the active filter.
func Summarize(ledger, filtered []model.Expense, filterMonth string, now time.Time) model.PeriodSummary {
	total, label := PeriodTotal(ledger, filtered, filterMonth, now)
	min, max, ok := PriceRange(filtered)
	return model.PeriodSummary{
		AllTimeTotal:      TotalAllTime(ledger),
		PeriodTotal:       total,
		PeriodLabel:       label,
		Count:             len(filtered),
		AveragePerExpense: AveragePerExpense(total, len(filtered)),
		AverageDaily:      AverageDaily(total, filterMonth, now),
		DaysInPeriod:      DaysInPeriod(filterMonth, now),
		MinPrice:          min,
		MaxPrice:          max,
		HasRange:          ok,
	}
}

// BudgetFor resolves the budget picture for the month the filter
// implies: the named month, or the current calendar month under "all".
// Spent is always computed over the full ledger.
func BudgetFor(ledger []model.Expense, budgets map[string]float64, filterMonth string, now time.Time) model.BudgetStatus {
	month := filterMonth
	if month == "" || month == query.MonthAll {
		month = model.CurrentMonth(now)
	}
	st := model.BudgetStatus{
		Month: month,
		Spent: MonthTotalOf(ledger, month),
	}
	budget, ok := budgets[month]
	if !ok || budget <= 0 {
		st.Band = model.BandUnset
		return st
	}
	st.Budget = budget
	st.Remaining = budget - st.Spent
	st.Percent = st.Spent / budget * 100
	switch {
	case st.Percent >= 100:
		st.Band = model.BandOverBudget
	case st.Percent >= 80:
		st.Band = model.BandWarning
	default:
		st.Band = model.BandGood
	}
	return st
}

// MonthlyTotals returns totals for all twelve months in calendar
// order, including zero months, over the given records.
func MonthlyTotals(records []model.Expense) []model.MonthTotal {
	byMonth := make(map[string]float64, 12)
	for _, e := range records {
		byMonth[e.Month] += e.Price
	}
	out := make([]model.MonthTotal, 0, 12)
	for _, m := range model.Months {
		out = append(out, model.MonthTotal{Month: m, Total: byMonth[m]})
	}
	return out
}

// CategoryTotals sums records per category, ordered by first
// appearance in the input.
func CategoryTotals(records []model.Expense) []model.CategoryTotal {
	idx := map[string]int{}
	var out []model.CategoryTotal
	for _, e := range records {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, model.CategoryTotal{Category: e.Category})
		}
		out[i].Total += e.Price
	}
	return out
}

// TopN returns the n highest-priced records. The underlying sort is
// stable, so equal prices keep input order. Input is not mutated.
func TopN(records []model.Expense, n int) []model.Expense {
	sorted := append([]model.Expense(nil), records...)
	query.SortByPriceDesc(sorted)
	if n > len(sorted) {
		n = len(sorted)
	}
	if n < 0 {
		n = 0
	}
	return sorted[:n]
}
