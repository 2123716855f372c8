// Package query filters ledger snapshots by month, text, and price.
package query

import (
	"math"
	"sort"
	"strings"

	"kharch/internal/model"
)

// MonthAll is the month filter value matching every record.
const MonthAll = "all"

// Filter holds the parameters of one query. Zero values are neutral:
// an empty Month behaves like MonthAll, an empty Search matches
// everything, and MaxPrice 0 means unbounded above.
type Filter struct {
	Month    string
	Search   string
	MinPrice float64
	MaxPrice float64
}

// IsAll reports whether the month filter matches every record.
func (f Filter) IsAll() bool {
	return f.Month == "" || f.Month == MonthAll
}

// Apply returns the expenses matching every predicate of the filter.
// Predicates are conjunctive. Result order follows the input; callers
// wanting newest-first call SortByCreatedDesc on the result.
func Apply(expenses []model.Expense, f Filter) []model.Expense {
	max := f.MaxPrice
	if max <= 0 {
		max = math.Inf(1)
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var out []model.Expense
	for _, e := range expenses {
		if !f.IsAll() && e.Month != f.Month {
			continue
		}
		if search != "" && !matchesText(e, search) {
			continue
		}
		if e.Price < f.MinPrice || e.Price > max {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesText(e model.Expense, search string) bool {
	return strings.Contains(strings.ToLower(e.Item), search) ||
		strings.Contains(strings.ToLower(e.Remarks), search)
}

// SortByCreatedDesc orders expenses newest-first, in place. The sort
// is stable so same-timestamp records keep their relative order.
func SortByCreatedDesc(expenses []model.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Created.After(expenses[j].Created)
	})
}

// SortByPriceDesc orders expenses by price, highest first, stable.
func SortByPriceDesc(expenses []model.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Price > expenses[j].Price
	})
}
