package query

import (
	"testing"
	"time"

	"kharch/internal/model"
)

func exp(item, month string, price float64, remarks string) model.Expense {
	return model.Expense{Item: item, Month: month, Price: price, Remarks: remarks}
}

var sample = []model.Expense{
	exp("Milk", "january", 30, "daily"),
	exp("Rent", "january", 5000, ""),
	exp("Bus pass", "february", 500, "monthly PASS"),
	exp("Coffee", "march", 120, ""),
}

func TestApplyMonth(t *testing.T) {
	got := Apply(sample, Filter{Month: "january"})
	if len(got) != 2 {
		t.Fatalf("january filter: got %d, want 2", len(got))
	}

	for _, m := range []string{"", MonthAll} {
		if got := Apply(sample, Filter{Month: m}); len(got) != len(sample) {
			t.Errorf("month %q: got %d, want all %d", m, len(got), len(sample))
		}
	}
}

func TestApplySearchCaseInsensitive(t *testing.T) {
	if got := Apply(sample, Filter{Search: "milk"}); len(got) != 1 || got[0].Item != "Milk" {
		t.Errorf("search milk = %v", got)
	}
	// Remarks participate in the text match too.
	if got := Apply(sample, Filter{Search: "pass"}); len(got) != 1 || got[0].Item != "Bus pass" {
		t.Errorf("search pass = %v", got)
	}
}

func TestApplyPriceBoundsInclusive(t *testing.T) {
	got := Apply(sample, Filter{MinPrice: 120, MaxPrice: 500})
	if len(got) != 2 {
		t.Fatalf("price band: got %d, want 2", len(got))
	}
	// MaxPrice 0 means unbounded above.
	if got := Apply(sample, Filter{MinPrice: 1000}); len(got) != 1 || got[0].Item != "Rent" {
		t.Errorf("min only = %v", got)
	}
}

func TestApplyConjunctive(t *testing.T) {
	// A record must pass every predicate, not just one.
	got := Apply(sample, Filter{Month: "january", Search: "milk", MinPrice: 100})
	if len(got) != 0 {
		t.Errorf("conjunctive filter = %v, want empty", got)
	}

	got = Apply(sample, Filter{Month: "january", MinPrice: 100})
	if len(got) != 1 || got[0].Item != "Rent" {
		t.Errorf("month+price = %v", got)
	}
}

func TestSortByCreatedDesc(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	es := []model.Expense{
		{Item: "old", Created: base},
		{Item: "new", Created: base.Add(2 * time.Hour)},
		{Item: "mid", Created: base.Add(time.Hour)},
	}
	SortByCreatedDesc(es)
	if es[0].Item != "new" || es[2].Item != "old" {
		t.Errorf("order = %v %v %v", es[0].Item, es[1].Item, es[2].Item)
	}
}

func TestSortByPriceDescStable(t *testing.T) {
	es := []model.Expense{
		{Item: "a", Price: 10},
		{Item: "b", Price: 10},
		{Item: "c", Price: 20},
	}
	SortByPriceDesc(es)
	if es[0].Item != "c" || es[1].Item != "a" || es[2].Item != "b" {
		t.Errorf("order = %v %v %v", es[0].Item, es[1].Item, es[2].Item)
	}
}
