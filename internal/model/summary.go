package model

// PeriodSummary holds the headline aggregates for the active filter.
type PeriodSummary struct {
	AllTimeTotal float64 // entire ledger, ignores all filters
	PeriodTotal  float64 // selected month, or current month when "all"
	PeriodLabel  string  // display label for PeriodTotal
	Count        int     // filtered expense count

	AveragePerExpense float64
	AverageDaily      float64
	DaysInPeriod      int

	MinPrice float64
	MaxPrice float64
	HasRange bool // false when the filtered set is empty
}

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category string
	Total    float64
}

// MonthTotal is the summed spend for one canonical month.
type MonthTotal struct {
	Month string
	Total float64
}
