package model

// Band classifies budget consumption for a month.
type Band int

// Band thresholds are fixed design constants: Warning begins at 80%
// of budget, OverBudget at 100%.
const (
	BandUnset Band = iota
	BandGood
	BandWarning
	BandOverBudget
)

func (b Band) String() string {
	switch b {
	case BandGood:
		return "Within Budget"
	case BandWarning:
		return "Almost There"
	case BandOverBudget:
		return "Over Budget!"
	default:
		return "No Budget Set"
	}
}

// BudgetStatus holds the budget picture for one month.
type BudgetStatus struct {
	Month     string  // canonical month key the status applies to
	Budget    float64 // 0 means no budget set
	Spent     float64 // full-ledger total for the month
	Remaining float64 // Budget - Spent (negative when over)
	Percent   float64 // Spent/Budget*100, 0 when no budget
	Band      Band
}
