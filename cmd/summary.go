package cmd

import (
	"fmt"
	"time"

	"kharch/internal/cli"
	"kharch/internal/model"
	"kharch/internal/query"
	"kharch/internal/stats"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary for the active filter",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	all := ls.Expenses()
	if len(all) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Println("  Add one with `kharch add`.")
		return nil
	}

	f := activeFilter(cfg)
	filtered := query.Apply(all, f)
	now := time.Now()
	sum := stats.Summarize(all, filtered, f.Month, now)
	cur := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %s", periodHeading(f))))
	fmt.Println()

	rows := [][]string{
		{"All-time Total", cli.FormatAmount(sum.AllTimeTotal, cur)},
		{sum.PeriodLabel, cli.FormatAmount(sum.PeriodTotal, cur)},
		{"Expenses Shown", cli.FormatNumber(int64(sum.Count))},
		{"---"},
		{"Avg per Expense", cli.FormatAmount(sum.AveragePerExpense, cur)},
		{fmt.Sprintf("Avg per Day (%dd)", sum.DaysInPeriod), cli.FormatAmount(sum.AverageDaily, cur)},
	}
	if sum.HasRange {
		rows = append(rows,
			[]string{"Cheapest", cli.FormatAmount(sum.MinPrice, cur)},
			[]string{"Most Expensive", cli.FormatAmount(sum.MaxPrice, cur)},
		)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	bs := stats.BudgetFor(all, ls.Budgets(), f.Month, now)
	fmt.Println()
	printBudgetLine(bs, cur)

	return nil
}

func periodHeading(f query.Filter) string {
	if f.IsAll() {
		return "All Months"
	}
	return model.DisplayMonth(f.Month)
}

func printBudgetLine(bs model.BudgetStatus, cur string) {
	if bs.Band == model.BandUnset {
		fmt.Printf("  %s for %s. Set one with `kharch budget set %s <amount>`.\n",
			bs.Band, model.DisplayMonth(bs.Month), bs.Month)
		return
	}

	label := bs.Band.String()
	switch bs.Band {
	case model.BandGood:
		label = cli.Good(label)
	case model.BandWarning:
		label = cli.Warn(label)
	case model.BandOverBudget:
		label = cli.Bad(label)
	}

	fmt.Printf("  %s budget: %s spent of %s (%s)\n",
		model.DisplayMonth(bs.Month),
		cli.FormatAmount(bs.Spent, cur),
		cli.FormatAmount(bs.Budget, cur),
		label,
	)
	fmt.Printf("  %s\n", cli.RenderProgressBar(bs.Percent, 30))
	if bs.Remaining >= 0 {
		fmt.Printf("  %s remaining\n", cli.FormatAmount(bs.Remaining, cur))
	} else {
		fmt.Printf("  %s over\n", cli.FormatAmount(-bs.Remaining, cur))
	}
}
