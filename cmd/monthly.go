package cmd

import (
	"fmt"

	"kharch/internal/cli"
	"kharch/internal/model"
	"kharch/internal/query"
	"kharch/internal/stats"

	"github.com/spf13/cobra"
)

var monthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Month-by-month spending for the year",
	RunE:  runMonthly,
}

func init() {
	rootCmd.AddCommand(monthlyCmd)
}

func runMonthly(_ *cobra.Command, _ []string) error {
	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	all := ls.Expenses()
	if len(all) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		return nil
	}

	// Month filter intentionally ignored here; search and price still apply.
	f := activeFilter(cfg)
	f.Month = query.MonthAll
	filtered := query.Apply(all, f)

	totals := stats.MonthlyTotals(filtered)
	budgets := ls.Budgets()
	cur := cfg.General.Currency

	values := make([]float64, 0, len(totals))
	rows := make([][]string, 0, len(totals))
	for _, mt := range totals {
		values = append(values, mt.Total)
		budgetCell := "-"
		if b, ok := budgets[mt.Month]; ok {
			budgetCell = cli.FormatAmount(b, cur)
		}
		rows = append(rows, []string{
			model.DisplayMonth(mt.Month),
			cli.FormatAmount(mt.Total, cur),
			budgetCell,
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY SPENDING"))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderSparkline(values))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Spent", "Budget"},
		Rows:    rows,
	}))

	return nil
}
