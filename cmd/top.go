package cmd

import (
	"fmt"

	"kharch/internal/cli"
	"kharch/internal/query"
	"kharch/internal/stats"

	"github.com/spf13/cobra"
)

var flagTopN int

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Largest expenses and category breakdown",
	RunE:  runTop,
}

func init() {
	topCmd.Flags().IntVarP(&flagTopN, "count", "n", 5, "Number of expenses to show")
	rootCmd.AddCommand(topCmd)
}

func runTop(_ *cobra.Command, _ []string) error {
	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	f := activeFilter(cfg)
	filtered := query.Apply(ls.Expenses(), f)
	if len(filtered) == 0 {
		fmt.Println("\n  No expenses match the current filter.")
		return nil
	}

	reg := ls.Categories()
	cur := cfg.General.Currency

	top := stats.TopN(filtered, flagTopN)
	rows := make([][]string, 0, len(top))
	for i, e := range top {
		cat := reg.Resolve(e.Category)
		rows = append(rows, []string{
			fmt.Sprintf("#%d", i+1),
			cli.Truncate(e.Item, 28),
			cat.Emoji + " " + cli.Truncate(cat.Name, 22),
			cli.FormatAmount(e.Price, cur),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Top %d  (%s)", len(top), periodHeading(f)),
		Headers: []string{"", "Item", "Category", "Price"},
		Rows:    rows,
	}))

	cats := stats.CategoryTotals(filtered)
	var max float64
	for _, ct := range cats {
		if ct.Total > max {
			max = ct.Total
		}
	}

	fmt.Println()
	fmt.Println("  By category:")
	for _, ct := range cats {
		cat := reg.Resolve(ct.Category)
		fmt.Printf("  %-30s %12s  %s\n",
			cat.Emoji+" "+cli.Truncate(cat.Name, 26),
			cli.FormatAmount(ct.Total, cur),
			cli.RenderHorizontalBar(ct.Total, max, 24),
		)
	}

	return nil
}
