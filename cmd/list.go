package cmd

import (
	"fmt"

	"kharch/internal/cli"
	"kharch/internal/query"

	"github.com/spf13/cobra"
)

var flagListLimit int

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses matching the active filter",
	RunE:    runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "n", 0, "Show at most n expenses (0 = all)")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	f := activeFilter(cfg)
	filtered := query.Apply(ls.Expenses(), f)
	query.SortByCreatedDesc(filtered)

	if len(filtered) == 0 {
		fmt.Println("\n  No expenses match the current filter.")
		return nil
	}

	if flagListLimit > 0 && len(filtered) > flagListLimit {
		filtered = filtered[:flagListLimit]
	}

	reg := ls.Categories()
	cur := cfg.General.Currency
	var total float64
	rows := make([][]string, 0, len(filtered))
	for _, e := range filtered {
		total += e.Price
		cat := reg.Resolve(e.Category)
		rows = append(rows, []string{
			fmt.Sprint(e.ID),
			cli.FormatDate(e.Date),
			cli.Truncate(e.Item, 28),
			cat.Emoji + " " + cli.Truncate(cat.Name, 22),
			cli.FormatAmount(e.Price, cur),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s  (%d shown, %s)", periodHeading(f), len(filtered), cli.FormatAmount(total, cur)),
		Headers: []string{"ID", "Date", "Item", "Category", "Price"},
		Rows:    rows,
	}))

	return nil
}
