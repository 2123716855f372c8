package cmd

import (
	"errors"
	"fmt"
	"strings"

	"kharch/internal/cli"
	"kharch/internal/model"
	"kharch/internal/stats"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cat"},
	Short:   "List available categories",
	RunE:    runCategories,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a custom category",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a custom category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRemove,
}

func init() {
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesRemoveCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	totals := map[string]float64{}
	for _, ct := range stats.CategoryTotals(ls.Expenses()) {
		totals[ct.Category] = ct.Total
	}

	cur := cfg.General.Currency
	rows := [][]string{}
	for _, c := range ls.Categories().All() {
		kind := "built-in"
		if strings.HasPrefix(c.ID, "custom_") {
			kind = "custom"
		}
		spent := "-"
		if t, ok := totals[c.ID]; ok {
			spent = cli.FormatAmount(t, cur)
		}
		rows = append(rows, []string{c.ID, c.Emoji + " " + c.Name, kind, spent})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Kind", "All-time"},
		Rows:    rows,
	}))
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	ls, db, _, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := ls.AddCustomCategory(strings.Join(args, " "))
	if err != nil {
		var pe *model.PersistenceError
		if !errors.As(err, &pe) {
			return err
		}
		warnIfSaveFailed(err)
	}

	fmt.Printf("  Added category %s %s (id %s)\n", c.Emoji, c.Name, c.ID)
	return nil
}

func runCategoriesRemove(_ *cobra.Command, args []string) error {
	ls, db, _, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ls.RemoveCustomCategory(args[0]); err != nil {
		warnIfSaveFailed(err)
	}
	fmt.Printf("  Removed category %s\n", args[0])
	return nil
}
