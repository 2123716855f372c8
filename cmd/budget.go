package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kharch/internal/cli"
	"kharch/internal/model"
	"kharch/internal/stats"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show budget status for the active month",
	RunE:  runBudgetShow,
}

var budgetSetCmd = &cobra.Command{
	Use:   "set <month> <amount>",
	Short: "Set the budget for a month",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

var budgetClearCmd = &cobra.Command{
	Use:   "clear <month>",
	Short: "Remove the budget for a month",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetClear,
}

func init() {
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetClearCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetShow(_ *cobra.Command, _ []string) error {
	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	f := activeFilter(cfg)
	bs := stats.BudgetFor(ls.Expenses(), ls.Budgets(), f.Month, time.Now())

	fmt.Println()
	printBudgetLine(bs, cfg.General.Currency)
	return nil
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	month := strings.ToLower(strings.TrimSpace(args[0]))
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ls.SetBudget(month, amount); err != nil {
		var pe *model.PersistenceError
		if !errors.As(err, &pe) {
			return err
		}
		warnIfSaveFailed(err)
	}

	fmt.Printf("  Budget for %s set to %s\n",
		model.DisplayMonth(month), cli.FormatAmount(amount, cfg.General.Currency))
	return nil
}

func runBudgetClear(_ *cobra.Command, args []string) error {
	month := strings.ToLower(strings.TrimSpace(args[0]))
	if !model.IsMonth(month) {
		return fmt.Errorf("unknown month %q", args[0])
	}

	ls, db, _, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ls.ClearBudget(month); err != nil {
		warnIfSaveFailed(err)
	}
	fmt.Printf("  Budget for %s cleared\n", model.DisplayMonth(month))
	return nil
}
