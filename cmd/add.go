package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kharch/internal/cli"
	"kharch/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagAddCategory string
	flagAddMonth    string
	flagAddDate     string
	flagAddRemarks  string
)

var addCmd = &cobra.Command{
	Use:   "add <item> <price>",
	Short: "Record a new expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "miscellaneous", "Category id")
	addCmd.Flags().StringVar(&flagAddMonth, "for-month", "", "Month the expense belongs to (default: current)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Expense date, YYYY-MM-DD (default: today)")
	addCmd.Flags().StringVarP(&flagAddRemarks, "remarks", "r", "", "Optional note")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid price %q", args[1])
	}

	now := time.Now()
	date := now
	if flagAddDate != "" {
		date, err = time.Parse("2006-01-02", flagAddDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagAddDate)
		}
	}

	month := strings.ToLower(strings.TrimSpace(flagAddMonth))
	if month == "" {
		month = model.CurrentMonth(date)
	}

	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	e, err := ls.Add(model.Draft{
		Item:     args[0],
		Category: flagAddCategory,
		Price:    price,
		Date:     date,
		Month:    month,
		Remarks:  flagAddRemarks,
	})
	if err != nil {
		var pe *model.PersistenceError
		if !errors.As(err, &pe) {
			return err
		}
		warnIfSaveFailed(err)
	}

	cat := ls.Categories().Resolve(e.Category)
	fmt.Printf("  Added %s %s for %s (%s, id %d)\n",
		cat.Emoji, e.Item,
		cli.FormatAmount(e.Price, cfg.General.Currency),
		model.DisplayMonth(e.Month), e.ID)
	return nil
}
