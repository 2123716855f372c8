package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kharch/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagEditItem     string
	flagEditPrice    float64
	flagEditCategory string
	flagEditMonth    string
	flagEditDate     string
	flagEditRemarks  string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an existing expense",
	Long:  "Edit fields of an expense by id. Only the flags you pass are changed.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditItem, "item", "", "New item name")
	editCmd.Flags().Float64Var(&flagEditPrice, "price", 0, "New price")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category id")
	editCmd.Flags().StringVar(&flagEditMonth, "for-month", "", "New month")
	editCmd.Flags().StringVar(&flagEditDate, "date", "", "New date, YYYY-MM-DD")
	editCmd.Flags().StringVarP(&flagEditRemarks, "remarks", "r", "", "New note")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid expense id %q", args[0])
	}

	ls, db, _, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	existing, err := ls.Get(id)
	if err != nil {
		return err
	}

	d := model.Draft{
		Item:     existing.Item,
		Category: existing.Category,
		Price:    existing.Price,
		Date:     existing.Date,
		Month:    existing.Month,
		Remarks:  existing.Remarks,
	}
	if cmd.Flags().Changed("item") {
		d.Item = flagEditItem
	}
	if cmd.Flags().Changed("price") {
		d.Price = flagEditPrice
	}
	if cmd.Flags().Changed("category") {
		d.Category = flagEditCategory
	}
	if cmd.Flags().Changed("for-month") {
		d.Month = strings.ToLower(strings.TrimSpace(flagEditMonth))
	}
	if cmd.Flags().Changed("date") {
		t, err := time.Parse("2006-01-02", flagEditDate)
		if err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", flagEditDate)
		}
		d.Date = t
	}
	if cmd.Flags().Changed("remarks") {
		d.Remarks = flagEditRemarks
	}

	updated, err := ls.Update(id, d)
	if err != nil {
		var pe *model.PersistenceError
		if !errors.As(err, &pe) {
			return err
		}
		warnIfSaveFailed(err)
	}

	fmt.Printf("  Updated expense %d (%s)\n", updated.ID, updated.Item)
	return nil
}
