package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete expenses by id",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
	ls, db, _, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid expense id %q", arg)
		}
		if err := ls.Delete(id); err != nil {
			warnIfSaveFailed(err)
		}
	}

	fmt.Printf("  Deleted %d expense(s)\n", len(args))
	return nil
}
