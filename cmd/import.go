package cmd

import (
	"fmt"
	"os"
	"time"

	"kharch/internal/csvio"

	"github.com/spf13/cobra"
)

var flagImportDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import expenses from a CSV file",
	Long: `Import expenses from CSV. A header row is detected automatically and
columns are matched by name; headerless files are read as
date, month, item, category, price, remarks. Bad rows are skipped
and reported, never aborting the import.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportDryRun, "dry-run", false, "Parse and report without saving")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	res := csvio.ParseCSV(string(data), time.Now())

	for _, d := range res.Skipped {
		fmt.Fprintf(os.Stderr, "  Skipped %s\n", d)
	}

	if flagImportDryRun {
		fmt.Printf("  Would import %d expense(s), %d skipped\n", len(res.Drafts), len(res.Skipped))
		return nil
	}

	ls, db, _, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	st, err := ls.ImportBatch(res.Drafts)
	if err != nil {
		warnIfSaveFailed(err)
	}

	fmt.Printf("  Imported %d expense(s), %d skipped\n", st.Added, st.Skipped+len(res.Skipped))
	return nil
}
