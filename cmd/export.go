package cmd

import (
	"fmt"
	"os"
	"time"

	"kharch/internal/csvio"
	"kharch/internal/query"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses as CSV, JSON backup, or plain text",
	Long: `Export the expenses matching the active filter. The csv and text
formats cover the filtered set; the json format is a full backup of
the ledger, budgets, and custom categories regardless of filters.`,
	RunE: runExport,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup.json>",
	Short: "Restore the ledger from a JSON backup",
	Long:  "Replace all expenses, budgets, and custom categories with the backup's contents.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "Output format: csv, json, text")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(restoreCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	ls, db, cfg, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	now := time.Now()
	f := activeFilter(cfg)
	filtered := query.Apply(ls.Expenses(), f)
	query.SortByCreatedDesc(filtered)

	var out []byte
	switch flagExportFormat {
	case "csv":
		out = []byte(csvio.ToCSV(filtered))
	case "text":
		out = []byte(csvio.ToPlainText(filtered, cfg.General.Currency, now))
	case "json":
		out, err = csvio.ToJSONBackup(ls.Expenses(), ls.Budgets(), ls.Categories().Custom(), now)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q, want csv, json, or text", flagExportFormat)
	}

	if flagExportOut == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(flagExportOut, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", flagExportOut, err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", flagExportOut)
	}
	return nil
}

func runRestore(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	backup, err := csvio.ParseBackup(data)
	if err != nil {
		return err
	}

	ls, db, _, err := openLedger()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ls.Replace(backup.Expenses, backup.Budgets, backup.CustomCategories); err != nil {
		warnIfSaveFailed(err)
	}

	fmt.Printf("  Restored %d expense(s), %d budget(s), %d custom categor(ies)\n",
		len(backup.Expenses), len(backup.Budgets), len(backup.CustomCategories))
	return nil
}
