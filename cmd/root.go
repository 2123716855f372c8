// Package cmd implements the kharch CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"kharch/internal/config"
	"kharch/internal/ledger"
	"kharch/internal/model"
	"kharch/internal/query"
	"kharch/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagMonth    string
	flagSearch   string
	flagMinPrice float64
	flagMaxPrice float64
	flagDataDir  string
	flagQuiet    bool
)

var rootCmd = &cobra.Command{
	Use:   "kharch",
	Short: "Personal expense tracker",
	Long:  "Track daily expenses, budgets, and category breakdowns from the terminal.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "m", "", "Month filter (january..december, or all)")
	rootCmd.PersistentFlags().StringVarP(&flagSearch, "search", "s", "", "Text filter on item and remarks")
	rootCmd.PersistentFlags().Float64Var(&flagMinPrice, "min-price", 0, "Minimum price filter")
	rootCmd.PersistentFlags().Float64Var(&flagMaxPrice, "max-price", 0, "Maximum price filter (0 = unbounded)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the expense database directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// openLedger opens the blob store and hydrates the ledger from it.
// Callers must Close the returned DB.
func openLedger() (*ledger.Store, *store.DB, config.Config, error) {
	cfg, err := config.Load()
	if err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %v, using defaults\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	db, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, nil, cfg, err
	}

	ls := ledger.NewStore(db)
	if err := ls.Load(); err != nil {
		_ = db.Close()
		return nil, nil, cfg, err
	}
	return ls, db, cfg, nil
}

// activeFilter builds the query from persistent flags, falling back to
// the configured default month when --month is not given.
func activeFilter(cfg config.Config) query.Filter {
	month := strings.ToLower(strings.TrimSpace(flagMonth))
	if month == "" {
		month = cfg.General.DefaultMonth
	}
	if month != query.MonthAll && !model.IsMonth(month) {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Unknown month %q, showing all\n", month)
		}
		month = query.MonthAll
	}
	return query.Filter{
		Month:    month,
		Search:   flagSearch,
		MinPrice: flagMinPrice,
		MaxPrice: flagMaxPrice,
	}
}

// warnIfSaveFailed prints a persistence failure without failing the
// command: the mutation took effect in memory.
func warnIfSaveFailed(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v\n", err)
	}
}
