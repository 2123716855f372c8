package cmd

import (
	"fmt"

	"kharch/internal/config"
	"kharch/internal/model"
	"kharch/internal/query"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	monthOptions := []huh.Option[string]{huh.NewOption("All months", query.MonthAll)}
	for _, m := range model.Months {
		monthOptions = append(monthOptions, huh.NewOption(model.DisplayMonth(m), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency symbol").
				Options(
					huh.NewOption("₹ Indian Rupee", "₹"),
					huh.NewOption("$ Dollar", "$"),
					huh.NewOption("€ Euro", "€"),
					huh.NewOption("£ Pound", "£"),
				).
				Value(&cfg.General.Currency),
			huh.NewSelect[string]().
				Title("Default month filter").
				Options(monthOptions...).
				Value(&cfg.General.DefaultMonth),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&cfg.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `kharch setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
