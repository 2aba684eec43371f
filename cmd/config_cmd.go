package cmd

import (
	"fmt"

	"ecolog/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default days: %d\n", cfg.General.DefaultDays)
	fmt.Printf("    Database:     %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	factors := cfg.EffectiveFactors()
	fmt.Println("  [Factors]  (kg CO₂ per unit)")
	for _, cat := range config.Categories {
		override := ""
		if _, ok := cfg.Factors[string(cat)]; ok {
			override = "  (override)"
		}
		fmt.Printf("    %-22s %.3f%s\n", cat, factors[cat], override)
	}
	fmt.Println()

	fmt.Println("  [Baseline]")
	fmt.Printf("    Car km / day:          %.1f\n", cfg.Baseline.CarKmPerDay)
	fmt.Printf("    Electricity kWh / day: %.1f\n", cfg.Baseline.ElectricityKwhPerDay)
	fmt.Printf("    Meat meals / day:      %.1f\n", cfg.Baseline.MeatMealsPerDay)
	fmt.Printf("    Plastic items / day:   %.1f\n", cfg.Baseline.PlasticItemsPerDay)

	if kg, err := cfg.Baseline.DailyKg(factors); err == nil {
		fmt.Printf("    Reference daily CO₂:   %.2f kg\n", kg)
	}
	fmt.Println()

	fmt.Println("  Run `ecolog setup` to reconfigure.")
	return nil
}
