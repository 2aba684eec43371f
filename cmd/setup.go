package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ecolog/internal/config"

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
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to ecolog!")
	fmt.Println()

	// 1. Baseline assumptions
	fmt.Println("  1. Baseline assumptions (a typical unmitigated day)")
	cfg.Baseline.CarKmPerDay = promptFloat(reader, "Car km per day", cfg.Baseline.CarKmPerDay)
	cfg.Baseline.ElectricityKwhPerDay = promptFloat(reader, "Electricity kWh per day", cfg.Baseline.ElectricityKwhPerDay)
	cfg.Baseline.MeatMealsPerDay = promptFloat(reader, "Meat meals per day", cfg.Baseline.MeatMealsPerDay)
	cfg.Baseline.PlasticItemsPerDay = promptFloat(reader, "Plastic items per day", cfg.Baseline.PlasticItemsPerDay)
	fmt.Println()

	// 2. Default time range
	fmt.Println("  2. Default time range")
	fmt.Println("     (1) 7 days")
	fmt.Println("     (2) 30 days [default]")
	fmt.Println("     (3) 90 days")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		cfg.General.DefaultDays = 7
	case "3":
		cfg.General.DefaultDays = 90
	default:
		cfg.General.DefaultDays = 30
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	factors := cfg.EffectiveFactors()
	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	if kg, err := cfg.Baseline.DailyKg(factors); err == nil {
		fmt.Printf("  Your baseline: %.2f kg CO₂ / day\n", kg)
	}
	fmt.Println("  Emission factors can be overridden per-category in the [factors] section.")
	fmt.Println()

	return nil
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("     %s [%.1f]\n     > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil || v < 0 {
		fmt.Println("     (keeping current value)")
		return current
	}
	return v
}
