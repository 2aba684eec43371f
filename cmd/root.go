// Package cmd implements the ecolog CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"ecolog/internal/config"
	"ecolog/internal/model"
	"ecolog/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDays   int
	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "ecolog",
	Short: "Personal CO₂ footprint tracker",
	Long:  "Log daily activities (transport, electricity, meals, plastic) and track estimated CO₂ emissions against a baseline.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", cfg.General.DefaultDays, "Time window in days")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DBPath(cfg), "Database path")
}

// openStore opens the log database at the configured path.
func openStore() (*store.Store, error) {
	return store.Open(flagDBPath)
}

// loadHistory is the shared read path used by the display commands.
func loadHistory() ([]model.EmissionRecord, error) {
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer func() { _ = st.Close() }()

	return st.History()
}

// window returns the [since, until] bounds from the --days flag.
func window() (time.Time, time.Time) {
	now := time.Now()
	return now.AddDate(0, 0, -(flagDays - 1)), now
}

// activeFactors returns the effective factor set and baseline from config.
func activeFactors() (config.Factors, config.Baseline, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Baseline{}, err
	}
	factors := cfg.EffectiveFactors()
	if err := factors.Validate(); err != nil {
		return nil, config.Baseline{}, err
	}
	return factors, cfg.Baseline, nil
}

func printNoEntries() {
	fmt.Println("\n  No entries logged yet.")
	fmt.Println("  Run `ecolog log` to record your first day.")
}
