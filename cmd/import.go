package cmd

import (
	"fmt"
	"os"

	"ecolog/internal/calc"
	"ecolog/internal/store"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import entries from a previous CSV export",
	Long:  "Re-ingest a CSV export. Raw activity quantities are kept; totals are recomputed with the current factors. Existing dates are overwritten.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	entries, err := store.ParseCSV(f)
	if err != nil {
		return err
	}

	factors, baseline, err := activeFactors()
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	for _, entry := range entries {
		rec, err := calc.Compute(entry, factors, baseline)
		if err != nil {
			return fmt.Errorf("entry %s: %w", entry.DateKey(), err)
		}
		if err := st.Upsert(rec); err != nil {
			return err
		}
	}

	fmt.Printf("  Imported %d record(s) from %s\n", len(entries), args[0])
	return nil
}
