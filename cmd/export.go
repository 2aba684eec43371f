package cmd

import (
	"fmt"
	"os"

	"ecolog/internal/store"

	"github.com/spf13/cobra"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full history as CSV",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write to file instead of stdout")
}

func runExport(_ *cobra.Command, _ []string) error {
	records, err := loadHistory()
	if err != nil {
		return err
	}

	out := os.Stdout
	if flagExportOutput != "" {
		f, err := os.Create(flagExportOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagExportOutput, err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := store.WriteCSV(out, records); err != nil {
		return err
	}

	if flagExportOutput != "" {
		fmt.Fprintf(os.Stderr, "  Wrote %d record(s) to %s\n", len(records), flagExportOutput)
	}
	return nil
}
