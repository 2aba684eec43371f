package cmd

import (
	"fmt"

	"ecolog/internal/cli"
	"ecolog/internal/pipeline"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Emissions by activity category",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	records, err := loadHistory()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		printNoEntries()
		return nil
	}

	factors, _, err := activeFactors()
	if err != nil {
		return err
	}

	since, until := window()
	filtered := pipeline.FilterByTime(records, since, until)
	if len(filtered) == 0 {
		fmt.Println("\n  No entries in the selected time range.")
		return nil
	}

	categories, err := pipeline.Breakdown(filtered, factors)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BY CATEGORY  Last %dd", flagDays)))
	fmt.Println()

	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		kg := cli.FormatKg(c.TotalKg)
		if c.TotalKg < 0 {
			kg = cli.Good(kg)
		}
		rows = append(rows, []string{
			c.Category,
			fmt.Sprintf("%s %s", cli.FormatQty(c.Quantity), c.Unit),
			kg,
			cli.FormatShare(c.SharePercent),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Quantity", "CO₂", "Share"},
		Rows:    rows,
	}))

	return nil
}
