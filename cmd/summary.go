package cmd

import (
	"fmt"

	"ecolog/internal/cli"
	"ecolog/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Emission summary for the selected window",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	records, err := loadHistory()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		printNoEntries()
		return nil
	}

	since, until := window()
	stats := pipeline.Summarize(records, since, until)

	if stats.Count == 0 {
		fmt.Println("\n  No entries in the selected time range.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CO₂ FOOTPRINT  Last %dd", flagDays)))
	fmt.Println()

	saved := cli.FormatSignedKg(stats.SavedKg)
	if stats.SavedKg >= 0 {
		saved = cli.Good(saved)
	} else {
		saved = cli.Bad(saved)
	}

	rows := [][]string{
		{"Days logged", cli.FormatNumber(int64(stats.Count))},
		{"Total emissions", cli.FormatKg(stats.TotalKg)},
		{"Average / day", cli.FormatKg(stats.AverageKg)},
		{"Baseline / day", cli.FormatKg(stats.BaselineKg)},
		{"---"},
		{"Saved vs baseline", saved},
		{"Saved", cli.FormatPercent(stats.SavedPct)},
		{"Days under baseline", fmt.Sprintf("%d of %d", stats.DaysUnder, stats.Count)},
		{"Current streak", fmt.Sprintf("%dd", stats.StreakDays)},
		{"---"},
		{"Best day", fmt.Sprintf("%s  %s", cli.FormatDate(stats.BestDay), cli.FormatKg(stats.BestDayKg))},
		{"Worst day", fmt.Sprintf("%s  %s", cli.FormatDate(stats.WorstDay), cli.FormatKg(stats.WorstDayKg))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	return nil
}
