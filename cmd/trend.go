package cmd

import (
	"fmt"

	"ecolog/internal/cli"
	"ecolog/internal/model"
	"ecolog/internal/pipeline"
	"ecolog/internal/tui/components"

	"github.com/spf13/cobra"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Daily emissions chart",
	RunE:  runTrend,
}

func init() {
	rootCmd.AddCommand(trendCmd)
}

func runTrend(_ *cobra.Command, _ []string) error {
	records, err := loadHistory()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		printNoEntries()
		return nil
	}

	since, until := window()
	points := pipeline.FillDays(records, since, until)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY CO₂  Last %dd", flagDays)))
	fmt.Println()

	values := make([]float64, len(points))
	labels := make([]string, len(points))
	logged := 0
	for i, p := range points {
		// Chart clamps credits at zero; the history table shows the
		// signed value.
		if p.TotalKg > 0 {
			values[i] = p.TotalKg
		}
		labels[i] = p.Date.Format("01-02")
		if p.Logged {
			logged++
		}
	}

	if logged == 0 {
		fmt.Println("  No entries in the selected time range.")
		return nil
	}

	fmt.Println(components.BarChart(values, labels, 72, 12))
	fmt.Println()

	// Weekly rollup under the chart
	weeks := pipeline.AggregateWeeks(pipeline.FilterByTime(records, since, until))
	if len(weeks) > 1 {
		rows := make([][]string, 0, len(weeks))
		for _, w := range weeks {
			saved := cli.FormatSignedKg(w.SavedKg)
			if w.SavedKg >= 0 {
				saved = cli.Good(saved)
			} else {
				saved = cli.Bad(saved)
			}
			rows = append(rows, []string{
				"wk " + w.WeekStart.Format(model.DateLayout),
				fmt.Sprintf("%d", w.Days),
				cli.FormatKg(w.TotalKg),
				saved,
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Week", "Days", "Total", "Saved"},
			Rows:    rows,
		}))
	}

	return nil
}
