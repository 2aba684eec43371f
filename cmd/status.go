package cmd

import (
	"fmt"
	"time"

	"ecolog/internal/cli"
	"ecolog/internal/pipeline"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Today at a glance",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	today, found, err := st.Get(time.Now())
	if err != nil {
		return err
	}

	records, err := st.History()
	if err != nil {
		return err
	}

	fmt.Println()
	if !found {
		fmt.Println("  Today: not logged yet. Run `ecolog log`.")
	} else {
		saved := cli.FormatSignedKg(today.SavingsKg)
		if today.SavingsKg >= 0 {
			saved = cli.Good(saved)
		} else {
			saved = cli.Bad(saved)
		}
		fmt.Printf("  Today: %s CO₂ (%s vs %s baseline)\n",
			cli.FormatKg(today.TotalKg), saved, cli.FormatKg(today.BaselineKg))
	}

	if streak := pipeline.Streak(records); streak > 0 {
		fmt.Printf("  Streak: %d day(s) at or under baseline\n", streak)
	}

	// Last 14 days as a sparkline, gap days at zero
	if len(records) > 0 {
		now := time.Now()
		points := pipeline.FillDays(records, now.AddDate(0, 0, -13), now)
		values := make([]float64, len(points))
		for i, p := range points {
			if p.TotalKg > 0 {
				values[i] = p.TotalKg
			}
		}
		fmt.Printf("  Last 14d: %s\n", cli.RenderSparkline(values))
	}
	fmt.Println()

	return nil
}
