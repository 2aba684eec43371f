package cmd

import (
	"fmt"

	"ecolog/internal/cli"
	"ecolog/internal/pipeline"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Logged entries as a table",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	records, err := loadHistory()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		printNoEntries()
		return nil
	}

	since, until := window()
	filtered := pipeline.FilterByTime(records, since, until)
	if len(filtered) == 0 {
		fmt.Println("\n  No entries in the selected time range.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HISTORY  Last %dd", flagDays)))
	fmt.Println()

	rows := make([][]string, 0, len(filtered))
	for _, rec := range filtered {
		saved := cli.FormatSignedKg(rec.SavingsKg)
		if rec.SavingsKg >= 0 {
			saved = cli.Good(saved)
		} else {
			saved = cli.Bad(saved)
		}
		rows = append(rows, []string{
			rec.DateKey(),
			cli.FormatDayOfWeek(int(rec.Date.Weekday())),
			cli.FormatQty(rec.CarKm),
			cli.FormatQty(rec.BusKm),
			cli.FormatQty(rec.BikeWalkKm),
			cli.FormatQty(rec.ElectricityKwh),
			fmt.Sprintf("%d/%d", rec.MeatMeals, rec.VegMeals),
			fmt.Sprintf("%d", rec.PlasticItemsAvoided),
			cli.FormatKg(rec.TotalKg),
			saved,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Car", "Bus", "Bike", "kWh", "Meat/Veg", "Plastic", "Total", "Saved"},
		Rows:    rows,
	}))

	return nil
}
