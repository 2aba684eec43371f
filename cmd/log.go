package cmd

import (
	"fmt"
	"strconv"
	"time"

	"ecolog/internal/calc"
	"ecolog/internal/cli"
	"ecolog/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagLogDate   string
	flagCarKm     float64
	flagBusKm     float64
	flagBikeKm    float64
	flagKwh       float64
	flagMeatMeals int
	flagVegMeals  int
	flagPlastic   int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a day's activities",
	Long:  "Compute and save the emission record for one day. With no activity flags, an interactive form is shown.",
	RunE:  runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVar(&flagLogDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	logCmd.Flags().Float64Var(&flagCarKm, "car", 0, "Car kilometres")
	logCmd.Flags().Float64Var(&flagBusKm, "bus", 0, "Bus kilometres")
	logCmd.Flags().Float64Var(&flagBikeKm, "bike", 0, "Bike / walk kilometres")
	logCmd.Flags().Float64Var(&flagKwh, "kwh", 0, "Electricity used (kWh)")
	logCmd.Flags().IntVar(&flagMeatMeals, "meat", 0, "Number of meat meals")
	logCmd.Flags().IntVar(&flagVegMeals, "veg", 0, "Number of vegetarian meals")
	logCmd.Flags().IntVar(&flagPlastic, "plastic", 0, "Single-use plastic items avoided")
}

func runLog(cmd *cobra.Command, _ []string) error {
	date := time.Now()
	if flagLogDate != "" {
		var err error
		date, err = time.ParseInLocation(model.DateLayout, flagLogDate, time.Local)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
	}

	entry := model.ActivityEntry{
		Date:                date,
		CarKm:               flagCarKm,
		BusKm:               flagBusKm,
		BikeWalkKm:          flagBikeKm,
		ElectricityKwh:      flagKwh,
		MeatMeals:           flagMeatMeals,
		VegMeals:            flagVegMeals,
		PlasticItemsAvoided: flagPlastic,
	}

	if !anyActivityFlagSet(cmd) {
		var err error
		entry, err = promptEntry(entry)
		if err != nil {
			return err
		}
	}

	factors, baseline, err := activeFactors()
	if err != nil {
		return err
	}

	rec, err := calc.Compute(entry, factors, baseline)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.Upsert(rec); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Logged %s\n\n", rec.DateKey())
	fmt.Printf("  Estimated footprint:  %s CO₂\n", cli.FormatKg(rec.TotalKg))
	fmt.Printf("  Baseline:             %s CO₂\n", cli.FormatKg(rec.BaselineKg))

	saved := cli.FormatSignedKg(rec.SavingsKg)
	if rec.SavingsKg >= 0 {
		saved = cli.Good(saved)
	} else {
		saved = cli.Bad(saved)
	}
	if rec.BaselineKg > 0 {
		fmt.Printf("  Saved vs baseline:    %s (%s)\n", saved, cli.FormatPercent(rec.SavingsKg/rec.BaselineKg))
	} else {
		fmt.Printf("  Saved vs baseline:    %s\n", saved)
	}
	fmt.Println()

	return nil
}

var activityFlags = []string{"car", "bus", "bike", "kwh", "meat", "veg", "plastic"}

func anyActivityFlagSet(cmd *cobra.Command) bool {
	for _, name := range activityFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// promptEntry collects the day's quantities through an interactive form.
func promptEntry(entry model.ActivityEntry) (model.ActivityEntry, error) {
	dateStr := entry.Date.Format(model.DateLayout)
	carStr, busStr, bikeStr, kwhStr := "0", "0", "0", "0"
	meatStr, vegStr, plasticStr := "0", "0", "0"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&dateStr).
				Validate(validateDate),
			huh.NewInput().
				Title("Car kilometres").
				Value(&carStr).
				Validate(validateFloat),
			huh.NewInput().
				Title("Bus kilometres").
				Value(&busStr).
				Validate(validateFloat),
			huh.NewInput().
				Title("Bike / walk kilometres").
				Value(&bikeStr).
				Validate(validateFloat),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Electricity used (kWh)").
				Value(&kwhStr).
				Validate(validateFloat),
			huh.NewInput().
				Title("Meat meals").
				Value(&meatStr).
				Validate(validateInt),
			huh.NewInput().
				Title("Vegetarian meals").
				Value(&vegStr).
				Validate(validateInt),
			huh.NewInput().
				Title("Plastic items avoided").
				Value(&plasticStr).
				Validate(validateInt),
		),
	)

	if err := form.Run(); err != nil {
		return entry, err
	}

	entry.Date, _ = time.ParseInLocation(model.DateLayout, dateStr, time.Local)
	entry.CarKm, _ = strconv.ParseFloat(carStr, 64)
	entry.BusKm, _ = strconv.ParseFloat(busStr, 64)
	entry.BikeWalkKm, _ = strconv.ParseFloat(bikeStr, 64)
	entry.ElectricityKwh, _ = strconv.ParseFloat(kwhStr, 64)
	entry.MeatMeals, _ = strconv.Atoi(meatStr)
	entry.VegMeals, _ = strconv.Atoi(vegStr)
	entry.PlasticItemsAvoided, _ = strconv.Atoi(plasticStr)

	return entry, nil
}

func validateDate(s string) error {
	if _, err := time.ParseInLocation(model.DateLayout, s, time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
