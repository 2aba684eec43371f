package tui

import (
	"fmt"
	"strconv"
	"time"

	"ecolog/internal/model"
	"ecolog/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func (a App) startLogForm() (tea.Model, tea.Cmd) {
	a.logVals = logValues{
		date:    time.Now().Format(model.DateLayout),
		car:     "0",
		bus:     "0",
		bike:    "0",
		kwh:     "0",
		meat:    "0",
		veg:     "0",
		plastic: "0",
	}

	a.logForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Date").Description("YYYY-MM-DD").
				Value(&a.logVals.date).Validate(validDate),
			huh.NewInput().Title("Car km").
				Value(&a.logVals.car).Validate(validFloat),
			huh.NewInput().Title("Bus km").
				Value(&a.logVals.bus).Validate(validFloat),
			huh.NewInput().Title("Bike / walk km").
				Value(&a.logVals.bike).Validate(validFloat),
			huh.NewInput().Title("Electricity kWh").
				Value(&a.logVals.kwh).Validate(validFloat),
			huh.NewInput().Title("Meat meals").
				Value(&a.logVals.meat).Validate(validInt),
			huh.NewInput().Title("Veg meals").
				Value(&a.logVals.veg).Validate(validInt),
			huh.NewInput().Title("Plastic items avoided").
				Value(&a.logVals.plastic).Validate(validInt),
		),
	).WithShowHelp(false)

	if a.width > 0 {
		a.logForm = a.logForm.WithWidth(a.width - 4)
	}
	return a, a.logForm.Init()
}

func (a App) viewLog() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	if a.logForm == nil {
		return muted.Render("  Press [l] to start a new entry.")
	}
	return a.logForm.View() + "\n" + muted.Render("  esc to cancel")
}

func (v logValues) toEntry() (model.ActivityEntry, error) {
	date, err := time.ParseInLocation(model.DateLayout, v.date, time.Local)
	if err != nil {
		return model.ActivityEntry{}, fmt.Errorf("bad date %q", v.date)
	}

	entry := model.ActivityEntry{Date: date}
	entry.CarKm, _ = strconv.ParseFloat(v.car, 64)
	entry.BusKm, _ = strconv.ParseFloat(v.bus, 64)
	entry.BikeWalkKm, _ = strconv.ParseFloat(v.bike, 64)
	entry.ElectricityKwh, _ = strconv.ParseFloat(v.kwh, 64)
	entry.MeatMeals, _ = strconv.Atoi(v.meat)
	entry.VegMeals, _ = strconv.Atoi(v.veg)
	entry.PlasticItemsAvoided, _ = strconv.Atoi(v.plastic)

	return entry, nil
}

func validDate(s string) error {
	if _, err := time.ParseInLocation(model.DateLayout, s, time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validInt(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}
