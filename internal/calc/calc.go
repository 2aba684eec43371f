// Package calc turns a day's activity quantities into an emission estimate.
// It is pure: no I/O, no clock, no state.
package calc

import (
	"errors"
	"fmt"
	"math"

	"ecolog/internal/config"
	"ecolog/internal/model"
)

// ErrInvalidInput marks activity entries with negative or non-finite
// quantities, or a missing date.
var ErrInvalidInput = errors.New("invalid activity input")

// Compute derives the emission record for one activity entry.
//
// total = Σ quantity × factor over every category, with the plastic-avoided
// credit subtracted. A day with heavy avoidance credits can legitimately come
// out negative; the value is returned unclamped. Savings is always
// baseline − total and may also be negative.
//
// All arithmetic stays at full float64 precision. Rounding happens only at
// the presentation boundary (tables, CSV).
func Compute(entry model.ActivityEntry, factors config.Factors, baseline config.Baseline) (model.EmissionRecord, error) {
	if err := validate(entry); err != nil {
		return model.EmissionRecord{}, err
	}
	if err := factors.Validate(); err != nil {
		return model.EmissionRecord{}, err
	}

	byCategory, err := CategoryKg(entry, factors)
	if err != nil {
		return model.EmissionRecord{}, err
	}

	total := 0.0
	for _, kg := range byCategory {
		total += kg
	}

	baselineKg, err := baseline.DailyKg(factors)
	if err != nil {
		return model.EmissionRecord{}, err
	}

	return model.EmissionRecord{
		ActivityEntry: entry,
		TotalKg:       total,
		BaselineKg:    baselineKg,
		SavingsKg:     baselineKg - total,
	}, nil
}

// CategoryKg returns each category's signed contribution in kg CO₂.
// The plastic-avoided entry is negative (a credit); everything else is ≥ 0.
func CategoryKg(entry model.ActivityEntry, factors config.Factors) (map[config.Category]float64, error) {
	quantities := map[config.Category]float64{
		config.CarKm:          entry.CarKm,
		config.BusKm:          entry.BusKm,
		config.BikeWalkKm:     entry.BikeWalkKm,
		config.ElectricityKwh: entry.ElectricityKwh,
		config.MeatMeal:       float64(entry.MeatMeals),
		config.VegMeal:        float64(entry.VegMeals),
		config.PlasticAvoided: float64(entry.PlasticItemsAvoided),
	}

	out := make(map[config.Category]float64, len(quantities))
	for cat, qty := range quantities {
		factor, err := factors.For(cat)
		if err != nil {
			return nil, err
		}
		kg := qty * factor
		if cat == config.PlasticAvoided {
			kg = -kg
		}
		out[cat] = kg
	}
	return out, nil
}

func validate(entry model.ActivityEntry) error {
	if entry.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidInput)
	}

	floats := map[string]float64{
		"car_km":          entry.CarKm,
		"bus_km":          entry.BusKm,
		"bike_walk_km":    entry.BikeWalkKm,
		"electricity_kwh": entry.ElectricityKwh,
	}
	for name, v := range floats {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, name)
		}
		if v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidInput, name, v)
		}
	}

	ints := map[string]int{
		"meat_meals":            entry.MeatMeals,
		"veg_meals":             entry.VegMeals,
		"plastic_items_avoided": entry.PlasticItemsAvoided,
	}
	for name, v := range ints {
		if v < 0 {
			return fmt.Errorf("%w: %s = %d", ErrInvalidInput, name, v)
		}
	}

	return nil
}
