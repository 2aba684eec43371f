// Package config holds ecolog configuration: emission factors, the baseline
// profile, and user preferences loaded from a TOML file.
package config

import (
	"errors"
	"fmt"
	"math"
)

// Category identifies one activity dimension that carries an emission factor.
type Category string

// Activity categories. The string values double as config keys and CSV-ish
// display labels, so they never change.
const (
	CarKm          Category = "car_km"
	BusKm          Category = "bus_km"
	BikeWalkKm     Category = "bike_walk_km"
	ElectricityKwh Category = "electricity_kwh"
	MeatMeal       Category = "meat_meal"
	VegMeal        Category = "veg_meal"
	PlasticAvoided Category = "plastic_item_avoided"
)

// Categories lists every required category in display order.
var Categories = []Category{
	CarKm,
	BusKm,
	BikeWalkKm,
	ElectricityKwh,
	MeatMeal,
	VegMeal,
	PlasticAvoided,
}

// Factors maps each activity category to its kg-CO₂-per-unit coefficient.
// All stored factors are non-negative; the plastic-avoided credit is applied
// by subtraction in the calculator, never by storing a negative factor.
type Factors map[Category]float64

// Factor validation errors.
var (
	ErrMissingFactor = errors.New("missing emission factor")
	ErrInvalidFactor = errors.New("invalid emission factor")
)

// DefaultFactors returns the built-in emission factors (kg CO₂ per unit).
// Sources are rough per-unit averages; override per-category in config.toml
// to match regional data.
func DefaultFactors() Factors {
	return Factors{
		CarKm:          0.192, // average petrol car, per km
		BusKm:          0.089, // per passenger-km
		BikeWalkKm:     0.0,
		ElectricityKwh: 0.82, // example grid factor, adjust regionally
		MeatMeal:       5.0,
		VegMeal:        2.0,
		PlasticAvoided: 0.1, // credit per single-use item avoided
	}
}

// Validate checks that every required category is present with a finite,
// non-negative coefficient.
func (f Factors) Validate() error {
	for _, c := range Categories {
		v, ok := f[c]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingFactor, c)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrInvalidFactor, c, v)
		}
	}
	return nil
}

// For returns the coefficient for a category, or ErrMissingFactor.
func (f Factors) For(c Category) (float64, error) {
	v, ok := f[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingFactor, c)
	}
	return v, nil
}

// EffectiveFactors merges user overrides from the config file over the
// defaults. Unknown override keys are ignored.
func (c Config) EffectiveFactors() Factors {
	f := DefaultFactors()
	for key, v := range c.Factors {
		cat := Category(key)
		if _, ok := f[cat]; ok {
			f[cat] = v
		}
	}
	return f
}

// Baseline describes a typical unmitigated day, used only to derive the
// reference daily emissions that savings are measured against.
type Baseline struct {
	CarKmPerDay          float64 `toml:"car_km_per_day"`
	ElectricityKwhPerDay float64 `toml:"electricity_kwh_per_day"`
	MeatMealsPerDay      float64 `toml:"meat_meals_per_day"`
	PlasticItemsPerDay   float64 `toml:"plastic_items_per_day"`
}

// DefaultBaseline returns the built-in baseline assumptions.
func DefaultBaseline() Baseline {
	return Baseline{
		CarKmPerDay:          10,
		ElectricityKwhPerDay: 4,
		MeatMealsPerDay:      1,
		PlasticItemsPerDay:   2,
	}
}

// DailyKg derives the baseline's reference daily emissions from the given
// factors. Plastic items count toward the baseline: the typical day uses
// them rather than avoiding them.
func (b Baseline) DailyKg(f Factors) (float64, error) {
	car, err := f.For(CarKm)
	if err != nil {
		return 0, err
	}
	elec, err := f.For(ElectricityKwh)
	if err != nil {
		return 0, err
	}
	meat, err := f.For(MeatMeal)
	if err != nil {
		return 0, err
	}
	plastic, err := f.For(PlasticAvoided)
	if err != nil {
		return 0, err
	}

	return b.CarKmPerDay*car +
		b.ElectricityKwhPerDay*elec +
		b.MeatMealsPerDay*meat +
		b.PlasticItemsPerDay*plastic, nil
}
