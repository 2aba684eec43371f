package calc

import (
	"errors"
	"math"
	"testing"
	"time"

	"ecolog/internal/config"
	"ecolog/internal/model"
)

const eps = 1e-9

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(model.DateLayout, s, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func testFactors() config.Factors {
	return config.Factors{
		config.CarKm:          0.21,
		config.BusKm:          0.10,
		config.BikeWalkKm:     0.0,
		config.ElectricityKwh: 0.45,
		config.MeatMeal:       3.0,
		config.VegMeal:        0.5,
		config.PlasticAvoided: 0.1,
	}
}

func TestCompute_Example(t *testing.T) {
	entry := model.ActivityEntry{
		Date:                mustDate(t, "2026-08-01"),
		CarKm:               10,
		ElectricityKwh:      5,
		MeatMeals:           1,
		PlasticItemsAvoided: 2,
	}

	rec, err := Compute(entry, testFactors(), config.DefaultBaseline())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// 10*0.21 + 5*0.45 + 1*3.0 - 2*0.1
	if diff := math.Abs(rec.TotalKg - 7.15); diff > eps {
		t.Errorf("TotalKg = %v, want 7.15", rec.TotalKg)
	}
	if diff := math.Abs(rec.SavingsKg - (rec.BaselineKg - rec.TotalKg)); diff > eps {
		t.Errorf("SavingsKg = %v, want BaselineKg - TotalKg = %v", rec.SavingsKg, rec.BaselineKg-rec.TotalKg)
	}
}

func TestCompute_DefaultFactors(t *testing.T) {
	entry := model.ActivityEntry{
		Date:           mustDate(t, "2026-08-02"),
		CarKm:          10,
		ElectricityKwh: 4,
		MeatMeals:      1,
	}

	rec, err := Compute(entry, config.DefaultFactors(), config.DefaultBaseline())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// 10*0.192 + 4*0.82 + 1*5.0 = 10.2
	if diff := math.Abs(rec.TotalKg - 10.2); diff > eps {
		t.Errorf("TotalKg = %v, want 10.2", rec.TotalKg)
	}
	// Baseline 10.4 includes 2 plastic items the entry didn't avoid
	if diff := math.Abs(rec.BaselineKg - 10.4); diff > eps {
		t.Errorf("BaselineKg = %v, want 10.4", rec.BaselineKg)
	}
	if diff := math.Abs(rec.SavingsKg - 0.2); diff > eps {
		t.Errorf("SavingsKg = %v, want 0.2", rec.SavingsKg)
	}
}

func TestCompute_BikeWalkIsZero(t *testing.T) {
	entry := model.ActivityEntry{
		Date:       mustDate(t, "2026-08-03"),
		BikeWalkKm: 42,
	}

	rec, err := Compute(entry, config.DefaultFactors(), config.DefaultBaseline())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if rec.TotalKg != 0 {
		t.Errorf("TotalKg = %v, want 0 for bike/walk only", rec.TotalKg)
	}
}

func TestCompute_NegativeTotalAllowed(t *testing.T) {
	// Heavy avoidance credits can push the day below zero; the value is
	// returned unclamped.
	entry := model.ActivityEntry{
		Date:                mustDate(t, "2026-08-04"),
		PlasticItemsAvoided: 50,
	}

	rec, err := Compute(entry, config.DefaultFactors(), config.DefaultBaseline())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if diff := math.Abs(rec.TotalKg - (-5.0)); diff > eps {
		t.Errorf("TotalKg = %v, want -5.0", rec.TotalKg)
	}
	if rec.SavingsKg <= rec.BaselineKg {
		t.Errorf("SavingsKg = %v, want > baseline %v", rec.SavingsKg, rec.BaselineKg)
	}
}

func TestCompute_NegativeSavingsValid(t *testing.T) {
	entry := model.ActivityEntry{
		Date:      mustDate(t, "2026-08-05"),
		CarKm:     200,
		MeatMeals: 3,
	}

	rec, err := Compute(entry, config.DefaultFactors(), config.DefaultBaseline())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if rec.SavingsKg >= 0 {
		t.Errorf("SavingsKg = %v, want negative for a day far over baseline", rec.SavingsKg)
	}
}

func TestCompute_InvalidInput(t *testing.T) {
	base := model.ActivityEntry{Date: mustDate(t, "2026-08-06")}

	cases := []struct {
		name  string
		entry model.ActivityEntry
	}{
		{"negative car km", func() model.ActivityEntry { e := base; e.CarKm = -1; return e }()},
		{"negative meat meals", func() model.ActivityEntry { e := base; e.MeatMeals = -2; return e }()},
		{"nan electricity", func() model.ActivityEntry { e := base; e.ElectricityKwh = math.NaN(); return e }()},
		{"inf bus km", func() model.ActivityEntry { e := base; e.BusKm = math.Inf(1); return e }()},
		{"zero date", model.ActivityEntry{CarKm: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.entry, config.DefaultFactors(), config.DefaultBaseline())
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Compute error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestCompute_MissingFactor(t *testing.T) {
	factors := testFactors()
	delete(factors, config.MeatMeal)

	entry := model.ActivityEntry{Date: mustDate(t, "2026-08-07"), CarKm: 5}
	_, err := Compute(entry, factors, config.DefaultBaseline())
	if !errors.Is(err, config.ErrMissingFactor) {
		t.Errorf("Compute error = %v, want ErrMissingFactor", err)
	}
}

func TestCategoryKg_PlasticIsCredit(t *testing.T) {
	entry := model.ActivityEntry{
		Date:                mustDate(t, "2026-08-08"),
		CarKm:               10,
		PlasticItemsAvoided: 3,
	}

	byCat, err := CategoryKg(entry, config.DefaultFactors())
	if err != nil {
		t.Fatalf("CategoryKg: %v", err)
	}
	if byCat[config.PlasticAvoided] >= 0 {
		t.Errorf("plastic contribution = %v, want negative", byCat[config.PlasticAvoided])
	}
	if diff := math.Abs(byCat[config.CarKm] - 1.92); diff > eps {
		t.Errorf("car contribution = %v, want 1.92", byCat[config.CarKm])
	}
}
