package store

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"ecolog/internal/model"
)

func exportRecord(t *testing.T, date string) model.EmissionRecord {
	t.Helper()
	d, err := time.ParseInLocation(model.DateLayout, date, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return model.EmissionRecord{
		ActivityEntry: model.ActivityEntry{
			Date:                d,
			CarKm:               12.5,
			BusKm:               3,
			BikeWalkKm:          1.2,
			ElectricityKwh:      4.75,
			MeatMeals:           1,
			VegMeals:            2,
			PlasticItemsAvoided: 3,
		},
		TotalKg:    10.17,
		BaselineKg: 10.4,
		SavingsKg:  0.23,
	}
}

func TestWriteCSVHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	want := "date,car_km,bus_km,bike_or_walk_km,electricity_kwh,meat_meals,veg_meals,plastic_items_avoided,total_emission_kg,baseline_emission_kg,savings_kg\n"
	if buf.String() != want {
		t.Errorf("header = %q, want %q", buf.String(), want)
	}
}

func TestWriteCSVRow(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []model.EmissionRecord{exportRecord(t, "2026-08-10")}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 row", len(lines))
	}
	// floats at 2-decimal display precision
	want := "2026-08-10,12.50,3.00,1.20,4.75,1,2,3,10.17,10.40,0.23"
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	records := []model.EmissionRecord{
		exportRecord(t, "2026-08-10"),
		exportRecord(t, "2026-08-11"),
	}
	records[1].CarKm = 0
	records[1].PlasticItemsAvoided = 10

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	entries, err := ParseCSV(&buf)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ParseCSV = %d entries, want 2", len(entries))
	}
	for i, rec := range records {
		got := entries[i]
		if got.Date.Format(model.DateLayout) != rec.DateKey() {
			t.Errorf("entry %d date = %s, want %s", i, got.Date.Format(model.DateLayout), rec.DateKey())
		}
		if got.CarKm != rec.CarKm || got.BusKm != rec.BusKm || got.BikeWalkKm != rec.BikeWalkKm {
			t.Errorf("entry %d distances = %+v, want %+v", i, got, rec.ActivityEntry)
		}
		if got.MeatMeals != rec.MeatMeals || got.VegMeals != rec.VegMeals ||
			got.PlasticItemsAvoided != rec.PlasticItemsAvoided {
			t.Errorf("entry %d counts = %+v, want %+v", i, got, rec.ActivityEntry)
		}
	}
}

func TestParseCSVRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"wrong header", "day,car_km,bus_km,bike_or_walk_km,electricity_kwh,meat_meals,veg_meals,plastic_items_avoided,total_emission_kg,baseline_emission_kg,savings_kg\n"},
		{"short row", "date,car_km,bus_km,bike_or_walk_km,electricity_kwh,meat_meals,veg_meals,plastic_items_avoided,total_emission_kg,baseline_emission_kg,savings_kg\n2026-08-10,1.00\n"},
		{"bad date", "date,car_km,bus_km,bike_or_walk_km,electricity_kwh,meat_meals,veg_meals,plastic_items_avoided,total_emission_kg,baseline_emission_kg,savings_kg\nnot-a-date,0.00,0.00,0.00,0.00,0,0,0,0.00,10.40,10.40\n"},
		{"bad count", "date,car_km,bus_km,bike_or_walk_km,electricity_kwh,meat_meals,veg_meals,plastic_items_avoided,total_emission_kg,baseline_emission_kg,savings_kg\n2026-08-10,0.00,0.00,0.00,0.00,one,0,0,0.00,10.40,10.40\n"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCSV(strings.NewReader(tc.input)); err == nil {
				t.Error("ParseCSV accepted malformed input")
			}
		})
	}
}
