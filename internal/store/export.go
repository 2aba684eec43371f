package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"ecolog/internal/model"
)

// csvHeader is the fixed export column order. Import relies on it too.
var csvHeader = []string{
	"date",
	"car_km",
	"bus_km",
	"bike_or_walk_km",
	"electricity_kwh",
	"meat_meals",
	"veg_meals",
	"plastic_items_avoided",
	"total_emission_kg",
	"baseline_emission_kg",
	"savings_kg",
}

// WriteCSV serializes records as a flat table, header row first, one row per
// record. Floats are written at the 2-decimal display precision.
func WriteCSV(w io.Writer, records []model.EmissionRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.DateKey(),
			formatKg(rec.CarKm),
			formatKg(rec.BusKm),
			formatKg(rec.BikeWalkKm),
			formatKg(rec.ElectricityKwh),
			strconv.Itoa(rec.MeatMeals),
			strconv.Itoa(rec.VegMeals),
			strconv.Itoa(rec.PlasticItemsAvoided),
			formatKg(rec.TotalKg),
			formatKg(rec.BaselineKg),
			formatKg(rec.SavingsKg),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", rec.DateKey(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ParseCSV reads an export back into raw activity entries. Only the date and
// activity columns are used; totals are recomputed by the caller so imported
// rows always reflect the current factor set.
func ParseCSV(r io.Reader) ([]model.ActivityEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected csv column %d: got %q, want %q", i, header[i], want)
		}
	}

	var entries []model.ActivityEntry
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv line %d: %w", line, err)
		}

		entry, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseRow(row []string) (model.ActivityEntry, error) {
	var entry model.ActivityEntry
	var err error

	entry.Date, err = time.ParseInLocation(model.DateLayout, row[0], time.Local)
	if err != nil {
		return entry, fmt.Errorf("bad date %q: %w", row[0], err)
	}

	floats := []struct {
		dst  *float64
		idx  int
		name string
	}{
		{&entry.CarKm, 1, "car_km"},
		{&entry.BusKm, 2, "bus_km"},
		{&entry.BikeWalkKm, 3, "bike_or_walk_km"},
		{&entry.ElectricityKwh, 4, "electricity_kwh"},
	}
	for _, f := range floats {
		*f.dst, err = strconv.ParseFloat(row[f.idx], 64)
		if err != nil {
			return entry, fmt.Errorf("bad %s %q: %w", f.name, row[f.idx], err)
		}
	}

	ints := []struct {
		dst  *int
		idx  int
		name string
	}{
		{&entry.MeatMeals, 5, "meat_meals"},
		{&entry.VegMeals, 6, "veg_meals"},
		{&entry.PlasticItemsAvoided, 7, "plastic_items_avoided"},
	}
	for _, f := range ints {
		*f.dst, err = strconv.Atoi(row[f.idx])
		if err != nil {
			return entry, fmt.Errorf("bad %s %q: %w", f.name, row[f.idx], err)
		}
	}

	return entry, nil
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
