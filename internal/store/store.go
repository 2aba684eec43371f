// Package store provides the SQLite-backed log of emission records.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ecolog/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrUnavailable marks failures of the underlying database: the file cannot
// be opened, written, or read. Callers surface it and leave prior state
// untouched; there are no retries at this layer.
var ErrUnavailable = errors.New("storage unavailable")

// Store is the durable per-date log of emission records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the log database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("%w: creating data dir: %v", ErrUnavailable, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening db: %v", ErrUnavailable, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: creating schema: %v", ErrUnavailable, err)
	}

	return &Store{db: db}, nil
}

// Close closes the log database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert inserts or replaces the record for its date. Re-logging a date
// overwrites the previous record (last-write-wins); writing the same record
// twice is a no-op after the first. The single statement commits atomically,
// so a crash mid-write never exposes a partial row.
func (s *Store) Upsert(rec model.EmissionRecord) error {
	loggedAt := rec.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`INSERT INTO logs
		(date, car_km, bus_km, bike_walk_km, electricity_kwh,
		 meat_meals, veg_meals, plastic_items_avoided,
		 total_kg, baseline_kg, savings_kg, logged_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
		 car_km = excluded.car_km,
		 bus_km = excluded.bus_km,
		 bike_walk_km = excluded.bike_walk_km,
		 electricity_kwh = excluded.electricity_kwh,
		 meat_meals = excluded.meat_meals,
		 veg_meals = excluded.veg_meals,
		 plastic_items_avoided = excluded.plastic_items_avoided,
		 total_kg = excluded.total_kg,
		 baseline_kg = excluded.baseline_kg,
		 savings_kg = excluded.savings_kg,
		 logged_at = excluded.logged_at`,
		rec.DateKey(), rec.CarKm, rec.BusKm, rec.BikeWalkKm, rec.ElectricityKwh,
		rec.MeatMeals, rec.VegMeals, rec.PlasticItemsAvoided,
		rec.TotalKg, rec.BaselineKg, rec.SavingsKg,
		loggedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("%w: upserting %s: %v", ErrUnavailable, rec.DateKey(), err)
	}
	return nil
}

// History returns all records ordered by date ascending. An empty store
// yields an empty slice.
func (s *Store) History() ([]model.EmissionRecord, error) {
	rows, err := s.db.Query(`SELECT
		date, car_km, bus_km, bike_walk_km, electricity_kwh,
		meat_meals, veg_meals, plastic_items_avoided,
		total_kg, baseline_kg, savings_kg, logged_at
		FROM logs ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: reading history: %v", ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.EmissionRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading history: %v", ErrUnavailable, err)
	}
	return records, nil
}

// Get returns the record for one date, or found=false if none is logged.
func (s *Store) Get(date time.Time) (model.EmissionRecord, bool, error) {
	rows, err := s.db.Query(`SELECT
		date, car_km, bus_km, bike_walk_km, electricity_kwh,
		meat_meals, veg_meals, plastic_items_avoided,
		total_kg, baseline_kg, savings_kg, logged_at
		FROM logs WHERE date = ?`, date.Format(model.DateLayout))
	if err != nil {
		return model.EmissionRecord{}, false, fmt.Errorf("%w: reading record: %v", ErrUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.EmissionRecord{}, false, fmt.Errorf("%w: reading record: %v", ErrUnavailable, err)
		}
		return model.EmissionRecord{}, false, nil
	}

	rec, err := scanRecord(rows)
	if err != nil {
		return model.EmissionRecord{}, false, err
	}
	return rec, true, nil
}

// Aggregate returns the total and mean of total_kg across all records.
// An empty store yields zeros; the average is never computed by dividing
// by zero.
func (s *Store) Aggregate() (model.AggregateStats, error) {
	var stats model.AggregateStats
	err := s.db.QueryRow(`SELECT
		COUNT(*),
		COALESCE(SUM(total_kg), 0),
		COALESCE(AVG(total_kg), 0)
		FROM logs`).Scan(&stats.Count, &stats.TotalKg, &stats.AverageKg)
	if err != nil {
		return model.AggregateStats{}, fmt.Errorf("%w: aggregating: %v", ErrUnavailable, err)
	}
	return stats, nil
}

// Count returns the number of logged days.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM logs").Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: counting: %v", ErrUnavailable, err)
	}
	return count, nil
}

func scanRecord(rows *sql.Rows) (model.EmissionRecord, error) {
	var rec model.EmissionRecord
	var dateStr, loggedStr string

	err := rows.Scan(
		&dateStr, &rec.CarKm, &rec.BusKm, &rec.BikeWalkKm, &rec.ElectricityKwh,
		&rec.MeatMeals, &rec.VegMeals, &rec.PlasticItemsAvoided,
		&rec.TotalKg, &rec.BaselineKg, &rec.SavingsKg, &loggedStr,
	)
	if err != nil {
		return model.EmissionRecord{}, fmt.Errorf("%w: scanning record: %v", ErrUnavailable, err)
	}

	rec.Date, err = time.ParseInLocation(model.DateLayout, dateStr, time.Local)
	if err != nil {
		return model.EmissionRecord{}, fmt.Errorf("%w: bad date %q: %v", ErrUnavailable, dateStr, err)
	}
	rec.LoggedAt, _ = time.Parse(time.RFC3339, loggedStr)

	return rec, nil
}
