package store

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ecolog/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "ecolog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func testRecord(t *testing.T, date string, totalKg float64) model.EmissionRecord {
	t.Helper()
	d, err := time.ParseInLocation(model.DateLayout, date, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return model.EmissionRecord{
		ActivityEntry: model.ActivityEntry{
			Date:                d,
			CarKm:               10,
			BusKm:               2.5,
			ElectricityKwh:      4,
			MeatMeals:           1,
			VegMeals:            1,
			PlasticItemsAvoided: 2,
		},
		TotalKg:    totalKg,
		BaselineKg: 10.4,
		SavingsKg:  10.4 - totalKg,
	}
}

func TestUpsertAndGet(t *testing.T) {
	st := openTestStore(t)

	want := testRecord(t, "2026-08-10", 9.5)
	if err := st.Upsert(want); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, found, err := st.Get(want.Date)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found {
		t.Fatal("Get: record not found after Upsert")
	}
	if got.DateKey() != "2026-08-10" {
		t.Errorf("DateKey = %q, want 2026-08-10", got.DateKey())
	}
	if got.CarKm != 10 || got.BusKm != 2.5 || got.MeatMeals != 1 || got.PlasticItemsAvoided != 2 {
		t.Errorf("activity fields not round-tripped: %+v", got.ActivityEntry)
	}
	if got.TotalKg != 9.5 || got.BaselineKg != 10.4 {
		t.Errorf("totals not round-tripped: total=%v baseline=%v", got.TotalKg, got.BaselineKg)
	}
	if got.LoggedAt.IsZero() {
		t.Error("LoggedAt not set on write")
	}
}

func TestGetMissing(t *testing.T) {
	st := openTestStore(t)

	_, found, err := st.Get(time.Now())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("Get on empty store: found = true")
	}
}

func TestUpsertLastWriteWins(t *testing.T) {
	st := openTestStore(t)

	first := testRecord(t, "2026-08-11", 9.5)
	if err := st.Upsert(first); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}

	second := testRecord(t, "2026-08-11", 3.0)
	second.CarKm = 0
	second.VegMeals = 3
	if err := st.Upsert(second); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	count, err := st.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("Count = %d, want 1 after re-logging the same date", count)
	}

	got, found, err := st.Get(second.Date)
	if err != nil || !found {
		t.Fatalf("Get: found=%v err=%v", found, err)
	}
	if got.TotalKg != 3.0 || got.CarKm != 0 || got.VegMeals != 3 {
		t.Errorf("stale fields survived re-log: %+v", got)
	}
}

func TestUpsertIdempotent(t *testing.T) {
	st := openTestStore(t)

	rec := testRecord(t, "2026-08-12", 7.0)
	rec.LoggedAt = time.Date(2026, 8, 12, 20, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := st.Upsert(rec); err != nil {
			t.Fatalf("Upsert #%d: %v", i+1, err)
		}
	}

	records, err := st.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("History = %d records, want 1", len(records))
	}
	if !records[0].LoggedAt.Equal(rec.LoggedAt) {
		t.Errorf("LoggedAt = %v, want %v", records[0].LoggedAt, rec.LoggedAt)
	}
}

func TestHistoryOrderedByDate(t *testing.T) {
	st := openTestStore(t)

	// inserted out of order on purpose
	for _, d := range []string{"2026-08-15", "2026-08-13", "2026-08-14"} {
		if err := st.Upsert(testRecord(t, d, 5)); err != nil {
			t.Fatalf("Upsert %s: %v", d, err)
		}
	}

	records, err := st.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	want := []string{"2026-08-13", "2026-08-14", "2026-08-15"}
	if len(records) != len(want) {
		t.Fatalf("History = %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		if records[i].DateKey() != w {
			t.Errorf("records[%d] = %s, want %s", i, records[i].DateKey(), w)
		}
	}
}

func TestHistoryEmpty(t *testing.T) {
	st := openTestStore(t)

	records, err := st.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("History on empty store = %d records, want 0", len(records))
	}
}

func TestAggregate(t *testing.T) {
	st := openTestStore(t)

	stats, err := st.Aggregate()
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if stats.Count != 0 || stats.TotalKg != 0 || stats.AverageKg != 0 {
		t.Errorf("empty Aggregate = %+v, want zeros", stats)
	}

	for i, kg := range []float64{4.0, 8.0, 12.0} {
		d := time.Date(2026, 8, 20+i, 0, 0, 0, 0, time.Local).Format(model.DateLayout)
		if err := st.Upsert(testRecord(t, d, kg)); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	stats, err = st.Aggregate()
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if stats.Count != 3 {
		t.Errorf("Count = %d, want 3", stats.Count)
	}
	if math.Abs(stats.TotalKg-24.0) > 1e-9 {
		t.Errorf("TotalKg = %v, want 24.0", stats.TotalKg)
	}
	if math.Abs(stats.AverageKg-8.0) > 1e-9 {
		t.Errorf("AverageKg = %v, want 8.0", stats.AverageKg)
	}
}

func TestOpenBadPath(t *testing.T) {
	// a regular file where the data dir should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := Open(filepath.Join(blocker, "sub", "ecolog.db"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Open under a file path = %v, want ErrUnavailable", err)
	}
}
