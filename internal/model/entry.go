// Package model defines domain types for ecolog entries and records.
package model

import "time"

// DateLayout is the canonical format for entry dates. Entries are keyed by
// calendar day; time-of-day is never stored.
const DateLayout = "2006-01-02"

// ActivityEntry holds one day's raw activity quantities as submitted by the
// user. Missing activities are simply zero.
type ActivityEntry struct {
	Date time.Time

	CarKm          float64
	BusKm          float64
	BikeWalkKm     float64
	ElectricityKwh float64

	MeatMeals           int
	VegMeals            int
	PlasticItemsAvoided int
}

// EmissionRecord is the computed, persisted result for one ActivityEntry.
// It carries the raw quantities alongside the derived figures so history and
// exports never need to re-run the calculator.
type EmissionRecord struct {
	ActivityEntry

	TotalKg    float64
	BaselineKg float64
	SavingsKg  float64 // BaselineKg - TotalKg; negative when the day exceeded baseline

	LoggedAt time.Time
}

// DateKey returns the entry date formatted as the storage key.
func (e ActivityEntry) DateKey() string {
	return e.Date.Format(DateLayout)
}
