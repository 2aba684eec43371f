package model

import "time"

// AggregateStats holds the store-level aggregate across all records.
type AggregateStats struct {
	TotalKg   float64
	AverageKg float64
	Count     int
}

// SummaryStats holds the richer aggregate shown by `ecolog summary`.
type SummaryStats struct {
	Count      int
	TotalKg    float64
	AverageKg  float64
	BaselineKg float64
	SavedKg    float64 // sum of per-day savings, may be negative

	BestDay    time.Time // lowest total
	BestDayKg  float64
	WorstDay   time.Time // highest total
	WorstDayKg float64
	DaysUnder  int     // days at or below baseline
	DaysOver   int
	StreakDays int     // consecutive most-recent days at or below baseline
	SavedPct   float64 // SavedKg vs Count*BaselineKg, 0-1
}

// DailyPoint is one point in the gap-filled trend series.
type DailyPoint struct {
	Date    time.Time
	TotalKg float64
	Logged  bool // false for days with no record (rendered as zero)
}

// WeeklyStats holds per-ISO-week totals for the trend views.
type WeeklyStats struct {
	WeekStart time.Time
	Days      int
	TotalKg   float64
	SavedKg   float64
}

// CategoryStats holds one activity category's share of total emissions.
type CategoryStats struct {
	Category     string
	Quantity     float64
	Unit         string
	TotalKg      float64
	SharePercent float64
}
