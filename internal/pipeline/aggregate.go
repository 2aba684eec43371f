// Package pipeline computes the derived views over logged emission records:
// summaries, gap-filled trend series, weekly rollups, and category breakdowns.
package pipeline

import (
	"sort"
	"time"

	"ecolog/internal/calc"
	"ecolog/internal/config"
	"ecolog/internal/model"
)

// Summarize computes the summary shown by `ecolog summary` from records
// within the time range. BaselineKg in the result is the mean of the
// per-record baselines the records were logged with.
func Summarize(records []model.EmissionRecord, since, until time.Time) model.SummaryStats {
	filtered := FilterByTime(records, since, until)

	var stats model.SummaryStats
	for i, rec := range filtered {
		stats.Count++
		stats.TotalKg += rec.TotalKg
		stats.SavedKg += rec.SavingsKg
		stats.BaselineKg += rec.BaselineKg

		if i == 0 || rec.TotalKg < stats.BestDayKg {
			stats.BestDay = rec.Date
			stats.BestDayKg = rec.TotalKg
		}
		if i == 0 || rec.TotalKg > stats.WorstDayKg {
			stats.WorstDay = rec.Date
			stats.WorstDayKg = rec.TotalKg
		}

		if rec.SavingsKg >= 0 {
			stats.DaysUnder++
		} else {
			stats.DaysOver++
		}
	}

	if stats.Count > 0 {
		stats.AverageKg = stats.TotalKg / float64(stats.Count)
		baselineSum := stats.BaselineKg
		stats.BaselineKg = baselineSum / float64(stats.Count)
		if baselineSum > 0 {
			stats.SavedPct = stats.SavedKg / baselineSum
		}
	}

	stats.StreakDays = Streak(filtered)
	return stats
}

// FillDays builds the per-day trend series over [since, until], one point per
// calendar day. Days without a record show as zero so charts render gaps.
func FillDays(records []model.EmissionRecord, since, until time.Time) []model.DailyPoint {
	filtered := FilterByTime(records, since, until)

	byDay := make(map[string]model.EmissionRecord, len(filtered))
	for _, rec := range filtered {
		byDay[rec.DateKey()] = rec
	}

	var points []model.DailyPoint
	day := truncateDay(since)
	end := truncateDay(until)
	for !day.After(end) {
		p := model.DailyPoint{Date: day}
		if rec, ok := byDay[day.Format(model.DateLayout)]; ok {
			p.TotalKg = rec.TotalKg
			p.Logged = true
		}
		points = append(points, p)
		day = day.AddDate(0, 0, 1)
	}
	return points
}

// AggregateWeeks rolls records up into calendar weeks starting Monday,
// oldest first.
func AggregateWeeks(records []model.EmissionRecord) []model.WeeklyStats {
	weekMap := make(map[string]*model.WeeklyStats)

	for _, rec := range records {
		start := weekStart(rec.Date)
		key := start.Format(model.DateLayout)
		ws, ok := weekMap[key]
		if !ok {
			ws = &model.WeeklyStats{WeekStart: start}
			weekMap[key] = ws
		}
		ws.Days++
		ws.TotalKg += rec.TotalKg
		ws.SavedKg += rec.SavingsKg
	}

	weeks := make([]model.WeeklyStats, 0, len(weekMap))
	for _, ws := range weekMap {
		weeks = append(weeks, *ws)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart.Before(weeks[j].WeekStart)
	})
	return weeks
}

// categoryUnits maps categories to their display units.
var categoryUnits = map[config.Category]string{
	config.CarKm:          "km",
	config.BusKm:          "km",
	config.BikeWalkKm:     "km",
	config.ElectricityKwh: "kWh",
	config.MeatMeal:       "meals",
	config.VegMeal:        "meals",
	config.PlasticAvoided: "items",
}

// Breakdown sums each category's contribution across records and computes
// its share of gross (positive) emissions. The plastic-avoided credit shows
// as a negative row with a negative share.
func Breakdown(records []model.EmissionRecord, factors config.Factors) ([]model.CategoryStats, error) {
	quantities := make(map[config.Category]float64)
	kg := make(map[config.Category]float64)

	for _, rec := range records {
		byCategory, err := calc.CategoryKg(rec.ActivityEntry, factors)
		if err != nil {
			return nil, err
		}
		for cat, v := range byCategory {
			kg[cat] += v
		}
		quantities[config.CarKm] += rec.CarKm
		quantities[config.BusKm] += rec.BusKm
		quantities[config.BikeWalkKm] += rec.BikeWalkKm
		quantities[config.ElectricityKwh] += rec.ElectricityKwh
		quantities[config.MeatMeal] += float64(rec.MeatMeals)
		quantities[config.VegMeal] += float64(rec.VegMeals)
		quantities[config.PlasticAvoided] += float64(rec.PlasticItemsAvoided)
	}

	gross := 0.0
	for _, v := range kg {
		if v > 0 {
			gross += v
		}
	}

	stats := make([]model.CategoryStats, 0, len(config.Categories))
	for _, cat := range config.Categories {
		cs := model.CategoryStats{
			Category: string(cat),
			Quantity: quantities[cat],
			Unit:     categoryUnits[cat],
			TotalKg:  kg[cat],
		}
		if gross > 0 {
			cs.SharePercent = kg[cat] / gross * 100
		}
		stats = append(stats, cs)
	}

	// Largest contributors first; the plastic credit lands last.
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalKg > stats[j].TotalKg
	})
	return stats, nil
}

// Streak counts consecutive most-recent calendar days at or below baseline.
// Records must be ordered by date ascending, as History returns them.
func Streak(records []model.EmissionRecord) int {
	streak := 0
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		if rec.SavingsKg < 0 {
			break
		}
		if streak > 0 {
			next := records[i+1]
			if !rec.Date.AddDate(0, 0, 1).Equal(truncateDay(next.Date)) {
				break
			}
		}
		streak++
	}
	return streak
}

// FilterByTime returns records whose date falls within [since, until].
// Zero bounds are open.
func FilterByTime(records []model.EmissionRecord, since, until time.Time) []model.EmissionRecord {
	if since.IsZero() && until.IsZero() {
		return records
	}

	var result []model.EmissionRecord
	for _, rec := range records {
		if !since.IsZero() && rec.Date.Before(truncateDay(since)) {
			continue
		}
		if !until.IsZero() && rec.Date.After(truncateDay(until)) {
			continue
		}
		result = append(result, rec)
	}
	return result
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func weekStart(t time.Time) time.Time {
	d := truncateDay(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}
