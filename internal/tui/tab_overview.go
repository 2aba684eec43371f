package tui

import (
	"fmt"
	"strings"
	"time"

	"ecolog/internal/cli"
	"ecolog/internal/model"
	"ecolog/internal/pipeline"
	"ecolog/internal/tui/components"
	"ecolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewOverview() string {
	t := theme.Active

	if a.stats.Count == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		return muted.Render("  No entries in the selected window. Press [l] to log a day.")
	}

	var b strings.Builder

	// Top metric cards
	todayVal := "—"
	todaySub := "not logged"
	for _, rec := range a.records {
		if rec.DateKey() == time.Now().Format(model.DateLayout) {
			todayVal = cli.FormatKg(rec.TotalKg)
			todaySub = cli.FormatSignedKg(rec.SavingsKg) + " vs baseline"
		}
	}

	saved := cli.FormatSignedKg(a.stats.SavedKg)
	cards := []struct{ Label, Value, Sub string }{
		{"Today", todayVal, todaySub},
		{"Avg / day", cli.FormatKg(a.stats.AverageKg), fmt.Sprintf("baseline %s", cli.FormatKg(a.stats.BaselineKg))},
		{fmt.Sprintf("Saved (%dd)", a.days), saved, cli.FormatPercent(a.stats.SavedPct)},
		{"Streak", fmt.Sprintf("%dd", a.stats.StreakDays), "under baseline"},
	}
	b.WriteString(components.MetricCardRow(cards, a.width-2))
	b.WriteString("\n\n")

	// Daily sparkline
	values := make([]float64, len(a.points))
	for i, p := range a.points {
		if p.TotalKg > 0 {
			values[i] = p.TotalKg
		}
	}
	spark := components.Sparkline(values, t.Accent)
	b.WriteString(components.ContentCard(fmt.Sprintf("Daily CO₂ · last %dd", a.days), spark, a.width-2))
	b.WriteString("\n\n")

	// Category breakdown
	categories, err := pipeline.Breakdown(pipeline.FilterByTime(a.records, time.Now().AddDate(0, 0, -(a.days-1)), time.Now()), a.factors)
	if err == nil {
		var rows strings.Builder
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		for _, c := range categories {
			if c.TotalKg == 0 {
				continue
			}
			rows.WriteString(fmt.Sprintf("%s %s  %s\n",
				labelStyle.Render(fmt.Sprintf("%-22s", c.Category)),
				valStyle.Render(fmt.Sprintf("%9s", cli.FormatKg(c.TotalKg))),
				labelStyle.Render(cli.FormatShare(c.SharePercent))))
		}
		body := strings.TrimRight(rows.String(), "\n")
		if body != "" {
			b.WriteString(components.ContentCard("By category", body, a.width-2))
		}
	}

	return b.String()
}
