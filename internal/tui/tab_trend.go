package tui

import (
	"fmt"

	"ecolog/internal/tui/components"
	"ecolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewTrend() string {
	t := theme.Active

	if a.stats.Count == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		return muted.Render("  No entries in the selected window.")
	}

	values := make([]float64, len(a.points))
	labels := make([]string, len(a.points))
	for i, p := range a.points {
		if p.TotalKg > 0 {
			values[i] = p.TotalKg
		}
		labels[i] = p.Date.Format("01-02")
	}

	chartH := a.height - 12
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 16 {
		chartH = 16
	}

	chart := components.BarChart(values, labels, a.width-6, chartH)
	return components.ContentCard(fmt.Sprintf("Daily CO₂ (kg) · last %dd", a.days), chart, a.width-2)
}
