package tui

import (
	"fmt"
	"strings"

	"ecolog/internal/cli"
	"ecolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewHistory() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(a.records) == 0 {
		return muted.Render("  No entries logged yet. Press [l] to log a day.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	goodStyle := lipgloss.NewStyle().Foreground(t.Green)
	badStyle := lipgloss.NewStyle().Foreground(t.Red)

	visible := a.height - 10
	if visible < 5 {
		visible = 5
	}

	// Newest first; keep the cursor in view
	n := len(a.records)
	offset := 0
	if a.historyCursor >= visible {
		offset = a.historyCursor - visible + 1
	}

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %-4s %7s %7s %7s %7s %9s %10s",
		"Date", "Day", "Car", "Bus", "kWh", "Meals", "Total", "Saved")))
	b.WriteString("\n")

	for i := offset; i < n && i-offset < visible; i++ {
		rec := a.records[n-1-i] // newest first

		saved := cli.FormatSignedKg(rec.SavingsKg)
		savedStyled := goodStyle.Render(fmt.Sprintf("%10s", saved))
		if rec.SavingsKg < 0 {
			savedStyled = badStyle.Render(fmt.Sprintf("%10s", saved))
		}

		line := fmt.Sprintf("%-12s %-4s %7s %7s %7s %3d/%-3d %9s ",
			rec.DateKey(),
			cli.FormatDayOfWeek(int(rec.Date.Weekday())),
			cli.FormatQty(rec.CarKm),
			cli.FormatQty(rec.BusKm),
			cli.FormatQty(rec.ElectricityKwh),
			rec.MeatMeals, rec.VegMeals,
			cli.FormatKg(rec.TotalKg),
		)

		b.WriteString("  ")
		if i == a.historyCursor {
			b.WriteString(selStyle.Render(line) + savedStyled)
		} else {
			b.WriteString(rowStyle.Render(line) + savedStyled)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  %d entries · j/k to move", n)))

	return b.String()
}
