// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatKg formats an emission value at the fixed 2-decimal display
// precision. All internal arithmetic stays unrounded; this is the
// presentation boundary.
func FormatKg(kg float64) string {
	return fmt.Sprintf("%.2f kg", kg)
}

// FormatSignedKg formats a savings value with an explicit sign.
// e.g., 3.4 -> "+3.40 kg", -1.2 -> "-1.20 kg"
func FormatSignedKg(kg float64) string {
	if kg >= 0 {
		return fmt.Sprintf("+%.2f kg", kg)
	}
	return fmt.Sprintf("%.2f kg", kg)
}

// FormatQty formats a raw activity quantity, trimming a trailing ".0".
func FormatQty(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatDate formats an entry date.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatShare formats a 0-100 share with sign for credit rows.
// e.g., 42.3 -> "42.3%", -1.8 -> "-1.8%"
func FormatShare(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatDelta formats the difference between two kg values with a sign.
func FormatDelta(current, previous float64) string {
	return FormatSignedKg(current - previous)
}
