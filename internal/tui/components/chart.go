package components

import (
	"fmt"
	"math"
	"strings"

	"ecolog/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a column chart with a y-axis and sparse x-axis labels.
// Falls back to a sparkline when the area is too small.
func BarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	if width < 15 || height < 3 {
		return Sparkline(values, t.Accent)
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	ceiling := niceCeiling(maxVal)

	yLabelW := len(chartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// Downsample when there are more days than columns
	n := len(values)
	if n > chartW {
		sampled := make([]float64, chartW)
		sampledLabels := make([]string, chartW)
		for i := range sampled {
			srcIdx := i * (n - 1) / (chartW - 1)
			sampled[i] = values[srcIdx]
			if len(labels) == n {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		values = sampled
		labels = sampledLabels
		n = chartW
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)

	var b strings.Builder

	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = chartLabel(ceiling)
		} else if row == (height+1)/2 {
			label = chartLabel(ceiling / 2)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for _, v := range values {
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render("█"))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * float64(len(blocks)-1))
				if idx < 1 {
					idx = 1
				}
				if idx >= len(blocks) {
					idx = len(blocks) - 1
				}
				b.WriteString(barStyle.Render(string(blocks[idx])))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	// X-axis line with 0 label
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", n)))

	// Sparse x-axis labels
	if len(labels) == n && n > 0 {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = ' '
		}
		step := 1
		if len(labels[0]) > 0 {
			step = (len(labels[0]) + 3)
		}
		lastEnd := -1
		for i := 0; i < n; i += step {
			lbl := labels[i]
			end := i + len(lbl)
			if i <= lastEnd || end > n {
				continue
			}
			copy(buf[i:end], lbl)
			lastEnd = end + 1
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// niceCeiling rounds maxVal up to a clean chart ceiling (1/2/5 × 10^k).
func niceCeiling(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	exp := math.Floor(math.Log10(maxVal))
	base := math.Pow(10, exp)
	for _, m := range []float64{1, 2, 5, 10} {
		if maxVal <= m*base {
			return m * base
		}
	}
	return 10 * base
}

func chartLabel(v float64) string {
	if v >= 100 || v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
