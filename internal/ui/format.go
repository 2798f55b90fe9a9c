package ui

import (
	"strings"

	"github.com/dustin/go-humanize"

	"rankfield/internal/core"
)

// FormatGradient renders a gradient norm for display. Values above the
// divergence threshold read as "NaN" by convention; the stored metric is
// never mutated.
func FormatGradient(g float64) string {
	if g > core.DivergentGradient {
		return "NaN"
	}
	if g >= 100 {
		return humanize.SIWithDigits(g, 1, "")
	}
	return humanize.CommafWithDigits(g, 3)
}

// FormatLoss renders a loss value.
func FormatLoss(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// FormatMemory renders memory pressure against the 80 GB device ceiling.
func FormatMemory(gb float64) string {
	return humanize.CommafWithDigits(gb, 1) + " / 80 GB"
}

// FormatScore renders a capability score.
func FormatScore(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}

// wrapText splits s into lines of at most width characters, breaking on
// spaces. Words longer than width get a line of their own.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
