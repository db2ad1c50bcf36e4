// Package uiutil holds small text helpers shared by the TUI components.
package uiutil

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Plain removes ANSI escape sequences from s.
func Plain(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Spread places left and right on one line of the given width, padding the
// gap with spaces. Styled strings are measured by their printable width. At
// least one space separates the two when they do not fit.
func Spread(left, right string, width int) string {
	gap := width - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// Center pads s on both sides to width.
func Center(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Fit pads or cuts lines so exactly height lines are returned.
func Fit(lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(lines) >= height {
		return lines[:height]
	}
	out := make([]string, height)
	copy(out, lines)
	return out
}

// Clamp bounds value to [lower, upper].
func Clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
