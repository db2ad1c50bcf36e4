// Package overlay draws a dialog on top of an already rendered view.
package overlay

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/sommnus/pkg/tui/uiutil"
)

// Placement positions the dialog within the view. Zero values mean top left.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
}

// Centered places the dialog in the middle of the view.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose draws fg over bg, a view of width x height cells. Background rows
// the dialog covers lose their own styling and render with backdrop.
func Compose(bg string, width, height int, fg string, at Placement, backdrop lipgloss.Style) string {
	lines := uiutil.Fit(strings.Split(bg, "\n"), height)
	if fg == "" || width <= 0 || height <= 0 {
		return strings.Join(lines, "\n")
	}

	dialog := strings.Split(fg, "\n")
	w := 0
	for _, l := range dialog {
		w = max(w, lipgloss.Width(l))
	}
	w = min(w, width)
	h := min(len(dialog), height)

	x := offset(width-w, at.Horizontal)
	y := offset(height-h, at.Vertical)
	for row := range h {
		plain := []rune(pad(uiutil.Plain(lines[y+row]), width))
		left := string(plain[:x])
		right := string(plain[x+w:])
		lines[y+row] = backdrop.Render(left) + pad(dialog[row], w) + backdrop.Render(right)
	}
	return strings.Join(lines, "\n")
}

func offset(room int, pos lipgloss.Position) int {
	if room <= 0 {
		return 0
	}
	return uiutil.Clamp(int(math.Round(float64(room)*float64(pos))), 0, room)
}

// pad fits s to exactly width cells.
func pad(s string, width int) string {
	cur := lipgloss.Width(s)
	if cur >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-cur)
}
