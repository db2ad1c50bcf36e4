// Package wheel renders a circular picker as a vertical column of rows
// centered on the selected value.
package wheel

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/sommnus/pkg/tui/events"
	"tableflip.dev/sommnus/pkg/tui/theme"
	"tableflip.dev/sommnus/pkg/tui/ui"
	"tableflip.dev/sommnus/pkg/tui/uiutil"
	core "tableflip.dev/sommnus/pkg/wheel"
)

const (
	// stepFraction is how much of the remaining distance one frame covers.
	stepFraction = 0.35
	minRadius    = 1
	maxRadius    = 4
	minWidth     = 8
)

// Model is one picker column: a label row followed by 2*radius+1 value rows.
type Model struct {
	id    events.ComponentID
	label string
	sel   *core.Selector

	radius  int
	width   int
	x, y    int
	focused bool

	th   theme.WheelTheme
	fade []lipgloss.Style
}

var _ ui.Component = (*Model)(nil)

// New returns a picker over [0, modulus) starting at initial.
func New(id events.ComponentID, label string, modulus, initial int, th theme.WheelTheme, opts ...core.Option) *Model {
	m := &Model{
		id:     id,
		label:  label,
		sel:    core.New(modulus, initial, opts...),
		radius: 2,
		width:  minWidth,
		th:     th,
	}
	m.buildFade()
	return m
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Value returns the selected value.
func (m *Model) Value() int { return m.sel.Value() }

// Selector exposes the underlying state model.
func (m *Model) Selector() *core.Selector { return m.sel }

// Focused reports whether keyboard scrolling targets this picker.
func (m *Model) Focused() bool { return m.focused }

// SetFocused toggles the focus highlight.
func (m *Model) SetFocused(focused bool) { m.focused = focused }

// SetOrigin records where the picker is drawn, for mouse hit testing.
func (m *Model) SetOrigin(x, y int) {
	m.x, m.y = x, y
}

// SetSize fits the radius into height rows (label included).
func (m *Model) SetSize(width, height int) {
	if width < minWidth {
		width = minWidth
	}
	m.width = width
	r := uiutil.Clamp((height-2)/2, minRadius, maxRadius)
	if r != m.radius {
		m.radius = r
		m.buildFade()
	}
}

// Width is the rendered width in cells.
func (m *Model) Width() int { return m.width }

// Height is the rendered height in rows.
func (m *Model) Height() int { return 2*m.radius + 2 }

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles mouse scrolling, row clicks and animation frames.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch v := msg.(type) {
	case tea.MouseWheelMsg:
		mouse := v.Mouse()
		if !m.contains(mouse.X, mouse.Y) {
			return m, nil
		}
		switch mouse.Button {
		case tea.MouseWheelUp:
			return m, m.Scroll(-1)
		case tea.MouseWheelDown:
			return m, m.Scroll(1)
		}
	case tea.MouseClickMsg:
		mouse := v.Mouse()
		if mouse.Button != tea.MouseLeft {
			return m, nil
		}
		if row, ok := m.rowAt(mouse.X, mouse.Y); ok {
			return m, tea.Batch(events.FocusCmd(m.id), m.Select(m.sel.Window(m.radius)[row].Value))
		}
	case events.FrameMsg:
		if v.Component != m.id {
			return m, nil
		}
		return m, m.step()
	}
	return m, nil
}

// Scroll moves the picker by rows items, immediately.
func (m *Model) Scroll(rows int) tea.Cmd {
	if m.sel.Scroll(float64(rows) * extentOf(m.sel)) {
		return events.WheelChangeCmd(m.id, m.sel.Value())
	}
	return nil
}

// Select animates the picker to v.
func (m *Model) Select(v int) tea.Cmd {
	if core.Mod(v, m.sel.Modulus()) == m.sel.Value() && !m.sel.Animating() {
		return nil
	}
	m.sel.Select(v)
	return events.FrameCmd(m.id)
}

// Jump moves to v without animating or emitting a change.
func (m *Model) Jump(v int) {
	m.sel.Jump(v)
}

func (m *Model) step() tea.Cmd {
	var cmds []tea.Cmd
	if m.sel.Step(stepFraction) {
		cmds = append(cmds, events.WheelChangeCmd(m.id, m.sel.Value()))
	}
	if m.sel.Animating() {
		cmds = append(cmds, events.FrameCmd(m.id))
	}
	return tea.Batch(cmds...)
}

// View renders the label and the value rows.
func (m *Model) View() string {
	label := m.th.Label
	if m.focused {
		label = m.th.Focused
	}
	lines := make([]string, 0, m.Height())
	lines = append(lines, uiutil.Center(label.Render(m.label), m.width))
	for _, item := range m.sel.Window(m.radius) {
		text := fmt.Sprintf("%02d", item.Value)
		if item.Distance == 0 {
			marked := m.th.Marker.Render("▸ ") + m.style(0).Render(text) + m.th.Marker.Render(" ◂")
			lines = append(lines, uiutil.Center(marked, m.width))
			continue
		}
		lines = append(lines, uiutil.Center(m.style(item.Distance).Render(text), m.width))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) style(distance int) lipgloss.Style {
	if distance < 0 {
		distance = -distance
	}
	if distance >= len(m.fade) {
		distance = len(m.fade) - 1
	}
	return m.fade[distance]
}

// buildFade blends the selected color toward the edge color, one style per
// distance from the selection slot.
func (m *Model) buildFade() {
	from, okFrom := colorful.MakeColor(m.th.Selected)
	to, okTo := colorful.MakeColor(m.th.Edge)
	m.fade = make([]lipgloss.Style, m.radius+1)
	for d := range m.fade {
		s := lipgloss.NewStyle()
		if okFrom && okTo {
			t := float64(d) / float64(m.radius+1)
			s = s.Foreground(from.BlendLab(to, t).Clamped())
		}
		if d == 0 {
			s = s.Bold(true)
		}
		m.fade[d] = s
	}
}

func (m *Model) contains(x, y int) bool {
	return x >= m.x && x < m.x+m.width && y >= m.y && y < m.y+m.Height()
}

// rowAt maps a screen cell to an index into Window(radius).
func (m *Model) rowAt(x, y int) (int, bool) {
	if !m.contains(x, y) {
		return 0, false
	}
	row := y - m.y - 1
	if row < 0 || row > 2*m.radius {
		return 0, false
	}
	return row, true
}

func extentOf(s *core.Selector) float64 {
	return s.CycleExtent() / float64(s.Modulus())
}
