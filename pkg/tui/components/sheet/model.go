// Package sheet renders a bottom-anchored panel whose handle can be dragged
// with the mouse, tapped, or toggled from the keyboard.
package sheet

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	core "tableflip.dev/sommnus/pkg/sheet"
	"tableflip.dev/sommnus/pkg/tui/events"
	"tableflip.dev/sommnus/pkg/tui/theme"
	"tableflip.dev/sommnus/pkg/tui/ui"
	"tableflip.dev/sommnus/pkg/tui/uiutil"
)

const (
	// peekRows stay visible while closed: the handle and the title.
	peekRows = 2
	minRows  = peekRows + 1
)

// Options configures the sheet component.
type Options struct {
	ID events.ComponentID
	// Open is the initial state.
	Open bool
	// RowUnits converts one terminal row into drag units. Defaults to 10.
	RowUnits float64
	Theme    theme.SheetTheme
	// Controller options such as the thresholds.
	Controller []core.Option
	// Now overrides the clock used by the settle animation.
	Now func() time.Time
}

// Model wires a core.Controller to terminal mouse input.
type Model struct {
	id       events.ComponentID
	ctl      *core.Controller
	rowUnits float64
	th       theme.SheetTheme
	now      func() time.Time

	width  int
	height int
	bottom int

	title string
	body  []string

	settling   bool
	settleFrom float64
	settleTo   float64
	settleAt   time.Time
}

var _ ui.Component = (*Model)(nil)

// New builds a sheet component.
func New(opts Options) *Model {
	units := opts.RowUnits
	if units <= 0 {
		units = 10
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Model{
		id:       opts.ID,
		ctl:      core.New(opts.Open, opts.Controller...),
		rowUnits: units,
		th:       opts.Theme,
		now:      now,
		height:   minRows,
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Controller exposes the gesture state machine.
func (m *Model) Controller() *core.Controller { return m.ctl }

// IsOpen reports the committed state.
func (m *Model) IsOpen() bool { return m.ctl.IsOpen() }

// SetSize sets the width and the fully open height in rows.
func (m *Model) SetSize(width, height int) {
	if height < minRows {
		height = minRows
	}
	m.width = width
	m.height = height
}

// SetBottom records the screen row just below the sheet, for mouse hit
// testing.
func (m *Model) SetBottom(row int) { m.bottom = row }

// SetContent replaces the title row and the body lines.
func (m *Model) SetContent(title string, body []string) {
	m.title = title
	m.body = body
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update maps pointer input on the handle to the gesture state machine.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch v := msg.(type) {
	case tea.MouseClickMsg:
		mouse := v.Mouse()
		if mouse.Button == tea.MouseLeft && mouse.Y == m.HandleRow() {
			m.settling = false
			m.ctl.Start(m.units(mouse.Y))
		}
	case tea.MouseMotionMsg:
		if !m.ctl.IsDragging() {
			return m, nil
		}
		mouse := v.Mouse()
		if mouse.Y < 0 || mouse.Y >= m.bottom {
			return m, m.release(false)
		}
		m.ctl.Move(m.units(mouse.Y))
	case tea.MouseReleaseMsg:
		if m.ctl.IsDragging() {
			return m, m.release(true)
		}
	case tea.BlurMsg:
		if m.ctl.IsDragging() {
			return m, m.release(false)
		}
	case events.FrameMsg:
		if v.Component != m.id || !m.settling {
			return m, nil
		}
		at := v.At
		if at.IsZero() {
			at = m.now()
		}
		if m.progress(at) >= 1 {
			m.settling = false
			return m, nil
		}
		return m, events.FrameCmd(m.id)
	}
	return m, nil
}

// Toggle flips the sheet from the keyboard.
func (m *Model) Toggle() tea.Cmd {
	if m.ctl.IsDragging() {
		return nil
	}
	from := m.shift()
	m.ctl.Toggle()
	return tea.Batch(m.settle(from), events.SheetToggleCmd(m.id, m.ctl.IsOpen(), true))
}

// release ends the drag. A pointer release that did not move far enough to
// count as a drag is also a tap.
func (m *Model) release(tap bool) tea.Cmd {
	from := m.dragShift()
	changed := m.ctl.End()
	tapped := false
	if !changed && tap {
		tapped = m.ctl.Tap()
	}
	cmds := []tea.Cmd{m.settle(from)}
	if changed || tapped {
		cmds = append(cmds, events.SheetToggleCmd(m.id, m.ctl.IsOpen(), tapped))
	}
	return tea.Batch(cmds...)
}

func (m *Model) settle(from float64) tea.Cmd {
	to := m.restShift()
	if m.ctl.Transition() <= 0 || from == to {
		m.settling = false
		return nil
	}
	m.settling = true
	m.settleFrom = from
	m.settleTo = to
	m.settleAt = m.now()
	return events.FrameCmd(m.id)
}

// progress returns the eased settle progress at t in [0, 1].
func (m *Model) progress(t time.Time) float64 {
	d := m.ctl.Transition()
	if d <= 0 {
		return 1
	}
	p := float64(t.Sub(m.settleAt)) / float64(d)
	return math.Max(0, math.Min(1, p))
}

// Shift is how many rows the sheet is pushed down from fully open.
func (m *Model) Shift() int {
	return int(math.Round(m.shift()))
}

func (m *Model) shift() float64 {
	if m.ctl.IsDragging() {
		return m.dragShift()
	}
	if m.settling {
		p := m.progress(m.now())
		eased := 1 - math.Pow(1-p, 3)
		return m.settleFrom + (m.settleTo-m.settleFrom)*eased
	}
	return m.restShift()
}

func (m *Model) dragShift() float64 {
	h := float64(m.height) * m.rowUnits
	peek := float64(peekRows) * m.rowUnits
	return m.ctl.Translate(h, peek) / m.rowUnits
}

func (m *Model) restShift() float64 {
	if m.ctl.IsOpen() {
		return 0
	}
	return float64(m.height - peekRows)
}

// Visible is the number of rows currently shown.
func (m *Model) Visible() int {
	return uiutil.Clamp(m.height-m.Shift(), 0, m.height)
}

// HandleRow is the screen row of the handle.
func (m *Model) HandleRow() int {
	return m.bottom - m.Visible()
}

// Settling reports whether the release animation is running.
func (m *Model) Settling() bool { return m.settling }

func (m *Model) units(row int) float64 {
	return float64(row) * m.rowUnits
}

// View renders the visible part of the sheet, handle first.
func (m *Model) View() string {
	glyph := "▼"
	if !m.ctl.IsOpen() {
		glyph = "▲"
	}
	bar := strings.Repeat("─", uiutil.Clamp(m.width/2-2, 2, 30))
	handleStyle := m.th.Handle
	if m.ctl.IsDragging() {
		handleStyle = m.th.Dragging
	}
	lines := make([]string, 0, m.height)
	lines = append(lines, uiutil.Center(handleStyle.Render(bar+" "+glyph+" "+bar), m.width))
	lines = append(lines, m.th.Body.Render(m.title))
	for _, l := range m.body {
		lines = append(lines, m.th.Body.Render(l))
	}
	lines = uiutil.Fit(lines, m.height)
	return strings.Join(lines[:m.Visible()], "\n")
}
