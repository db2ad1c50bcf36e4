// Package results renders the computed candidates split into the suggested
// ones and the other options.
package results

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/sommnus/pkg/cycle"
	"tableflip.dev/sommnus/pkg/printers"
	"tableflip.dev/sommnus/pkg/tui/theme"
	"tableflip.dev/sommnus/pkg/tui/ui"
	"tableflip.dev/sommnus/pkg/tui/uiutil"
)

const indent = "  "

// Model holds the last computed candidate list.
type Model struct {
	th         theme.ResultsTheme
	candidates []cycle.Candidate
	width      int
	height     int
}

var _ ui.Component = (*Model)(nil)

// New returns an empty results list.
func New(th theme.ResultsTheme) *Model {
	return &Model{th: th, width: 32}
}

// SetCandidates replaces the list. The slice is not copied; callers hand over
// a fresh one per computation.
func (m *Model) SetCandidates(cands []cycle.Candidate) {
	m.candidates = cands
}

// Candidates returns the list currently shown.
func (m *Model) Candidates() []cycle.Candidate { return m.candidates }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements ui.Component. The list is passive.
func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) { return m, nil }

// Lines renders both sections, one candidate per line.
func (m *Model) Lines() []string {
	suggested, others := cycle.Split(m.candidates)
	lines := make([]string, 0, len(m.candidates)+5)
	lines = append(lines, m.th.Section.Render("Suggested"))
	lines = append(lines, m.rows(suggested)...)
	lines = append(lines, "")
	lines = append(lines, m.th.Section.Render("Other Options"))
	lines = append(lines, m.rows(others)...)
	return lines
}

func (m *Model) rows(cands []cycle.Candidate) []string {
	if len(cands) == 0 {
		return []string{indent + m.th.Empty.Render("none")}
	}
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		clock := indent + m.clockStyle(c.Quality).Render(c.Clock)
		detail := m.th.Detail.Render(printers.Describe(c)) + indent
		out = append(out, uiutil.Spread(clock, detail, m.width))
	}
	return out
}

func (m *Model) clockStyle(q cycle.Quality) lipgloss.Style {
	switch q {
	case cycle.Best:
		return m.th.Best
	case cycle.Good:
		return m.th.Good
	default:
		return m.th.Okay
	}
}

// View implements ui.Component.
func (m *Model) View() string {
	lines := m.Lines()
	if m.height > 0 {
		lines = uiutil.Fit(lines, m.height)
	}
	return strings.Join(lines, "\n")
}
