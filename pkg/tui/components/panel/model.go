// Package panel renders the cycle length settings dialog.
package panel

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/tui/events"
	"tableflip.dev/sommnus/pkg/tui/theme"
)

// Model is a framed dialog over app.CycleSettings. Picks stay local until
// enter; esc throws them away.
type Model struct {
	id       events.ComponentID
	settings app.CycleSettings

	frameStyle    lipgloss.Style
	titleStyle    lipgloss.Style
	bodyStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	hintStyle     lipgloss.Style
}

// New returns a closed dialog.
func New(id events.ComponentID, th theme.PanelTheme) *Model {
	return &Model{
		id:            id,
		frameStyle:    th.Frame,
		titleStyle:    th.Title,
		bodyStyle:     th.Body,
		selectedStyle: th.Selected,
		hintStyle:     th.Hint,
	}
}

// ID returns the component identifier.
func (m *Model) ID() events.ComponentID { return m.id }

// Open shows the dialog starting from the committed length.
func (m *Model) Open(current time.Duration) { m.settings.Open(current) }

// IsOpen reports whether the dialog is showing.
func (m *Model) IsOpen() bool { return m.settings.IsOpen() }

// Value is the locally picked length.
func (m *Model) Value() time.Duration { return m.settings.Value() }

// Update handles keys while the dialog is open. Enter emits a CycleLengthMsg.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.settings.IsOpen() {
		return m, nil
	}
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h", "up", "k":
		m.settings.Step(-1)
	case "right", "l", "down", "j":
		m.settings.Step(1)
	case "enter":
		if v, ok := m.settings.Done(); ok {
			return m, events.CycleLengthCmd(m.id, v)
		}
	case "esc", "s", "q":
		m.settings.Close()
	}
	return m, nil
}

// View returns the rendered panel string and its total height in lines.
func (m *Model) View() (string, int) {
	var content []string
	content = append(content, m.titleStyle.Render("Sleep cycle length"))
	content = append(content, m.bodyStyle.Render("Most cycles last about 90 minutes."))
	content = append(content, "")

	options := make([]string, 0, len(app.CycleLengths))
	for i, d := range app.CycleLengths {
		label := fmt.Sprintf(" %d ", int(d/time.Minute))
		if i == m.settings.Index() {
			options = append(options, m.selectedStyle.Render(label))
			continue
		}
		options = append(options, m.bodyStyle.Render(label))
	}
	content = append(content, strings.Join(options, " "))
	content = append(content, "")
	content = append(content, m.hintStyle.Render("←/→ pick · enter done · esc close"))

	view := m.frameStyle.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}
