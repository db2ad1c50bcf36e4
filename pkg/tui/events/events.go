package events

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/config"
	"tableflip.dev/sommnus/pkg/timeutil"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// WheelChangeMsg is emitted when the value under a wheel's selection slot
// changes, whether by scrolling or by an animated select.
type WheelChangeMsg struct {
	Component ComponentID
	Value     int
}

// Describe renders the change in a human-friendly format for logs.
func (m WheelChangeMsg) Describe() string {
	return fmt.Sprintf(`component:%q value:%d`, m.Component, m.Value)
}

// WheelChangeCmd wraps a WheelChangeMsg in a tea.Cmd helper.
func WheelChangeCmd(component ComponentID, value int) tea.Cmd {
	return func() tea.Msg {
		return WheelChangeMsg{Component: component, Value: value}
	}
}

// SheetToggleMsg is emitted when the sheet commits to open or closed.
type SheetToggleMsg struct {
	Component ComponentID
	Open      bool
	// Tap is true when the change came from a tap rather than a drag.
	Tap bool
}

// Describe renders the toggle in a human-friendly format for logs.
func (m SheetToggleMsg) Describe() string {
	state := "closed"
	if m.Open {
		state = "open"
	}
	return fmt.Sprintf(`component:%q state:%q tap:%t`, m.Component, state, m.Tap)
}

// SheetToggleCmd wraps a SheetToggleMsg in a tea.Cmd helper.
func SheetToggleCmd(component ComponentID, open, tap bool) tea.Cmd {
	return func() tea.Msg {
		return SheetToggleMsg{Component: component, Open: open, Tap: tap}
	}
}

// ModeChangeMsg requests switching between bedtime and wake time entry.
type ModeChangeMsg struct {
	Mode app.Mode
}

// Describe renders the mode change for logs.
func (m ModeChangeMsg) Describe() string {
	return fmt.Sprintf(`mode:%q`, m.Mode)
}

// ModeChangeCmd wraps a ModeChangeMsg in a tea.Cmd helper.
func ModeChangeCmd(mode app.Mode) tea.Cmd {
	return func() tea.Msg {
		return ModeChangeMsg{Mode: mode}
	}
}

// LatencyChangeMsg requests a new time-to-fall-asleep.
type LatencyChangeMsg struct {
	Latency time.Duration
}

// Describe renders the latency change for logs.
func (m LatencyChangeMsg) Describe() string {
	return fmt.Sprintf(`latency:%q`, timeutil.FormatMinutes(m.Latency))
}

// LatencyChangeCmd wraps a LatencyChangeMsg in a tea.Cmd helper.
func LatencyChangeCmd(latency time.Duration) tea.Cmd {
	return func() tea.Msg {
		return LatencyChangeMsg{Latency: latency}
	}
}

// CycleLengthMsg is emitted when the settings dialog commits a cycle length.
type CycleLengthMsg struct {
	Component ComponentID
	Length    time.Duration
}

// Describe renders the committed length for logs.
func (m CycleLengthMsg) Describe() string {
	return fmt.Sprintf(`component:%q length:%q`, m.Component, timeutil.FormatMinutes(m.Length))
}

// CycleLengthCmd wraps a CycleLengthMsg in a tea.Cmd helper.
func CycleLengthCmd(component ComponentID, length time.Duration) tea.Cmd {
	return func() tea.Msg {
		return CycleLengthMsg{Component: component, Length: length}
	}
}

// ConfigReloadedMsg carries a configuration re-read after the file changed.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Describe renders the reload for logs.
func (m ConfigReloadedMsg) Describe() string {
	if m.Config == nil {
		return "config:<nil>"
	}
	return fmt.Sprintf(`file:%q mode:%q time:%q`, m.Config.File, m.Config.Settings.Mode, m.Config.Settings.Target)
}

// FrameMsg drives one animation step of a component.
type FrameMsg struct {
	Component ComponentID
	At        time.Time
}

// FrameInterval is the delay between animation frames.
const FrameInterval = time.Second / 30

// FrameCmd schedules the next animation frame for component.
func FrameCmd(component ComponentID) tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Component: component, At: t}
	})
}

// FocusMsg moves keyboard focus to a component.
type FocusMsg struct {
	Component ComponentID
}

// Describe renders focus changes for logs.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Component: component}
	}
}
