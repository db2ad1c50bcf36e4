// Package app is the root Bubble Tea model: two time pickers above a
// draggable results sheet, wired to the planner.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	appsvc "tableflip.dev/sommnus/pkg/app"
	"tableflip.dev/sommnus/pkg/config"
	coresheet "tableflip.dev/sommnus/pkg/sheet"
	"tableflip.dev/sommnus/pkg/timeutil"
	"tableflip.dev/sommnus/pkg/tui/components/panel"
	"tableflip.dev/sommnus/pkg/tui/components/results"
	"tableflip.dev/sommnus/pkg/tui/components/sheet"
	"tableflip.dev/sommnus/pkg/tui/components/wheel"
	"tableflip.dev/sommnus/pkg/tui/events"
	"tableflip.dev/sommnus/pkg/tui/theme"
	"tableflip.dev/sommnus/pkg/tui/ui"
	"tableflip.dev/sommnus/pkg/tui/ui/overlay"
	"tableflip.dev/sommnus/pkg/tui/uiutil"
	corewheel "tableflip.dev/sommnus/pkg/wheel"
)

// Component identifiers.
const (
	HoursID    events.ComponentID = "hours"
	MinutesID  events.ComponentID = "minutes"
	SheetID    events.ComponentID = "results"
	SettingsID events.ComponentID = "cycle-settings"
)

const (
	headerRows   = 3
	minMainRows  = headerRows + 4
	separatorGap = "   "
)

// Options configures the root model.
type Options struct {
	Config *config.Config
	// Viper is watched for config file changes by Run. Optional.
	Viper  *viper.Viper
	Logger *zap.Logger
	// Now overrides the wall clock. Tests only.
	Now func() time.Time
}

// Model composes the planner with the picker, sheet, results and settings
// components.
type Model struct {
	planner *appsvc.Planner
	logger  *zap.Logger
	th      theme.Theme
	keys    keyMap
	help    help.Model

	hours    *wheel.Model
	minutes  *wheel.Model
	sheet    *sheet.Model
	results  *results.Model
	settings *panel.Model

	width  int
	height int
	left   int
}

// New builds the root model and computes the first set of suggestions.
func New(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	th := theme.Default()

	m := &Model{
		planner: appsvc.NewPlanner(cfg.Settings,
			appsvc.WithClock(now),
			appsvc.WithLogger(logger.Named("planner")),
		),
		logger: logger,
		th:     th,
		keys:   defaultKeys(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	target := cfg.Settings.Target
	copies := corewheel.WithCopies(cfg.WheelCopies)
	m.hours = wheel.New(HoursID, "hour", 24, target.Hour, th.Wheel, copies)
	m.minutes = wheel.New(MinutesID, "min", 60, target.Minute, th.Wheel, copies)
	m.hours.SetFocused(true)
	m.sheet = sheet.New(sheet.Options{
		ID:       SheetID,
		Open:     cfg.SheetOpen,
		RowUnits: cfg.SheetRowUnits,
		Theme:    th.Sheet,
		Controller: []coresheet.Option{
			coresheet.WithThreshold(cfg.SheetThreshold),
			coresheet.WithTapEpsilon(cfg.SheetTap),
		},
		Now: now,
	})
	m.results = results.New(th.Results)
	m.settings = panel.New(SettingsID, th.Panel)

	m.recompute()
	return m
}

// Run launches the Bubble Tea program and, when a config file is in use,
// forwards reloads to it.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if opts.Viper != nil {
		config.Watch(opts.Viper, m.logger, func(cfg *config.Config) {
			p.Send(events.ConfigReloadedMsg{Config: cfg})
		})
	}
	_, err := p.Run()
	return err
}

// Planner exposes the shell state.
func (m *Model) Planner() *appsvc.Planner { return m.planner }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update routes Bubble Tea messages to composed components.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.noteEvent(msg)
	cmd := m.update(msg)
	m.layout()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			return tea.Quit
		}
		if m.settings.IsOpen() {
			_, cmd := m.settings.Update(v)
			return cmd
		}
		return m.handleKey(v)
	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		if m.settings.IsOpen() {
			return nil
		}
		return m.broadcast(msg, m.sheet, m.hours, m.minutes)
	case tea.BlurMsg:
		return m.broadcast(msg, m.sheet)
	case events.FrameMsg:
		switch v.Component {
		case HoursID:
			return m.broadcast(msg, m.hours)
		case MinutesID:
			return m.broadcast(msg, m.minutes)
		case SheetID:
			return m.broadcast(msg, m.sheet)
		}
	case events.FocusMsg:
		switch v.Component {
		case HoursID, MinutesID:
			m.hours.SetFocused(v.Component == HoursID)
			m.minutes.SetFocused(v.Component == MinutesID)
		}
	case events.WheelChangeMsg:
		switch v.Component {
		case HoursID:
			m.planner.SetHour(v.Value)
		case MinutesID:
			m.planner.SetMinute(v.Value)
		default:
			return nil
		}
		m.recompute()
	case events.ModeChangeMsg:
		m.planner.SetMode(v.Mode)
		m.recompute()
	case events.LatencyChangeMsg:
		m.planner.SetLatency(v.Latency)
		m.recompute()
	case events.CycleLengthMsg:
		m.planner.SetCycleLength(v.Length)
		m.recompute()
	case events.ConfigReloadedMsg:
		m.applyConfig(v.Config)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	s := m.planner.Settings()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Focus):
		if m.hours.Focused() {
			return events.FocusCmd(MinutesID)
		}
		return events.FocusCmd(HoursID)
	case key.Matches(msg, m.keys.Up):
		return m.focused().Scroll(-1)
	case key.Matches(msg, m.keys.Down):
		return m.focused().Scroll(1)
	case key.Matches(msg, m.keys.Mode):
		return events.ModeChangeCmd(s.Mode.Toggle())
	case key.Matches(msg, m.keys.Faster):
		return m.stepLatency(s.Latency, -1)
	case key.Matches(msg, m.keys.Slower):
		return m.stepLatency(s.Latency, 1)
	case key.Matches(msg, m.keys.Settings):
		m.settings.Open(s.CycleLength)
	case key.Matches(msg, m.keys.Sheet):
		return m.sheet.Toggle()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) stepLatency(cur time.Duration, dir int) tea.Cmd {
	next := appsvc.StepLatency(cur, dir)
	if next == cur {
		return nil
	}
	return events.LatencyChangeCmd(next)
}

func (m *Model) focused() *wheel.Model {
	if m.minutes.Focused() {
		return m.minutes
	}
	return m.hours
}

func (m *Model) broadcast(msg tea.Msg, targets ...ui.Component) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(targets))
	for _, c := range targets {
		_, cmd := c.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// recompute runs the planner and pushes the fresh list into the sheet.
func (m *Model) recompute() {
	m.results.SetCandidates(m.planner.Recompute())
	m.refreshSheet()
}

func (m *Model) refreshSheet() {
	s := m.planner.Settings()
	m.sheet.SetContent(m.th.Header.Prompt.Render(s.Mode.Heading()), m.results.Lines())
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	m.planner.SetSettings(cfg.Settings)
	m.hours.Jump(cfg.Settings.Target.Hour)
	m.minutes.Jump(cfg.Settings.Target.Minute)
	m.recompute()
}

// layout sizes the components for the current terminal and records where
// they are drawn.
func (m *Model) layout() {
	sheetWant := len(m.results.Lines()) + 2
	sheetRows := uiutil.Clamp(sheetWant, 3, max(3, m.height-m.footerRows()-minMainRows))
	m.sheet.SetSize(m.width, sheetRows)
	m.results.SetSize(m.width, 0)
	m.sheet.SetBottom(m.height - m.footerRows())
	m.refreshSheet()

	wheelRows := m.mainRows() - headerRows
	m.hours.SetSize(8, wheelRows)
	m.minutes.SetSize(8, wheelRows)

	block := m.hours.Width() + len(separatorGap) + m.minutes.Width()
	m.left = max(0, (m.width-block)/2)
	m.hours.SetOrigin(m.left, headerRows)
	m.minutes.SetOrigin(m.left+m.hours.Width()+len(separatorGap), headerRows)
}

func (m *Model) mainRows() int {
	return max(0, m.height-m.footerRows()-m.sheet.Visible())
}

// footerRows is one row for the short help and more when ? expands it.
func (m *Model) footerRows() int {
	return strings.Count(m.help.View(m.keys), "\n") + 1
}

// View renders the header, pickers, sheet and help footer.
func (m *Model) View() string {
	main := m.mainView()
	parts := []string{main}
	if sv := m.sheet.View(); sv != "" {
		parts = append(parts, sv)
	}
	parts = append(parts, m.th.Footer.Help.Render(m.help.View(m.keys)))
	return strings.Join(parts, "\n")
}

func (m *Model) mainView() string {
	rows := m.mainRows()
	main := strings.Join(uiutil.Fit(m.pickerLines(), rows), "\n")
	if m.settings.IsOpen() {
		view, _ := m.settings.View()
		return overlay.Compose(main, m.width, rows, view, overlay.Centered, m.th.Panel.Backdrop)
	}
	return main
}

func (m *Model) pickerLines() []string {
	s := m.planner.Settings()
	lines := []string{
		uiutil.Spread(m.th.Header.Title.Render("sommnus"),
			m.th.Header.Prompt.Render(fmt.Sprintf("%s %s", s.Mode.Prompt(), s.Target)), m.width),
		m.th.Header.Summary.Render(fmt.Sprintf("fall asleep %s · cycle %s",
			timeutil.FormatMinutes(s.Latency), timeutil.FormatMinutes(s.CycleLength))),
		"",
	}

	hours := strings.Split(m.hours.View(), "\n")
	minutes := strings.Split(m.minutes.View(), "\n")
	pad := strings.Repeat(" ", m.left)
	center := 1 + (len(hours)-2)/2
	for i := range hours {
		sep := separatorGap
		if i == center {
			sep = " : "
		}
		right := ""
		if i < len(minutes) {
			right = minutes[i]
		}
		lines = append(lines, pad+hours[i]+sep+right)
	}
	return lines
}

func (m *Model) noteEvent(msg tea.Msg) {
	if _, ok := msg.(events.FrameMsg); ok {
		return
	}
	source := "tea"
	if s, ok := eventSource(msg); ok {
		source = s
	}
	detail := describeMsg(msg)
	if detail == "" {
		return
	}
	m.logger.Debug("event",
		zap.String("component", source),
		zap.String("type", fmt.Sprintf("%T", msg)),
		zap.String("detail", detail),
	)
}

func describeMsg(msg tea.Msg) string {
	if d, ok := msg.(ui.Described); ok {
		return d.Describe()
	}
	switch v := msg.(type) {
	case tea.KeyPressMsg:
		return fmt.Sprintf("key=%q", v.String())
	case tea.WindowSizeMsg:
		return fmt.Sprintf("size=%dx%d", v.Width, v.Height)
	case tea.MouseMsg:
		return fmt.Sprintf("mouse=%s", v)
	default:
		return ""
	}
}

func eventSource(msg tea.Msg) (string, bool) {
	switch v := msg.(type) {
	case events.WheelChangeMsg:
		return string(v.Component), true
	case events.SheetToggleMsg:
		return string(v.Component), true
	case events.CycleLengthMsg:
		return string(v.Component), true
	case events.FocusMsg:
		return string(v.Component), true
	case events.ConfigReloadedMsg:
		return "config", true
	default:
		return "", false
	}
}
