// Package app holds the application shell shared by the CLI and the terminal
// UI: the current mode, target time, latency and cycle length, and the
// explicit recompute that turns them into suggestions.
package app

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/sommnus/pkg/cycle"
	"tableflip.dev/sommnus/pkg/timeutil"
)

// Mode selects which end of the night the user is entering.
type Mode string

const (
	// ModeSleep: the user enters a bedtime and gets wake times.
	ModeSleep Mode = "sleep"
	// ModeWake: the user enters a wake time and gets bedtimes.
	ModeWake Mode = "wake"
)

// sleepRollover is how far in the past a bedtime may lie before it is taken
// to mean tomorrow.
const sleepRollover = 12 * time.Hour

// ParseMode reads a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSleep:
		return ModeSleep, nil
	case ModeWake:
		return ModeWake, nil
	}
	return "", fmt.Errorf("app: unknown mode %q, expected %q or %q", s, ModeSleep, ModeWake)
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeWake {
		return ModeSleep
	}
	return ModeWake
}

// Prompt describes what the user is entering in this mode.
func (m Mode) Prompt() string {
	if m == ModeWake {
		return "Wake up at"
	}
	return "Go to bed at"
}

// Heading describes the suggestions produced in this mode.
func (m Mode) Heading() string {
	if m == ModeWake {
		return "Go to bed at"
	}
	return "Wake up at"
}

// Settings is the shell state fed to the calculator.
type Settings struct {
	Mode        Mode
	Target      timeutil.Clock
	Latency     time.Duration
	CycleLength time.Duration
}

// DefaultSettings mirrors the values a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Mode:        ModeSleep,
		Target:      timeutil.Clock{Hour: 7},
		Latency:     15 * time.Minute,
		CycleLength: cycle.DefaultCycleLength,
	}
}

// ResolveTarget turns a clock reading into the instant handed to the
// calculator. A wake time that already passed today means tomorrow. A bedtime
// means tomorrow only once it is more than twelve hours old, so a bedtime set
// just after midnight still refers to tonight.
func ResolveTarget(mode Mode, target timeutil.Clock, now time.Time) time.Time {
	at := target.On(now)
	cutoff := now
	if mode == ModeSleep {
		cutoff = now.Add(-sleepRollover)
	}
	if at.Before(cutoff) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

// Compute resolves the target and runs the calculator for the given settings.
func Compute(s Settings, now time.Time) (time.Time, []cycle.Candidate) {
	at := ResolveTarget(s.Mode, s.Target, now)
	if s.Mode == ModeWake {
		return at, cycle.BedTimes(at, s.Latency, s.CycleLength)
	}
	return at, cycle.WakeTimes(at, s.Latency, s.CycleLength)
}

// Planner owns the shell state. Setters only record input; callers invoke
// Recompute once they are done changing things.
type Planner struct {
	settings Settings
	now      func() time.Time
	logger   *zap.Logger

	reference time.Time
	results   []cycle.Candidate
}

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithClock overrides the wall clock used to resolve targets.
func WithClock(now func() time.Time) PlannerOption {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) PlannerOption {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPlanner returns a planner holding s. Nothing is computed until Recompute.
func NewPlanner(s Settings, opts ...PlannerOption) *Planner {
	p := &Planner{
		settings: s,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Settings returns a copy of the current state.
func (p *Planner) Settings() Settings { return p.settings }

// SetSettings replaces the whole state, e.g. after a config reload.
func (p *Planner) SetSettings(s Settings) { p.settings = s }

// SetMode switches between bedtime and wake-time entry.
func (p *Planner) SetMode(m Mode) { p.settings.Mode = m }

// ToggleMode flips the mode and returns the new one.
func (p *Planner) ToggleMode() Mode {
	p.settings.Mode = p.settings.Mode.Toggle()
	return p.settings.Mode
}

// SetTarget sets the entered clock time.
func (p *Planner) SetTarget(c timeutil.Clock) { p.settings.Target = c }

// SetHour replaces the hour of the entered clock time.
func (p *Planner) SetHour(h int) { p.settings.Target.Hour = h }

// SetMinute replaces the minute of the entered clock time.
func (p *Planner) SetMinute(m int) { p.settings.Target.Minute = m }

// SetLatency sets the time needed to fall asleep.
func (p *Planner) SetLatency(d time.Duration) { p.settings.Latency = d }

// SetCycleLength sets the length of one sleep cycle.
func (p *Planner) SetCycleLength(d time.Duration) { p.settings.CycleLength = d }

// Recompute discards the previous suggestions and computes a fresh list.
func (p *Planner) Recompute() []cycle.Candidate {
	p.reference, p.results = Compute(p.settings, p.now())
	p.logger.Debug("recomputed",
		zap.String("mode", string(p.settings.Mode)),
		zap.String("target", p.settings.Target.String()),
		zap.Time("reference", p.reference),
		zap.Duration("latency", p.settings.Latency),
		zap.Duration("cycle", p.settings.CycleLength),
		zap.Int("candidates", len(p.results)),
	)
	return p.results
}

// Results returns the suggestions from the last Recompute.
func (p *Planner) Results() []cycle.Candidate { return p.results }

// Reference returns the resolved target instant from the last Recompute.
func (p *Planner) Reference() time.Time { return p.reference }
