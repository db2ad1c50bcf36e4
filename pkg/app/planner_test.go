package app

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/sommnus/pkg/cycle"
	"tableflip.dev/sommnus/pkg/timeutil"
)

func clockAt(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestResolveTargetWakeMode(t *testing.T) {
	now := clockAt(10, 8, 0)
	cases := []struct {
		target timeutil.Clock
		want   time.Time
	}{
		{timeutil.Clock{Hour: 7}, clockAt(11, 7, 0)},
		{timeutil.Clock{Hour: 7, Minute: 59}, clockAt(11, 7, 59)},
		{timeutil.Clock{Hour: 8}, clockAt(10, 8, 0)},
		{timeutil.Clock{Hour: 9, Minute: 30}, clockAt(10, 9, 30)},
	}
	for _, tc := range cases {
		if got := ResolveTarget(ModeWake, tc.target, now); !got.Equal(tc.want) {
			t.Fatalf("wake %s: expected %v, got %v", tc.target, tc.want, got)
		}
	}
}

func TestResolveTargetSleepMode(t *testing.T) {
	cases := []struct {
		now    time.Time
		target timeutil.Clock
		want   time.Time
	}{
		{clockAt(10, 8, 0), timeutil.Clock{Hour: 23}, clockAt(10, 23, 0)},
		{clockAt(10, 8, 0), timeutil.Clock{Hour: 7}, clockAt(10, 7, 0)},
		{clockAt(10, 23, 30), timeutil.Clock{Hour: 0, Minute: 30}, clockAt(11, 0, 30)},
		{clockAt(10, 21, 0), timeutil.Clock{Hour: 9}, clockAt(10, 9, 0)},
		{clockAt(10, 21, 1), timeutil.Clock{Hour: 9}, clockAt(11, 9, 0)},
	}
	for _, tc := range cases {
		if got := ResolveTarget(ModeSleep, tc.target, tc.now); !got.Equal(tc.want) {
			t.Fatalf("sleep %s at %v: expected %v, got %v", tc.target, tc.now, tc.want, got)
		}
	}
}

func TestPlannerRecomputeIsExplicit(t *testing.T) {
	now := clockAt(10, 20, 0)
	p := NewPlanner(Settings{
		Mode:        ModeSleep,
		Target:      timeutil.Clock{Hour: 23},
		Latency:     15 * time.Minute,
		CycleLength: cycle.DefaultCycleLength,
	}, WithClock(func() time.Time { return now }))

	if p.Results() != nil {
		t.Fatalf("expected no results before Recompute")
	}
	first := p.Recompute()
	if len(first) != 7 {
		t.Fatalf("expected 7 candidates, got %d", len(first))
	}
	if first[5].Clock != "08:20" {
		t.Fatalf("expected six cycles at 08:20, got %s", first[5].Clock)
	}
	if !p.Reference().Equal(clockAt(10, 23, 0)) {
		t.Fatalf("unexpected reference %v", p.Reference())
	}

	p.SetMode(ModeWake)
	p.SetTarget(timeutil.Clock{Hour: 7})
	if got := p.Results(); got[5].Clock != "08:20" {
		t.Fatalf("setters must not recompute, got %s", got[5].Clock)
	}

	second := p.Recompute()
	if &second[0] == &first[0] {
		t.Fatalf("expected a fresh slice")
	}
	if first[5].Clock != "08:20" {
		t.Fatalf("previous results must not be mutated")
	}
	for i := 1; i < len(second); i++ {
		if !second[i-1].Time.Before(second[i].Time) {
			t.Fatalf("bedtimes not ascending at %d", i)
		}
	}
	if !p.Reference().Equal(clockAt(11, 7, 0)) {
		t.Fatalf("expected tomorrow's wake time, got %v", p.Reference())
	}
}

func TestPlannerSetters(t *testing.T) {
	p := NewPlanner(DefaultSettings())
	p.SetHour(22)
	p.SetMinute(45)
	p.SetLatency(30 * time.Minute)
	p.SetCycleLength(100 * time.Minute)
	if got := p.ToggleMode(); got != ModeWake {
		t.Fatalf("expected wake mode, got %s", got)
	}
	s := p.Settings()
	if s.Target.String() != "22:45" || s.Latency != 30*time.Minute || s.CycleLength != 100*time.Minute {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" Wake "); err != nil || m != ModeWake {
		t.Fatalf("expected wake, got %q (%v)", m, err)
	}
	if _, err := ParseMode("nap"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if ModeSleep.Toggle() != ModeWake || ModeWake.Toggle() != ModeSleep {
		t.Fatalf("toggle is not symmetric")
	}
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}
	s.Latency = 20 * time.Minute
	if err := s.Validate(); !errors.Is(err, ErrLatency) {
		t.Fatalf("expected ErrLatency, got %v", err)
	}
	s.Latency = 0
	s.CycleLength = 95 * time.Minute
	if err := s.Validate(); !errors.Is(err, ErrCycleLength) {
		t.Fatalf("expected ErrCycleLength, got %v", err)
	}
}

func TestStepLatency(t *testing.T) {
	if got := StepLatency(15*time.Minute, 1); got != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", got)
	}
	if got := StepLatency(60*time.Minute, 1); got != 60*time.Minute {
		t.Fatalf("expected clamp at 60m, got %v", got)
	}
	if got := StepLatency(0, -1); got != 0 {
		t.Fatalf("expected clamp at 0, got %v", got)
	}
	if got := StepLatency(20*time.Minute, 0); got != 15*time.Minute {
		t.Fatalf("expected snap to 15m, got %v", got)
	}
}

func TestCycleSettingsCommitAndDiscard(t *testing.T) {
	var s CycleSettings
	if _, ok := s.Done(); ok {
		t.Fatalf("Done on a closed dialog must not commit")
	}

	s.Open(90 * time.Minute)
	s.Step(1)
	s.Step(1)
	if s.Value() != 110*time.Minute {
		t.Fatalf("expected 110m, got %v", s.Value())
	}
	if s.Pick(95 * time.Minute) {
		t.Fatalf("expected unlisted value to be rejected")
	}
	s.Close()
	if s.IsOpen() {
		t.Fatalf("expected dialog to be closed")
	}

	s.Open(90 * time.Minute)
	if s.Value() != 90*time.Minute {
		t.Fatalf("reopening must start from the committed value, got %v", s.Value())
	}
	if !s.Pick(60 * time.Minute) {
		t.Fatalf("expected 60m to be accepted")
	}
	got, ok := s.Done()
	if !ok || got != 60*time.Minute {
		t.Fatalf("expected commit of 60m, got %v (%v)", got, ok)
	}
	if s.Index() != 0 {
		t.Fatalf("expected index 0, got %d", s.Index())
	}
}
