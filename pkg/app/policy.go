package app

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/sommnus/pkg/timeutil"
)

// The calculator accepts any positive latency and cycle length; these ranges
// are what the CLI and the UI let a user pick.
var (
	LatencySteps = []time.Duration{0, 15 * time.Minute, 30 * time.Minute, 45 * time.Minute, 60 * time.Minute}
	CycleLengths = []time.Duration{
		60 * time.Minute, 70 * time.Minute, 80 * time.Minute, 90 * time.Minute,
		100 * time.Minute, 110 * time.Minute, 120 * time.Minute,
	}
)

var (
	// ErrLatency is returned for a latency outside LatencySteps.
	ErrLatency = errors.New("app: latency must be 0, 15, 30, 45 or 60 minutes")
	// ErrCycleLength is returned for a cycle length outside CycleLengths.
	ErrCycleLength = errors.New("app: cycle length must be 60 to 120 minutes in steps of 10")
)

// ValidateLatency checks d against LatencySteps.
func ValidateLatency(d time.Duration) error {
	if indexOf(LatencySteps, d) < 0 {
		return fmt.Errorf("%w (got %s)", ErrLatency, timeutil.FormatMinutes(d))
	}
	return nil
}

// ValidateCycleLength checks d against CycleLengths.
func ValidateCycleLength(d time.Duration) error {
	if indexOf(CycleLengths, d) < 0 {
		return fmt.Errorf("%w (got %s)", ErrCycleLength, timeutil.FormatMinutes(d))
	}
	return nil
}

// Validate checks both policy ranges of s.
func (s Settings) Validate() error {
	if err := ValidateLatency(s.Latency); err != nil {
		return err
	}
	return ValidateCycleLength(s.CycleLength)
}

// StepLatency moves dir steps along LatencySteps, stopping at either end. A
// value that is not a step snaps to the closest one first.
func StepLatency(cur time.Duration, dir int) time.Duration {
	return step(LatencySteps, cur, dir)
}

// StepCycleLength moves dir steps along CycleLengths, stopping at either end.
func StepCycleLength(cur time.Duration, dir int) time.Duration {
	return step(CycleLengths, cur, dir)
}

func step(values []time.Duration, cur time.Duration, dir int) time.Duration {
	i := nearest(values, cur) + dir
	if i < 0 {
		i = 0
	}
	if i >= len(values) {
		i = len(values) - 1
	}
	return values[i]
}

func indexOf(values []time.Duration, d time.Duration) int {
	for i, v := range values {
		if v == d {
			return i
		}
	}
	return -1
}

func nearest(values []time.Duration, d time.Duration) int {
	best := 0
	for i, v := range values {
		if absDuration(v-d) < absDuration(values[best]-d) {
			best = i
		}
	}
	return best
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
