package app

import "time"

// CycleSettings is the state of the cycle length dialog. The user picks a
// value locally; it only reaches the planner on Done.
type CycleSettings struct {
	open  bool
	local time.Duration
}

// Open shows the dialog starting from current.
func (s *CycleSettings) Open(current time.Duration) {
	s.open = true
	s.local = CycleLengths[nearest(CycleLengths, current)]
}

// IsOpen reports whether the dialog is showing.
func (s *CycleSettings) IsOpen() bool { return s.open }

// Value is the locally picked length.
func (s *CycleSettings) Value() time.Duration { return s.local }

// Index is the position of Value within CycleLengths.
func (s *CycleSettings) Index() int { return indexOf(CycleLengths, s.local) }

// Pick selects v if it is one of CycleLengths.
func (s *CycleSettings) Pick(v time.Duration) bool {
	if !s.open || indexOf(CycleLengths, v) < 0 {
		return false
	}
	s.local = v
	return true
}

// Step moves the local pick by dir entries.
func (s *CycleSettings) Step(dir int) {
	if !s.open {
		return
	}
	s.local = StepCycleLength(s.local, dir)
}

// Done closes the dialog and hands back the picked value. ok is false when
// the dialog was not open.
func (s *CycleSettings) Done() (time.Duration, bool) {
	if !s.open {
		return 0, false
	}
	s.open = false
	return s.local, true
}

// Close dismisses the dialog and discards the local pick.
func (s *CycleSettings) Close() {
	s.open = false
}
