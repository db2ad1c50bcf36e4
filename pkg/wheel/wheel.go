// Package wheel models a circular value picker (hours, minutes) that scrolls
// without end in both directions.
//
// The true state is a modular integer. The scrollable list is the base range
// repeated an odd number of times; whenever the position drifts into the
// first or last copy it is moved by whole cycles back toward the middle, which
// leaves the centered value untouched.
package wheel

import "math"

const (
	// DefaultCopies is the number of times the base range is repeated.
	DefaultCopies = 5

	settleEpsilon = 0.01
)

// Selector is the state of one wheel. It is not safe for concurrent use.
type Selector struct {
	modulus int
	copies  int
	extent  float64
	center  float64

	position float64
	value    int

	target    float64
	animating bool

	onChange func(int)
}

// Option configures a Selector.
type Option func(*Selector)

// WithCopies sets how many times the base range is repeated. Even counts are
// rounded up and anything below three becomes three.
func WithCopies(n int) Option {
	return func(s *Selector) {
		if n < 3 {
			n = 3
		}
		if n%2 == 0 {
			n++
		}
		s.copies = n
	}
}

// WithItemExtent sets the size of one item along the scroll axis.
func WithItemExtent(extent float64) Option {
	return func(s *Selector) {
		if extent > 0 {
			s.extent = extent
		}
	}
}

// WithCenterOffset sets the distance from the viewport start to the middle of
// the selection slot.
func WithCenterOffset(offset float64) Option {
	return func(s *Selector) {
		s.center = offset
	}
}

// OnChange registers a callback fired each time the selected value changes.
func OnChange(fn func(int)) Option {
	return func(s *Selector) {
		s.onChange = fn
	}
}

// New returns a selector over [0, modulus) centered on initial. Out of range
// initial values are reduced modulo modulus.
func New(modulus, initial int, opts ...Option) *Selector {
	if modulus <= 0 {
		modulus = 1
	}
	s := &Selector{
		modulus: modulus,
		copies:  DefaultCopies,
		extent:  1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.value = Mod(initial, modulus)
	s.position = s.positionOf(s.value + modulus*(s.copies/2))
	return s
}

// Modulus returns the size of the value range.
func (s *Selector) Modulus() int { return s.modulus }

// Value returns the currently selected value, always in [0, modulus).
func (s *Selector) Value() int { return s.value }

// Position returns the continuous scroll position.
func (s *Selector) Position() float64 { return s.position }

// CycleExtent is the scroll length of one full copy of the range.
func (s *Selector) CycleExtent() float64 {
	return float64(s.modulus) * s.extent
}

// Len is the number of items in the replicated list.
func (s *Selector) Len() int {
	return s.modulus * s.copies
}

// Index returns the replicated-list index under the selection slot.
func (s *Selector) Index() int {
	return int(math.Round((s.position + s.center) / s.extent))
}

// SetPosition moves the wheel to p, as a user scroll would, and cancels any
// running animation. It reports whether the selected value changed.
func (s *Selector) SetPosition(p float64) bool {
	s.animating = false
	s.move(p)
	return s.refresh()
}

// Scroll moves the wheel by delta.
func (s *Selector) Scroll(delta float64) bool {
	return s.SetPosition(s.position + delta)
}

// Select starts an animation toward the nearest occurrence of v and returns
// the target position. Candidates are the occurrence in the current copy and
// its two neighbours; ties keep the current copy.
func (s *Selector) Select(v int) float64 {
	v = Mod(v, s.modulus)
	cur := s.Index()
	best := floorDiv(cur, s.modulus)*s.modulus + v
	for _, alt := range []int{best - s.modulus, best + s.modulus} {
		if abs(alt-cur) < abs(best-cur) {
			best = alt
		}
	}
	s.target = s.positionOf(best)
	s.animating = true
	return s.target
}

// Jump moves straight to the nearest occurrence of v without animating.
func (s *Selector) Jump(v int) bool {
	return s.SetPosition(s.Select(v))
}

// Snap starts an animation that aligns the nearest item with the selection
// slot and returns the target position.
func (s *Selector) Snap() float64 {
	s.target = s.positionOf(s.Index())
	s.animating = s.target != s.position
	return s.target
}

// Animating reports whether a Select or Snap is still in flight.
func (s *Selector) Animating() bool { return s.animating }

// Step advances a running animation by fraction of the remaining distance
// (clamped to (0, 1]). It reports whether the selected value changed.
func (s *Selector) Step(fraction float64) bool {
	if !s.animating {
		return false
	}
	if fraction <= 0 || fraction > 1 {
		fraction = 1
	}
	next := s.position + (s.target-s.position)*fraction
	if math.Abs(s.target-next) < settleEpsilon*s.extent {
		next = s.target
		s.animating = false
	}
	shift := s.move(next)
	s.target += shift
	return s.refresh()
}

// Item is one visible row of the wheel.
type Item struct {
	Value    int
	Distance int
}

// Window returns the values within radius rows of the selection slot, top to
// bottom.
func (s *Selector) Window(radius int) []Item {
	if radius < 0 {
		radius = 0
	}
	cur := s.Index()
	items := make([]Item, 0, 2*radius+1)
	for off := -radius; off <= radius; off++ {
		items = append(items, Item{Value: Mod(cur+off, s.modulus), Distance: off})
	}
	return items
}

func (s *Selector) positionOf(index int) float64 {
	return float64(index)*s.extent - s.center
}

// move sets the position and applies the teleport correction, returning the
// applied shift.
func (s *Selector) move(p float64) float64 {
	cycle := s.CycleExtent()
	jump := float64(s.copies/2) * cycle
	low, high := cycle, float64(s.copies-1)*cycle

	shift := 0.0
	for p+shift < low {
		shift += jump
	}
	for p+shift > high {
		shift -= jump
	}
	s.position = p + shift
	return shift
}

func (s *Selector) refresh() bool {
	v := Mod(s.Index(), s.modulus)
	if v == s.value {
		return false
	}
	s.value = v
	if s.onChange != nil {
		s.onChange(v)
	}
	return true
}

// Mod is the non-negative remainder of a divided by m.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
