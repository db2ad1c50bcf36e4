// Package sheet implements the gesture state machine behind a bottom-anchored
// panel that is opened and closed by dragging its handle.
//
// Callers feed normalized pointer coordinates (larger is further down);
// whether they came from a mouse, a touch screen or a terminal is up to the
// caller.
package sheet

import (
	"math"
	"time"
)

const (
	// DefaultThreshold is the drag distance that must be exceeded to commit.
	DefaultThreshold = 50.0
	// DefaultTapEpsilon is the largest release offset still treated as a tap.
	DefaultTapEpsilon = 5.0
	// DefaultSettle is how long the panel animates after a release.
	DefaultSettle = 300 * time.Millisecond
)

// Controller tracks a single drag on the sheet handle. It is not safe for
// concurrent use.
type Controller struct {
	open     bool
	dragging bool

	start   float64
	current float64
	offset  float64

	// released is the offset observed at the last release; Tap uses it to
	// tell a click apart from the tail of a drag.
	released float64

	threshold  float64
	tapEpsilon float64
	settle     time.Duration

	onChange func(open bool)
}

// Option configures a Controller.
type Option func(*Controller)

// WithThreshold overrides the commit distance.
func WithThreshold(d float64) Option {
	return func(c *Controller) {
		if d > 0 {
			c.threshold = d
		}
	}
}

// WithTapEpsilon overrides the tap tolerance.
func WithTapEpsilon(d float64) Option {
	return func(c *Controller) {
		if d > 0 {
			c.tapEpsilon = d
		}
	}
}

// WithSettle overrides the release animation duration.
func WithSettle(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.settle = d
		}
	}
}

// OnOpenChange registers a callback fired whenever the panel opens or closes.
func OnOpenChange(fn func(open bool)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// New returns a controller in the given state.
func New(open bool, opts ...Option) *Controller {
	c := &Controller{
		open:       open,
		threshold:  DefaultThreshold,
		tapEpsilon: DefaultTapEpsilon,
		settle:     DefaultSettle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsOpen reports whether the panel is open.
func (c *Controller) IsOpen() bool { return c.open }

// IsDragging reports whether a contact is active.
func (c *Controller) IsDragging() bool { return c.dragging }

// Offset is the signed displacement of the active drag; zero when idle.
func (c *Controller) Offset() float64 { return c.offset }

// Threshold returns the commit distance.
func (c *Controller) Threshold() float64 { return c.threshold }

// Start begins a drag at pointer coordinate y. A drag already in progress is
// restarted from y.
func (c *Controller) Start(y float64) {
	c.dragging = true
	c.start = y
	c.current = y
	c.offset = 0
}

// Move updates the active drag. An open panel only follows downward motion
// and a closed one only upward motion; motion the other way leaves the
// offset where it was.
func (c *Controller) Move(y float64) {
	if !c.dragging {
		return
	}
	c.current = y
	delta := y - c.start
	switch {
	case c.open && delta > 0:
		c.offset = delta
	case !c.open && delta < 0:
		c.offset = delta
	}
}

// End finishes the active drag, committing an open or close when the drag
// went past the threshold in the permitted direction. It reports whether the
// panel state changed. End without an active drag does nothing.
func (c *Controller) End() bool {
	if !c.dragging {
		return false
	}
	delta := c.current - c.start
	c.released = c.offset
	c.dragging = false
	c.offset = 0
	c.start, c.current = 0, 0

	switch {
	case c.open && delta > c.threshold:
		c.set(false)
		return true
	case !c.open && delta < -c.threshold:
		c.set(true)
		return true
	}
	return false
}

// Abandon resolves a drag whose contact was lost (pointer left the handle,
// window lost focus) exactly as if it had been released.
func (c *Controller) Abandon() bool {
	return c.End()
}

// Tap handles a click on the handle. It toggles the panel unless the
// preceding release ended a drag of tapEpsilon or more, and reports whether
// the state changed.
func (c *Controller) Tap() bool {
	if c.dragging {
		return false
	}
	released := c.released
	c.released = 0
	if math.Abs(released) >= c.tapEpsilon {
		return false
	}
	c.set(!c.open)
	return true
}

// Toggle flips the panel state directly.
func (c *Controller) Toggle() {
	c.set(!c.open)
}

// Transition is the duration the visible position should animate over:
// zero while following the pointer, the settle duration otherwise.
func (c *Controller) Transition() time.Duration {
	if c.dragging {
		return 0
	}
	return c.settle
}

// Translate returns how far the panel is pushed down from its fully open
// position, given its full height and the height that stays visible when
// closed.
func (c *Controller) Translate(height, peek float64) float64 {
	if c.open {
		return math.Max(0, c.offset)
	}
	return math.Max(0, height-peek+math.Min(0, c.offset))
}

func (c *Controller) set(open bool) {
	if c.open == open {
		return
	}
	c.open = open
	if c.onChange != nil {
		c.onChange(open)
	}
}
