package internal

import (
	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

// Direction represents a cardinal direction for navigation.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// DirectionalRepeat tracks a held direction and turns it into repeat events.
// Timing is counted in engine ticks instead of wall-clock time so held-input
// behavior is identical under uneven frame pacing. Embed this in controllers
// that need consistent held-input handling.
//
// The initial press is the caller's job: fire on the pressed edge, then call
// Tick every frame to collect repeats.
type DirectionalRepeat struct {
	held            Direction
	ticksSinceEvent uint32
	repeatDelay     uint32
	repeatInterval  uint32
	hasRepeated     bool
}

// NewDirectionalRepeat creates a DirectionalRepeat with default timing.
func NewDirectionalRepeat() DirectionalRepeat {
	return DirectionalRepeat{
		repeatDelay:    constants.DefaultRepeatDelayTicks,
		repeatInterval: constants.DefaultRepeatIntervalTicks,
	}
}

// NewDirectionalRepeatWithTiming creates a DirectionalRepeat with custom
// timing. Zero values fall back to the defaults.
func NewDirectionalRepeatWithTiming(delay, interval uint32) DirectionalRepeat {
	if delay == 0 {
		delay = constants.DefaultRepeatDelayTicks
	}
	if interval == 0 {
		interval = constants.DefaultRepeatIntervalTicks
	}
	return DirectionalRepeat{
		repeatDelay:    delay,
		repeatInterval: interval,
	}
}

// SetTiming replaces the repeat timing without touching held state.
func (d *DirectionalRepeat) SetTiming(delay, interval uint32) {
	if delay != 0 {
		d.repeatDelay = delay
	}
	if interval != 0 {
		d.repeatInterval = interval
	}
}

// SetDirection replaces the held direction, or clears it with DirectionNone,
// and restarts the repeat clock. Callers reduce their input sources to at
// most one direction per frame before handing it over.
func (d *DirectionalRepeat) SetDirection(dir Direction) {
	d.held = dir
	d.hasRepeated = false
	d.ticksSinceEvent = 0
}

// IsHeld returns true if a direction is currently held.
func (d *DirectionalRepeat) IsHeld() bool {
	return d.held != DirectionNone
}

// HeldDirection returns the currently held direction, or DirectionNone.
func (d *DirectionalRepeat) HeldDirection() Direction {
	return d.held
}

// Tick advances the repeat clock by one frame and reports the direction that
// should repeat this tick, or DirectionNone. The first repeat fires after
// repeatDelay ticks of continuous hold, subsequent repeats every
// repeatInterval ticks.
func (d *DirectionalRepeat) Tick() Direction {
	if !d.IsHeld() {
		d.ticksSinceEvent = 0
		d.hasRepeated = false
		return DirectionNone
	}

	d.ticksSinceEvent++

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.ticksSinceEvent >= threshold {
		d.ticksSinceEvent = 0
		d.hasRepeated = true
		return d.HeldDirection()
	}

	return DirectionNone
}

// Reset clears the held direction and timing state.
func (d *DirectionalRepeat) Reset() {
	d.held = DirectionNone
	d.hasRepeated = false
	d.ticksSinceEvent = 0
}

// IsVertical reports whether the direction moves along the vertical axis.
func (d Direction) IsVertical() bool {
	return d == DirectionUp || d == DirectionDown
}

// IsHorizontal reports whether the direction moves along the horizontal axis.
func (d Direction) IsHorizontal() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Delta returns -1 for up/left, +1 for down/right and 0 otherwise.
func (d Direction) Delta() int {
	switch d {
	case DirectionUp, DirectionLeft:
		return -1
	case DirectionDown, DirectionRight:
		return 1
	default:
		return 0
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return ""
	}
}
