package internal

import (
	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

// AxisGate debounces one analog axis into discrete directional state. A
// direction engages when the value passes the engage threshold and releases
// only when it falls back inside the release threshold, so values jittering
// around a single cutoff cannot produce event storms.
type AxisGate struct {
	engage  float32
	release float32
	sign    int
}

// NewAxisGate creates a gate with the given thresholds. Zero or inverted
// thresholds fall back to the defaults.
func NewAxisGate(engage, release float32) AxisGate {
	if engage <= 0 || engage > 1 {
		engage = constants.DefaultAxisEngageThreshold
	}
	if release <= 0 || release >= engage {
		release = constants.DefaultAxisReleaseThreshold
	}
	return AxisGate{engage: engage, release: release}
}

// Update feeds the current axis value, normalized to [-1, 1]. It returns the
// engaged sign (-1, 0, +1) and whether this call crossed into a newly engaged
// direction. A sign flip past the engage threshold counts as a crossing
// without requiring a pass through neutral.
func (g *AxisGate) Update(value float32) (sign int, crossed bool) {
	switch {
	case value >= g.engage:
		crossed = g.sign != 1
		g.sign = 1
	case value <= -g.engage:
		crossed = g.sign != -1
		g.sign = -1
	case value > -g.release && value < g.release:
		g.sign = 0
	}
	return g.sign, crossed
}

// Sign returns the currently engaged sign without feeding a new value.
func (g *AxisGate) Sign() int {
	return g.sign
}

// Reset returns the gate to neutral.
func (g *AxisGate) Reset() {
	g.sign = 0
}

// Direction maps the engaged sign onto a vertical or horizontal Direction.
func (g *AxisGate) Direction(vertical bool) Direction {
	switch {
	case g.sign < 0 && vertical:
		return DirectionUp
	case g.sign > 0 && vertical:
		return DirectionDown
	case g.sign < 0:
		return DirectionLeft
	case g.sign > 0:
		return DirectionRight
	default:
		return DirectionNone
	}
}
