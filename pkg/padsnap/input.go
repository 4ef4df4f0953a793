package padsnap

import (
	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

// AxisPair is one analog stick's deflection, each component in [-1, 1].
type AxisPair struct {
	X, Y float32
}

// InputFrame is the engine's entire view of one frame of input. A backend
// samples device state exactly once per frame and produces one of these; the
// engine never talks to hardware directly.
type InputFrame struct {
	// Pressed holds buttons that went down this frame.
	Pressed constants.ButtonMask
	// Released holds buttons that went up this frame.
	Released constants.ButtonMask
	// Held holds buttons currently down, including the ones in Pressed.
	Held constants.ButtonMask

	// Primary is the stick used for fine navigation (usually the left stick).
	Primary AxisPair
	// Secondary is the stick used for coarse jumps (usually the right stick).
	Secondary AxisPair
}

// IsIdle reports whether the frame carries no button state at all. Axis
// deflection is not considered; the engine's axis gates decide that.
func (f InputFrame) IsIdle() bool {
	return f.Pressed.Empty() && f.Released.Empty() && f.Held.Empty()
}

// Merge folds several sampled frames into one, for hosts reading more than
// one device per frame. Button masks union; each axis component keeps the
// largest deflection.
func Merge(frames ...InputFrame) InputFrame {
	var out InputFrame
	for _, f := range frames {
		out.Pressed |= f.Pressed
		out.Released |= f.Released
		out.Held |= f.Held
		out.Primary = mergeAxes(out.Primary, f.Primary)
		out.Secondary = mergeAxes(out.Secondary, f.Secondary)
	}
	return out
}

func mergeAxes(a, b AxisPair) AxisPair {
	return AxisPair{X: dominant(a.X, b.X), Y: dominant(a.Y, b.Y)}
}

func dominant(a, b float32) float32 {
	if abs32(b) > abs32(a) {
		return b
	}
	return a
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
