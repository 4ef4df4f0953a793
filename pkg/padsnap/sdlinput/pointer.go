package sdlinput

import "github.com/veandco/go-sdl2/sdl"

// Pointer mirrors engine focus onto the host's native cursor. Move is meant
// to be wired into padsnap.Options.PointerMove; Click replays activation
// through the host's ordinary mouse path as a synthetic event pair.
type Pointer struct {
	window *sdl.Window
	lastX  int32
	lastY  int32
}

// NewPointer creates a pointer bound to window.
func NewPointer(window *sdl.Window) *Pointer {
	return &Pointer{window: window}
}

// Move warps the native cursor inside the window so it rides the focus.
func (p *Pointer) Move(x, y int32) {
	p.lastX, p.lastY = x, y
	p.window.WarpMouseInWindow(x, y)
}

// Click pushes a synthetic left-button press and release at (x, y). Hosts
// that route all activation through their pointer pipeline call this when
// the engine reports a confirm; hosts that let the engine activate elements
// directly should instead drop the mirrored click via the engine's
// SuppressClick.
func (p *Pointer) Click(x, y int32) error {
	id, err := p.window.GetID()
	if err != nil {
		return err
	}

	down := &sdl.MouseButtonEvent{
		Type:      sdl.MOUSEBUTTONDOWN,
		Timestamp: sdl.GetTicks(),
		WindowID:  id,
		Button:    sdl.BUTTON_LEFT,
		State:     sdl.PRESSED,
		Clicks:    1,
		X:         x,
		Y:         y,
	}
	if _, err := sdl.PushEvent(down); err != nil {
		return err
	}

	up := &sdl.MouseButtonEvent{
		Type:      sdl.MOUSEBUTTONUP,
		Timestamp: sdl.GetTicks(),
		WindowID:  id,
		Button:    sdl.BUTTON_LEFT,
		State:     sdl.RELEASED,
		Clicks:    1,
		X:         x,
		Y:         y,
	}
	_, err = sdl.PushEvent(up)
	return err
}

// ClickAtCursor clicks wherever Move last warped.
func (p *Pointer) ClickAtCursor() error {
	return p.Click(p.lastX, p.lastY)
}
