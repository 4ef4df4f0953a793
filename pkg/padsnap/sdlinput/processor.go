// Package sdlinput feeds SDL keyboard, game-controller, and joystick events
// into padsnap input frames. Hosts hand every event from their poll loop to
// HandleEvent and call Sample exactly once per update; press and release
// edges accumulate between samples so a tap shorter than one frame is never
// lost.
package sdlinput

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/padsnap/padsnap/pkg/padsnap"
	"github.com/padsnap/padsnap/pkg/padsnap/constants"
	"github.com/padsnap/padsnap/pkg/padsnap/internal"
)

// Processor accumulates SDL input events into per-frame snapshots. It also
// owns the game controllers it has opened, so hotplug events keep working
// without host involvement.
type Processor struct {
	mapping Mapping

	held     constants.ButtonMask
	pressed  constants.ButtonMask
	released constants.ButtonMask

	primary   padsnap.AxisPair
	secondary padsnap.AxisPair

	hat constants.ButtonMask

	controllers map[sdl.JoystickID]*sdl.GameController
}

// NewProcessor creates a processor using mapping. Call OpenControllers once
// SDL is initialized to pick up already-connected pads.
func NewProcessor(mapping Mapping) *Processor {
	return &Processor{
		mapping:     mapping,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// OpenControllers opens every connected game controller and returns how many
// are attached. Controllers plugged in later arrive through device events.
func (p *Processor) OpenControllers() int {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		p.openController(i)
	}
	return len(p.controllers)
}

func (p *Processor) openController(index int) {
	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil {
		internal.GetEngineLogger().Warn("controller open failed",
			"index", index, "error", sdl.GetError())
		return
	}

	id := ctrl.Joystick().InstanceID()
	p.controllers[id] = ctrl
	internal.GetEngineLogger().Info("controller attached", "id", id, "name", ctrl.Name())
}

// Close releases every controller the processor opened.
func (p *Processor) Close() {
	for id, ctrl := range p.controllers {
		ctrl.Close()
		delete(p.controllers, id)
	}
}

// HandleEvent consumes one SDL event, returning true when the event was an
// input event this processor owns. Unmapped buttons and non-input events
// return false so the host can route them elsewhere.
func (p *Processor) HandleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		return p.handleKey(e)
	case *sdl.ControllerButtonEvent:
		return p.handlePadButton(e)
	case *sdl.ControllerAxisEvent:
		return p.handlePadAxis(e)
	case *sdl.JoyButtonEvent:
		return p.handleJoyButton(e)
	case *sdl.JoyHatEvent:
		return p.handleJoyHat(e)
	case *sdl.JoyAxisEvent:
		return p.handleJoyAxis(e)
	case *sdl.ControllerDeviceEvent:
		return p.handleDevice(e)
	}
	return false
}

// Sample returns the frame accumulated since the previous call and clears
// the edge state. Held buttons and axis positions persist across samples.
func (p *Processor) Sample() padsnap.InputFrame {
	frame := padsnap.InputFrame{
		Pressed:   p.pressed,
		Released:  p.released,
		Held:      p.held,
		Primary:   p.primary,
		Secondary: p.secondary,
	}
	p.pressed = 0
	p.released = 0
	return frame
}

// Reset drops all held, edge, and axis state. Call it on window focus loss,
// where the matching release events may never arrive.
func (p *Processor) Reset() {
	p.pressed = 0
	p.released = 0
	p.held = 0
	p.hat = 0
	p.primary = padsnap.AxisPair{}
	p.secondary = padsnap.AxisPair{}
}

func (p *Processor) handleKey(e *sdl.KeyboardEvent) bool {
	button := p.mapping.key(e.Keysym.Sym)
	if button == constants.VirtualButtonUnassigned {
		return false
	}
	if e.Repeat != 0 {
		// The engine owns repeat timing.
		return true
	}
	p.apply(button, e.Type == sdl.KEYDOWN)
	return true
}

func (p *Processor) handlePadButton(e *sdl.ControllerButtonEvent) bool {
	button := p.mapping.pad(e.Button)
	if button == constants.VirtualButtonUnassigned {
		return false
	}
	p.apply(button, e.Type == sdl.CONTROLLERBUTTONDOWN)
	return true
}

func (p *Processor) handlePadAxis(e *sdl.ControllerAxisEvent) bool {
	value := normalizeAxis(e.Value)
	switch e.Axis {
	case uint8(sdl.CONTROLLER_AXIS_LEFTX):
		p.primary.X = value
	case uint8(sdl.CONTROLLER_AXIS_LEFTY):
		p.primary.Y = value
	case uint8(sdl.CONTROLLER_AXIS_RIGHTX):
		p.secondary.X = value
	case uint8(sdl.CONTROLLER_AXIS_RIGHTY):
		p.secondary.Y = value
	default:
		return false
	}
	return true
}

func (p *Processor) handleJoyButton(e *sdl.JoyButtonEvent) bool {
	if p.ownedByController(e.Which) {
		// The controller API already reported this press.
		return true
	}
	button := p.mapping.joy(e.Button)
	if button == constants.VirtualButtonUnassigned {
		return false
	}
	p.apply(button, e.Type == sdl.JOYBUTTONDOWN)
	return true
}

func (p *Processor) handleJoyHat(e *sdl.JoyHatEvent) bool {
	if p.ownedByController(e.Which) {
		return true
	}
	p.applyHat(hatMask(e.Value))
	return true
}

func (p *Processor) handleJoyAxis(e *sdl.JoyAxisEvent) bool {
	if p.ownedByController(e.Which) {
		return true
	}

	value := normalizeAxis(e.Value)
	switch e.Axis {
	case 0:
		p.primary.X = value
	case 1:
		p.primary.Y = value
	case 2:
		p.secondary.X = value
	case 3:
		p.secondary.Y = value
	default:
		return false
	}
	return true
}

func (p *Processor) handleDevice(e *sdl.ControllerDeviceEvent) bool {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		// Which is a device index on arrival.
		if sdl.IsGameController(int(e.Which)) {
			p.openController(int(e.Which))
		}
	case sdl.CONTROLLERDEVICEREMOVED:
		// Which is an instance id on removal.
		id := sdl.JoystickID(e.Which)
		if ctrl, ok := p.controllers[id]; ok {
			ctrl.Close()
			delete(p.controllers, id)
			internal.GetEngineLogger().Info("controller detached", "id", id)
		}
	default:
		return false
	}
	return true
}

func (p *Processor) ownedByController(id sdl.JoystickID) bool {
	_, ok := p.controllers[id]
	return ok
}

// apply records a button transition, folding repeated down reports from
// multiple devices into a single held state.
func (p *Processor) apply(button constants.VirtualButton, down bool) {
	if down {
		if !p.held.Has(button) {
			p.pressed.Set(button)
		}
		p.held.Set(button)
		return
	}

	if p.held.Has(button) {
		p.released.Set(button)
	}
	p.held.Clear(button)
}

// applyHat diffs the hat's current direction set against the previous one,
// producing press and release edges for each changed direction.
func (p *Processor) applyHat(next constants.ButtonMask) {
	for _, b := range [...]constants.VirtualButton{
		constants.VirtualButtonUp,
		constants.VirtualButtonDown,
		constants.VirtualButtonLeft,
		constants.VirtualButtonRight,
	} {
		was, is := p.hat.Has(b), next.Has(b)
		if was != is {
			p.apply(b, is)
		}
	}
	p.hat = next
}

func hatMask(value uint8) constants.ButtonMask {
	var m constants.ButtonMask
	if value&sdl.HAT_UP != 0 {
		m.Set(constants.VirtualButtonUp)
	}
	if value&sdl.HAT_DOWN != 0 {
		m.Set(constants.VirtualButtonDown)
	}
	if value&sdl.HAT_LEFT != 0 {
		m.Set(constants.VirtualButtonLeft)
	}
	if value&sdl.HAT_RIGHT != 0 {
		m.Set(constants.VirtualButtonRight)
	}
	return m
}

// normalizeAxis maps SDL's int16 range onto [-1, 1]. SDL and the engine
// agree that positive means down or right.
func normalizeAxis(value int16) float32 {
	if value == math.MinInt16 {
		return -1
	}
	return float32(value) / math.MaxInt16
}
