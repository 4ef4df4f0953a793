package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

// Mapping translates device-specific codes into virtual buttons. Hosts that
// support rebinding replace entries before constructing the Processor; a
// missing entry leaves the input unmapped and the event unconsumed.
//
// Hat switches are not remappable: a hat is a dpad and always reports the
// four directions.
type Mapping struct {
	// Keys maps keyboard keycodes, primarily for development machines
	// without a pad attached.
	Keys map[sdl.Keycode]constants.VirtualButton
	// Pad maps game-controller buttons as SDL reports them in
	// ControllerButtonEvent.Button.
	Pad map[uint8]constants.VirtualButton
	// JoyButtons maps raw joystick buttons for devices SDL has no
	// game-controller profile for.
	JoyButtons map[uint8]constants.VirtualButton
}

// DefaultMapping covers a stock game controller, a bare joystick with the
// common confirm/cancel/shoulder numbering, and a keyboard layout for
// development.
func DefaultMapping() Mapping {
	return Mapping{
		Keys: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:     constants.VirtualButtonUp,
			sdl.K_DOWN:   constants.VirtualButtonDown,
			sdl.K_LEFT:   constants.VirtualButtonLeft,
			sdl.K_RIGHT:  constants.VirtualButtonRight,
			sdl.K_RETURN: constants.VirtualButtonConfirm,
			sdl.K_z:      constants.VirtualButtonConfirm,
			sdl.K_ESCAPE: constants.VirtualButtonCancel,
			sdl.K_x:      constants.VirtualButtonCancel,
			sdl.K_q:      constants.VirtualButtonShoulderLeft,
			sdl.K_e:      constants.VirtualButtonShoulderRight,
		},
		Pad: map[uint8]constants.VirtualButton{
			uint8(sdl.CONTROLLER_BUTTON_DPAD_UP):       constants.VirtualButtonUp,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     constants.VirtualButtonDown,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     constants.VirtualButtonLeft,
			uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    constants.VirtualButtonRight,
			uint8(sdl.CONTROLLER_BUTTON_A):             constants.VirtualButtonConfirm,
			uint8(sdl.CONTROLLER_BUTTON_B):             constants.VirtualButtonCancel,
			uint8(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  constants.VirtualButtonShoulderLeft,
			uint8(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): constants.VirtualButtonShoulderRight,
		},
		JoyButtons: map[uint8]constants.VirtualButton{
			0: constants.VirtualButtonConfirm,
			1: constants.VirtualButtonCancel,
			4: constants.VirtualButtonShoulderLeft,
			5: constants.VirtualButtonShoulderRight,
		},
	}
}

func (m Mapping) key(code sdl.Keycode) constants.VirtualButton {
	return m.Keys[code]
}

func (m Mapping) pad(button uint8) constants.VirtualButton {
	return m.Pad[button]
}

func (m Mapping) joy(button uint8) constants.VirtualButton {
	return m.JoyButtons[button]
}
