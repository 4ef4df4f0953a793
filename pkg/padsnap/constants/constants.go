// Package constants defines shared constants and input types used throughout
// the padsnap navigation engine and its input backends.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// WindowWidthEnvVar is the environment variable name for the development
// window width in pixels.
const WindowWidthEnvVar = "WINDOW_WIDTH"

// WindowHeightEnvVar is the environment variable name for the development
// window height in pixels.
const WindowHeightEnvVar = "WINDOW_HEIGHT"

// VirtualButton represents an abstract input button, mapped from physical
// hardware. Backends translate controller, joystick, and keyboard events into
// these so the engine never sees device-specific codes.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonConfirm
	VirtualButtonCancel
	VirtualButtonShoulderLeft
	VirtualButtonShoulderRight

	// VirtualButtonCount is the number of assignable buttons, kept last.
	VirtualButtonCount
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonConfirm:
		return "Confirm"
	case VirtualButtonCancel:
		return "Cancel"
	case VirtualButtonShoulderLeft:
		return "ShoulderLeft"
	case VirtualButtonShoulderRight:
		return "ShoulderRight"
	default:
		return "Unknown"
	}
}

// ButtonMask is a bit set over VirtualButton, used for per-frame
// pressed/released/held state.
type ButtonMask uint16

// Bit returns the mask bit for a single button, or 0 for Unassigned.
func Bit(vb VirtualButton) ButtonMask {
	if vb <= VirtualButtonUnassigned || vb >= VirtualButtonCount {
		return 0
	}
	return 1 << uint(vb)
}

// Has reports whether the mask contains the button.
func (m ButtonMask) Has(vb VirtualButton) bool {
	return m&Bit(vb) != 0
}

// With returns a copy of the mask with the button added.
func (m ButtonMask) With(vb VirtualButton) ButtonMask {
	return m | Bit(vb)
}

// Without returns a copy of the mask with the button removed.
func (m ButtonMask) Without(vb VirtualButton) ButtonMask {
	return m &^ Bit(vb)
}

// Set adds the button to the mask in place.
func (m *ButtonMask) Set(vb VirtualButton) {
	*m |= Bit(vb)
}

// Clear removes the button from the mask in place.
func (m *ButtonMask) Clear(vb VirtualButton) {
	*m &^= Bit(vb)
}

// Empty reports whether no buttons are set.
func (m ButtonMask) Empty() bool {
	return m == 0
}

// Default navigation timing and tuning values. Timing is expressed in host
// frame ticks rather than wall-clock time so held-input repeats stay
// deterministic under uneven frame pacing.
const (
	DefaultRepeatDelayTicks    uint32 = 24 // ticks before the first held repeat
	DefaultRepeatIntervalTicks uint32 = 8  // ticks between subsequent repeats
	DefaultFineStep                   = 1  // entries per fine navigation event
	DefaultCoarseStep                 = 3  // entries per coarse navigation event
)

// Default analog and scroll tuning values.
const (
	DefaultScrollPadding        int32   = 16   // extra pixels kept between focus and viewport edge
	DefaultAxisEngageThreshold  float32 = 0.5  // axis magnitude that engages a direction
	DefaultAxisReleaseThreshold float32 = 0.35 // axis magnitude that releases it again
)
