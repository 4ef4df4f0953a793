package evdevinput

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/require"

	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

// testReader builds a reader around latched state only, with no device and
// no goroutine behind it.
func testReader() *Reader {
	return &Reader{
		profile: GenericProfile(),
		abs: map[evdev.EvCode]evdev.AbsInfo{
			evdev.ABS_X:  {Minimum: -32768, Maximum: 32767},
			evdev.ABS_RY: {Minimum: 0, Maximum: 255},
		},
	}
}

func TestReaderKeyEdgesLatch(t *testing.T) {
	r := testReader()

	r.handleKey(evdev.BTN_SOUTH, 1)
	frame := r.Sample()
	require.True(t, frame.Pressed.Has(constants.VirtualButtonConfirm))
	require.True(t, frame.Held.Has(constants.VirtualButtonConfirm))

	frame = r.Sample()
	require.True(t, frame.Pressed.Empty(), "edges drain once sampled")
	require.True(t, frame.Held.Has(constants.VirtualButtonConfirm))

	r.handleKey(evdev.BTN_SOUTH, 0)
	frame = r.Sample()
	require.True(t, frame.Released.Has(constants.VirtualButtonConfirm))
	require.True(t, frame.Held.Empty())
}

func TestReaderTapBetweenSamples(t *testing.T) {
	r := testReader()

	r.handleKey(evdev.BTN_SOUTH, 1)
	r.handleKey(evdev.BTN_SOUTH, 0)

	frame := r.Sample()
	require.True(t, frame.Pressed.Has(constants.VirtualButtonConfirm), "a tap faster than one frame keeps its edge")
	require.True(t, frame.Released.Has(constants.VirtualButtonConfirm))
	require.True(t, frame.Held.Empty())
}

func TestReaderIgnoresKernelAutorepeat(t *testing.T) {
	r := testReader()

	r.handleKey(evdev.BTN_SOUTH, 1)
	r.Sample()
	r.handleKey(evdev.BTN_SOUTH, 2)

	frame := r.Sample()
	require.True(t, frame.Pressed.Empty())
	require.True(t, frame.Held.Has(constants.VirtualButtonConfirm))
}

func TestReaderIgnoresUnmappedKeys(t *testing.T) {
	r := testReader()

	r.handleKey(evdev.BTN_THUMBL, 1)
	require.True(t, r.Sample().IsIdle())
}

func TestReaderHatEdges(t *testing.T) {
	r := testReader()

	r.handleAbs(evdev.ABS_HAT0Y, -1)
	frame := r.Sample()
	require.True(t, frame.Pressed.Has(constants.VirtualButtonUp))
	require.True(t, frame.Held.Has(constants.VirtualButtonUp))

	// Straight flip from up to down releases one and presses the other.
	r.handleAbs(evdev.ABS_HAT0Y, 1)
	frame = r.Sample()
	require.True(t, frame.Released.Has(constants.VirtualButtonUp))
	require.True(t, frame.Pressed.Has(constants.VirtualButtonDown))

	r.handleAbs(evdev.ABS_HAT0Y, 0)
	frame = r.Sample()
	require.True(t, frame.Released.Has(constants.VirtualButtonDown))
	require.True(t, frame.Held.Empty())
}

func TestReaderAxisNormalization(t *testing.T) {
	r := testReader()

	r.handleAbs(evdev.ABS_X, 32767)
	frame := r.Sample()
	require.InDelta(t, 1.0, frame.Primary.X, 0.001)

	r.handleAbs(evdev.ABS_X, 0)
	frame = r.Sample()
	require.InDelta(t, 0.0, frame.Primary.X, 0.001, "signed ranges center on zero")

	// Unsigned byte-range axes still span the full [-1, 1].
	r.handleAbs(evdev.ABS_RY, 255)
	frame = r.Sample()
	require.InDelta(t, 1.0, frame.Secondary.Y, 0.001)
	r.handleAbs(evdev.ABS_RY, 0)
	frame = r.Sample()
	require.InDelta(t, -1.0, frame.Secondary.Y, 0.001)
}

func TestReaderAxisFallbackRange(t *testing.T) {
	r := testReader()

	// ABS_RX has no advertised range in the fixture.
	r.handleAbs(evdev.ABS_RX, 16384)
	frame := r.Sample()
	require.InDelta(t, 0.5, frame.Secondary.X, 0.01)
}

func TestReaderMarkDeadClearsState(t *testing.T) {
	r := testReader()

	r.handleKey(evdev.BTN_SOUTH, 1)
	r.handleAbs(evdev.ABS_X, 32767)
	r.markDead()

	require.False(t, r.Alive())
	frame := r.Sample()
	require.True(t, frame.IsIdle())
	require.Zero(t, frame.Primary.X, "a vanished pad cannot leave input stuck")
}
