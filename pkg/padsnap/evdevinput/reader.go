// Package evdevinput reads Linux input devices directly, for embedded hosts
// that run without SDL's input subsystem. Each Reader owns one device node
// and a goroutine draining its events into latched atomic state; Sample
// assembles input frames from that state on the frame thread.
package evdevinput

import (
	"fmt"
	"sync"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/padsnap/padsnap/pkg/padsnap"
	"github.com/padsnap/padsnap/pkg/padsnap/constants"
	"github.com/padsnap/padsnap/pkg/padsnap/internal"
)

// DeviceInfo describes one discovered controller and the profile matched to
// its name.
type DeviceInfo struct {
	Path    string
	Name    string
	Profile string
	Score   float64
}

// Scan lists input devices that advertise gamepad buttons, with the profile
// each would open under. Nodes that cannot be opened are skipped.
func Scan() ([]DeviceInfo, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	log := internal.GetEngineLogger()
	infos := make([]DeviceInfo, 0, len(paths))
	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			log.Debug("skipping input device", "path", p.Path, "error", err)
			continue
		}

		gamepad := isGamepad(dev)
		name, nameErr := dev.Name()
		dev.Close()

		if !gamepad {
			continue
		}
		if nameErr != nil || name == "" {
			name = p.Name
		}

		profile, score := MatchProfile(name, BuiltinProfiles())
		infos = append(infos, DeviceInfo{
			Path:    p.Path,
			Name:    name,
			Profile: profile.Name,
			Score:   score,
		})
	}
	return infos, nil
}

// isGamepad reports whether the device carries at least one gamepad button.
// Keyboards and mice advertise EV_KEY too, so the check is on codes, not
// types.
func isGamepad(dev *evdev.InputDevice) bool {
	for _, t := range dev.CapableTypes() {
		if t != evdev.EV_KEY {
			continue
		}
		for _, code := range dev.CapableEvents(t) {
			switch code {
			case evdev.BTN_SOUTH, evdev.BTN_START, evdev.BTN_DPAD_UP:
				return true
			}
		}
	}
	return false
}

// Reader owns one opened device and the goroutine reading it.
type Reader struct {
	dev     *evdev.InputDevice
	path    string
	name    string
	profile Profile
	abs     map[evdev.EvCode]evdev.AbsInfo

	held     atomic.Uint32
	pressed  atomic.Uint32
	released atomic.Uint32

	primaryX   atomic.Float64
	primaryY   atomic.Float64
	secondaryX atomic.Float64
	secondaryY atomic.Float64

	closed atomic.Bool
	wg     sync.WaitGroup

	// hat state is touched only by the reader goroutine.
	hatX, hatY int32
}

// Open opens the device at path under the built-in profiles and starts its
// reader goroutine.
func Open(path string) (*Reader, error) {
	return OpenWithProfiles(path, BuiltinProfiles())
}

// OpenWithProfiles is Open with a caller-supplied profile set.
func OpenWithProfiles(path string, profiles []Profile) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	name, err := dev.Name()
	if err != nil || name == "" {
		name = path
	}
	profile, score := MatchProfile(name, profiles)

	abs, err := dev.AbsInfos()
	if err != nil {
		abs = map[evdev.EvCode]evdev.AbsInfo{}
	}

	r := &Reader{
		dev:     dev,
		path:    path,
		name:    name,
		profile: profile,
		abs:     abs,
	}
	r.wg.Add(1)
	go r.loop()

	internal.GetEngineLogger().Info("evdev device attached",
		"path", path, "name", name, "profile", profile.Name, "score", score)
	return r, nil
}

// Name returns the kernel-reported device name.
func (r *Reader) Name() string {
	return r.name
}

// Path returns the device node path.
func (r *Reader) Path() string {
	return r.path
}

// Profile returns the profile the device opened under.
func (r *Reader) Profile() Profile {
	return r.profile
}

// Alive reports whether the reader goroutine is still running. Hosts drop
// dead readers and rescan.
func (r *Reader) Alive() bool {
	return !r.closed.Load()
}

// Close stops the reader goroutine and releases the device.
func (r *Reader) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	// Closing the node unblocks the goroutine's pending read.
	err := r.dev.Close()
	r.wg.Wait()
	return err
}

// Sample assembles the frame accumulated since the previous call and drains
// the edge state. Call it from the frame thread only.
func (r *Reader) Sample() padsnap.InputFrame {
	return padsnap.InputFrame{
		Pressed:  constants.ButtonMask(r.pressed.Swap(0)),
		Released: constants.ButtonMask(r.released.Swap(0)),
		Held:     constants.ButtonMask(r.held.Load()),
		Primary: padsnap.AxisPair{
			X: float32(r.primaryX.Load()),
			Y: float32(r.primaryY.Load()),
		},
		Secondary: padsnap.AxisPair{
			X: float32(r.secondaryX.Load()),
			Y: float32(r.secondaryY.Load()),
		},
	}
}

func (r *Reader) loop() {
	defer r.wg.Done()

	for {
		event, err := r.dev.ReadOne()
		if err != nil {
			if !r.closed.Load() {
				internal.GetEngineLogger().Warn("evdev device lost",
					"path", r.path, "name", r.name, "error", err)
				r.markDead()
			}
			return
		}

		switch event.Type {
		case evdev.EV_KEY:
			r.handleKey(event.Code, event.Value)
		case evdev.EV_ABS:
			r.handleAbs(event.Code, event.Value)
		}
	}
}

// markDead clears all latched state so a vanished pad cannot leave buttons
// stuck down.
func (r *Reader) markDead() {
	r.closed.Store(true)
	r.held.Store(0)
	r.pressed.Store(0)
	r.released.Store(0)
	r.primaryX.Store(0)
	r.primaryY.Store(0)
	r.secondaryX.Store(0)
	r.secondaryY.Store(0)
}

func (r *Reader) handleKey(code evdev.EvCode, value int32) {
	if value > 1 {
		// Kernel autorepeat; the engine owns repeat timing.
		return
	}

	button := r.profile.Keys[code]
	if button == constants.VirtualButtonUnassigned {
		return
	}
	if value == 1 {
		r.press(button)
	} else {
		r.release(button)
	}
}

func (r *Reader) handleAbs(code evdev.EvCode, value int32) {
	switch r.profile.Axes[code] {
	case AxisHatX:
		r.hatX = r.applyHat(r.hatX, value,
			constants.VirtualButtonLeft, constants.VirtualButtonRight)
	case AxisHatY:
		r.hatY = r.applyHat(r.hatY, value,
			constants.VirtualButtonUp, constants.VirtualButtonDown)
	case AxisPrimaryX:
		r.primaryX.Store(r.normalize(code, value))
	case AxisPrimaryY:
		r.primaryY.Store(r.normalize(code, value))
	case AxisSecondaryX:
		r.secondaryX.Store(r.normalize(code, value))
	case AxisSecondaryY:
		r.secondaryY.Store(r.normalize(code, value))
	}
}

// applyHat turns a digital hat axis transition into press/release edges on
// its negative/positive buttons and returns the new axis sign.
func (r *Reader) applyHat(prev, value int32, negative, positive constants.VirtualButton) int32 {
	next := sign32(value)
	if next == prev {
		return prev
	}

	switch prev {
	case -1:
		r.release(negative)
	case 1:
		r.release(positive)
	}
	switch next {
	case -1:
		r.press(negative)
	case 1:
		r.press(positive)
	}
	return next
}

// normalize maps a raw axis value onto [-1, 1] using the device's reported
// range, falling back to the common signed 16-bit range.
func (r *Reader) normalize(code evdev.EvCode, value int32) float64 {
	info, ok := r.abs[code]
	if !ok || info.Maximum <= info.Minimum {
		return clampUnit(float64(value) / 32767)
	}

	span := float64(info.Maximum - info.Minimum)
	return clampUnit((float64(value-info.Minimum)/span)*2 - 1)
}

func (r *Reader) press(b constants.VirtualButton) {
	bit := uint32(constants.Bit(b))
	if bit == 0 {
		return
	}
	if r.held.Load()&bit == 0 {
		orBits(&r.pressed, bit)
	}
	orBits(&r.held, bit)
}

func (r *Reader) release(b constants.VirtualButton) {
	bit := uint32(constants.Bit(b))
	if bit == 0 {
		return
	}
	if r.held.Load()&bit != 0 {
		orBits(&r.released, bit)
	}
	clearBits(&r.held, bit)
}

func orBits(v *atomic.Uint32, bits uint32) {
	for {
		old := v.Load()
		if v.CompareAndSwap(old, old|bits) {
			return
		}
	}
}

func clearBits(v *atomic.Uint32, bits uint32) {
	for {
		old := v.Load()
		if v.CompareAndSwap(old, old&^bits) {
			return
		}
	}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func sign32(v int32) int32 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
