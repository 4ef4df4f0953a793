package evdevinput

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/holoplot/go-evdev"

	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

// AxisRole names the engine-facing slot an absolute axis feeds.
type AxisRole int

const (
	AxisNone AxisRole = iota
	AxisPrimaryX
	AxisPrimaryY
	AxisSecondaryX
	AxisSecondaryY
	// AxisHatX and AxisHatY are digital dpad axes reporting -1, 0, or 1.
	AxisHatX
	AxisHatY
)

// Profile maps one controller family's event codes onto virtual buttons and
// axis roles. Match lists the kernel device names the profile answers to.
type Profile struct {
	Name  string
	Match []string
	Keys  map[evdev.EvCode]constants.VirtualButton
	Axes  map[evdev.EvCode]AxisRole
}

// BuiltinProfiles returns the controller families recognized out of the box.
func BuiltinProfiles() []Profile {
	return []Profile{
		{
			Name: "xbox",
			Match: []string{
				"Xbox Wireless Controller",
				"Microsoft X-Box One pad",
				"Microsoft X-Box 360 pad",
				"Xbox Series X Controller",
			},
			Keys: gamepadKeys(),
			Axes: gamepadAxes(),
		},
		{
			Name: "playstation",
			Match: []string{
				"Wireless Controller",
				"Sony Interactive Entertainment Wireless Controller",
				"DualSense Wireless Controller",
			},
			Keys: gamepadKeys(),
			Axes: gamepadAxes(),
		},
		{
			Name: "switch-pro",
			Match: []string{
				"Nintendo Switch Pro Controller",
				"Pro Controller",
			},
			Keys: nintendoKeys(),
			Axes: gamepadAxes(),
		},
		{
			Name: "retro-handheld",
			Match: []string{
				"retrogame_joypad",
				"Deeplay-keys",
				"TrimUI Controller",
			},
			Keys: gamepadKeys(),
			Axes: retroAxes(),
		},
	}
}

// GenericProfile follows the Linux gamepad spec and is the fallback when no
// profile matches the device name.
func GenericProfile() Profile {
	return Profile{Name: "generic", Keys: gamepadKeys(), Axes: gamepadAxes()}
}

func gamepadKeys() map[evdev.EvCode]constants.VirtualButton {
	return map[evdev.EvCode]constants.VirtualButton{
		evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
		evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
		evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
		evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
		evdev.BTN_SOUTH:      constants.VirtualButtonConfirm,
		evdev.BTN_EAST:       constants.VirtualButtonCancel,
		evdev.BTN_TL:         constants.VirtualButtonShoulderLeft,
		evdev.BTN_TR:         constants.VirtualButtonShoulderRight,
	}
}

// nintendoKeys swaps confirm and cancel to the Nintendo button positions.
func nintendoKeys() map[evdev.EvCode]constants.VirtualButton {
	keys := gamepadKeys()
	keys[evdev.BTN_EAST] = constants.VirtualButtonConfirm
	keys[evdev.BTN_SOUTH] = constants.VirtualButtonCancel
	return keys
}

func gamepadAxes() map[evdev.EvCode]AxisRole {
	return map[evdev.EvCode]AxisRole{
		evdev.ABS_X:     AxisPrimaryX,
		evdev.ABS_Y:     AxisPrimaryY,
		evdev.ABS_RX:    AxisSecondaryX,
		evdev.ABS_RY:    AxisSecondaryY,
		evdev.ABS_HAT0X: AxisHatX,
		evdev.ABS_HAT0Y: AxisHatY,
	}
}

// retroAxes adds the ABS_Z/ABS_RZ right stick some handheld drivers report.
func retroAxes() map[evdev.EvCode]AxisRole {
	axes := gamepadAxes()
	axes[evdev.ABS_Z] = AxisSecondaryX
	axes[evdev.ABS_RZ] = AxisSecondaryY
	return axes
}

// MatchProfile picks the profile whose name list best matches the device
// name. Scoring favors exact names, then marketed-name prefixes, then close
// fuzzy matches for the creative spellings vendors ship; a device nothing
// matches gets the generic fallback with score 0.
func MatchProfile(deviceName string, profiles []Profile) (Profile, float64) {
	device := normalizeName(deviceName)

	type candidate struct {
		profile Profile
		score   float64
	}

	cands := make([]candidate, 0, len(profiles))
	for _, p := range profiles {
		best := 0.0
		for _, alias := range p.Match {
			if s := scoreName(device, normalizeName(alias)); s > best {
				best = s
			}
		}
		if best > 0 {
			cands = append(cands, candidate{profile: p, score: best})
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].profile.Name < cands[j].profile.Name
		}
		return cands[i].score > cands[j].score
	})

	if len(cands) == 0 {
		return GenericProfile(), 0
	}
	return cands[0].profile, cands[0].score
}

func scoreName(device, alias string) float64 {
	if device == "" || alias == "" {
		return 0
	}
	if device == alias {
		return 1.0
	}
	if strings.HasPrefix(device, alias) || strings.HasPrefix(alias, device) {
		return 0.9
	}

	dist := levenshtein.ComputeDistance(device, alias)
	if dist > levenshteinLimit(len(alias)) {
		if strings.Contains(device, alias) {
			return 0.76
		}
		return 0
	}

	score := 0.72 - 0.08*float64(dist)
	if strings.Contains(device, alias) {
		score += 0.04
	}
	return score
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
