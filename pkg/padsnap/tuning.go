package padsnap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

// Tuning holds every timing, step, and threshold knob the engine exposes.
// Tick counts are in host frames, not wall-clock time.
type Tuning struct {
	// RepeatDelayTicks is how long a direction must be held before the
	// first repeat fires.
	RepeatDelayTicks uint32 `toml:"repeat_delay_ticks"`
	// RepeatIntervalTicks is the spacing between repeats after the first.
	RepeatIntervalTicks uint32 `toml:"repeat_interval_ticks"`
	// FineStep is how many entries a dpad or primary-stick event moves.
	FineStep int `toml:"fine_step"`
	// CoarseStep is how many entries a secondary-stick jump moves.
	CoarseStep int `toml:"coarse_step"`
	// ScrollPadding is the breathing room kept between the focused element
	// and the viewport edge, in pixels.
	ScrollPadding int32 `toml:"scroll_padding"`
	// AxisEngage is the stick deflection that engages a direction.
	AxisEngage float32 `toml:"axis_engage"`
	// AxisRelease is the deflection below which the direction disengages.
	// Must be lower than AxisEngage or it is replaced.
	AxisRelease float32 `toml:"axis_release"`
}

// DefaultTuning returns the stock knob values.
func DefaultTuning() Tuning {
	return Tuning{
		RepeatDelayTicks:    constants.DefaultRepeatDelayTicks,
		RepeatIntervalTicks: constants.DefaultRepeatIntervalTicks,
		FineStep:            constants.DefaultFineStep,
		CoarseStep:          constants.DefaultCoarseStep,
		ScrollPadding:       constants.DefaultScrollPadding,
		AxisEngage:          constants.DefaultAxisEngageThreshold,
		AxisRelease:         constants.DefaultAxisReleaseThreshold,
	}
}

// normalize replaces values that would break the engine with the defaults.
func (t Tuning) normalize() Tuning {
	def := DefaultTuning()
	if t.RepeatDelayTicks == 0 {
		t.RepeatDelayTicks = def.RepeatDelayTicks
	}
	if t.RepeatIntervalTicks == 0 {
		t.RepeatIntervalTicks = def.RepeatIntervalTicks
	}
	if t.FineStep < 1 {
		t.FineStep = def.FineStep
	}
	if t.CoarseStep < 1 {
		t.CoarseStep = def.CoarseStep
	}
	if t.ScrollPadding < 0 {
		t.ScrollPadding = def.ScrollPadding
	}
	if t.AxisEngage <= 0 || t.AxisEngage > 1 {
		t.AxisEngage = def.AxisEngage
	}
	if t.AxisRelease <= 0 || t.AxisRelease >= t.AxisEngage {
		t.AxisRelease = t.AxisEngage * 0.7
	}
	return t
}

// DefaultTuningPath returns the XDG location of the tuning file, creating
// parent directories as needed.
func DefaultTuningPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("padsnap", "tuning.toml"))
}

// LoadTuning reads a TOML tuning file. Keys absent from the file keep their
// default values, and a missing file yields the defaults without error, so
// hosts can ship no file at all.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultTuning(), nil
		}
		return DefaultTuning(), fmt.Errorf("load tuning: %w", err)
	}
	return t.normalize(), nil
}

// SaveTuning writes the tuning as TOML, creating parent directories.
func SaveTuning(path string, t Tuning) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(t); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}
