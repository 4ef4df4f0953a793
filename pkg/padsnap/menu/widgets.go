// Package menu is a reference widget kit for hosts that do not bring their
// own menu system. The widgets are deliberately pointer-first: plain structs
// with click-style methods and callbacks, knowing nothing about the engine.
// RegisterAdapters wires them into a padsnap.Registry the same way a real
// game's integration layer would wrap its own UI classes.
package menu

import (
	"fmt"

	"github.com/padsnap/padsnap/pkg/padsnap"
)

// widgetBase carries the rendered-bounds bookkeeping every widget shares.
// Bounds are trustworthy only right after the owning page's layout pass.
type widgetBase struct {
	bounds   padsnap.Rect
	rendered bool
}

// SetRenderedBounds records where the widget was just drawn.
func (b *widgetBase) SetRenderedBounds(r padsnap.Rect) {
	b.bounds = r
	b.rendered = true
}

// RenderedBounds returns the last drawn rectangle and whether one exists yet.
func (b *widgetBase) RenderedBounds() (padsnap.Rect, bool) {
	return b.bounds, b.rendered
}

// Label is decorative text. It never takes focus.
type Label struct {
	widgetBase
	Text string
}

// Toggle is an on/off switch. A pointer host would call Flip from its click
// handler; the gamepad engine calls it through the adapter.
type Toggle struct {
	widgetBase
	Text     string
	On       bool
	OnChange func(on bool)
}

// Flip inverts the switch and fires OnChange.
func (t *Toggle) Flip() {
	t.On = !t.On
	if t.OnChange != nil {
		t.OnChange(t.On)
	}
}

// Button fires OnPress when activated.
type Button struct {
	widgetBase
	Text    string
	OnPress func() error
}

// Press runs the button's action.
func (b *Button) Press() error {
	if b.OnPress == nil {
		return nil
	}
	return b.OnPress()
}

// Slider is a bounded integer value. OnChange fires only when the value
// actually changes; nudging against a limit is silent.
type Slider struct {
	widgetBase
	Text     string
	Value    int
	Min      int
	Max      int
	Step     int
	OnChange func(value int)
}

// Nudge moves the value by delta steps, clamped to [Min, Max], and reports
// whether anything changed.
func (s *Slider) Nudge(delta int) bool {
	step := s.Step
	if step <= 0 {
		step = 1
	}

	next := s.Value + delta*step
	if next < s.Min {
		next = s.Min
	}
	if next > s.Max {
		next = s.Max
	}
	if next == s.Value {
		return false
	}

	s.Value = next
	if s.OnChange != nil {
		s.OnChange(next)
	}
	return true
}

// Picker owns a list of options with one selected. OnChange fires only on a
// committed selection; previews stay silent so browsing cannot trigger the
// host's side effects.
type Picker struct {
	widgetBase
	Text     string
	Options  []string
	Selected int
	OnChange func(index int, option string)
}

// Select sets the selected option. notify controls whether OnChange fires.
func (p *Picker) Select(i int, notify bool) error {
	if i < 0 || i >= len(p.Options) {
		return fmt.Errorf("option %d out of range, have %d", i, len(p.Options))
	}

	p.Selected = i
	if notify && p.OnChange != nil {
		p.OnChange(i, p.Options[i])
	}
	return nil
}

// SelectedOption returns the current option text, or "" when the picker is
// empty.
func (p *Picker) SelectedOption() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}
