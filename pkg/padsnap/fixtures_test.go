package padsnap

import (
	"errors"

	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

// The stub widgets below play the host's pointer-first classes: plain
// structs with fields and callbacks, no knowledge of the engine. The
// adapters wrap them the way a real host's integration boundary would.

type stubLabel struct {
	text     string
	bounds   Rect
	rendered bool
}

type stubToggle struct {
	on       bool
	bounds   Rect
	rendered bool
	changes  int
}

type stubButton struct {
	clicks   int
	bounds   Rect
	rendered bool
	fail     bool
}

type stubSlider struct {
	value    int
	min      int
	max      int
	step     int
	bounds   Rect
	rendered bool
	changes  int
}

type stubPicker struct {
	options  []string
	selected int
	bounds   Rect
	rendered bool
	commits  int
	previews int
}

type labelAdapter struct{ w *stubLabel }

func (a labelAdapter) Kind() Kind           { return KindLabel }
func (a labelAdapter) Bounds() (Rect, bool) { return a.w.bounds, a.w.rendered }

type toggleAdapter struct{ w *stubToggle }

func (a toggleAdapter) Kind() Kind           { return KindToggle }
func (a toggleAdapter) Bounds() (Rect, bool) { return a.w.bounds, a.w.rendered }
func (a toggleAdapter) Activate() error {
	a.w.on = !a.w.on
	a.w.changes++
	return nil
}

type buttonAdapter struct{ w *stubButton }

func (a buttonAdapter) Kind() Kind           { return KindButton }
func (a buttonAdapter) Bounds() (Rect, bool) { return a.w.bounds, a.w.rendered }
func (a buttonAdapter) Activate() error {
	if a.w.fail {
		return errors.New("button handler failed")
	}
	a.w.clicks++
	return nil
}

type sliderAdapter struct{ w *stubSlider }

func (a sliderAdapter) Kind() Kind           { return KindAdjuster }
func (a sliderAdapter) Bounds() (Rect, bool) { return a.w.bounds, a.w.rendered }
func (a sliderAdapter) Adjust(delta int) (bool, error) {
	next := a.w.value + delta*a.w.step
	if next < a.w.min {
		next = a.w.min
	}
	if next > a.w.max {
		next = a.w.max
	}
	if next == a.w.value {
		return false, nil
	}
	a.w.value = next
	a.w.changes++
	return true, nil
}

type pickerAdapter struct{ w *stubPicker }

func (a pickerAdapter) Kind() Kind           { return KindChoiceList }
func (a pickerAdapter) Bounds() (Rect, bool) { return a.w.bounds, a.w.rendered }
func (a pickerAdapter) Options() int         { return len(a.w.options) }
func (a pickerAdapter) Selected() int        { return a.w.selected }
func (a pickerAdapter) SetSelected(i int, notify bool) error {
	a.w.selected = i
	if notify {
		a.w.commits++
	} else {
		a.w.previews++
	}
	return nil
}

func newTestRegistry() *Registry {
	r := NewRegistry()
	Register(r, func(w *stubLabel) Element { return labelAdapter{w} })
	Register(r, func(w *stubToggle) Element { return toggleAdapter{w} })
	Register(r, func(w *stubButton) Element { return buttonAdapter{w} })
	Register(r, func(w *stubSlider) Element { return sliderAdapter{w} })
	Register(r, func(w *stubPicker) Element { return pickerAdapter{w} })
	return r
}

type stubPage struct {
	widgets  []any
	viewport Rect
}

func (p *stubPage) Elements() []any { return p.widgets }
func (p *stubPage) Viewport() Rect  { return p.viewport }

type scrollPage struct {
	stubPage
	offset int32
	max    int32
}

func (p *scrollPage) ScrollState() (int32, int32)  { return p.offset, p.max }
func (p *scrollPage) SetScrollOffset(offset int32) { p.offset = offset }

type gridPage struct {
	stubPage
	cols int
}

func (p *gridPage) Columns() int { return p.cols }

// togglesPage builds a linear page of n rendered toggles stacked vertically,
// 40 pixels tall each.
func togglesPage(n int) (*stubPage, []*stubToggle) {
	toggles := make([]*stubToggle, n)
	widgets := make([]any, n)
	for i := range toggles {
		toggles[i] = &stubToggle{
			bounds:   Rect{X: 0, Y: int32(i) * 40, W: 200, H: 40},
			rendered: true,
		}
		widgets[i] = toggles[i]
	}
	page := &stubPage{
		widgets:  widgets,
		viewport: Rect{X: 0, Y: 0, W: 200, H: int32(n) * 40},
	}
	return page, toggles
}

func pressFrame(b constants.VirtualButton) InputFrame {
	return InputFrame{Pressed: constants.Bit(b), Held: constants.Bit(b)}
}

func holdFrame(b constants.VirtualButton) InputFrame {
	return InputFrame{Held: constants.Bit(b)}
}

// tap presses and releases a button, returning the press frame's result.
func tap(e *Engine, b constants.VirtualButton) FrameResult {
	result := e.Update(pressFrame(b))
	e.Update(InputFrame{Released: constants.Bit(b)})
	return result
}
