package menu

import (
	"github.com/padsnap/padsnap/pkg/padsnap"
)

// RegisterAdapters installs an adapter for every widget type in this
// package. Hosts call it once at startup on the registry their engine uses.
func RegisterAdapters(r *padsnap.Registry) {
	padsnap.Register(r, func(w *Label) padsnap.Element { return labelElement{w} })
	padsnap.Register(r, func(w *Toggle) padsnap.Element { return toggleElement{w} })
	padsnap.Register(r, func(w *Button) padsnap.Element { return buttonElement{w} })
	padsnap.Register(r, func(w *Slider) padsnap.Element { return sliderElement{w} })
	padsnap.Register(r, func(w *Picker) padsnap.Element { return pickerElement{w} })
}

type labelElement struct{ w *Label }

func (e labelElement) Kind() padsnap.Kind           { return padsnap.KindLabel }
func (e labelElement) Bounds() (padsnap.Rect, bool) { return e.w.RenderedBounds() }

type toggleElement struct{ w *Toggle }

func (e toggleElement) Kind() padsnap.Kind           { return padsnap.KindToggle }
func (e toggleElement) Bounds() (padsnap.Rect, bool) { return e.w.RenderedBounds() }
func (e toggleElement) Activate() error {
	e.w.Flip()
	return nil
}

type buttonElement struct{ w *Button }

func (e buttonElement) Kind() padsnap.Kind           { return padsnap.KindButton }
func (e buttonElement) Bounds() (padsnap.Rect, bool) { return e.w.RenderedBounds() }
func (e buttonElement) Activate() error {
	return e.w.Press()
}

type sliderElement struct{ w *Slider }

func (e sliderElement) Kind() padsnap.Kind           { return padsnap.KindAdjuster }
func (e sliderElement) Bounds() (padsnap.Rect, bool) { return e.w.RenderedBounds() }
func (e sliderElement) Adjust(delta int) (bool, error) {
	return e.w.Nudge(delta), nil
}

type pickerElement struct{ w *Picker }

func (e pickerElement) Kind() padsnap.Kind           { return padsnap.KindChoiceList }
func (e pickerElement) Bounds() (padsnap.Rect, bool) { return e.w.RenderedBounds() }
func (e pickerElement) Options() int                 { return len(e.w.Options) }
func (e pickerElement) Selected() int                { return e.w.Selected }
func (e pickerElement) SetSelected(i int, notify bool) error {
	return e.w.Select(i, notify)
}
