package padsnap

// Kind classifies a focusable element. The kind decides how Confirm and
// horizontal input route to it.
type Kind int

const (
	// KindLabel is decorative text. Labels never take focus under the
	// default interactive policy.
	KindLabel Kind = iota
	// KindButton fires a callback on Confirm.
	KindButton
	// KindToggle flips a boolean on Confirm.
	KindToggle
	// KindAdjuster owns an ordered value edited in place by horizontal input.
	KindAdjuster
	// KindChoiceList owns a list of options picked through the selection
	// modal.
	KindChoiceList
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindToggle:
		return "toggle"
	case KindAdjuster:
		return "adjuster"
	case KindChoiceList:
		return "choicelist"
	default:
		return "unknown"
	}
}

// Element is the engine's view of one host widget, produced by a Registry
// adapter. Bounds reports ok=false until the owning page has rendered at
// least once; positions are only trustworthy right after a render pass.
type Element interface {
	Kind() Kind
	Bounds() (Rect, bool)
}

// Activatable is the capability of elements that respond to Confirm.
// Toggles flip their state and fire their callback; buttons fire their
// callback.
type Activatable interface {
	Activate() error
}

// Adjustable is the capability of elements whose value horizontal input
// edits in place. Adjust clamps to the element's range and reports whether
// the value actually changed; the element's change callback fires only on a
// change.
type Adjustable interface {
	Adjust(delta int) (changed bool, err error)
}

// OptionCycler is the capability of choice-list elements. SetSelected with
// notify=false previews a selection without firing the host's change
// callback; notify=true commits it.
type OptionCycler interface {
	Options() int
	Selected() int
	SetSelected(i int, notify bool) error
}

// InteractivePolicy decides whether an element can take focus. The default
// policy accepts any element exposing an activation, adjustment, or option
// capability, which excludes plain labels.
type InteractivePolicy func(Element) bool

func defaultInteractive(e Element) bool {
	if _, ok := e.(Activatable); ok {
		return true
	}
	if _, ok := e.(Adjustable); ok {
		return true
	}
	if _, ok := e.(OptionCycler); ok {
		return true
	}
	return false
}
