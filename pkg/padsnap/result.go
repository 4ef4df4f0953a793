package padsnap

// Feedback classifies the audio/haptic cue a frame asks the host to play.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackNavigate
	FeedbackConfirm
	FeedbackCancel
	FeedbackError
)

func (f Feedback) String() string {
	switch f {
	case FeedbackNavigate:
		return "navigate"
	case FeedbackConfirm:
		return "confirm"
	case FeedbackCancel:
		return "cancel"
	case FeedbackError:
		return "error"
	default:
		return "none"
	}
}

// FrameResult reports everything one Update call did. The host renders from
// it in the same frame; every field reflects state after the frame's
// mutations.
type FrameResult struct {
	// Focus is the focused element's flat index, or -1 when nothing is
	// focusable.
	Focus int
	// Moved is true when focus changed this frame.
	Moved bool
	// Activated is true when a focused element's Activate ran.
	Activated bool
	// Adjusted is true when a focused Adjustable's value changed.
	Adjusted bool
	// ModalOpen is true when the choice-list modal is open after the frame.
	ModalOpen bool
	// TabDelta is -1 or +1 when a shoulder press asked for the previous or
	// next tab, 0 otherwise. The host owns tab switching.
	TabDelta int
	// EdgeExit is true when Left was pressed at column 0 of a grid. The
	// engine does not absorb it; hosts pairing a grid with a side rail move
	// focus out of the grid themselves.
	EdgeExit bool
	// Cancelled is true when Cancel was pressed outside the modal. The host
	// decides what closing means.
	Cancelled bool
	// Passthrough is true when the page could not be adapted and input
	// should be handled by the host's native pointer path instead.
	Passthrough bool
	// Feedback is the cue for the frame's most significant outcome.
	Feedback Feedback
}
