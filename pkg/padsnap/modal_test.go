package padsnap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

func pickerEngine(t *testing.T) (*Engine, *stubPicker) {
	t.Helper()

	picker := &stubPicker{
		options:  []string{"A", "B", "C"},
		selected: 0,
		bounds:   Rect{X: 0, Y: 0, W: 200, H: 40},
		rendered: true,
	}
	page := &stubPage{
		widgets:  []any{picker},
		viewport: Rect{X: 0, Y: 0, W: 200, H: 400},
	}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{}) // settle focus
	return e, picker
}

func TestModalCancelRestoresSelection(t *testing.T) {
	e, picker := pickerEngine(t)

	result := tap(e, constants.VirtualButtonConfirm)
	require.True(t, result.ModalOpen)
	require.Equal(t, 0, e.ModalSelection())

	tap(e, constants.VirtualButtonDown)
	result = tap(e, constants.VirtualButtonDown)
	require.Equal(t, 2, e.ModalSelection())
	require.Equal(t, 2, picker.selected, "cycling previews on the element")

	result = tap(e, constants.VirtualButtonCancel)
	require.False(t, result.ModalOpen)
	require.False(t, result.Cancelled, "modal cancel is not a menu close")
	require.Equal(t, 0, picker.selected, "the pre-open selection is restored")
	require.Equal(t, 0, picker.commits, "rollback never fires the change callback")
}

func TestModalCommitNotifiesOnce(t *testing.T) {
	e, picker := pickerEngine(t)

	tap(e, constants.VirtualButtonConfirm)
	tap(e, constants.VirtualButtonDown)

	result := tap(e, constants.VirtualButtonConfirm)
	require.False(t, result.ModalOpen)
	require.True(t, result.Activated)
	require.Equal(t, 1, picker.selected)
	require.Equal(t, 1, picker.commits, "commit fires the change callback exactly once")
}

func TestModalCycleWrapsBothWays(t *testing.T) {
	e, picker := pickerEngine(t)

	tap(e, constants.VirtualButtonConfirm)

	tap(e, constants.VirtualButtonUp)
	require.Equal(t, 2, e.ModalSelection(), "up from the first option wraps to the last")

	tap(e, constants.VirtualButtonDown)
	require.Equal(t, 0, e.ModalSelection())
	require.Greater(t, picker.previews, 0)
}

func TestModalSwallowsOtherInput(t *testing.T) {
	picker := &stubPicker{
		options: []string{"A", "B"}, bounds: Rect{W: 200, H: 40}, rendered: true,
	}
	toggle := &stubToggle{bounds: Rect{Y: 40, W: 200, H: 40}, rendered: true}
	page := &stubPage{
		widgets:  []any{picker, toggle},
		viewport: Rect{W: 200, H: 400},
	}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	tap(e, constants.VirtualButtonConfirm)
	require.True(t, e.ModalOpen())

	result := tap(e, constants.VirtualButtonShoulderRight)
	require.Zero(t, result.TabDelta, "shoulders do not reach the host while the modal is open")
	require.True(t, e.ModalOpen())

	result = tap(e, constants.VirtualButtonRight)
	require.False(t, result.Moved, "horizontal input does not escape to page navigation")
	require.Equal(t, 0, e.Focus())
}

func TestModalOpensOnHorizontalInput(t *testing.T) {
	e, _ := pickerEngine(t)

	result := tap(e, constants.VirtualButtonRight)
	require.True(t, result.ModalOpen, "horizontal input on a choice list opens it")
	require.Equal(t, FeedbackConfirm, result.Feedback)
}

func TestModalRefusesEmptyOptions(t *testing.T) {
	picker := &stubPicker{options: nil, bounds: Rect{W: 200, H: 40}, rendered: true}
	page := &stubPage{widgets: []any{picker}, viewport: Rect{W: 200, H: 400}}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	result := tap(e, constants.VirtualButtonConfirm)
	require.False(t, result.ModalOpen)
	require.Equal(t, FeedbackError, result.Feedback)
}

func TestModalSurvivesPageRebuild(t *testing.T) {
	e, picker := pickerEngine(t)

	tap(e, constants.VirtualButtonConfirm)
	tap(e, constants.VirtualButtonDown)

	// The host rebuilds its widget list between frames; the modal keys the
	// element by index, not by cached reference.
	page := &stubPage{
		widgets:  []any{picker},
		viewport: Rect{X: 0, Y: 0, W: 200, H: 400},
	}
	e.Attach(page)
	require.False(t, e.ModalOpen(), "attach resets modal state")

	e.Update(InputFrame{})
	tap(e, constants.VirtualButtonConfirm)
	tap(e, constants.VirtualButtonDown)
	require.True(t, e.ModalOpen())

	// Same page object, rebuilt slice.
	page.widgets = []any{picker}
	result := tap(e, constants.VirtualButtonConfirm)
	require.True(t, result.Activated)
}

func TestModalClosesWhenRebuildEmptiesPage(t *testing.T) {
	picker := &stubPicker{
		options: []string{"A", "B", "C"}, bounds: Rect{W: 200, H: 40}, rendered: true,
	}
	page := &stubPage{
		widgets:  []any{picker},
		viewport: Rect{W: 200, H: 400},
	}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	tap(e, constants.VirtualButtonConfirm)
	tap(e, constants.VirtualButtonDown)
	require.True(t, e.ModalOpen())

	// The host rebuilds the page down to decorative labels while the modal
	// is open, leaving nothing interactive.
	page.widgets = []any{&stubLabel{text: "empty", rendered: true}}

	result := tap(e, constants.VirtualButtonCancel)
	require.False(t, e.ModalOpen(), "a vanished choice list closes the modal")
	require.False(t, result.ModalOpen)
	require.False(t, result.Cancelled, "the closing frame still swallows chrome input")
	require.Equal(t, -1, result.Focus)
	require.Equal(t, 0, picker.commits, "closing without the element commits nothing")

	result = tap(e, constants.VirtualButtonShoulderRight)
	require.Equal(t, 1, result.TabDelta, "chrome reaches the host once the modal is gone")

	result = tap(e, constants.VirtualButtonCancel)
	require.True(t, result.Cancelled)
}
