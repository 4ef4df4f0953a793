package padsnap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padsnap/padsnap/pkg/padsnap/constants"
)

func TestEngineInitialFocus(t *testing.T) {
	page, _ := togglesPage(5)
	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)

	result := e.Update(InputFrame{})
	require.Equal(t, 0, result.Focus)
	require.True(t, result.Moved)
	require.Equal(t, FeedbackNone, result.Feedback, "initial placement is not an input event")
}

func TestEngineLinearNavigation(t *testing.T) {
	page, _ := togglesPage(5)
	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	result := tap(e, constants.VirtualButtonDown)
	require.Equal(t, 1, result.Focus)
	require.True(t, result.Moved)
	require.Equal(t, FeedbackNavigate, result.Feedback)

	tap(e, constants.VirtualButtonDown) // 2
	result = tap(e, constants.VirtualButtonDown)
	require.Equal(t, 3, result.Focus)

	tap(e, constants.VirtualButtonDown) // 4
	result = tap(e, constants.VirtualButtonDown)
	require.Equal(t, 0, result.Focus, "down from the last element wraps to the first")

	result = tap(e, constants.VirtualButtonUp)
	require.Equal(t, 4, result.Focus, "up from the first element wraps to the last")
}

func TestEngineHeldRepeat(t *testing.T) {
	page, _ := togglesPage(10)
	e := NewEngine(newTestRegistry(), Options{
		Tuning: &Tuning{RepeatDelayTicks: 4, RepeatIntervalTicks: 2},
	})
	e.Attach(page)
	e.Update(InputFrame{})

	result := e.Update(pressFrame(constants.VirtualButtonDown))
	require.Equal(t, 1, result.Focus, "the press itself moves immediately")

	for i := 0; i < 3; i++ {
		result = e.Update(holdFrame(constants.VirtualButtonDown))
		require.False(t, result.Moved, "no repeat before the delay elapses (tick %d)", i+1)
	}

	result = e.Update(holdFrame(constants.VirtualButtonDown))
	require.Equal(t, 2, result.Focus, "first repeat after the delay")

	result = e.Update(holdFrame(constants.VirtualButtonDown))
	require.False(t, result.Moved)
	result = e.Update(holdFrame(constants.VirtualButtonDown))
	require.Equal(t, 3, result.Focus, "then one event per interval")

	e.Update(InputFrame{Released: constants.Bit(constants.VirtualButtonDown)})
	result = e.Update(pressFrame(constants.VirtualButtonDown))
	require.Equal(t, 4, result.Focus, "a fresh press fires immediately again")
}

func TestEngineHeldDirectionChange(t *testing.T) {
	page, _ := togglesPage(10)
	e := NewEngine(newTestRegistry(), Options{
		Tuning: &Tuning{RepeatDelayTicks: 4, RepeatIntervalTicks: 2},
	})
	e.Attach(page)
	e.Update(InputFrame{})

	e.Update(pressFrame(constants.VirtualButtonDown)) // 1
	e.Update(holdFrame(constants.VirtualButtonDown))

	// Up wins the priority while both are held; the change fires at once.
	frame := InputFrame{
		Pressed: constants.Bit(constants.VirtualButtonUp),
		Held:    constants.Bit(constants.VirtualButtonDown).With(constants.VirtualButtonUp),
	}
	result := e.Update(frame)
	require.Equal(t, 0, result.Focus, "direction change fires immediately")

	// And the repeat clock restarted: the old progress is gone.
	both := InputFrame{Held: frame.Held}
	for i := 0; i < 3; i++ {
		result = e.Update(both)
		require.False(t, result.Moved)
	}
	result = e.Update(both)
	require.True(t, result.Moved)
}

func TestEngineAdjusterRouting(t *testing.T) {
	slider := &stubSlider{value: 2, min: 0, max: 4, step: 1, bounds: Rect{W: 200, H: 40}, rendered: true}
	page := &stubPage{widgets: []any{slider}, viewport: Rect{W: 200, H: 400}}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	result := tap(e, constants.VirtualButtonRight)
	require.True(t, result.Adjusted)
	require.False(t, result.Moved, "horizontal input edits the adjuster instead of navigating")
	require.Equal(t, 3, slider.value)
	require.Equal(t, FeedbackNavigate, result.Feedback)

	result = tap(e, constants.VirtualButtonLeft)
	require.Equal(t, 2, slider.value)

	slider.value = slider.max
	result = tap(e, constants.VirtualButtonRight)
	require.False(t, result.Adjusted, "a clamped edit reports no change")
	require.Equal(t, FeedbackNone, result.Feedback)
	require.Equal(t, 2, slider.changes, "the clamped edit fires no callback")
	require.Equal(t, slider.max, slider.value)
}

func TestEngineConfirmActivates(t *testing.T) {
	page, toggles := togglesPage(3)
	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	result := e.Update(pressFrame(constants.VirtualButtonConfirm))
	require.True(t, result.Activated)
	require.True(t, toggles[0].on)
	require.Equal(t, 1, toggles[0].changes)
	require.Equal(t, FeedbackConfirm, result.Feedback)

	require.True(t, e.SuppressClick(), "the mirrored click on the same frame is dropped")
	require.False(t, e.SuppressClick(), "exactly once")
}

func TestEngineConfirmFailureDegrades(t *testing.T) {
	button := &stubButton{fail: true, bounds: Rect{W: 200, H: 40}, rendered: true}
	page := &stubPage{widgets: []any{button}, viewport: Rect{W: 200, H: 400}}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	result := e.Update(pressFrame(constants.VirtualButtonConfirm))
	require.False(t, result.Activated)
	require.Equal(t, FeedbackError, result.Feedback)
	require.False(t, e.SuppressClick(), "a failed activation arms nothing")
}

func TestEngineTapGuardWindow(t *testing.T) {
	page, _ := togglesPage(3)
	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	e.Update(pressFrame(constants.VirtualButtonConfirm))

	// The host did not mirror a click this frame; five frames later an
	// unrelated real click must pass through.
	for i := 0; i < 5; i++ {
		e.Update(InputFrame{})
	}
	require.False(t, e.SuppressClick())
}

func TestEngineChromeButtons(t *testing.T) {
	page, _ := togglesPage(3)
	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	result := tap(e, constants.VirtualButtonShoulderRight)
	require.Equal(t, 1, result.TabDelta)
	require.Equal(t, FeedbackNavigate, result.Feedback)

	result = tap(e, constants.VirtualButtonShoulderLeft)
	require.Equal(t, -1, result.TabDelta)

	result = tap(e, constants.VirtualButtonCancel)
	require.True(t, result.Cancelled)
	require.Equal(t, FeedbackCancel, result.Feedback)
}

func TestEnginePassthroughOnUnknownWidget(t *testing.T) {
	type alienWidget struct{ x int }
	page := &stubPage{
		widgets:  []any{&stubToggle{rendered: true}, &alienWidget{}},
		viewport: Rect{W: 200, H: 400},
	}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)

	result := e.Update(InputFrame{})
	require.True(t, result.Passthrough)
	require.Equal(t, -1, result.Focus)

	result = tap(e, constants.VirtualButtonDown)
	require.True(t, result.Passthrough, "the page stays disabled for the session")
	require.False(t, result.Moved)

	good, _ := togglesPage(2)
	e.Attach(good)
	result = e.Update(InputFrame{})
	require.False(t, result.Passthrough, "a new attach starts clean")
	require.Equal(t, 0, result.Focus)
}

func TestEngineEmptyInteractiveSet(t *testing.T) {
	page := &stubPage{
		widgets: []any{
			&stubLabel{text: "just text", rendered: true},
			&stubLabel{text: "more text", rendered: true},
		},
		viewport: Rect{W: 200, H: 400},
	}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)

	result := e.Update(InputFrame{})
	require.Equal(t, -1, result.Focus)
	require.False(t, result.Passthrough, "labels bind fine, there is just nothing to focus")

	result = tap(e, constants.VirtualButtonDown)
	require.Equal(t, -1, result.Focus)
	require.False(t, result.Moved)

	result = tap(e, constants.VirtualButtonCancel)
	require.True(t, result.Cancelled, "chrome still reaches the host")

	result = tap(e, constants.VirtualButtonShoulderRight)
	require.Equal(t, 1, result.TabDelta)
}

func TestEngineFocusRepairAfterRebuild(t *testing.T) {
	page, _ := togglesPage(5)
	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	for i := 0; i < 3; i++ {
		tap(e, constants.VirtualButtonDown)
	}
	require.Equal(t, 3, e.Focus())

	// The host rebuilds the page with fewer widgets between frames.
	smaller, _ := togglesPage(2)
	page.widgets = smaller.widgets

	result := e.Update(InputFrame{})
	require.Equal(t, 1, result.Focus, "stale focus clamps to the nearest interactive index")
	require.True(t, result.Moved)
}

func TestEngineInteractivePolicyOverride(t *testing.T) {
	label := &stubLabel{text: "header", bounds: Rect{W: 200, H: 40}, rendered: true}
	toggle := &stubToggle{bounds: Rect{Y: 40, W: 200, H: 40}, rendered: true}
	page := &stubPage{widgets: []any{label, toggle}, viewport: Rect{W: 200, H: 400}}

	byDefault := NewEngine(newTestRegistry(), Options{})
	byDefault.Attach(page)
	require.Equal(t, 1, byDefault.Update(InputFrame{}).Focus, "labels are skipped by default")

	everything := NewEngine(newTestRegistry(), Options{
		Interactive: func(Element) bool { return true },
	})
	everything.Attach(page)
	require.Equal(t, 0, everything.Update(InputFrame{}).Focus, "a custom policy may focus labels")
}

func TestEngineDetach(t *testing.T) {
	page, _ := togglesPage(3)
	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	e.Detach()
	result := e.Update(pressFrame(constants.VirtualButtonDown))
	require.True(t, result.Passthrough)
	require.Equal(t, -1, result.Focus)
}

func TestEnginePointerSync(t *testing.T) {
	page, _ := togglesPage(3)

	var warps [][2]int32
	e := NewEngine(newTestRegistry(), Options{
		PointerMove: func(x, y int32) { warps = append(warps, [2]int32{x, y}) },
	})
	e.Attach(page)

	e.Update(InputFrame{})
	require.Equal(t, [][2]int32{{100, 20}}, warps, "initial placement warps onto the first element")

	tap(e, constants.VirtualButtonDown)
	require.Equal(t, [2]int32{100, 60}, warps[len(warps)-1])

	before := len(warps)
	e.Update(InputFrame{})
	require.Equal(t, before, len(warps), "idle frames do not warp")
}

func TestEngineFeedbackCallback(t *testing.T) {
	page, _ := togglesPage(3)

	var cues []Feedback
	e := NewEngine(newTestRegistry(), Options{
		PlayFeedback: func(f Feedback) { cues = append(cues, f) },
	})
	e.Attach(page)
	e.Update(InputFrame{})

	tap(e, constants.VirtualButtonDown)
	tap(e, constants.VirtualButtonConfirm)
	require.Equal(t, []Feedback{FeedbackNavigate, FeedbackConfirm}, cues)
}

func TestEngineGridNavigation(t *testing.T) {
	toggles := make([]*stubToggle, 6)
	widgets := make([]any, 6)
	for i := range toggles {
		row, col := int32(i/3), int32(i%3)
		toggles[i] = &stubToggle{
			bounds:   Rect{X: col * 70, Y: row * 50, W: 60, H: 40},
			rendered: true,
		}
		widgets[i] = toggles[i]
	}
	page := &gridPage{
		stubPage: stubPage{widgets: widgets, viewport: Rect{W: 210, H: 100}},
		cols:     3,
	}

	e := NewEngine(newTestRegistry(), Options{})
	e.Attach(page)
	e.Update(InputFrame{})

	result := tap(e, constants.VirtualButtonRight)
	require.Equal(t, 1, result.Focus)

	result = tap(e, constants.VirtualButtonDown)
	require.Equal(t, 4, result.Focus, "vertical movement keeps the column")

	tap(e, constants.VirtualButtonRight)
	result = tap(e, constants.VirtualButtonRight)
	require.Equal(t, 5, result.Focus)
	require.False(t, result.Moved, "right at the end of a row stays put")

	tap(e, constants.VirtualButtonLeft) // 4
	result = tap(e, constants.VirtualButtonLeft)
	require.Equal(t, 3, result.Focus)

	result = tap(e, constants.VirtualButtonLeft)
	require.True(t, result.EdgeExit, "left at column 0 asks the host to leave the grid")
	require.Equal(t, 3, result.Focus, "focus stays until the host decides")
	require.False(t, result.Moved)
}

func TestEngineCoarseAxisJumps(t *testing.T) {
	page, _ := togglesPage(10)
	e := NewEngine(newTestRegistry(), Options{
		Tuning: &Tuning{RepeatDelayTicks: 4, RepeatIntervalTicks: 2},
	})
	e.Attach(page)
	e.Update(InputFrame{})

	push := InputFrame{Secondary: AxisPair{Y: 0.8}}

	result := e.Update(push)
	require.Equal(t, 3, result.Focus, "crossing the threshold jumps a coarse step at once")

	for i := 0; i < 3; i++ {
		result = e.Update(push)
		require.False(t, result.Moved, "held stick waits out the repeat delay")
	}
	result = e.Update(push)
	require.Equal(t, 6, result.Focus)

	// Dropping inside the release band re-arms the edge.
	e.Update(InputFrame{Secondary: AxisPair{Y: 0.2}})
	result = e.Update(push)
	require.Equal(t, 9, result.Focus, "a fresh crossing jumps immediately again")

	// Jitter that never falls below the release threshold does not re-fire.
	e.Update(InputFrame{Secondary: AxisPair{Y: 0.45}})
	result = e.Update(InputFrame{Secondary: AxisPair{Y: 0.52}})
	require.False(t, result.Moved)
}

func TestEngineScrollFollowsFocus(t *testing.T) {
	base := []int32{0, 40, 80, 120, 160}
	toggles := make([]*stubToggle, 5)
	widgets := make([]any, 5)
	for i := range toggles {
		toggles[i] = &stubToggle{bounds: Rect{Y: base[i], W: 200, H: 40}, rendered: true}
		widgets[i] = toggles[i]
	}
	page := &scrollPage{
		stubPage: stubPage{widgets: widgets, viewport: Rect{W: 200, H: 100}},
		max:      100, // 200px of content in a 100px viewport
	}

	tuning := Tuning{ScrollPadding: 10}
	e := NewEngine(newTestRegistry(), Options{Tuning: &tuning})
	e.Attach(page)

	// step runs a frame, then re-renders widget bounds under the new offset
	// the way a real host would.
	step := func(frame InputFrame) FrameResult {
		result := e.Update(frame)
		for i := range toggles {
			toggles[i].bounds.Y = base[i] + page.offset
		}
		return result
	}

	step(InputFrame{})

	step(pressFrame(constants.VirtualButtonDown)) // focus 1, fully visible
	step(InputFrame{Released: constants.Bit(constants.VirtualButtonDown)})
	require.Equal(t, int32(0), page.offset)

	step(pressFrame(constants.VirtualButtonDown)) // focus 2, bottom at 120
	step(InputFrame{Released: constants.Bit(constants.VirtualButtonDown)})
	require.Equal(t, int32(-30), page.offset)

	step(pressFrame(constants.VirtualButtonDown)) // focus 3
	step(InputFrame{Released: constants.Bit(constants.VirtualButtonDown)})
	require.Equal(t, int32(-70), page.offset)

	// Focus is visible now; idle frames leave the offset alone.
	step(InputFrame{})
	require.Equal(t, int32(-70), page.offset)

	// Scrolling back up pulls the offset toward zero.
	for i := 0; i < 3; i++ {
		step(pressFrame(constants.VirtualButtonUp))
		step(InputFrame{Released: constants.Bit(constants.VirtualButtonUp)})
	}
	require.Equal(t, 0, e.Focus())
	require.Equal(t, int32(0), page.offset)
}

func TestEnginePointerTracksScroll(t *testing.T) {
	base := []int32{0, 40, 80, 120, 160}
	toggles := make([]*stubToggle, 5)
	widgets := make([]any, 5)
	for i := range toggles {
		toggles[i] = &stubToggle{bounds: Rect{Y: base[i], W: 200, H: 40}, rendered: true}
		widgets[i] = toggles[i]
	}
	page := &scrollPage{
		stubPage: stubPage{widgets: widgets, viewport: Rect{W: 200, H: 100}},
		max:      100,
	}

	var lastWarp [2]int32
	tuning := Tuning{ScrollPadding: 10}
	e := NewEngine(newTestRegistry(), Options{
		Tuning:      &tuning,
		PointerMove: func(x, y int32) { lastWarp = [2]int32{x, y} },
	})
	e.Attach(page)
	e.Update(InputFrame{})

	// Focus 1 then 2: the page scrolls by -30, and the warp target accounts
	// for bounds having been measured before the scroll.
	for i := 0; i < 2; i++ {
		e.Update(pressFrame(constants.VirtualButtonDown))
		e.Update(InputFrame{Released: constants.Bit(constants.VirtualButtonDown)})
		for j := range toggles {
			toggles[j].bounds.Y = base[j] + page.offset
		}
	}

	require.Equal(t, int32(-30), page.offset)
	require.Equal(t, [2]int32{100, 70}, lastWarp, "warp lands on the post-scroll center")
}
