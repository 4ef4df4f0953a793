package padsnap

import (
	"github.com/padsnap/padsnap/pkg/padsnap/constants"
	"github.com/padsnap/padsnap/pkg/padsnap/internal"
)

// Options configures an Engine. The zero value is usable: default tuning,
// default interactive policy, no callbacks.
type Options struct {
	// Tuning seeds the engine's knobs; nil applies DefaultTuning.
	Tuning *Tuning
	// Interactive overrides the policy deciding which elements take focus.
	Interactive InteractivePolicy
	// PointerMove, when set, receives the focused element's center after a
	// focus change so the host can warp its native cursor onto the focus.
	PointerMove func(x, y int32)
	// PlayFeedback, when set, receives at most one cue per frame for the
	// frame's most significant outcome.
	PlayFeedback func(Feedback)
}

// accelerator pairs a held-direction repeater with edge detection so one
// input source produces at most one navigation event per frame: immediately
// on engage or direction change, then per the repeat timing while held.
type accelerator struct {
	repeat internal.DirectionalRepeat
	last   internal.Direction
}

func (a *accelerator) setTiming(delay, interval uint32) {
	a.repeat.SetTiming(delay, interval)
}

func (a *accelerator) tick(dir internal.Direction) internal.Direction {
	if dir != a.last {
		a.last = dir
		a.repeat.SetDirection(dir)
		return dir
	}
	if dir == internal.DirectionNone {
		return internal.DirectionNone
	}
	return a.repeat.Tick()
}

func (a *accelerator) reset() {
	a.last = internal.DirectionNone
	a.repeat.Reset()
}

// Engine is the per-frame orchestrator. It owns focus, scroll syncing, the
// choice-list modal, held-input acceleration, and the tap guard for exactly
// one attached page at a time. All methods must be called from the host's
// update thread; the engine starts no goroutines and takes no locks.
type Engine struct {
	registry *Registry
	opts     Options
	tuning   Tuning

	page     Page
	disabled bool

	tick        uint64
	focus       int
	pendingSeed int

	fine       accelerator
	coarse     accelerator
	primaryX   internal.AxisGate
	primaryY   internal.AxisGate
	secondaryY internal.AxisGate

	modal modalState
	guard TapGuard

	frameScrollDelta int32
}

// NewEngine creates an engine that adapts page widgets through registry.
func NewEngine(registry *Registry, options Options) *Engine {
	tuning := DefaultTuning()
	if options.Tuning != nil {
		tuning = options.Tuning.normalize()
	}
	if options.Interactive == nil {
		options.Interactive = defaultInteractive
	}

	e := &Engine{
		registry:    registry,
		opts:        options,
		focus:       -1,
		pendingSeed: -1,
		guard:       NewTapGuard(),
	}
	e.modal.close()
	e.applyTuning(tuning)
	return e
}

// Attach makes page the active page and resets all per-page state. Focus
// lands on the first interactive element at the next Update.
func (e *Engine) Attach(page Page) {
	e.page = page
	e.resetPageState()
}

// Detach drops the active page. Update reports passthrough until the next
// Attach.
func (e *Engine) Detach() {
	e.page = nil
	e.resetPageState()
}

func (e *Engine) resetPageState() {
	e.disabled = false
	e.focus = -1
	e.pendingSeed = -1
	e.modal.close()
	e.guard.Disarm()
	e.fine.reset()
	e.coarse.reset()
	e.primaryX.Reset()
	e.primaryY.Reset()
	e.secondaryY.Reset()
}

// SetTuning applies new knobs between frames. Axis gates restart from
// neutral; held repeats keep their progress.
func (e *Engine) SetTuning(t Tuning) {
	e.applyTuning(t.normalize())
	internal.GetEngineLogger().Debug("tuning applied",
		"repeatDelay", e.tuning.RepeatDelayTicks,
		"repeatInterval", e.tuning.RepeatIntervalTicks,
		"coarseStep", e.tuning.CoarseStep)
}

func (e *Engine) applyTuning(t Tuning) {
	e.tuning = t
	e.fine.setTiming(t.RepeatDelayTicks, t.RepeatIntervalTicks)
	e.coarse.setTiming(t.RepeatDelayTicks, t.RepeatIntervalTicks)
	e.primaryX = internal.NewAxisGate(t.AxisEngage, t.AxisRelease)
	e.primaryY = internal.NewAxisGate(t.AxisEngage, t.AxisRelease)
	e.secondaryY = internal.NewAxisGate(t.AxisEngage, t.AxisRelease)
}

// Tuning returns the knobs currently in effect.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Focus returns the focused element's flat index, or -1.
func (e *Engine) Focus() int {
	return e.focus
}

// SeedFocus requests that the next Update place focus on index instead of the
// first interactive element. The index is revalidated like any cached focus,
// so a stale value degrades to the nearest interactive neighbor. Tab decks
// use this to restore a page's focus when it becomes active again.
func (e *Engine) SeedFocus(index int) {
	if index < 0 {
		return
	}
	e.pendingSeed = index
}

// ModalOpen reports whether the choice-list modal is open.
func (e *Engine) ModalOpen() bool {
	return e.modal.open
}

// ModalSelection returns the option highlighted in the open modal, or -1
// when the modal is closed. Hosts render the open list from this.
func (e *Engine) ModalSelection() int {
	if !e.modal.open {
		return -1
	}
	return e.modal.current
}

// CurrentTick returns the frame counter, advanced once per Update.
func (e *Engine) CurrentTick() uint64 {
	return e.tick
}

// SuppressClick reports whether a pointer click arriving this frame mirrors
// a Confirm press the engine already handled, and should be dropped by the
// host's click handler. The suppression is consumed; a second click on the
// same frame passes through.
func (e *Engine) SuppressClick() bool {
	return e.guard.Suppress(e.tick)
}

// Update advances the engine by one frame. The frame must be sampled exactly
// once; every mutation the call performs is visible to the same frame's
// render pass.
func (e *Engine) Update(frame InputFrame) FrameResult {
	e.tick++

	result := FrameResult{Focus: -1}
	e.step(frame, &result)

	if e.opts.PlayFeedback != nil && result.Feedback != FeedbackNone {
		e.opts.PlayFeedback(result.Feedback)
	}
	return result
}

func (e *Engine) step(frame InputFrame, result *FrameResult) {
	e.frameScrollDelta = 0

	if e.page == nil || e.disabled {
		result.Passthrough = true
		return
	}

	elements, err := e.registry.Bind(e.page)
	if err != nil {
		e.disablePage(err)
		result.Passthrough = true
		return
	}

	e.primaryX.Update(frame.Primary.X)
	e.primaryY.Update(frame.Primary.Y)
	e.secondaryY.Update(frame.Secondary.Y)

	interactive := e.interactiveSet(elements)

	prev := e.focus
	if e.pendingSeed >= 0 {
		e.focus = e.pendingSeed
		e.pendingSeed = -1
	}
	e.focus = revalidateFocus(e.focus, interactive)
	result.Focus = e.focus
	result.Moved = e.focus != prev && e.focus != -1
	if result.Moved {
		// Initial placement and post-rebuild repair track into view too.
		e.scrollFocusIntoView(elements)
	}

	fineEvt := e.fine.tick(e.fineDirection(frame))
	coarseEvt := e.coarse.tick(e.secondaryY.Direction(true))

	if e.modal.open {
		// The modal owns the frame even when a rebuild emptied the
		// interactive set; a vanished cycler closes it before any input can
		// reach the page.
		e.routeModal(result, frame, elements, fineEvt)
		result.ModalOpen = e.modal.open
		result.Focus = e.focus
		return
	}

	if e.focus == -1 {
		// Nothing navigable: directional input is a no-op this frame, but
		// the chrome buttons still reach the host.
		e.handleChrome(frame, result)
		return
	}

	if frame.Pressed.Has(constants.VirtualButtonConfirm) {
		e.confirmFocused(result, elements)
	}

	if !e.modal.open {
		e.handleChrome(frame, result)

		if fineEvt != internal.DirectionNone {
			e.routeDirectional(result, elements, interactive, fineEvt, e.tuning.FineStep)
		}
		if coarseEvt != internal.DirectionNone && !e.modal.open {
			e.routeDirectional(result, elements, interactive, coarseEvt, e.tuning.CoarseStep)
		}
	}

	result.ModalOpen = e.modal.open
	result.Focus = e.focus
	e.syncPointer(result, elements)
}

// fineDirection merges the dpad mask with the primary stick's gates. Buttons
// win over the stick; among buttons the priority is up, down, left, right.
func (e *Engine) fineDirection(frame InputFrame) internal.Direction {
	held := frame.Held | frame.Pressed
	switch {
	case held.Has(constants.VirtualButtonUp):
		return internal.DirectionUp
	case held.Has(constants.VirtualButtonDown):
		return internal.DirectionDown
	case held.Has(constants.VirtualButtonLeft):
		return internal.DirectionLeft
	case held.Has(constants.VirtualButtonRight):
		return internal.DirectionRight
	}
	if e.primaryY.Sign() != 0 {
		return e.primaryY.Direction(true)
	}
	return e.primaryX.Direction(false)
}

func (e *Engine) interactiveSet(elements []Element) []int {
	interactive := make([]int, 0, len(elements))
	for i, el := range elements {
		if e.opts.Interactive(el) {
			interactive = append(interactive, i)
		}
	}
	return interactive
}

// revalidateFocus repairs a cached focus index against the current
// interactive set: a still-valid index is kept, an invalidated one clamps to
// the nearest interactive index, and -1 lands on the first.
func revalidateFocus(focus int, interactive []int) int {
	if len(interactive) == 0 {
		return -1
	}
	if focus == -1 {
		return interactive[0]
	}
	if containsIndex(focus, interactive) {
		return focus
	}
	return nearestInteractive(focus, interactive)
}

// handleChrome routes the buttons that belong to the host rather than to any
// element: Cancel closes the menu, shoulders switch tabs.
func (e *Engine) handleChrome(frame InputFrame, result *FrameResult) {
	if frame.Pressed.Has(constants.VirtualButtonCancel) {
		result.Cancelled = true
		e.emit(result, FeedbackCancel)
	}

	switch {
	case frame.Pressed.Has(constants.VirtualButtonShoulderLeft):
		result.TabDelta = -1
		e.emit(result, FeedbackNavigate)
	case frame.Pressed.Has(constants.VirtualButtonShoulderRight):
		result.TabDelta = 1
		e.emit(result, FeedbackNavigate)
	}
}

// confirmFocused acts on the focused element by kind: choice lists open the
// modal, adjusters ignore Confirm, everything activatable activates.
func (e *Engine) confirmFocused(result *FrameResult, elements []Element) {
	focused := elements[e.focus]

	switch focused.Kind() {
	case KindChoiceList:
		cycler, ok := focused.(OptionCycler)
		if !ok {
			internal.GetEngineLogger().Warn("choice list without options capability", "index", e.focus)
			return
		}
		e.openModal(result, cycler)

	case KindAdjuster:
		// Adjusters respond to horizontal input, not Confirm.

	default:
		activatable, ok := focused.(Activatable)
		if !ok {
			return
		}
		if err := activatable.Activate(); err != nil {
			internal.GetEngineLogger().Warn("activate failed", "index", e.focus, "error", err)
			e.emit(result, FeedbackError)
			return
		}
		e.guard.Arm(e.tick)
		result.Activated = true
		e.emit(result, FeedbackConfirm)
	}
}

func (e *Engine) openModal(result *FrameResult, cycler OptionCycler) {
	if err := e.modal.openOn(e.focus, cycler); err != nil {
		internal.GetEngineLogger().Warn("choice list cannot open", "index", e.focus, "error", err)
		e.emit(result, FeedbackError)
		return
	}
	e.guard.Arm(e.tick)
	result.ModalOpen = true
	e.emit(result, FeedbackConfirm)
}

// routeModal gives the open modal exclusive ownership of the frame's input:
// Confirm commits, Cancel rolls back, vertical events cycle the highlight,
// and everything else is swallowed.
func (e *Engine) routeModal(result *FrameResult, frame InputFrame, elements []Element, fineEvt internal.Direction) {
	cycler := e.modalCycler(elements)
	if cycler == nil {
		internal.GetEngineLogger().Warn("choice list vanished while open", "index", e.modal.index)
		e.modal.close()
		return
	}

	switch {
	case frame.Pressed.Has(constants.VirtualButtonConfirm):
		if err := e.modal.commit(cycler); err != nil {
			internal.GetEngineLogger().Warn("choice commit failed", "error", err)
			e.emit(result, FeedbackError)
			return
		}
		e.guard.Arm(e.tick)
		result.Activated = true
		e.emit(result, FeedbackConfirm)

	case frame.Pressed.Has(constants.VirtualButtonCancel):
		if err := e.modal.cancel(cycler); err != nil {
			internal.GetEngineLogger().Warn("choice rollback failed", "error", err)
			e.emit(result, FeedbackError)
			return
		}
		e.emit(result, FeedbackCancel)

	case fineEvt.IsVertical():
		if err := e.modal.cycle(fineEvt.Delta(), cycler); err != nil {
			internal.GetEngineLogger().Warn("choice preview failed", "error", err)
			e.emit(result, FeedbackError)
			return
		}
		e.emit(result, FeedbackNavigate)
	}
}

func (e *Engine) modalCycler(elements []Element) OptionCycler {
	if e.modal.index < 0 || e.modal.index >= len(elements) {
		return nil
	}
	cycler, ok := elements[e.modal.index].(OptionCycler)
	if !ok {
		return nil
	}
	return cycler
}

// routeDirectional applies one navigation event. Horizontal input belongs to
// the focused element when it can use it: adjusters edit their value, choice
// lists open the modal. Everything else, and all vertical input, navigates.
func (e *Engine) routeDirectional(result *FrameResult, elements []Element, interactive []int, dir internal.Direction, step int) {
	if dir.IsHorizontal() {
		focused := elements[e.focus]

		switch focused.Kind() {
		case KindAdjuster:
			adjustable, ok := focused.(Adjustable)
			if !ok {
				return
			}
			changed, err := adjustable.Adjust(dir.Delta())
			if err != nil {
				internal.GetEngineLogger().Warn("adjust failed", "index", e.focus, "error", err)
				e.emit(result, FeedbackError)
				return
			}
			if changed {
				result.Adjusted = true
				e.emit(result, FeedbackNavigate)
			}
			return

		case KindChoiceList:
			if cycler, ok := focused.(OptionCycler); ok {
				e.openModal(result, cycler)
				return
			}
		}
	}

	e.navigate(result, elements, interactive, dir, step)
}

func (e *Engine) navigate(result *FrameResult, elements []Element, interactive []int, dir internal.Direction, step int) {
	next := e.focus

	if grid, ok := e.page.(GridLayout); ok && grid.Columns() > 0 {
		var exit bool
		next, exit = navigateGrid(e.focus, dir, step, grid.Columns(), len(elements), func(i int) bool {
			return containsIndex(i, interactive)
		})
		if exit {
			result.EdgeExit = true
			return
		}
	} else {
		next = navigateLinear(e.focus, dir.Delta()*step, interactive)
	}

	if next == -1 || next == e.focus {
		return
	}

	e.focus = next
	result.Focus = next
	result.Moved = true
	e.emit(result, FeedbackNavigate)
	e.scrollFocusIntoView(elements)
}

// scrollFocusIntoView nudges the page's scroll offset so the focused element
// is visible. Pages without a Scroller, and elements without fresh bounds,
// are skipped silently: focus still updates, visibility is best-effort.
func (e *Engine) scrollFocusIntoView(elements []Element) {
	scroller, ok := e.page.(Scroller)
	if !ok {
		return
	}
	if e.focus < 0 || e.focus >= len(elements) {
		return
	}
	bounds, ok := elements[e.focus].Bounds()
	if !ok {
		return
	}

	offset, max := scroller.ScrollState()
	next := EnsureVisible(bounds, e.page.Viewport(), offset, max, e.tuning.ScrollPadding)
	if next != offset {
		scroller.SetScrollOffset(next)
		e.frameScrollDelta += next - offset
	}
}

// syncPointer warps the host cursor onto the focused element after a focus
// change, correcting for any scroll applied this frame since bounds were
// measured before it.
func (e *Engine) syncPointer(result *FrameResult, elements []Element) {
	if e.opts.PointerMove == nil || !result.Moved {
		return
	}
	if e.focus < 0 || e.focus >= len(elements) {
		return
	}
	bounds, ok := elements[e.focus].Bounds()
	if !ok {
		return
	}

	x, y := bounds.Center()
	e.opts.PointerMove(x, y+e.frameScrollDelta)
}

func (e *Engine) disablePage(err error) {
	e.disabled = true
	e.modal.close()

	log := internal.GetEngineLogger()
	if bindErr, ok := IsBindError(err); ok {
		log.Warn("page disabled, native input takes over",
			"widget", bindErr.Index, "hostType", bindErr.HostType, "error", bindErr.Err)
		return
	}
	log.Warn("page disabled, native input takes over", "error", err)
}

func (e *Engine) emit(result *FrameResult, f Feedback) {
	if f > result.Feedback {
		result.Feedback = f
	}
}
