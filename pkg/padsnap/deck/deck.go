package deck

import "github.com/padsnap/padsnap/pkg/padsnap"

// Resume is the position state a tab keeps while inactive: the element that
// was focused and how far the page was scrolled.
type Resume struct {
	Focus  int
	Scroll int32
}

// tabState pairs a page with its label and saved position. A tab is visited
// once it has been left at least once or seeded through SetResume; only
// visited tabs restore a position on activation.
type tabState struct {
	label   string
	page    padsnap.Page
	resume  Resume
	visited bool
}

// Deck manages an ordered set of tabs sharing one engine. Exactly one tab
// is attached to the engine at a time; the others keep their resume state
// until reactivated.
type Deck struct {
	engine *padsnap.Engine
	tabs   []tabState
	active int
}

// New creates an empty deck driving pages through engine.
func New(engine *padsnap.Engine) *Deck {
	return &Deck{
		engine: engine,
		active: -1,
	}
}

// Add appends a tab. The first tab added becomes active immediately.
func (d *Deck) Add(label string, page padsnap.Page) *Deck {
	d.tabs = append(d.tabs, tabState{label: label, page: page})
	if d.active == -1 {
		d.active = 0
		d.restoreActive()
	}
	return d
}

// Update advances the engine one frame and applies any tab switch the
// result reports. The result describes the frame as the departing page saw
// it; a switched-to tab takes over at the next Update.
func (d *Deck) Update(frame padsnap.InputFrame) padsnap.FrameResult {
	result := d.engine.Update(frame)
	if result.TabDelta != 0 {
		d.Cycle(result.TabDelta)
	}
	return result
}

// Cycle moves the active tab by delta, wrapping at both ends. Cycling a
// deck with zero or one tabs changes nothing.
func (d *Deck) Cycle(delta int) {
	n := len(d.tabs)
	if n == 0 || delta == 0 {
		return
	}

	next := ((d.active+delta)%n + n) % n
	if next == d.active {
		return
	}

	d.saveActive()
	d.active = next
	d.restoreActive()
}

// Activate jumps straight to tab i, reporting whether i exists.
func (d *Deck) Activate(i int) bool {
	if i < 0 || i >= len(d.tabs) {
		return false
	}
	if i == d.active {
		return true
	}

	d.saveActive()
	d.active = i
	d.restoreActive()
	return true
}

// Active returns the active tab's index, or -1 for an empty deck.
func (d *Deck) Active() int {
	return d.active
}

// ActiveLabel returns the active tab's label, or "" for an empty deck.
func (d *Deck) ActiveLabel() string {
	if d.active == -1 {
		return ""
	}
	return d.tabs[d.active].label
}

// ActivePage returns the page behind the active tab, or nil for an empty
// deck.
func (d *Deck) ActivePage() padsnap.Page {
	if d.active == -1 {
		return nil
	}
	return d.tabs[d.active].page
}

// Labels returns the tab labels in order, for rendering the tab bar.
func (d *Deck) Labels() []string {
	labels := make([]string, len(d.tabs))
	for i, t := range d.tabs {
		labels[i] = t.label
	}
	return labels
}

// Len returns the number of tabs.
func (d *Deck) Len() int {
	return len(d.tabs)
}

// Engine returns the engine the deck drives, for host queries like
// SuppressClick or ModalSelection.
func (d *Deck) Engine() *padsnap.Engine {
	return d.engine
}

// ResumeState returns tab i's saved position and whether one exists yet.
func (d *Deck) ResumeState(i int) (Resume, bool) {
	if i < 0 || i >= len(d.tabs) {
		return Resume{}, false
	}
	return d.tabs[i].resume, d.tabs[i].visited
}

// SetResume seeds tab i's position, typically replayed from a persisted
// session. Seeding the active tab takes effect at the next Update.
func (d *Deck) SetResume(i int, r Resume) bool {
	if i < 0 || i >= len(d.tabs) {
		return false
	}

	d.tabs[i].resume = r
	d.tabs[i].visited = true
	if i == d.active {
		d.applyResume(&d.tabs[i])
	}
	return true
}

func (d *Deck) saveActive() {
	t := &d.tabs[d.active]
	t.resume.Focus = d.engine.Focus()
	if s, ok := t.page.(padsnap.Scroller); ok {
		t.resume.Scroll, _ = s.ScrollState()
	}
	t.visited = true
}

func (d *Deck) restoreActive() {
	t := &d.tabs[d.active]
	d.engine.Attach(t.page)
	if t.visited {
		d.applyResume(t)
	}
}

func (d *Deck) applyResume(t *tabState) {
	d.engine.SeedFocus(t.resume.Focus)
	if s, ok := t.page.(padsnap.Scroller); ok {
		s.SetScrollOffset(t.resume.Scroll)
	}
}
