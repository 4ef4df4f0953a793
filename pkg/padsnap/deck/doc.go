// Package deck groups pages into an ordered tab set with one active page.
//
// A Deck owns a padsnap.Engine and one page per tab. Shoulder presses
// surface from the engine as FrameResult.TabDelta; Update applies them,
// cycling the active tab with wraparound at both ends. Each tab keeps
// resume state: the focused element and scroll position are saved when the
// user leaves a tab and restored when they come back, so flipping between
// Library and Settings never loses the user's place.
//
// # Basic Usage
//
//	engine := padsnap.NewEngine(registry, padsnap.Options{})
//
//	d := deck.New(engine).
//	    Add("Library", libraryPage).
//	    Add("Settings", settingsPage)
//
//	for running {
//	    result := d.Update(input.Sample())
//	    draw(d.Labels(), d.Active(), d.ActivePage(), result)
//	}
//
// # Resume State
//
// Resume state lives inside the deck while the program runs. Hosts that
// persist sessions can read a tab's position with ResumeState on shutdown
// and replay it with SetResume after rebuilding the deck on the next
// launch. A restored focus index is revalidated by the engine like any
// cached focus, so stale state from an older build degrades instead of
// breaking.
package deck
