package padsnap

// modalState tracks the choice list currently opened for selection. Only the
// element's flat index is cached across frames; the OptionCycler itself is
// re-derived from the freshly bound elements every frame, since the host may
// rebuild its widget list while the modal is open.
type modalState struct {
	open    bool
	index   int
	saved   int
	current int
}

// openOn opens the modal on the cycler at the given flat index, saving the
// selection for rollback. A cycler with no options refuses to open.
func (m *modalState) openOn(index int, cycler OptionCycler) error {
	count := cycler.Options()
	if count <= 0 {
		return ErrNoOptions
	}

	selected := cycler.Selected()
	if selected < 0 || selected >= count {
		selected = 0
	}

	m.open = true
	m.index = index
	m.saved = selected
	m.current = selected
	return nil
}

// cycle moves the highlighted option by delta with wraparound and previews
// it on the element without firing the host's change callback.
func (m *modalState) cycle(delta int, cycler OptionCycler) error {
	count := cycler.Options()
	if count <= 0 {
		return ErrNoOptions
	}
	m.current = ((m.current+delta)%count + count) % count
	return cycler.SetSelected(m.current, false)
}

// commit makes the highlighted option the real selection, firing the host's
// change callback, and closes the modal.
func (m *modalState) commit(cycler OptionCycler) error {
	err := cycler.SetSelected(m.current, true)
	m.close()
	return err
}

// cancel restores the selection saved at open time without firing the
// host's change callback and closes the modal.
func (m *modalState) cancel(cycler OptionCycler) error {
	err := cycler.SetSelected(m.saved, false)
	m.close()
	return err
}

func (m *modalState) close() {
	m.open = false
	m.index = -1
}
