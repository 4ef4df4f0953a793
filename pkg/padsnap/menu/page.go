package menu

import (
	"github.com/padsnap/padsnap/pkg/padsnap"
)

// boundsHolder is what Layout needs from a widget. Every widget in this
// package satisfies it through widgetBase; hosts mixing in their own widget
// types must satisfy it too or lay those out themselves.
type boundsHolder interface {
	SetRenderedBounds(padsnap.Rect)
	RenderedBounds() (padsnap.Rect, bool)
}

// Page is a concrete padsnap.Page: an ordered widget collection with a
// viewport, scroll state, and an optional column count that turns the layout
// into a grid. The zero column count means a linear list.
type Page struct {
	Title string

	widgets  []any
	viewport padsnap.Rect
	columns  int

	offset    int32
	maxOffset int32
}

// NewPage creates an empty page rendered inside viewport.
func NewPage(title string, viewport padsnap.Rect) *Page {
	return &Page{Title: title, viewport: viewport}
}

// Add appends widgets in traversal order and returns the page for chaining.
func (p *Page) Add(widgets ...any) *Page {
	p.widgets = append(p.widgets, widgets...)
	return p
}

// SetColumns switches the page to a grid with the given column count.
func (p *Page) SetColumns(columns int) {
	if columns < 0 {
		columns = 0
	}
	p.columns = columns
}

// SetViewport replaces the visible region, for window resizes.
func (p *Page) SetViewport(viewport padsnap.Rect) {
	p.viewport = viewport
}

// Elements implements padsnap.Page.
func (p *Page) Elements() []any {
	return p.widgets
}

// Viewport implements padsnap.Page.
func (p *Page) Viewport() padsnap.Rect {
	return p.viewport
}

// Columns implements padsnap.GridLayout.
func (p *Page) Columns() int {
	return p.columns
}

// ScrollState implements padsnap.Scroller.
func (p *Page) ScrollState() (int32, int32) {
	return p.offset, p.maxOffset
}

// SetScrollOffset implements padsnap.Scroller.
func (p *Page) SetScrollOffset(offset int32) {
	if offset > 0 {
		offset = 0
	}
	if offset < -p.maxOffset {
		offset = -p.maxOffset
	}
	p.offset = offset
}

// Layout positions every widget inside the viewport under the current
// scroll offset and refreshes its rendered bounds. Hosts call it once per
// frame before drawing; the engine reads the same bounds afterward, which
// is what keeps the "bounds are fresh only after a render" contract honest.
// Widgets that are not boundsHolders are skipped.
func (p *Page) Layout(rowHeight, gap int32) {
	if rowHeight <= 0 {
		rowHeight = 40
	}

	if p.columns > 1 {
		p.layoutGrid(rowHeight, gap)
	} else {
		p.layoutList(rowHeight, gap)
	}

	// Re-clamp in case the content shrank under the current offset.
	p.SetScrollOffset(p.offset)
}

func (p *Page) layoutList(rowHeight, gap int32) {
	y := p.viewport.Y + p.offset
	for _, w := range p.widgets {
		holder, ok := w.(boundsHolder)
		if !ok {
			continue
		}
		holder.SetRenderedBounds(padsnap.Rect{
			X: p.viewport.X,
			Y: y,
			W: p.viewport.W,
			H: rowHeight,
		})
		y += rowHeight + gap
	}

	content := int32(len(p.widgets))*(rowHeight+gap) - gap
	p.maxOffset = maxInt32(0, content-p.viewport.H)
}

func (p *Page) layoutGrid(rowHeight, gap int32) {
	cols := int32(p.columns)
	cellW := (p.viewport.W - gap*(cols-1)) / cols

	rows := int32(0)
	for i, w := range p.widgets {
		col := int32(i) % cols
		row := int32(i) / cols
		rows = row + 1

		holder, ok := w.(boundsHolder)
		if !ok {
			continue
		}
		holder.SetRenderedBounds(padsnap.Rect{
			X: p.viewport.X + col*(cellW+gap),
			Y: p.viewport.Y + p.offset + row*(rowHeight+gap),
			W: cellW,
			H: rowHeight,
		})
	}

	content := rows*(rowHeight+gap) - gap
	p.maxOffset = maxInt32(0, content-p.viewport.H)
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
