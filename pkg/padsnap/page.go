package padsnap

// Page is the host side of one navigable screen. Elements returns the raw
// host widgets in traversal order; the engine adapts them through its
// Registry every frame, so pages may rebuild their widget list between
// frames. Viewport is the visible region elements are laid out within.
type Page interface {
	Elements() []any
	Viewport() Rect
}

// Scroller is an optional Page capability for pages whose content overflows
// the viewport. Offsets are zero or negative: 0 means the content top sits at
// the viewport top, -max means scrolled to the bottom. The engine keeps
// offsets inside [-max, 0].
type Scroller interface {
	ScrollState() (offset, max int32)
	SetScrollOffset(offset int32)
}

// GridLayout is an optional Page capability marking the page as a row/column
// grid with a fixed column count. Pages without it navigate as linear lists.
type GridLayout interface {
	Columns() int
}
