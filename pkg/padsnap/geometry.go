package padsnap

// Rect is a screen-space rectangle. The engine is render-library agnostic, so
// it carries its own geometry type; backends convert at the boundary.
type Rect struct {
	X, Y, W, H int32
}

// Right returns the X coordinate one past the right edge.
func (r Rect) Right() int32 {
	return r.X + r.W
}

// Bottom returns the Y coordinate one past the bottom edge.
func (r Rect) Bottom() int32 {
	return r.Y + r.H
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (int32, int32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
