package padsnap

// EnsureVisible computes the scroll offset that brings bounds inside the
// viewport with pad pixels of breathing room. bounds must be the element's
// screen rectangle as rendered under the given offset; callers re-measure
// after applying the result. The result stays in [-max, 0], and once the
// element sits inside the viewport further calls leave the offset alone. An
// element too tall for the viewport aligns its top edge flush instead of
// oscillating between both rules.
func EnsureVisible(bounds, viewport Rect, offset, max, pad int32) int32 {
	if max < 0 {
		max = 0
	}
	offset = clampOffset(offset, max)
	tall := bounds.H+pad > viewport.H

	if bounds.Y < viewport.Y {
		raise := viewport.Y - bounds.Y + pad
		if tall {
			raise = viewport.Y - bounds.Y
		}
		return clampOffset(offset+raise, max)
	}

	if bounds.Bottom() > viewport.Bottom() {
		lower := bounds.Bottom() - viewport.Bottom() + pad
		if tall {
			lower = bounds.Y - viewport.Y
		}
		return clampOffset(offset-lower, max)
	}

	return offset
}

func clampOffset(offset, max int32) int32 {
	if offset > 0 {
		return 0
	}
	if offset < -max {
		return -max
	}
	return offset
}
