package padsnap

import (
	"github.com/padsnap/padsnap/pkg/padsnap/internal"
)

// navigateLinear moves focus among the interactive indices of a linear list.
// current is a flat element index and must be a member of interactive; the
// return value always is. A single step wraps at both ends. A multi-entry
// step advances as far as it can and stops at the end, wrapping only when
// the focus already sits on the end it is pushing against.
func navigateLinear(current, delta int, interactive []int) int {
	n := len(interactive)
	if n == 0 {
		return -1
	}

	pos := 0
	for i, idx := range interactive {
		if idx == current {
			pos = i
			break
		}
	}

	if delta == 1 || delta == -1 {
		return interactive[((pos+delta)%n+n)%n]
	}

	target := pos + delta
	switch {
	case target >= n:
		if pos == n-1 {
			return interactive[0]
		}
		return interactive[n-1]
	case target < 0:
		if pos == 0 {
			return interactive[n-1]
		}
		return interactive[0]
	default:
		return interactive[target]
	}
}

// navigateGrid moves focus on a fixed-column grid of total cells, addressed
// by flat index. Vertical input moves whole rows, preserving the column, and
// is rejected outright when the target row does not have that column or the
// target cell is not interactive; there is no vertical wraparound. A
// multi-row step falls back to the nearest reachable row in the same
// direction. Horizontal input moves one cell and never crosses rows: Right
// at the end of a row stays put, Left at column 0 reports exitLeft so the
// host can hand focus to whatever sits beside the grid.
func navigateGrid(current int, dir internal.Direction, step, cols, total int, interactive func(int) bool) (next int, exitLeft bool) {
	next = current
	if cols <= 0 || total <= 0 || current < 0 || current >= total {
		return next, false
	}

	switch dir {
	case internal.DirectionUp, internal.DirectionDown:
		if step < 1 {
			step = 1
		}
		for s := step; s >= 1; s-- {
			target := current + dir.Delta()*cols*s
			if target < 0 || target >= total {
				continue
			}
			if !interactive(target) {
				continue
			}
			return target, false
		}
		return next, false

	case internal.DirectionLeft:
		if current%cols == 0 {
			return next, true
		}
		target := current - 1
		if interactive(target) {
			return target, false
		}
		return next, false

	case internal.DirectionRight:
		target := current + 1
		if target >= total || target/cols != current/cols {
			return next, false
		}
		if interactive(target) {
			return target, false
		}
		return next, false
	}

	return next, false
}

// nearestInteractive returns the member of interactive closest to want by
// flat-index distance, preferring the lower index on ties, or -1 when the
// set is empty. Used to repair a cached focus after the page rebuilt.
func nearestInteractive(want int, interactive []int) int {
	best := -1
	bestDist := -1
	for _, idx := range interactive {
		dist := idx - want
		if dist < 0 {
			dist = -dist
		}
		if best == -1 || dist < bestDist {
			best = idx
			bestDist = dist
		}
	}
	return best
}

// containsIndex reports whether idx is a member of the interactive set.
func containsIndex(idx int, interactive []int) bool {
	for _, i := range interactive {
		if i == idx {
			return true
		}
	}
	return false
}
