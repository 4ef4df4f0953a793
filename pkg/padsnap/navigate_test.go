package padsnap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/padsnap/padsnap/pkg/padsnap/internal"
)

func allInteractive(total int) []int {
	set := make([]int, total)
	for i := range set {
		set[i] = i
	}
	return set
}

func TestNavigateLinearSingleStep(t *testing.T) {
	set := allInteractive(5)

	require.Equal(t, 3, navigateLinear(2, 1, set))
	require.Equal(t, 0, navigateLinear(4, 1, set), "down from the last entry wraps to the first")
	require.Equal(t, 4, navigateLinear(0, -1, set), "up from the first entry wraps to the last")
}

func TestNavigateLinearSparseSet(t *testing.T) {
	// Labels at 0 and 3 are not interactive.
	set := []int{1, 2, 4}

	require.Equal(t, 2, navigateLinear(1, 1, set))
	require.Equal(t, 4, navigateLinear(2, 1, set))
	require.Equal(t, 1, navigateLinear(4, 1, set))
	require.Equal(t, 4, navigateLinear(1, -1, set))
}

func TestNavigateLinearMultiStep(t *testing.T) {
	set := allInteractive(5)

	require.Equal(t, 4, navigateLinear(1, 3, set), "coarse step stops at the end")
	require.Equal(t, 0, navigateLinear(4, 3, set), "coarse step wraps only from the end itself")
	require.Equal(t, 0, navigateLinear(1, -3, set))
	require.Equal(t, 4, navigateLinear(0, -3, set))
	require.Equal(t, 3, navigateLinear(0, 3, set))
}

func TestNavigateLinearAlwaysLandsInSet(t *testing.T) {
	sets := [][]int{
		{0},
		{2, 5},
		{0, 1, 2, 3, 4, 5, 6},
		{1, 3, 4, 8},
	}
	deltas := []int{-3, -1, 1, 3}

	for _, set := range sets {
		for _, start := range set {
			for _, delta := range deltas {
				got := navigateLinear(start, delta, set)
				require.True(t, containsIndex(got, set),
					"navigateLinear(%d, %d, %v) = %d not in set", start, delta, set, got)
			}
		}
	}
}

func TestNavigateLinearEmptySet(t *testing.T) {
	require.Equal(t, -1, navigateLinear(0, 1, nil))
}

func allCells(int) bool { return true }

func TestNavigateGridVertical(t *testing.T) {
	// 2x3 grid, six cells.
	next, exit := navigateGrid(1, internal.DirectionDown, 1, 3, 6, allCells)
	require.False(t, exit)
	require.Equal(t, 4, next, "down keeps the column")

	next, _ = navigateGrid(4, internal.DirectionUp, 1, 3, 6, allCells)
	require.Equal(t, 1, next)

	next, _ = navigateGrid(1, internal.DirectionUp, 1, 3, 6, allCells)
	require.Equal(t, 1, next, "no vertical wraparound at the top")

	next, _ = navigateGrid(4, internal.DirectionDown, 1, 3, 6, allCells)
	require.Equal(t, 4, next, "no vertical wraparound at the bottom")
}

func TestNavigateGridRaggedLastRow(t *testing.T) {
	// Five cells in three columns: the last row only has columns 0 and 1.
	next, _ := navigateGrid(2, internal.DirectionDown, 1, 3, 5, allCells)
	require.Equal(t, 2, next, "down from a column the last row lacks is rejected")

	next, _ = navigateGrid(1, internal.DirectionDown, 1, 3, 5, allCells)
	require.Equal(t, 4, next)
}

func TestNavigateGridHorizontal(t *testing.T) {
	next, exit := navigateGrid(5, internal.DirectionRight, 1, 3, 6, allCells)
	require.False(t, exit)
	require.Equal(t, 5, next, "right at the end of a row never crosses rows")

	next, _ = navigateGrid(2, internal.DirectionRight, 1, 3, 6, allCells)
	require.Equal(t, 2, next, "right at the end of the first row stays put")

	next, _ = navigateGrid(0, internal.DirectionRight, 1, 3, 6, allCells)
	require.Equal(t, 1, next)

	next, _ = navigateGrid(4, internal.DirectionLeft, 1, 3, 6, allCells)
	require.Equal(t, 3, next)
}

func TestNavigateGridExitLeft(t *testing.T) {
	for _, idx := range []int{0, 3} {
		next, exit := navigateGrid(idx, internal.DirectionLeft, 1, 3, 6, allCells)
		require.True(t, exit, "left at column 0 signals an exit")
		require.Equal(t, idx, next, "focus stays while the host decides")
	}
}

func TestNavigateGridCoarseStep(t *testing.T) {
	next, _ := navigateGrid(0, internal.DirectionDown, 3, 3, 12, allCells)
	require.Equal(t, 9, next, "coarse vertical jumps whole rows")

	next, _ = navigateGrid(0, internal.DirectionDown, 3, 3, 9, allCells)
	require.Equal(t, 6, next, "coarse falls back to the nearest reachable row")
}

func TestNavigateGridSkipsNonInteractive(t *testing.T) {
	hole := func(i int) bool { return i != 4 }

	next, _ := navigateGrid(1, internal.DirectionDown, 1, 3, 6, hole)
	require.Equal(t, 1, next, "a dead cell rejects the move")

	next, _ = navigateGrid(3, internal.DirectionRight, 1, 3, 6, hole)
	require.Equal(t, 3, next)
}

func TestNearestInteractive(t *testing.T) {
	set := []int{1, 4, 7}

	require.Equal(t, 1, nearestInteractive(0, set))
	require.Equal(t, 1, nearestInteractive(2, set))
	require.Equal(t, 4, nearestInteractive(5, set))
	require.Equal(t, 7, nearestInteractive(9, set))
	require.Equal(t, 1, nearestInteractive(1, set))
	require.Equal(t, -1, nearestInteractive(3, nil))

	// Equidistant targets prefer the lower index.
	require.Equal(t, 1, nearestInteractive(2, []int{1, 3}))
}
