package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGaussianKernel_Normalized checks that kernels sum to 1 and peak in
// the middle for a range of sigmas.
func TestGaussianKernel_Normalized(t *testing.T) {
	for _, sigma := range []float64{0.5, 1.0, 1.5, 3.0} {
		k := gaussianKernel(sigma)
		assert.Equal(t, 1, len(k)%2, "kernel length must be odd (sigma=%v)", sigma)

		sum := 0.0
		for _, w := range k {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "kernel must be normalized (sigma=%v)", sigma)

		mid := len(k) / 2
		for i, w := range k {
			assert.LessOrEqual(t, w, k[mid]+1e-15, "peak must be central (sigma=%v, i=%d)", sigma, i)
		}
	}
}

// TestReflectIndex covers in-range, left-reflected and right-reflected
// coordinates, including multi-bounce cases on tiny grids.
func TestReflectIndex(t *testing.T) {
	cases := []struct{ i, n, want int }{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 0},  // d c b a | a b c d
		{-2, 5, 1},
		{5, 5, 4},
		{6, 5, 3},
		{-1, 1, 0},  // single-cell grid bounces back to 0
		{3, 1, 0},
		{-4, 2, 1},  // multiple reflections
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, reflectIndex(tc.i, tc.n), "reflectIndex(%d,%d)", tc.i, tc.n)
	}
}

// TestGaussianSmooth_PreservesConstants verifies that a constant grid is a
// fixed point of the filter (reflect boundaries leak nothing).
func TestGaussianSmooth_PreservesConstants(t *testing.T) {
	const side, c = 7, 3.25
	grid := make([][]float64, side)
	for y := range grid {
		grid[y] = make([]float64, side)
		for x := range grid[y] {
			grid[y][x] = c
		}
	}

	out := gaussianSmooth(grid, 1.5)
	for y := range out {
		for x := range out[y] {
			assert.InDelta(t, c, out[y][x], 1e-12, "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, c, grid[0][0], "input must not be mutated")
}

// TestGaussianSmooth_SpreadsImpulse checks that a single spike bleeds into
// its neighborhood: the peak shrinks, the neighbors rise, mass is conserved.
func TestGaussianSmooth_SpreadsImpulse(t *testing.T) {
	const side = 9
	grid := make([][]float64, side)
	for y := range grid {
		grid[y] = make([]float64, side)
	}
	grid[4][4] = 1.0

	out := gaussianSmooth(grid, 1.0)

	assert.Less(t, out[4][4], 1.0, "peak must shrink")
	assert.Greater(t, out[4][4], out[4][6], "decay must be monotone away from the spike")
	assert.Greater(t, out[4][5], 0.0, "neighbors must receive mass")

	total := 0.0
	for _, row := range out {
		for _, v := range row {
			total += v
		}
	}
	assert.InDelta(t, 1.0, total, 1e-9, "reflect smoothing must conserve total mass")
}
