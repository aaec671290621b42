// SPDX-License-Identifier: MIT

package field

import "math"

// smoothTruncate bounds the Gaussian kernel at truncate·sigma cells on
// each side, matching the common convention of reference smoothing
// filters (kernel radius = floor(truncate·sigma + 0.5)).
const smoothTruncate = 4.0

// gaussianKernel builds a normalized 1-D Gaussian kernel for the given
// sigma. The returned slice has length 2·radius+1 with the peak at
// index radius, and its entries sum to 1.
//
// Complexity: O(radius) time and memory.
func gaussianKernel(sigma float64) []float64 {
	radius := int(smoothTruncate*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// reflectIndex maps an out-of-range coordinate back into [0,n) using
// reflect boundary handling (d c b a | a b c d | d c b a). The grid
// side is always ≥ 1, so the loop terminates.
func reflectIndex(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

// gaussianSmooth returns a smoothed copy of the row-major grid using a
// separable Gaussian kernel with the given sigma and reflect boundary
// handling. The input is never mutated.
//
// Complexity: O(side²·k) time, O(side²) memory, k = kernel length.
func gaussianSmooth(grid [][]float64, sigma float64) [][]float64 {
	side := len(grid)
	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	// Horizontal pass.
	tmp := make([][]float64, side)
	for y := 0; y < side; y++ {
		tmp[y] = make([]float64, side)
		for x := 0; x < side; x++ {
			acc := 0.0
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * grid[y][reflectIndex(x+k, side)]
			}
			tmp[y][x] = acc
		}
	}

	// Vertical pass.
	out := make([][]float64, side)
	for y := 0; y < side; y++ {
		out[y] = make([]float64, side)
		for x := 0; x < side; x++ {
			acc := 0.0
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * tmp[reflectIndex(y+k, side)][x]
			}
			out[y][x] = acc
		}
	}

	return out
}
