// SPDX-License-Identifier: MIT

// Package field - RNG utilities shared by all generator modes.
//
// This file centralizes deterministic random generation for Generate.
//
// Goals:
//   - Determinism: same seed ⇒ identical fields across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources and no
//     process-global generator hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Generate call builds
//     its own instance, so concurrent calls never share RNG state.
package field

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand seeded verbatim.
// Zero is a legitimate seed; no remapping is applied.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// normal draws one value from Normal(mean, sigma) using rng.
//
// Complexity: O(1).
func normal(rng *rand.Rand, mean, sigma float64) float64 {
	return mean + sigma*rng.NormFloat64()
}

// normalGrid fills a fresh side×side row-major grid with i.i.d.
// Normal(mean, sigma) draws, row by row, column by column. The fill
// order is part of the determinism contract.
//
// Complexity: O(side²) time and memory.
func normalGrid(rng *rand.Rand, side int, mean, sigma float64) [][]float64 {
	grid := make([][]float64, side)
	for y := 0; y < side; y++ {
		grid[y] = make([]float64, side)
		for x := 0; x < side; x++ {
			grid[y][x] = normal(rng, mean, sigma)
		}
	}
	return grid
}
