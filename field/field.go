// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/paulmach/orb"
)

// Generate produces a deterministic side×side Field under the given
// autocorrelation mode. Every call owns a fresh RNG seeded from
// opts.Seed, so equal inputs always reproduce the same field and
// concurrent calls never race on shared generator state.
//
// Returns ErrSideTooSmall for side < 1, ErrUnknownAutocorrelation for
// a mode outside the closed set, and ErrBadOption (wrapped with the
// offending field name) for nonsensical statistical parameters.
//
// Complexity: O(side²) for None/Cluster, O(side²·k) for the smoothing
// modes with kernel length k; memory O(side²).
func Generate(side int, mode Autocorrelation, opts Options) (*Field, error) {
	if side < 1 {
		return nil, ErrSideTooSmall
	}
	if !mode.Valid() {
		return nil, ErrUnknownAutocorrelation
	}
	if err := validateOptions(mode, opts); err != nil {
		return nil, err
	}

	rng := rngFromSeed(opts.Seed)

	var values [][]float64
	switch mode {
	case None:
		values = normalGrid(rng, side, opts.Mean, opts.StdDev)

	case Positive:
		base := normalGrid(rng, side, opts.Mean, opts.StdDev)
		values = gaussianSmooth(base, opts.SmoothSigma)

	case Negative:
		base := normalGrid(rng, side, opts.Mean, opts.StdDev)
		values = gaussianSmooth(base, opts.SmoothSigma)
		// Flip every other cell on (x+y) parity, then jitter.
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				if (x+y)%2 == 1 {
					values[y][x] = -values[y][x]
				}
				values[y][x] += normal(rng, 0, opts.NoiseSigma)
			}
		}

	case Cluster:
		values = clusterGrid(rng, side, opts)
	}

	return &Field{Side: side, Mode: mode, Values: values}, nil
}

// validateOptions rejects statistically nonsensical knobs for the
// chosen mode. All violations wrap ErrBadOption so callers can branch
// with errors.Is while still seeing the offending field.
func validateOptions(mode Autocorrelation, opts Options) error {
	if opts.StdDev < 0 {
		return fmt.Errorf("StdDev must be non-negative: %w", ErrBadOption)
	}
	if opts.NoiseSigma < 0 {
		return fmt.Errorf("NoiseSigma must be non-negative: %w", ErrBadOption)
	}
	if (mode == Positive || mode == Negative) && opts.SmoothSigma <= 0 {
		return fmt.Errorf("SmoothSigma must be positive for smoothing modes: %w", ErrBadOption)
	}
	if mode == Cluster {
		if opts.Clusters < 1 {
			return fmt.Errorf("Clusters must be at least 1: %w", ErrBadOption)
		}
		if opts.ClusterAmpStdDev < 0 {
			return fmt.Errorf("ClusterAmpStdDev must be non-negative: %w", ErrBadOption)
		}
	}
	return nil
}

// clusterGrid builds the Cluster-mode field: a zero grid plus one
// Gaussian-decay bump per randomly placed center, each scaled by its
// own amplitude draw, followed by background noise.
//
// The decay radius is side/4 (integer division) clamped to ≥ 1 so tiny
// grids stay well-defined.
func clusterGrid(rng *rand.Rand, side int, opts Options) [][]float64 {
	values := make([][]float64, side)
	for y := range values {
		values[y] = make([]float64, side)
	}

	radius := side / 4
	if radius < 1 {
		radius = 1
	}
	denom := 2 * float64(radius) * float64(radius)

	for c := 0; c < opts.Clusters; c++ {
		cy := rng.Intn(side)
		cx := rng.Intn(side)
		amp := normal(rng, opts.ClusterAmpMean, opts.ClusterAmpStdDev)
		for y := 0; y < side; y++ {
			for x := 0; x < side; x++ {
				d2 := float64((x-cx)*(x-cx) + (y-cy)*(y-cy))
				values[y][x] += amp * math.Exp(-d2/denom)
			}
		}
	}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			values[y][x] += normal(rng, 0, opts.NoiseSigma)
		}
	}

	return values
}

// At returns the value of the cell at column x, row y.
// Callers must keep (x,y) within bounds. Complexity: O(1).
func (f *Field) At(x, y int) float64 {
	return f.Values[y][x]
}

// Index maps (x,y) to the row-major cell index: y*Side + x.
// Complexity: O(1).
func (f *Field) Index(x, y int) int {
	return y*f.Side + x
}

// Coordinate converts a row-major cell index back to (x,y).
// Complexity: O(1).
func (f *Field) Coordinate(idx int) (x, y int) {
	return idx % f.Side, idx / f.Side
}

// Cells returns the geometry-tagged record view of the field: exactly
// Side² cells, indexed row-major, each wrapped in the unit-square
// polygon covering [x,x+1]×[y,y+1]. Together the squares tile
// [0,Side]×[0,Side] without overlap.
//
// Complexity: O(Side²) time and memory.
func (f *Field) Cells() []Cell {
	cells := make([]Cell, 0, f.Side*f.Side)
	for idx := 0; idx < f.Side*f.Side; idx++ {
		x, y := f.Coordinate(idx)
		cells = append(cells, Cell{
			Index:    idx,
			Value:    f.Values[y][x],
			Geometry: CellPolygon(idx, f.Side),
		})
	}
	return cells
}

// CellPolygon builds the closed unit-square polygon of the cell at the
// given row-major index on a grid with the given side length. Corners
// are (x,y), (x+1,y), (x+1,y+1), (x,y+1) with x = idx mod side,
// y = idx div side.
//
// Complexity: O(1).
func CellPolygon(idx, side int) orb.Polygon {
	x := float64(idx % side)
	y := float64(idx / side)
	return orb.Polygon{orb.Ring{
		{x, y},
		{x + 1, y},
		{x + 1, y + 1},
		{x, y + 1},
		{x, y}, // close the ring
	}}
}
