// SPDX-License-Identifier: MIT

// Package adjacency defines core types, options, and sentinel errors
// for the adjacency subpackage of github.com/katalvlaran/gridfield.
package adjacency

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for adjacency operations.
var (
	// ErrNoRecords indicates an empty input record set.
	ErrNoRecords = errors.New("adjacency: record set must not be empty")
	// ErrUnknownSortMode indicates a mode outside the closed {up, down} set.
	ErrUnknownSortMode = errors.New("adjacency: invalid sort mode, choose from 'up' or 'down'")
	// ErrNotSorted indicates Adjacency was called before FilterSort.
	ErrNotSorted = errors.New("adjacency: FilterSort must run before Adjacency")
	// ErrNoAdjacency indicates BuildComplex was called before Adjacency.
	ErrNoAdjacency = errors.New("adjacency: Adjacency must run before BuildComplex")
)

// MaxComplexDimension bounds the simplicial complex built by
// Pipeline.BuildComplex: simplices above dimension 3 are never emitted.
const MaxComplexDimension = 3

// UnrankedID marks records that FilterSort has not ranked yet.
const UnrankedID = -1

// Record is one spatial record flowing through the pipeline: the
// original sequential identifier, its scalar value, its polygon
// geometry, the rank assigned by FilterSort, and the adjacent ranks
// attached by Adjacency.
type Record struct {
	ID       int
	Value    float64
	Geometry orb.Polygon

	// SortedID is the zero-based rank after FilterSort, UnrankedID before.
	SortedID int
	// Adjacent lists the ranks of intersecting records, ascending.
	// Populated by Adjacency; nil before.
	Adjacent []int
}

// SortMode selects the ranking direction of FilterSort. It is a closed
// set: anything outside the two declared constants is rejected with
// ErrUnknownSortMode.
type SortMode int

const (
	// SortUp ranks records by descending value: rank 0 is the maximum.
	SortUp SortMode = iota
	// SortDown negates the values of the working copy and ranks the
	// negated values ascending, so rank 0 again carries the original
	// maximum — but the copies keep the inverted values.
	SortDown
)

// sortModeNames maps each mode to its canonical string form.
var sortModeNames = [...]string{"up", "down"}

// String returns the canonical lowercase name of the mode, or
// "unknown" for out-of-range values.
func (m SortMode) String() string {
	if m < SortUp || m > SortDown {
		return "unknown"
	}
	return sortModeNames[m]
}

// Valid reports whether m is one of the two declared modes.
func (m SortMode) Valid() bool {
	return m >= SortUp && m <= SortDown
}

// ParseSortMode maps a canonical mode string to its SortMode value.
// Unrecognized strings return ErrUnknownSortMode.
func ParseSortMode(s string) (SortMode, error) {
	for i, name := range sortModeNames {
		if s == name {
			return SortMode(i), nil
		}
	}
	return 0, ErrUnknownSortMode
}

// ValueRange is an inclusive [Min,Max] restriction on record values,
// evaluated against the original (pre-inversion) values.
type ValueRange struct {
	Min, Max float64
}

// Contains reports whether v lies within the inclusive range.
func (r ValueRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterOption mutates the FilterSort configuration.
type FilterOption func(*filterConfig)

// filterConfig aggregates the FilterSort knobs; zero value means
// "keep everything".
type filterConfig struct {
	valueRange *ValueRange
}

// WithRange restricts FilterSort to records whose original value lies
// within the inclusive [min,max] range.
func WithRange(min, max float64) FilterOption {
	return func(c *filterConfig) {
		c.valueRange = &ValueRange{Min: min, Max: max}
	}
}
