// SPDX-License-Identifier: MIT

package adjacency

import (
	"sort"

	"github.com/katalvlaran/gridfield/field"
	"github.com/katalvlaran/gridfield/simplex"
)

// Pipeline owns a private copy of the input records and enforces the
// stage order FilterSort → Adjacency → BuildComplex. It is not safe
// for concurrent use; build one Pipeline per analysis.
type Pipeline struct {
	input  []Record // untouched copy of the constructor argument
	ranked []Record // FilterSort output, nil until the stage ran
	adj    map[int][]int
}

// NewPipeline copies records into a fresh Pipeline. The caller's slice
// is never mutated; geometries are shared and treated as immutable.
func NewPipeline(records []Record) *Pipeline {
	input := make([]Record, len(records))
	copy(input, records)
	for i := range input {
		input[i].SortedID = UnrankedID
		input[i].Adjacent = nil
	}
	return &Pipeline{input: input}
}

// FromField converts generated cells into pipeline records: the cell
// index becomes the record ID, value and geometry carry over.
//
// Complexity: O(side²).
func FromField(f *field.Field) []Record {
	cells := f.Cells()
	records := make([]Record, len(cells))
	for i, c := range cells {
		records[i] = Record{
			ID:       c.Index,
			Value:    c.Value,
			Geometry: c.Geometry,
			SortedID: UnrankedID,
		}
	}
	return records
}

// FilterSort runs the ranking stage: an optional inclusive value-range
// restriction, the mode-specific sort, and a zero-based SortedID per
// surviving record. SortUp sorts descending by value; SortDown negates
// the values of the working copies and sorts the negated values
// ascending (so ranks match SortUp while the copies keep inverted
// values). Ties break on the original ID for determinism.
//
// Re-running FilterSort discards any previously computed adjacency.
// Returns ErrNoRecords for an empty pipeline and ErrUnknownSortMode
// for a mode outside the closed set; an empty filter result is not an
// error — downstream stages simply see no records.
//
// Complexity: O(n·log n) time, O(n) memory.
func (p *Pipeline) FilterSort(mode SortMode, opts ...FilterOption) ([]Record, error) {
	if len(p.input) == 0 {
		return nil, ErrNoRecords
	}
	if !mode.Valid() {
		return nil, ErrUnknownSortMode
	}
	var cfg filterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ranked := make([]Record, 0, len(p.input))
	for _, r := range p.input {
		if cfg.valueRange != nil && !cfg.valueRange.Contains(r.Value) {
			continue
		}
		if mode == SortDown {
			r.Value = -r.Value
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Value != b.Value {
			if mode == SortDown {
				return a.Value < b.Value // inverted values, ascending
			}
			return a.Value > b.Value // descending
		}
		return a.ID < b.ID
	})
	for i := range ranked {
		ranked[i].SortedID = i
	}

	p.ranked = ranked
	p.adj = nil // downstream stages must be recomputed

	return snapshot(ranked), nil
}

// Adjacency runs the geometric self-join over the ranked records: two
// records are adjacent when their geometries intersect (self-pairs
// excluded), which on the unit-square cells of this library is queen
// contiguity — a shared edge or a single shared corner both count.
//
// It returns the mapping rank → ascending adjacent ranks (every rank
// has an entry, isolated ones map to an empty list) and the merged
// record slice with Adjacent populated alongside the original
// attributes. Returns ErrNotSorted when FilterSort has not run.
//
// Complexity: O(n²) bound checks, O(n + Σdeg) memory.
func (p *Pipeline) Adjacency() (map[int][]int, []Record, error) {
	if p.ranked == nil {
		return nil, nil, ErrNotSorted
	}

	n := len(p.ranked)
	adj := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		adj[p.ranked[i].SortedID] = []int{}
	}

	// Intersection predicate on geometry bounds: exact for the
	// axis-aligned cells produced by field, inclusive of touching
	// edges and corners.
	for i := 0; i < n; i++ {
		bi := p.ranked[i].Geometry.Bound()
		for j := i + 1; j < n; j++ {
			if bi.Intersects(p.ranked[j].Geometry.Bound()) {
				ri, rj := p.ranked[i].SortedID, p.ranked[j].SortedID
				adj[ri] = append(adj[ri], rj)
				adj[rj] = append(adj[rj], ri)
			}
		}
	}

	for rank := range adj {
		sort.Ints(adj[rank])
	}
	for i := range p.ranked {
		p.ranked[i].Adjacent = adj[p.ranked[i].SortedID]
	}
	p.adj = adj

	return adj, snapshot(p.ranked), nil
}

// BuildComplex feeds the adjacency mapping into the incremental
// simplicial-complex construction, bounded at MaxComplexDimension.
// Returns ErrNoAdjacency when Adjacency has not run.
func (p *Pipeline) BuildComplex() (*simplex.Complex, error) {
	if p.adj == nil {
		return nil, ErrNoAdjacency
	}
	return simplex.BuildFromAdjacency(p.adj, MaxComplexDimension)
}

// snapshot returns a shallow copy of records so callers cannot mutate
// pipeline state through the returned slice.
func snapshot(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
