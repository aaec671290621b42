// Package simplex defines core types and sentinel errors for the
// simplex subpackage of github.com/katalvlaran/gridfield.
package simplex

import "errors"

// Sentinel errors for simplex operations.
var (
	// ErrNegativeDimension indicates a maxDim below zero.
	ErrNegativeDimension = errors.New("simplex: maximum dimension must be non-negative")
	// ErrAsymmetricAdjacency indicates u lists v while v does not list u.
	ErrAsymmetricAdjacency = errors.New("simplex: adjacency mapping must be symmetric")
	// ErrSelfAdjacency indicates a vertex listed among its own neighbors.
	ErrSelfAdjacency = errors.New("simplex: vertex must not be adjacent to itself")
	// ErrUnknownVertex indicates a neighbor id with no adjacency entry.
	ErrUnknownVertex = errors.New("simplex: neighbor references an unknown vertex")
)

// Simplex is a single simplex: the ascending slice of its vertex ids.
// A Simplex of length k+1 has dimension k.
type Simplex []int

// Dimension returns len(s)-1, the simplex dimension.
func (s Simplex) Dimension() int { return len(s) - 1 }

// Complex is an immutable simplicial complex grouped by dimension.
// byDim[d] holds every d-simplex in lexicographic order.
type Complex struct {
	maxDim int
	byDim  [][]Simplex
}

// Dimension returns the largest d with at least one d-simplex, or -1
// for the empty complex.
func (c *Complex) Dimension() int {
	for d := len(c.byDim) - 1; d >= 0; d-- {
		if len(c.byDim[d]) > 0 {
			return d
		}
	}
	return -1
}

// MaxDimension returns the construction bound the complex was built with.
func (c *Complex) MaxDimension() int { return c.maxDim }

// Simplices returns the d-simplices in lexicographic order. The slice
// is shared; callers must not mutate it. Out-of-range dimensions yield nil.
func (c *Complex) Simplices(dim int) []Simplex {
	if dim < 0 || dim >= len(c.byDim) {
		return nil
	}
	return c.byDim[dim]
}

// Count returns the number of d-simplices.
func (c *Complex) Count(dim int) int { return len(c.Simplices(dim)) }

// Size returns the total number of simplices across all dimensions.
func (c *Complex) Size() int {
	total := 0
	for _, ss := range c.byDim {
		total += len(ss)
	}
	return total
}

// EulerCharacteristic returns Σ (-1)^d · |d-simplices| over the stored
// dimensions. For a complex truncated below its natural dimension this
// is the Euler characteristic of the truncation, not of the full clique
// complex.
func (c *Complex) EulerCharacteristic() int {
	chi, sign := 0, 1
	for _, ss := range c.byDim {
		chi += sign * len(ss)
		sign = -sign
	}
	return chi
}
