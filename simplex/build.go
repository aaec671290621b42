package simplex

import "sort"

// BuildFromAdjacency constructs the simplicial complex induced by a
// symmetric adjacency mapping, bounded at maxDim: vertices become
// 0-simplices, adjacent pairs become 1-simplices, and every set of
// d+1 mutually adjacent vertices becomes a d-simplex for d ≤ maxDim.
//
// The mapping is validated first: neighbors must be known vertices,
// no vertex may list itself, and u listing v requires v listing u.
// Output order is deterministic: within each dimension simplices are
// emitted in lexicographic vertex order, independent of map iteration.
//
// Complexity: O(V·log V + E·log E) validation and sorting, plus
// O(S·δ) expansion for S emitted simplices and maximum degree δ.
func BuildFromAdjacency(adj map[int][]int, maxDim int) (*Complex, error) {
	if maxDim < 0 {
		return nil, ErrNegativeDimension
	}

	// Normalize into sorted neighbor sets keyed by vertex.
	neighbors := make(map[int]map[int]bool, len(adj))
	for v := range adj {
		neighbors[v] = make(map[int]bool)
	}
	for v, ns := range adj {
		for _, u := range ns {
			if u == v {
				return nil, ErrSelfAdjacency
			}
			if _, ok := neighbors[u]; !ok {
				return nil, ErrUnknownVertex
			}
			neighbors[v][u] = true
		}
	}
	for v, ns := range neighbors {
		for u := range ns {
			if !neighbors[u][v] {
				return nil, ErrAsymmetricAdjacency
			}
		}
	}

	vertices := make([]int, 0, len(adj))
	for v := range adj {
		vertices = append(vertices, v)
	}
	sort.Ints(vertices)

	c := &Complex{
		maxDim: maxDim,
		byDim:  make([][]Simplex, maxDim+1),
	}

	// Incremental expansion: extend each simplex only by common
	// neighbors greater than its last vertex, so every clique is
	// discovered exactly once and in lexicographic order.
	for _, v := range vertices {
		expand(c, Simplex{v}, upperNeighbors(neighbors[v], v), neighbors)
	}

	return c, nil
}

// expand records s and recursively extends it by each candidate in
// ascending order, shrinking the candidate set to the extension's
// common upper neighbors.
func expand(c *Complex, s Simplex, candidates []int, neighbors map[int]map[int]bool) {
	d := s.Dimension()
	c.byDim[d] = append(c.byDim[d], s)
	if d == c.maxDim {
		return
	}
	for i, u := range candidates {
		next := make(Simplex, len(s), len(s)+1)
		copy(next, s)
		next = append(next, u)

		// Only candidates after u stay lexicographic; they must also
		// neighbor u to remain a clique.
		var narrowed []int
		for _, w := range candidates[i+1:] {
			if neighbors[u][w] {
				narrowed = append(narrowed, w)
			}
		}
		expand(c, next, narrowed, neighbors)
	}
}

// upperNeighbors returns the ascending neighbors of v strictly greater
// than v.
func upperNeighbors(ns map[int]bool, v int) []int {
	out := make([]int, 0, len(ns))
	for u := range ns {
		if u > v {
			out = append(out, u)
		}
	}
	sort.Ints(out)
	return out
}
