// Package simplex constructs bounded simplicial complexes from symmetric
// adjacency mappings, using incremental expansion: every clique of
// mutually adjacent vertices up to a maximum dimension becomes a simplex.
//
// What:
//
//   - BuildFromAdjacency turns map[vertex]→neighbors into a *Complex
//     holding all simplices of dimension 0..maxDim.
//   - A d-simplex is a sorted slice of d+1 mutually adjacent vertex ids.
//   - Complex offers per-dimension access, total size, and the Euler
//     characteristic.
//
// Why:
//
//   - Topological summaries of spatial adjacency: connected structure,
//     holes, higher-order contiguity of grid datasets.
//
// Algorithm:
//
//	Incremental expansion. Vertices are inserted in ascending order;
//	each simplex [v0<…<vk] is extended by every common neighbor u>vk,
//	so each clique is discovered exactly once, in lexicographic order.
//
// Complexity:
//
//   - O(V + E + S·δ) time where S is the number of emitted simplices
//     and δ the maximum vertex degree; memory O(V + E + S).
//
// Errors:
//
//   - ErrNegativeDimension: maxDim < 0.
//   - ErrAsymmetricAdjacency: u lists v but v does not list u.
//   - ErrSelfAdjacency: a vertex lists itself.
//   - ErrUnknownVertex: a neighbor id has no entry of its own.
package simplex
