// SPDX-License-Identifier: MIT

// Package adjacency ranks geometry-tagged spatial records and derives
// their intersection-based adjacency structure, feeding it into a
// bounded simplicial-complex construction.
//
// What:
//
//   - Pipeline walks three strictly ordered stages over a private copy
//     of the input records:
//
//     FilterSort     — optional inclusive [min,max] value restriction,
//     then a deterministic sort (SortUp: descending;
//     SortDown: values negated, then ascending) and a
//     zero-based rank (SortedID) per record.
//     Adjacency      — pairwise geometric self-join: two records are
//     adjacent when their geometries intersect (queen
//     contiguity on grid cells — a shared edge or a
//     single shared corner both count); self-pairs are
//     excluded. Produces map[rank]→sorted adjacent
//     ranks plus the merged record slice.
//     BuildComplex   — delegates the mapping to simplex, bounded at
//     MaxComplexDimension.
//
// Call order is enforced: Adjacency before FilterSort fails with
// ErrNotSorted, BuildComplex before Adjacency with ErrNoAdjacency.
// Re-running FilterSort resets the downstream stages.
//
// Complexity:
//
//   - FilterSort: O(n·log n). Adjacency: O(n²) pairwise bound checks.
//     BuildComplex: see the simplex package.
//
// Errors:
//
//   - ErrNoRecords, ErrUnknownSortMode (invalid-argument);
//     ErrNotSorted, ErrNoAdjacency (precondition-violation).
package adjacency
