// Package gridfield is an in-memory toolkit for generating synthetic
// spatial grid datasets with controllable spatial autocorrelation and
// for analyzing the adjacency structure of the resulting geometries.
//
// 🚀 What is gridfield?
//
//	A small, deterministic library that brings together:
//		• Field generation: N×N scalar grids under four autocorrelation
//		  regimes — none, positive, negative, cluster
//		• Geometry tagging: every cell becomes a unit-square polygon
//		  keyed by its row-major index
//		• Ranking: filter & sort spatial records by value, with an
//		  inclusive range restriction and a stable zero-based rank
//		• Queen contiguity: intersection-based adjacency lists
//		  (shared edge or corner both count)
//		• Simplicial complexes: incremental construction from the
//		  adjacency mapping, bounded at a maximum simplex dimension
//
// ✨ Why choose gridfield?
//
//   - Deterministic – every call owns its seeded RNG; same inputs,
//     identical outputs, safe to parallelize
//   - Closed-set modes – autocorrelation and sort modes are typed
//     enumerations, invalid strings fail fast with sentinel errors
//   - Pure Go – no cgo, geometry handled by paulmach/orb
//
// Everything is organized under four packages:
//
//	field/     — grid value generator and geometry-tagged cells
//	adjacency/ — filter/sort → queen-contiguity join → complex pipeline
//	simplex/   — bounded incremental simplicial-complex construction
//	cmd/       — the gridfield CLI (generate & analyze datasets)
//
// Quick ASCII example (3×3 queen contiguity — the center touches all 8):
//
//	6───7───8
//	│ ╳ │ ╳ │
//	3───4───5
//	│ ╳ │ ╳ │
//	0───1───2
//
// Start with field.Generate, feed the cells into adjacency.NewPipeline,
// and walk the stages in order: FilterSort → Adjacency → BuildComplex.
package gridfield
