// SPDX-License-Identifier: MIT

// Package field generates synthetic N×N spatial grids of scalar values
// under one of four spatial-autocorrelation regimes, and wraps every
// cell as a unit-square polygon keyed by its row-major index.
//
// What:
//
//   - Generate produces a deterministic *Field for a given side length,
//     Autocorrelation mode, and Options (seed included).
//   - Field exposes the raw 2D values plus Cells(), the geometry-tagged
//     record view consumed by the adjacency package.
//
// Modes:
//
//   - None     — values drawn i.i.d. from Normal(Mean, StdDev).
//   - Positive — the same base values passed through a Gaussian
//     smoothing filter (sigma = SmoothSigma), inducing positive
//     spatial correlation.
//   - Negative — smoothed values multiplied by an alternating sign on
//     the (x+y) checkerboard parity, plus Normal(0, NoiseSigma) noise.
//   - Cluster  — zero field plus Gaussian-decay bumps around Clusters
//     randomly placed centers (radius = side/4, clamped to ≥1), each
//     scaled by a Normal(ClusterAmpMean, ClusterAmpStdDev) draw, plus
//     background noise.
//
// Determinism:
//
//   - Every Generate call owns a *rand.Rand seeded from Options.Seed.
//     No process-global RNG is touched, so concurrent calls with
//     different seeds never race and always reproduce.
//
// Complexity:
//
//   - Generate: O(side²) for None/Negative/Cluster;
//     O(side²·k) for the smoothing modes (k = kernel width).
//   - Cells: O(side²).
//
// Errors:
//
//   - ErrSideTooSmall: side < 1.
//   - ErrUnknownAutocorrelation: mode outside the closed set
//     {none, positive, negative, cluster}.
//   - ErrBadOption: negative deviations, non-positive smoothing sigma,
//     or a non-positive cluster count.
package field
