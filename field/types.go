// SPDX-License-Identifier: MIT

// Package field defines core types, options, and sentinel errors
// for the field subpackage of github.com/katalvlaran/gridfield.
package field

import (
	"errors"

	"github.com/paulmach/orb"
)

// Sentinel errors for field operations.
var (
	// ErrSideTooSmall indicates the requested grid side length is < 1.
	ErrSideTooSmall = errors.New("field: grid side length must be at least 1")
	// ErrUnknownAutocorrelation indicates a mode outside the closed set.
	ErrUnknownAutocorrelation = errors.New(
		"field: invalid autocorrelation mode, choose from 'none', 'positive', 'negative' or 'cluster'")
	// ErrBadOption indicates a statistically nonsensical Options field.
	ErrBadOption = errors.New("field: invalid option value")
)

// Autocorrelation selects the spatial-correlation regime of a generated
// field. It is a closed set: anything outside the four declared
// constants is rejected by Generate with ErrUnknownAutocorrelation.
type Autocorrelation int

const (
	// None draws every cell i.i.d. — no spatial structure.
	None Autocorrelation = iota
	// Positive smooths the base draw with a Gaussian filter, so nearby
	// cells share similar values.
	Positive
	// Negative flips the sign of smoothed values on a checkerboard
	// parity pattern and adds small background noise.
	Negative
	// Cluster overlays Gaussian-decay bumps around randomly placed
	// centers on top of background noise.
	Cluster
)

// autocorrelationNames maps each mode to its canonical string form.
// Order must match the constant declarations above.
var autocorrelationNames = [...]string{"none", "positive", "negative", "cluster"}

// String returns the canonical lowercase name of the mode, or
// "unknown" for out-of-range values.
func (a Autocorrelation) String() string {
	if a < None || a > Cluster {
		return "unknown"
	}
	return autocorrelationNames[a]
}

// Valid reports whether a is one of the four declared modes.
// Complexity: O(1).
func (a Autocorrelation) Valid() bool {
	return a >= None && a <= Cluster
}

// ParseAutocorrelation maps a canonical mode string to its
// Autocorrelation value. Unrecognized strings return
// ErrUnknownAutocorrelation (the message names the valid choices).
func ParseAutocorrelation(s string) (Autocorrelation, error) {
	for i, name := range autocorrelationNames {
		if s == name {
			return Autocorrelation(i), nil
		}
	}
	return 0, ErrUnknownAutocorrelation
}

// Statistical defaults. These mirror the reference dataset generator:
// base values ~ Normal(0.5, 0.125), smoothing sigma 1.5 cells,
// background noise sigma 0.05, two cluster centers with amplitude
// draws ~ Normal(0.5, 0.2), and seed 42.
const (
	DefaultMean             = 0.5
	DefaultStdDev           = 0.125
	DefaultSmoothSigma      = 1.5
	DefaultNoiseSigma       = 0.05
	DefaultClusters         = 2
	DefaultClusterAmpMean   = 0.5
	DefaultClusterAmpStdDev = 0.2
	DefaultSeed             = int64(42)
)

// Options carries the statistical knobs of Generate. Start from
// DefaultOptions and override selectively; the zero value is NOT a
// usable configuration (zero deviations degenerate every mode).
type Options struct {
	// Mean and StdDev parameterize the base Normal draw used by the
	// None, Positive and Negative modes.
	Mean   float64
	StdDev float64

	// SmoothSigma is the Gaussian smoothing kernel width in cells,
	// used by the Positive and Negative modes. Must be > 0 there.
	SmoothSigma float64

	// NoiseSigma is the standard deviation of the additive background
	// noise applied by the Negative and Cluster modes. Must be ≥ 0.
	NoiseSigma float64

	// Clusters is the number of randomly placed cluster centers used
	// by the Cluster mode. Must be ≥ 1 there.
	Clusters int

	// ClusterAmpMean and ClusterAmpStdDev parameterize the per-center
	// amplitude draw of the Cluster mode.
	ClusterAmpMean   float64
	ClusterAmpStdDev float64

	// Seed fixes the per-call random stream. Equal seeds (with equal
	// side, mode and options) produce identical fields.
	Seed int64
}

// DefaultOptions returns the reference configuration described above.
func DefaultOptions() Options {
	return Options{
		Mean:             DefaultMean,
		StdDev:           DefaultStdDev,
		SmoothSigma:      DefaultSmoothSigma,
		NoiseSigma:       DefaultNoiseSigma,
		Clusters:         DefaultClusters,
		ClusterAmpMean:   DefaultClusterAmpMean,
		ClusterAmpStdDev: DefaultClusterAmpStdDev,
		Seed:             DefaultSeed,
	}
}

// Cell is one geometry-tagged grid record: a sequential row-major
// index, the generated scalar value, and the unit-square polygon
// covering [x,x+1]×[y,y+1] where x = Index mod side, y = Index div side.
type Cell struct {
	Index    int
	Value    float64
	Geometry orb.Polygon
}

// Field is an immutable generated grid. Values is row-major:
// Values[y][x] holds the value of the cell at column x, row y.
type Field struct {
	Side   int
	Mode   Autocorrelation
	Values [][]float64
}
