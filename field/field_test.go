package field_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridfield/field"
)

//----------------------------------------------------------------------------//
// Mode parsing and validation
//----------------------------------------------------------------------------//

// TestParseAutocorrelation verifies the closed mode set: exactly the four
// canonical strings parse, everything else fails with the sentinel.
func TestParseAutocorrelation(t *testing.T) {
	valid := map[string]field.Autocorrelation{
		"none":     field.None,
		"positive": field.Positive,
		"negative": field.Negative,
		"cluster":  field.Cluster,
	}
	for s, want := range valid {
		got, err := field.ParseAutocorrelation(s)
		assert.NoError(t, err, "mode %q must parse", s)
		assert.Equal(t, want, got, "mode %q", s)
		assert.Equal(t, s, got.String(), "round-trip of %q", s)
	}

	for _, s := range []string{"", "random", "Positive", "NONE", "clustered"} {
		_, err := field.ParseAutocorrelation(s)
		assert.ErrorIs(t, err, field.ErrUnknownAutocorrelation, "string %q must be rejected", s)
	}
}

// TestGenerate_Errors verifies the invalid-argument surface of Generate.
func TestGenerate_Errors(t *testing.T) {
	opts := field.DefaultOptions()

	cases := []struct {
		name string
		side int
		mode field.Autocorrelation
		mut  func(*field.Options)
		err  error
	}{
		{"SideZero", 0, field.None, nil, field.ErrSideTooSmall},
		{"SideNegative", -3, field.None, nil, field.ErrSideTooSmall},
		{"ModeOutOfRange", 4, field.Autocorrelation(42), nil, field.ErrUnknownAutocorrelation},
		{"NegativeStdDev", 4, field.None, func(o *field.Options) { o.StdDev = -1 }, field.ErrBadOption},
		{"NegativeNoise", 4, field.Negative, func(o *field.Options) { o.NoiseSigma = -0.1 }, field.ErrBadOption},
		{"ZeroSmoothSigma", 4, field.Positive, func(o *field.Options) { o.SmoothSigma = 0 }, field.ErrBadOption},
		{"NoClusters", 4, field.Cluster, func(o *field.Options) { o.Clusters = 0 }, field.ErrBadOption},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := opts
			if tc.mut != nil {
				tc.mut(&o)
			}
			_, err := field.Generate(tc.side, tc.mode, o)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Shape, tiling and determinism
//----------------------------------------------------------------------------//

// TestGenerate_ShapeAndTiling checks that a side-n field yields exactly n²
// cells whose unit squares tile [0,n]×[0,n] without overlap.
func TestGenerate_ShapeAndTiling(t *testing.T) {
	const side = 5
	f, err := field.Generate(side, field.None, field.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, f.Values, side)
	for _, row := range f.Values {
		require.Len(t, row, side)
	}

	cells := f.Cells()
	require.Len(t, cells, side*side, "must produce side² cells")

	for _, c := range cells {
		x, y := f.Coordinate(c.Index)
		assert.Equal(t, c.Index, f.Index(x, y), "index round-trip")
		assert.Equal(t, f.At(x, y), c.Value, "cell value must match grid")

		b := c.Geometry.Bound()
		assert.Equal(t, float64(x), b.Min[0], "cell %d min x", c.Index)
		assert.Equal(t, float64(y), b.Min[1], "cell %d min y", c.Index)
		assert.Equal(t, float64(x+1), b.Max[0], "cell %d max x", c.Index)
		assert.Equal(t, float64(y+1), b.Max[1], "cell %d max y", c.Index)
	}
	// n² disjoint unit squares whose bounds are the expected integer
	// boxes necessarily tile [0,side]×[0,side].
}

// TestGenerate_Deterministic verifies the seed contract for every mode:
// equal seeds reproduce, different seeds diverge.
func TestGenerate_Deterministic(t *testing.T) {
	modes := []field.Autocorrelation{field.None, field.Positive, field.Negative, field.Cluster}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			opts := field.DefaultOptions()
			a, err := field.Generate(8, mode, opts)
			require.NoError(t, err)
			b, err := field.Generate(8, mode, opts)
			require.NoError(t, err)
			assert.Equal(t, a.Values, b.Values, "same seed must reproduce")

			opts.Seed = 1337
			c, err := field.Generate(8, mode, opts)
			require.NoError(t, err)
			assert.NotEqual(t, a.Values, c.Values, "different seed must diverge")
		})
	}
}

//----------------------------------------------------------------------------//
// Mode semantics
//----------------------------------------------------------------------------//

// TestGenerate_PositiveSmoothing checks mode dispatch: under the same seed
// the positive field is a smoothed version of the none field, so the two
// differ cell-wise while the smoothed one has strictly lower variance.
func TestGenerate_PositiveSmoothing(t *testing.T) {
	const side = 32
	opts := field.DefaultOptions()

	raw, err := field.Generate(side, field.None, opts)
	require.NoError(t, err)
	smooth, err := field.Generate(side, field.Positive, opts)
	require.NoError(t, err)

	assert.NotEqual(t, raw.Values, smooth.Values, "smoothing must change the field")
	assert.Less(t, variance(smooth.Values), variance(raw.Values),
		"Gaussian smoothing must shrink the variance of an i.i.d. field")
}

// TestGenerate_NegativeCheckerboard verifies that the negative field is the
// positive field with flipped signs on odd (x+y) parity, up to the additive
// background noise.
func TestGenerate_NegativeCheckerboard(t *testing.T) {
	const side = 12
	opts := field.DefaultOptions()

	pos, err := field.Generate(side, field.Positive, opts)
	require.NoError(t, err)
	neg, err := field.Generate(side, field.Negative, opts)
	require.NoError(t, err)

	// Noise is Normal(0, 0.05); 8 sigma is a comfortable determinism-safe band.
	const tol = 8 * field.DefaultNoiseSigma
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			want := pos.At(x, y)
			if (x+y)%2 == 1 {
				want = -want
			}
			assert.InDelta(t, want, neg.At(x, y), tol, "cell (%d,%d)", x, y)
		}
	}
}

// TestGenerate_ClusterDecay checks the distance-decay property: with noise
// and amplitude jitter disabled, the cell at a cluster center dominates the
// cell farthest from all centers.
func TestGenerate_ClusterDecay(t *testing.T) {
	const side = 16
	opts := field.DefaultOptions()
	opts.NoiseSigma = 0       // isolate the decay bumps
	opts.ClusterAmpStdDev = 0 // amplitudes exactly ClusterAmpMean

	f, err := field.Generate(side, field.Cluster, opts)
	require.NoError(t, err)

	// Replicate the documented draw order (per center: y, x, amplitude)
	// to locate the centers without exporting them.
	rng := rand.New(rand.NewSource(opts.Seed))
	centers := make([][2]int, 0, opts.Clusters)
	for c := 0; c < opts.Clusters; c++ {
		cy := rng.Intn(side)
		cx := rng.Intn(side)
		_ = rng.NormFloat64() // amplitude draw
		centers = append(centers, [2]int{cx, cy})
	}

	// Farthest cell: maximal distance to its nearest center.
	farX, farY, farDist := 0, 0, -1.0
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			nearest := math.Inf(1)
			for _, c := range centers {
				d := math.Hypot(float64(x-c[0]), float64(y-c[1]))
				if d < nearest {
					nearest = d
				}
			}
			if nearest > farDist {
				farDist = nearest
				farX, farY = x, y
			}
		}
	}

	for _, c := range centers {
		assert.GreaterOrEqual(t, f.At(c[0], c[1]), opts.ClusterAmpMean-1e-9,
			"center (%d,%d) must carry at least its own bump", c[0], c[1])
		assert.GreaterOrEqual(t, f.At(c[0], c[1]), f.At(farX, farY),
			"center (%d,%d) must dominate the farthest cell (%d,%d)", c[0], c[1], farX, farY)
	}
}

// variance computes the population variance of a row-major grid.
func variance(grid [][]float64) float64 {
	n, sum := 0, 0.0
	for _, row := range grid {
		for _, v := range row {
			sum += v
			n++
		}
	}
	mean := sum / float64(n)
	acc := 0.0
	for _, row := range grid {
		for _, v := range row {
			acc += (v - mean) * (v - mean)
		}
	}
	return acc / float64(n)
}
