package field_test

import (
	"testing"

	"github.com/katalvlaran/gridfield/field"
)

// BenchmarkGenerate measures generation cost per mode on a 64×64 grid;
// the smoothing modes dominate via the separable kernel passes.
func BenchmarkGenerate(b *testing.B) {
	const side = 64
	opts := field.DefaultOptions()

	for _, mode := range []field.Autocorrelation{field.None, field.Positive, field.Negative, field.Cluster} {
		b.Run(mode.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := field.Generate(side, mode, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCells measures the geometry-tagging pass alone.
func BenchmarkCells(b *testing.B) {
	f, err := field.Generate(64, field.None, field.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Cells()
	}
}
