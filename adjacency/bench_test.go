package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/gridfield/adjacency"
	"github.com/katalvlaran/gridfield/field"
)

// BenchmarkAdjacency measures the O(n²) self-join on a 32×32 grid
// (1024 records).
func BenchmarkAdjacency(b *testing.B) {
	f, err := field.Generate(32, field.Positive, field.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	records := adjacency.FromField(f)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := adjacency.NewPipeline(records)
		if _, err = p.FilterSort(adjacency.SortUp); err != nil {
			b.Fatal(err)
		}
		if _, _, err = p.Adjacency(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuildComplex measures the bounded complex construction over
// queen contiguity on a 16×16 grid.
func BenchmarkBuildComplex(b *testing.B) {
	f, err := field.Generate(16, field.Cluster, field.DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	p := adjacency.NewPipeline(adjacency.FromField(f))
	if _, err = p.FilterSort(adjacency.SortUp); err != nil {
		b.Fatal(err)
	}
	if _, _, err = p.Adjacency(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = p.BuildComplex(); err != nil {
			b.Fatal(err)
		}
	}
}
