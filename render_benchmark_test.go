package mipgen

import (
	"io"
	"testing"
)

func Benchmark_Raster(b *testing.B) {
	r := &Raster{}
	size := MaxDensity().Size
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := r.Render(io.Discard, size); err != nil {
			b.FailNow()
		}
	}
}

func Benchmark_Minimal(b *testing.B) {
	r := &Minimal{}
	size := MaxDensity().Size
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := r.Render(io.Discard, size); err != nil {
			b.FailNow()
		}
	}
}
