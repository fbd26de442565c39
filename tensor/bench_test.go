package tensor_test

import (
	"testing"

	"github.com/tessellate-ml/graphflow/tensor"
)

// benchPair allocates two equal-shape tensors with predictable values.
func benchPair(b *testing.B, shape ...int) (*tensor.Dense, *tensor.Dense) {
	x, err := tensor.NewDense(shape...)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	y := x.Clone()
	raw := x.Raw()
	for f := range raw {
		raw[f] = float64(f % 7)
	}

	return x, y
}

// BenchmarkHadamard measures the masked elementwise product on a
// 64×64×32 buffer.
func BenchmarkHadamard(b *testing.B) {
	x, y := benchPair(b, 64, 64, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tensor.Hadamard(x, y); err != nil {
			b.Fatalf("Hadamard failed: %v", err)
		}
	}
}

// BenchmarkAddScaled measures the fused multiply-add on a 64×64×32 buffer.
func BenchmarkAddScaled(b *testing.B) {
	x, y := benchPair(b, 64, 64, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tensor.AddScaled(x, 0.5, y); err != nil {
			b.Fatalf("AddScaled failed: %v", err)
		}
	}
}
