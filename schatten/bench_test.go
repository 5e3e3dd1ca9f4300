package schatten_test

import (
	"testing"

	"github.com/katalvlaran/randnla/sampler"
	"github.com/katalvlaran/randnla/schatten"
)

// BenchmarkEstimate measures the randomized Schatten estimator on a
// 64×48 Gaussian matrix with p=2 and k=24 projection columns.
// Complexity: O(n·k·(m+k) + p·k³).
func BenchmarkEstimate(b *testing.B) {
	m, err := sampler.Matrix(64, 48, sampler.New(42))
	if err != nil {
		b.Fatalf("setup Matrix failed: %v", err)
	}
	opts := schatten.Options{Seed: 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = schatten.Estimate(m, 2, 24, &opts); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}

// BenchmarkExact measures the Jacobi-based reference on the same input.
// Complexity: O(m·n² + n³).
func BenchmarkExact(b *testing.B) {
	m, err := sampler.Matrix(64, 48, sampler.New(42))
	if err != nil {
		b.Fatalf("setup Matrix failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = schatten.Exact(m, 2); err != nil {
			b.Fatalf("Exact failed: %v", err)
		}
	}
}
