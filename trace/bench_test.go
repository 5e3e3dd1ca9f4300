package trace_test

import (
	"testing"

	"github.com/katalvlaran/randnla/sampler"
	"github.com/katalvlaran/randnla/trace"
)

// BenchmarkEstimate measures Hutchinson estimation on a 128×128 symmetric
// PSD matrix with 64 quadratic forms per call.
// Complexity: O(k·n²).
func BenchmarkEstimate(b *testing.B) {
	a, err := sampler.SymmetricPSD(128, sampler.New(42))
	if err != nil {
		b.Fatalf("setup SymmetricPSD failed: %v", err)
	}
	opts := trace.DefaultOptions()
	opts.Seed = 42
	opts.SkipSymmetry = true

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = trace.Estimate(a, 64, &opts); err != nil {
			b.Fatalf("Estimate failed: %v", err)
		}
	}
}
