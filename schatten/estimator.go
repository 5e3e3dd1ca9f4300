package schatten

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randnla/matrix"
	"github.com/katalvlaran/randnla/sampler"
)

// Estimate produces an unbiased stochastic estimate of the Schatten-(2p)
// norm of B raised to the 2p power, i.e. Σᵢ σᵢ(B)^(2p).
//
// Blueprint:
//
//	Stage 1 (Validate): B non-nil and finite; p >= 1; k > p.
//	Stage 2 (Project):  draw O ~ N(0,1)^(n×k); Y = B·O (m×k).
//	Stage 3 (Gram):     X = Yᵀ·Y (k×k, symmetric).
//	Stage 4 (Truncate): T = strict upper triangle of X.
//	Stage 5 (Power):    M = T^(p−1); exponent 0 is the identity by contract.
//	Stage 6 (Finalize): estimate = trace(M·X) / C(k,p); reject non-finite
//	                    results with ErrDegenerate.
//
// A nil opts selects DefaultOptions. Same seed, p and k ⇒ bit-identical output.
//
// Errors:
//   - ErrBadPower        — p < 1.
//   - ErrBadSampleCount  — k <= p.
//   - ErrDegenerate      — estimate or normalizer is NaN/±Inf.
//   - matrix.ErrNaNInf   — B contains non-finite entries.
//
// Complexity: O(n·k·(m + k) + p·k³) time, O(k²) space.
func Estimate(b matrix.Matrix, p, k int, opts *Options) (float64, error) {
	// Stage 1: resolve options and validate.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if p < 1 {
		return 0, fmt.Errorf("Estimate: p=%d: %w", p, ErrBadPower)
	}
	if k <= p {
		return 0, fmt.Errorf("Estimate: k=%d p=%d: %w", k, p, ErrBadSampleCount)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}

	// Stage 2: random projection Y = B·O with isotropic columns.
	rng := sampler.New(o.Seed)
	omega, err := sampler.Matrix(b.Cols(), k, rng)
	if err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}
	y, err := matrix.Mul(b, omega)
	if err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}

	// Stage 3: Gram matrix X = YᵀY.
	yt, err := matrix.Transpose(y)
	if err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}
	x, err := matrix.Mul(yt, y)
	if err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}

	// Stage 4: strict upper triangle keeps each p-combination exactly once.
	t, err := matrix.StrictUpper(x)
	if err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}

	// Stage 5: integer power T^(p−1); p==1 yields the identity by contract.
	m, err := matrix.Pow(t, p-1)
	if err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}

	// Stage 6: normalize by the binomial coefficient and reject degeneracy.
	prod, err := matrix.Mul(m, x)
	if err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}
	tr, err := matrix.Trace(prod)
	if err != nil {
		return 0, fmt.Errorf("Estimate: %w", err)
	}

	norm := binomial(k, p)
	if math.IsNaN(norm) || math.IsInf(norm, 0) || norm <= 0 {
		return 0, fmt.Errorf("Estimate: C(%d,%d): %w", k, p, ErrDegenerate)
	}
	est := tr / norm
	if math.IsNaN(est) || math.IsInf(est, 0) {
		return 0, fmt.Errorf("Estimate: %w", ErrDegenerate)
	}

	return est, nil
}

// binomial computes C(k,p) in float64 via the multiplicative formula.
// The running product keeps intermediate values close to the final
// magnitude, postponing overflow as long as possible.
// Complexity: O(p).
func binomial(k, p int) float64 {
	// C(k,p) == C(k,k-p); use the smaller upper index.
	if p > k-p {
		p = k - p
	}
	res := 1.0
	for i := 1; i <= p; i++ {
		res *= float64(k-p+i) / float64(i)
	}

	return res
}
