package optimize

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/randnla/sampler"
)

// Schedule supplies per-iteration batch sizes and step sizes for SGD.
// Both slices must be non-empty and of equal length; len(BatchSizes) is the
// iteration count.
type Schedule struct {
	BatchSizes []int
	StepSizes  []float64
}

// SGDOptions configures SGD.
//
// Fields:
//   - Seed     — RNG seed for batch sampling; 0 selects the default stream.
//   - DiffStep — finite-difference step h (0 ⇒ DefaultDiffStep).
type SGDOptions struct {
	Seed     int64
	DiffStep float64
}

// DefaultSGDOptions returns the documented defaults.
func DefaultSGDOptions() SGDOptions {
	return SGDOptions{Seed: 0, DiffStep: DefaultDiffStep}
}

// SGD minimizes the sum of per-sample objectives by mini-batch descent.
// At iteration t it draws Schedule.BatchSizes[t] samples without
// replacement — weighted by the supplied sampling distribution — averages
// their central-difference gradients into a noisy gradient estimate, and
// steps by Schedule.StepSizes[t].
//
// Blueprint:
//
//	Stage 1 (Validate): samples/weights/schedule/x0 checked before any draw;
//	                    every scheduled batch must fit the population.
//	Stage 2 (Iterate):  weighted sampling w/o replacement → averaged
//	                    numerical gradients → scheduled step.
//	Stage 3 (Finalize): report the full-objective value and gradient norm at
//	                    the final point; Status is StatusIterationLimit (the
//	                    schedule is the only termination criterion).
//
// Determinism: same seed + schedule ⇒ identical index draws and steps.
//
// Errors: ErrNilObjective (no samples or a nil sample), ErrEmptyPoint,
// ErrBadWeights, ErrBadSchedule, ErrBatchTooLarge, ErrBadStepSize.
// Complexity per iteration: batch × 2n objective evaluations + O(m) sampling.
func SGD(samples []Objective, weights []float64, x0 []float64, sched Schedule, opts *SGDOptions) (Result, error) {
	// Stage 1: resolve options and validate.
	o := DefaultSGDOptions()
	if opts != nil {
		o = *opts
	}
	if o.DiffStep == 0 {
		o.DiffStep = DefaultDiffStep
	}
	m := len(samples)
	if m == 0 {
		return Result{}, fmt.Errorf("SGD: %w", ErrNilObjective)
	}
	for i, s := range samples {
		if s == nil {
			return Result{}, fmt.Errorf("SGD: sample %d: %w", i, ErrNilObjective)
		}
	}
	if len(x0) == 0 {
		return Result{}, fmt.Errorf("SGD: %w", ErrEmptyPoint)
	}
	positive, err := validateWeights(weights, m)
	if err != nil {
		return Result{}, fmt.Errorf("SGD: %w", err)
	}
	iters := len(sched.BatchSizes)
	if iters == 0 || len(sched.StepSizes) != iters {
		return Result{}, fmt.Errorf("SGD: %w", ErrBadSchedule)
	}
	for t := 0; t < iters; t++ {
		if sched.BatchSizes[t] < 1 {
			return Result{}, fmt.Errorf("SGD: iteration %d: %w", t, ErrBadSchedule)
		}
		// Sampling is without replacement: only samples with positive mass are
		// drawable, so the batch may never exceed their count. Validated up
		// front so no partial run ever starts.
		if sched.BatchSizes[t] > positive {
			return Result{}, fmt.Errorf("SGD: iteration %d: batch=%d drawable=%d: %w",
				t, sched.BatchSizes[t], positive, ErrBatchTooLarge)
		}
		eta := sched.StepSizes[t]
		if eta <= 0 || math.IsNaN(eta) || math.IsInf(eta, 0) {
			return Result{}, fmt.Errorf("SGD: iteration %d: eta=%g: %w", t, eta, ErrBadStepSize)
		}
	}
	if o.DiffStep <= 0 || math.IsNaN(o.DiffStep) || math.IsInf(o.DiffStep, 0) {
		return Result{}, fmt.Errorf("SGD: h=%g: %w", o.DiffStep, ErrBadStepSize)
	}

	// Stage 2: iterate.
	n := len(x0)
	x := make([]float64, n)
	copy(x, x0)
	rng := sampler.New(o.Seed)
	avg := make([]float64, n)

	for t := 0; t < iters; t++ {
		batch := weightedSampleWithoutReplacement(weights, sched.BatchSizes[t], rng)

		// Average the per-sample numerical gradients.
		for i := range avg {
			avg[i] = 0
		}
		for _, idx := range batch {
			g := Gradient(samples[idx], x, o.DiffStep)
			for i := 0; i < n; i++ {
				avg[i] += g[i]
			}
		}
		inv := 1.0 / float64(len(batch))
		eta := sched.StepSizes[t]
		for i := 0; i < n; i++ {
			x[i] -= eta * avg[i] * inv
		}
	}

	// Stage 3: finalize against the full objective Σᵢ fᵢ.
	full := func(p []float64) float64 {
		var sum float64
		for _, s := range samples {
			sum += s(p)
		}

		return sum
	}
	g := Gradient(full, x, o.DiffStep)

	return Result{
		X:          x,
		Value:      full(x),
		GradNorm:   euclideanNorm(g),
		Iterations: iters,
		Status:     StatusIterationLimit, // schedule-terminated by design
	}, nil
}

// validateWeights checks the sampling distribution: correct length, all
// entries finite and non-negative, strictly positive total mass. It returns
// the number of strictly positive weights — the effective population for
// sampling without replacement.
func validateWeights(w []float64, m int) (int, error) {
	if len(w) != m {
		return 0, ErrBadWeights
	}
	var total float64
	var positive int
	for _, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrBadWeights
		}
		if v > 0 {
			positive++
		}
		total += v
	}
	if total <= 0 {
		return 0, ErrBadWeights
	}

	return positive, nil
}

// weightedSampleWithoutReplacement draws `count` distinct indices from
// 0..len(weights)-1, each draw proportional to the remaining weights.
// Deterministic for a fixed rng state. Callers guarantee count does not
// exceed the number of positive-weight indices, so the remaining mass stays
// positive for every draw; the in-loop fallback only covers FP round-off.
// Complexity: O(count·m) time, O(m) space.
func weightedSampleWithoutReplacement(weights []float64, count int, rng *rand.Rand) []int {
	m := len(weights)
	idx := make([]int, m)
	w := make([]float64, m)
	var total float64
	for i := 0; i < m; i++ {
		idx[i] = i
		w[i] = weights[i]
		total += weights[i]
	}

	out := make([]int, 0, count)
	for drawn := 0; drawn < count; drawn++ {
		u := rng.Float64() * total
		var cum float64
		sel := m - drawn - 1 // fallback to the last live slot on FP round-off
		for i := 0; i < m-drawn; i++ {
			cum += w[i]
			if u < cum {
				sel = i
				break
			}
		}
		out = append(out, idx[sel])

		// Swap-remove the chosen slot and shrink the live region.
		total -= w[sel]
		last := m - drawn - 1
		idx[sel], idx[last] = idx[last], idx[sel]
		w[sel], w[last] = w[last], w[sel]
	}

	return out
}
