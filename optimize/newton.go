package optimize

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/randnla/matrix/ops"
)

// Documented Newton defaults (single source of truth).
const (
	// DefaultNewtonTolerance is the gradient-norm stopping threshold ε.
	DefaultNewtonTolerance = 1e-6

	// DefaultNewtonMaxIterations caps the outer loop; the decrease condition
	// alone does not guarantee termination.
	DefaultNewtonMaxIterations = 1000

	// DefaultNewtonBeta is the backtracking step-size reduction factor β.
	DefaultNewtonBeta = 0.5

	// DefaultNewtonMaxBacktracks caps step halvings per iteration, making
	// the inner line-search loop terminate unconditionally.
	DefaultNewtonMaxBacktracks = 50
)

// NewtonOptions configures NewtonRaphson.
//
// Fields:
//   - Tolerance      — ε; stop when ‖∇f‖ < ε.
//   - MaxIterations  — outer iteration budget (mandatory cap).
//   - Beta           — backtracking reduction factor, 0 < β < 1.
//   - MaxBacktracks  — per-iteration cap on step reductions.
//   - DiffStep       — finite-difference step h (0 ⇒ DefaultDiffStep).
type NewtonOptions struct {
	Tolerance     float64
	MaxIterations int
	Beta          float64
	MaxBacktracks int
	DiffStep      float64
}

// DefaultNewtonOptions returns the documented defaults.
func DefaultNewtonOptions() NewtonOptions {
	return NewtonOptions{
		Tolerance:     DefaultNewtonTolerance,
		MaxIterations: DefaultNewtonMaxIterations,
		Beta:          DefaultNewtonBeta,
		MaxBacktracks: DefaultNewtonMaxBacktracks,
		DiffStep:      DefaultDiffStep,
	}
}

// NewtonRaphson minimizes f starting from x0 by damped Newton steps:
// solve H·d = ∇f, then move x ← x − t·d where t starts at 1 and is reduced
// by factor β until the objective decreases (Armijo-style decrease test
// with zero slope margin, matching the study's backtracking rule).
//
// Blueprint:
//
//	Stage 1 (Validate): f non-nil, x0 non-empty, ε/β/budgets in range.
//	Stage 2 (Iterate):  gradient → convergence test → Hessian → solve →
//	                    capped backtracking → accept step.
//	Stage 3 (Finalize): Converged when ‖∇f‖ < ε; IterationLimit when the
//	                    outer budget or the backtracking cap is exhausted.
//
// Errors:
//   - ErrNilObjective / ErrEmptyPoint / ErrBadTolerance / ErrBadStepSize /
//     ErrBadIterationBudget — parameter validation, rejected up front.
//   - ErrSingularHessian — the LU solve hit a zero pivot; the returned
//     Result carries the best state reached before the failure.
//
// Complexity per iteration: O(n²) evaluations for the Hessian + O(n³) solve.
func NewtonRaphson(f Objective, x0 []float64, opts *NewtonOptions) (Result, error) {
	// Stage 1: resolve options and validate.
	o := DefaultNewtonOptions()
	if opts != nil {
		o = *opts
	}
	if o.DiffStep == 0 {
		o.DiffStep = DefaultDiffStep
	}
	if f == nil {
		return Result{}, fmt.Errorf("NewtonRaphson: %w", ErrNilObjective)
	}
	if len(x0) == 0 {
		return Result{}, fmt.Errorf("NewtonRaphson: %w", ErrEmptyPoint)
	}
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return Result{}, fmt.Errorf("NewtonRaphson: %w", ErrBadTolerance)
	}
	if o.Beta <= 0 || o.Beta >= 1 {
		return Result{}, fmt.Errorf("NewtonRaphson: beta=%g: %w", o.Beta, ErrBadStepSize)
	}
	if o.MaxIterations < 1 || o.MaxBacktracks < 1 {
		return Result{}, fmt.Errorf("NewtonRaphson: %w", ErrBadIterationBudget)
	}
	if o.DiffStep <= 0 || math.IsNaN(o.DiffStep) || math.IsInf(o.DiffStep, 0) {
		return Result{}, fmt.Errorf("NewtonRaphson: h=%g: %w", o.DiffStep, ErrBadStepSize)
	}

	// Stage 2: iterate.
	n := len(x0)
	x := make([]float64, n)
	copy(x, x0)
	fx := f(x)
	cand := make([]float64, n)

	var g []float64
	var gn float64
	for iter := 0; iter < o.MaxIterations; iter++ {
		g = Gradient(f, x, o.DiffStep)
		gn = euclideanNorm(g)
		if gn < o.Tolerance {
			return Result{X: x, Value: fx, GradNorm: gn, Iterations: iter, Status: StatusConverged}, nil
		}

		hess := Hessian(f, x, o.DiffStep)
		d, err := ops.Solve(hess, g)
		if err != nil {
			res := Result{X: x, Value: fx, GradNorm: gn, Iterations: iter, Status: StatusIterationLimit}
			if errors.Is(err, ops.ErrSingular) {
				return res, fmt.Errorf("NewtonRaphson: %w", ErrSingularHessian)
			}

			return res, fmt.Errorf("NewtonRaphson: %w", err)
		}

		// Capped backtracking: shrink t by β until f decreases.
		step := 1.0
		accepted := false
		var fc float64
		for bt := 0; bt < o.MaxBacktracks; bt++ {
			for i := 0; i < n; i++ {
				cand[i] = x[i] - step*d[i]
			}
			fc = f(cand)
			if fc < fx {
				accepted = true
				break
			}
			step *= o.Beta
		}
		if !accepted {
			// No decrease within the cap: the schedule stalled. Report the
			// best state rather than loop forever.
			return Result{X: x, Value: fx, GradNorm: gn, Iterations: iter, Status: StatusIterationLimit}, nil
		}

		copy(x, cand)
		fx = fc
	}

	// Stage 3: budget exhausted — reported outcome, not an error.
	g = Gradient(f, x, o.DiffStep)

	return Result{
		X:          x,
		Value:      fx,
		GradNorm:   euclideanNorm(g),
		Iterations: o.MaxIterations,
		Status:     StatusIterationLimit,
	}, nil
}
