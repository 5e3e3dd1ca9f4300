package optimize

import (
	"fmt"
	"math"
)

// Documented gradient-descent defaults.
const (
	// DefaultGDStep is the fixed step size γ.
	DefaultGDStep = 0.01

	// DefaultGDIterations is the fixed iteration count.
	DefaultGDIterations = 1000
)

// GDOptions configures GradientDescent.
//
// Fields:
//   - Step       — fixed step size γ > 0.
//   - Iterations — fixed iteration count (the only termination criterion).
//   - DiffStep   — finite-difference step h (0 ⇒ DefaultDiffStep).
type GDOptions struct {
	Step       float64
	Iterations int
	DiffStep   float64
}

// DefaultGDOptions returns the documented defaults.
func DefaultGDOptions() GDOptions {
	return GDOptions{
		Step:       DefaultGDStep,
		Iterations: DefaultGDIterations,
		DiffStep:   DefaultDiffStep,
	}
}

// GradientDescent minimizes f by x ← x − γ·∇f(x) for a fixed number of
// iterations. The baseline form has no convergence test: it terminates
// purely by budget, so the returned Status is always StatusIterationLimit
// and the final gradient norm is reported for the caller to judge.
//
// Errors: ErrNilObjective, ErrEmptyPoint, ErrBadStepSize,
// ErrBadIterationBudget.
// Complexity: Iterations × 2n objective evaluations.
func GradientDescent(f Objective, x0 []float64, opts *GDOptions) (Result, error) {
	// Resolve options and validate.
	o := DefaultGDOptions()
	if opts != nil {
		o = *opts
	}
	if o.DiffStep == 0 {
		o.DiffStep = DefaultDiffStep
	}
	if f == nil {
		return Result{}, fmt.Errorf("GradientDescent: %w", ErrNilObjective)
	}
	if len(x0) == 0 {
		return Result{}, fmt.Errorf("GradientDescent: %w", ErrEmptyPoint)
	}
	if o.Step <= 0 || math.IsNaN(o.Step) || math.IsInf(o.Step, 0) {
		return Result{}, fmt.Errorf("GradientDescent: gamma=%g: %w", o.Step, ErrBadStepSize)
	}
	if o.Iterations < 1 {
		return Result{}, fmt.Errorf("GradientDescent: %w", ErrBadIterationBudget)
	}
	if o.DiffStep <= 0 || math.IsNaN(o.DiffStep) || math.IsInf(o.DiffStep, 0) {
		return Result{}, fmt.Errorf("GradientDescent: h=%g: %w", o.DiffStep, ErrBadStepSize)
	}

	// Fixed-budget descent loop.
	n := len(x0)
	x := make([]float64, n)
	copy(x, x0)

	var g []float64
	for iter := 0; iter < o.Iterations; iter++ {
		g = Gradient(f, x, o.DiffStep)
		for i := 0; i < n; i++ {
			x[i] -= o.Step * g[i]
		}
	}

	g = Gradient(f, x, o.DiffStep)

	return Result{
		X:          x,
		Value:      f(x),
		GradNorm:   euclideanNorm(g),
		Iterations: o.Iterations,
		Status:     StatusIterationLimit, // budget-terminated by design
	}, nil
}
