package optimize

import "errors"

// Objective is a scalar function to minimize. Implementations must be pure:
// the optimizers evaluate them repeatedly at perturbed points for numerical
// differentiation.
type Objective func(x []float64) float64

// Status classifies how an optimization run terminated.
type Status int

const (
	// StatusConverged: the gradient norm fell below the tolerance.
	StatusConverged Status = iota

	// StatusIterationLimit: the iteration budget (or the backtracking cap)
	// was exhausted before the tolerance was met. The Result still carries
	// the best point found; this is a reported outcome, not an error.
	StatusIterationLimit
)

// String implements fmt.Stringer for table/CSV rendering.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusIterationLimit:
		return "iteration-limit"
	default:
		return "unknown"
	}
}

// Result holds the outcome of one optimizer run.
type Result struct {
	// X is the final (best-so-far) point.
	X []float64

	// Value is the objective value at X.
	Value float64

	// GradNorm is the Euclidean norm of the numerical gradient at X.
	GradNorm float64

	// Iterations is the number of outer iterations performed.
	Iterations int

	// Status reports the termination mode.
	Status Status
}

var (
	// ErrNilObjective — no objective function supplied.
	ErrNilObjective = errors.New("optimize: nil objective")

	// ErrEmptyPoint — the starting point has zero length.
	ErrEmptyPoint = errors.New("optimize: empty starting point")

	// ErrBadTolerance — tolerance is not a positive finite number.
	ErrBadTolerance = errors.New("optimize: tolerance must be positive and finite")

	// ErrBadStepSize — a step size (γ, backtracking factor β, or schedule
	// entry) is outside its valid range.
	ErrBadStepSize = errors.New("optimize: invalid step size")

	// ErrBadIterationBudget — an iteration or backtracking budget is < 1.
	ErrBadIterationBudget = errors.New("optimize: iteration budget must be >= 1")

	// ErrSingularHessian — the numerically approximated Hessian could not be
	// solved (zero pivot). Fatal for the run; the Result carries the state
	// reached so far.
	ErrSingularHessian = errors.New("optimize: singular hessian")

	// ErrBadSchedule — SGD batch-size and step-size schedules are empty or
	// of unequal length.
	ErrBadSchedule = errors.New("optimize: invalid schedule")

	// ErrBatchTooLarge — a scheduled batch size exceeds the population when
	// sampling without replacement.
	ErrBatchTooLarge = errors.New("optimize: batch size exceeds population")

	// ErrBadWeights — the SGD sampling distribution is missing, mismatched
	// in length, negative, non-finite, or sums to zero.
	ErrBadWeights = errors.New("optimize: invalid sampling weights")

	// ErrDimensionMismatch — data shapes disagree (e.g. rows of A vs len(b)
	// in LeastSquares).
	ErrDimensionMismatch = errors.New("optimize: dimension mismatch")
)
