// Package optimize implements the three classical minimization routines
// used throughout the randnla study: Newton–Raphson with backtracking,
// fixed-step gradient descent, and stochastic gradient descent with
// per-iteration schedules.
//
// All three work on a plain Objective func([]float64) float64 and
// approximate derivatives numerically by central differences — no analytic
// gradients are required (or used). The canonical test problem is the
// least-squares objective built by LeastSquares.
//
// Outcome reporting follows a strict taxonomy:
//
//   - invalid parameters   → sentinel errors, rejected before any work;
//   - a singular Hessian   → ErrSingularHessian with best-so-far state
//     (fatal for the run, reported, never silently ignored);
//   - budget exhaustion    → Result with StatusIterationLimit and no error
//     (a reported outcome, not a failure);
//   - tolerance reached    → Result with StatusConverged.
//
// Every loop in the package — outer iterations and Newton's backtracking
// line search — carries a mandatory cap, so termination is guaranteed.
package optimize
