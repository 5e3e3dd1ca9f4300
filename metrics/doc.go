// Package metrics computes error statistics between estimated and true
// value sequences produced by the sweep drivers.
//
// One deliberate oddity is preserved from the original study design:
// PerElementRMSE divides each squared deviation by the sequence length
// BEFORE taking the square root, i.e. it returns sqrt((eᵢ−tᵢ)²/n) per
// element rather than the conventional aggregate RMSE
// sqrt(Σ(eᵢ−tᵢ)²/n). The conventional aggregate is available as RMSE for
// callers who want it; the literal per-element quantity is kept because
// downstream tables were built around it.
package metrics
