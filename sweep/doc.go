// Package sweep orchestrates repeated estimator invocations over parameter
// grids, timing each call against its deterministic ground truth and
// accumulating one Row per grid cell.
//
// Design principles:
//
//   - Explicit accumulation: every driver returns a fresh []Row; there is
//     no package-level mutable state of any kind.
//   - Failure modes are data: an invalid or numerically degenerate cell is
//     tabulated with its Status instead of aborting the grid, so failure
//     statistics land in the same table as successes.
//   - Determinism under parallelism: each cell derives its own RNG stream
//     from the sweep seed and its cell index, so results are bit-identical
//     whether the grid runs on one worker or many, in any order.
//
// Tables render to delimited text via WriteCSV; plotting and any further
// reporting are external consumers of that output.
package sweep
