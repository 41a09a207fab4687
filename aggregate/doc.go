// Package aggregate defines the aggregation capability used by the
// piecewise, seasonal and trend-feature transforms, together with the
// standard reductions.
//
// An aggregation is a pure, total, deterministic reduction of a non-empty
// float64 sequence to a single scalar. The transforms pass a Func by value
// into their per-block, per-phase or per-piece loops and never retain it
// beyond a single call.
//
// # Built-in reductions
//
//   - Max, Min, Sum: thin wrappers over gonum's floats package
//   - Mean: arithmetic mean via gonum's stat package
//   - Median: middle order statistic for odd lengths, average of the two
//     middle order statistics for even lengths
//
// All built-ins panic when handed an empty slice, mirroring the behavior of
// gonum's floats.Max. The transforms in this module never invoke an
// aggregation with an empty slice: empty run lists short-circuit to 0
// before any reduction runs.
//
// # Custom reductions
//
// Any function with the Func signature can be substituted, for example a
// trimmed mean or a percentile. Custom reductions must be side-effect free
// and must tolerate concurrent invocation with independent arguments; no
// locking is needed unless the function itself shares mutable state. The
// argument slice may alias the transform's input and must be treated as
// read-only.
package aggregate
