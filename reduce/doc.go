// Package reduce computes aggregated representations of time series by
// reducing groups of samples with a caller-supplied aggregation.
//
// Two grouping policies are provided:
//
//   - Block: piecewise aggregate approximation. The sequence is cut into
//     contiguous blocks of a fixed size (the last block may be shorter) and
//     each block reduces to one scalar.
//   - Seasonal: seasonal profile. Samples are grouped by their position
//     inside a repeating cycle of fixed length, and each position reduces
//     to one scalar across all complete cycles.
//
// Both accept any aggregate.Func; the iterations over blocks and phases are
// data-independent.
//
// # Usage
//
//	paa, err := reduce.Block(series, 12, aggregate.Mean)
//
//	daily, err := reduce.Seasonal(series, 48, aggregate.Median)
package reduce
