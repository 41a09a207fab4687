// Package tsrepr computes compact numeric representations of time series
// for clustering, indexing and compression workloads.
//
// Given a raw sequence of real-valued samples, tsrepr derives fixed- or
// reduced-length vectors that summarize local trend, level and shape using
// a family of related transforms: moving-average smoothing, bit-level
// encoding, run-length encoding, run-based feature extraction, and
// piecewise/seasonal aggregation.
//
// # Core Transforms
//
//   - Smooth: simple moving average with incremental O(n) update
//   - LevelEncode / TrendEncode: real sequence to {0,1} sequence
//   - RunLengthEncode: discrete sequence to maximal (value, length) runs
//   - LevelFeatures: 8-element vector from the runs of the level encoding
//   - TrendFeatures: 2*pieces-element vector from piecewise trend runs
//   - CombinedFeatures: LevelFeatures followed by TrendFeatures
//   - BlockAggregate: piecewise aggregate approximation (PAA)
//   - SeasonalProfile: per-phase aggregation across repeating cycles
//
// Every transform is a pure function: inputs are never mutated, no state is
// retained across calls, and independent invocations are safe to run
// concurrently.
//
// # Aggregations
//
// The piecewise, seasonal and trend-feature transforms take an
// aggregate.Func, a pure reduction of a non-empty sequence to one scalar.
// The aggregate package ships Max, Min, Mean, Sum and Median; any function
// satisfying the contract can be substituted.
//
// # Basic Usage
//
//	x := []float64{1, 3, 2, 5, 4, 6, 5, 8, 7, 9}
//
//	// Short shape summary for clustering
//	vec, err := tsrepr.CombinedFeatures(x, aggregate.Max)
//
//	// Dimensionality reduction to 5 block means
//	paa, err := tsrepr.BlockAggregate(x, 2, aggregate.Mean)
//
//	// Daily profile of half-hourly data
//	profile, err := tsrepr.SeasonalProfile(x, 5, aggregate.Median)
//
// # Errors
//
// Parameter-domain violations are reported with errors wrapping
// errs.ErrInvalidArgument; sequences containing NaN or ±Inf are rejected
// with errors wrapping errs.ErrNonFiniteInput before any computation runs.
// Calls never return partial results.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the smooth,
// encoding, feature, reduce and normalize packages, which can also be used
// directly for fine-grained control.
package tsrepr

import (
	"github.com/arloliu/tsrepr/aggregate"
	"github.com/arloliu/tsrepr/encoding"
	"github.com/arloliu/tsrepr/feature"
	"github.com/arloliu/tsrepr/internal/numeric"
	"github.com/arloliu/tsrepr/reduce"
	"github.com/arloliu/tsrepr/smooth"
)

// Run is a maximal contiguous repetition of one sample value within a
// sequence. It is an alias of encoding.Run for float64 sequences.
type Run = encoding.Run[float64]

// Smooth computes the simple moving average of x with the given order,
// returning len(x)-order smoothed samples.
//
// See smooth.SMA for the incremental recurrence and error conditions.
func Smooth(x []float64, order int) ([]float64, error) {
	return smooth.SMA(x, order)
}

// LevelEncode computes the bit-level clipping encoding of x: bit i is 1
// when x[i] exceeds the mean of x.
//
// See encoding.LevelEncode.
func LevelEncode(x []float64) ([]uint8, error) {
	return encoding.LevelEncode(x)
}

// TrendEncode computes the bit-level trending encoding of x: bit i is 1
// when the step from x[i] to x[i+1] rises. The output has length len(x)-1.
//
// See encoding.TrendEncode.
func TrendEncode(x []float64) ([]uint8, error) {
	return encoding.TrendEncode(x)
}

// RunLengthEncode computes the maximal runs of x. Samples are compared with
// exact equality; sequences containing NaN or ±Inf are rejected with an
// error wrapping errs.ErrNonFiniteInput, since NaN never compares equal and
// would break the round-trip guarantee.
//
// See encoding.RunLength for the run invariants.
func RunLengthEncode(x []float64) ([]Run, error) {
	if err := numeric.CheckFinite(x); err != nil {
		return nil, err
	}

	return encoding.RunLength(x)
}

// LevelFeatures computes the 8-element level feature vector of x.
//
// See feature.Clip for the element-by-element layout.
func LevelFeatures(x []float64) ([]float64, error) {
	return feature.Clip(x)
}

// TrendFeatures computes the 2*pieces-element trend feature vector of x,
// reducing per-piece run lengths with agg. Defaults are 2 pieces and a
// moving average of order 4; override with feature.WithPieces and
// feature.WithOrder.
//
// See feature.Trend.
func TrendFeatures(x []float64, agg aggregate.Func, opts ...feature.TrendOption) ([]float64, error) {
	return feature.Trend(x, agg, opts...)
}

// CombinedFeatures computes LevelFeatures followed by TrendFeatures as one
// vector of 8+2*pieces elements.
//
// See feature.Combined.
func CombinedFeatures(x []float64, agg aggregate.Func, opts ...feature.TrendOption) ([]float64, error) {
	return feature.Combined(x, agg, opts...)
}

// BlockAggregate computes the piecewise aggregate approximation of x:
// ceil(n/q) scalars, one per contiguous block of q samples, with a shorter
// final block when q does not divide n.
//
// See reduce.Block.
func BlockAggregate(x []float64, q int, agg aggregate.Func) ([]float64, error) {
	return reduce.Block(x, q, agg)
}

// SeasonalProfile computes the per-phase aggregation of x across repeating
// cycles of length freq, producing one scalar per phase.
//
// See reduce.Seasonal.
func SeasonalProfile(x []float64, freq int, agg aggregate.Func) ([]float64, error) {
	return reduce.Seasonal(x, freq, agg)
}
