package aggregate

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Func reduces a non-empty sequence of samples to a single scalar.
//
// Implementations must be total and deterministic over non-empty input,
// free of side effects, and safe to invoke concurrently with independent
// arguments. The slice passed to a Func may alias the caller's input
// sequence; implementations must treat it as read-only and must not retain
// it past the call.
type Func func(values []float64) float64

// Max returns the largest value in values. Panics if values is empty.
func Max(values []float64) float64 {
	return floats.Max(values)
}

// Min returns the smallest value in values. Panics if values is empty.
func Min(values []float64) float64 {
	return floats.Min(values)
}

// Mean returns the arithmetic mean of values. Panics if values is empty.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		panic("aggregate: mean of empty slice")
	}

	return stat.Mean(values, nil)
}

// Sum returns the sum of values. Panics if values is empty.
func Sum(values []float64) float64 {
	if len(values) == 0 {
		panic("aggregate: sum of empty slice")
	}

	return floats.Sum(values)
}

// Median returns the median of values: the middle order statistic for an
// odd number of samples, or the average of the two middle order statistics
// for an even number. The input slice is not modified. Panics if values is
// empty.
func Median(values []float64) float64 {
	m, err := stats.Median(values)
	if err != nil {
		panic("aggregate: median of empty slice")
	}

	return m
}
