// Package normalize provides z-score and min-max normalization of time
// series, with the inverse transforms needed to map representations back to
// the original scale.
package normalize

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/internal/numeric"
)

// ZScore normalizes x to zero mean and unit variance: (x[i]-mean)/sd, using
// the sample standard deviation. The input is not modified.
//
// Returns errs.ErrShortInput if x has fewer than two samples (the sample
// standard deviation is undefined), errs.ErrZeroRange if x is constant, and
// errs.ErrNonFiniteInput if x contains NaN or ±Inf.
func ZScore(x []float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: z-score needs at least 2 samples, got %d", errs.ErrShortInput, len(x))
	}
	if err := numeric.CheckFinite(x); err != nil {
		return nil, err
	}

	mean, sd := stat.MeanStdDev(x, nil)
	if sd == 0 {
		return nil, fmt.Errorf("%w: constant sequence has zero standard deviation", errs.ErrZeroRange)
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - mean) / sd
	}

	return out, nil
}

// DenormZScore inverts ZScore, mapping normalized samples back through
// z[i]*sd + mean. The input is not modified.
func DenormZScore(z []float64, mean, sd float64) []float64 {
	out := make([]float64, len(z))
	for i, v := range z {
		out[i] = v*sd + mean
	}

	return out
}

// MinMax normalizes x into [0, 1]: (x[i]-min)/(max-min). The input is not
// modified.
//
// Returns errs.ErrEmptyInput if x is empty, errs.ErrZeroRange if x is
// constant (max equals min), and errs.ErrNonFiniteInput if x contains NaN
// or ±Inf.
func MinMax(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, errs.ErrEmptyInput
	}
	if err := numeric.CheckFinite(x); err != nil {
		return nil, err
	}

	minVal := floats.Min(x)
	maxVal := floats.Max(x)
	if maxVal == minVal {
		return nil, fmt.Errorf("%w: constant sequence has zero value range", errs.ErrZeroRange)
	}

	span := maxVal - minVal
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = (v - minVal) / span
	}

	return out, nil
}

// DenormMinMax inverts MinMax, mapping normalized samples back through
// y[i]*(max-min) + min. The input is not modified.
func DenormMinMax(y []float64, minVal, maxVal float64) []float64 {
	span := maxVal - minVal

	out := make([]float64, len(y))
	for i, v := range y {
		out[i] = v*span + minVal
	}

	return out
}
