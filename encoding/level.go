package encoding

import (
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/internal/numeric"
)

// LevelEncode computes the bit-level clipping encoding of x.
//
// The sequence mean is computed once over the whole input; the output has
// the same length as x, with bit i set to 1 when x[i] strictly exceeds that
// mean and 0 otherwise. A sample equal to the mean encodes as 0, so a
// constant sequence encodes as all zeros.
//
// Returns errs.ErrEmptyInput if x is empty (the mean is undefined) and
// errs.ErrNonFiniteInput if x contains NaN or ±Inf.
func LevelEncode(x []float64) ([]uint8, error) {
	if len(x) == 0 {
		return nil, errs.ErrEmptyInput
	}
	if err := numeric.CheckFinite(x); err != nil {
		return nil, err
	}

	mean := stat.Mean(x, nil)

	bits := make([]uint8, len(x))
	for i, v := range x {
		if v > mean {
			bits[i] = 1
		}
	}

	return bits, nil
}
