package encoding

import (
	"fmt"

	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/internal/numeric"
)

// TrendEncode computes the bit-level trending encoding of x.
//
// The output has length len(x)-1, with bit i set to 1 when the step from
// x[i] to x[i+1] rises (x[i] < x[i+1]) and 0 when it falls or stays flat.
//
// Returns errs.ErrShortInput if x has fewer than two samples (no step
// exists) and errs.ErrNonFiniteInput if x contains NaN or ±Inf.
func TrendEncode(x []float64) ([]uint8, error) {
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: trend encoding needs at least 2 samples, got %d", errs.ErrShortInput, len(x))
	}
	if err := numeric.CheckFinite(x); err != nil {
		return nil, err
	}

	bits := make([]uint8, len(x)-1)
	for i := range bits {
		if x[i] < x[i+1] {
			bits[i] = 1
		}
	}

	return bits, nil
}
