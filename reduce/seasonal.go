package reduce

import (
	"fmt"

	"github.com/arloliu/tsrepr/aggregate"
	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/internal/chunk"
	"github.com/arloliu/tsrepr/internal/numeric"
)

// Seasonal computes the seasonal profile of x for a repeating cycle of
// length freq, reducing each cycle position with agg.
//
// For each phase i in [0, freq) the samples x[i], x[i+freq], x[i+2*freq],
// ... are collected across the floor(n/freq) complete cycles and reduced to
// one scalar. Samples in an incomplete trailing cycle are excluded from
// every phase, even phases whose index inside the partial cycle exists, so
// all phases aggregate the same number of samples. The result has length
// freq.
//
// With freq = len(x) there is exactly one cycle and the result equals x
// whenever agg maps a singleton to its own value.
//
// Returns errs.ErrInvalidFrequency if freq <= 0 or no complete cycle fits
// (freq > n), and errs.ErrNonFiniteInput if x contains NaN or ±Inf.
func Seasonal(x []float64, freq int, agg aggregate.Func) ([]float64, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("%w: frequency %d, need at least 1", errs.ErrInvalidFrequency, freq)
	}
	if agg == nil {
		return nil, fmt.Errorf("%w: nil aggregation function", errs.ErrInvalidArgument)
	}
	if err := numeric.CheckFinite(x); err != nil {
		return nil, err
	}

	phases := chunk.Phases(x, freq)
	if phases == nil {
		return nil, fmt.Errorf("%w: frequency %d exceeds sequence length %d",
			errs.ErrInvalidFrequency, freq, len(x))
	}

	repr := make([]float64, len(phases))
	for i, phase := range phases {
		repr[i] = agg(phase)
	}

	return repr, nil
}
