// Package smooth provides the simple moving average smoother used ahead of
// the trend-based feature extraction.
package smooth

import (
	"fmt"

	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/internal/numeric"
)

// SMA computes the simple moving average of x with the given order,
// returning a smoothed sequence of length len(x)-order.
//
// The first output sample is the mean of the first order input samples.
// Each subsequent sample is derived incrementally:
//
//	out[i] = out[i-1] + x[i+order]/order - x[i-1]/order
//
// which keeps the whole computation O(n) regardless of order. The update is
// inherently sequential; parallelizing it requires a prefix-sum
// reformulation, which this implementation does not attempt.
//
// Returns errs.ErrInvalidOrder unless 1 <= order < len(x), and
// errs.ErrNonFiniteInput if x contains NaN or ±Inf.
func SMA(x []float64, order int) ([]float64, error) {
	if order < 1 || order >= len(x) {
		return nil, fmt.Errorf("%w: order %d must be in [1, %d)", errs.ErrInvalidOrder, order, len(x))
	}
	if err := numeric.CheckFinite(x); err != nil {
		return nil, err
	}

	out := make([]float64, len(x)-order)

	sum := 0.0
	for _, v := range x[:order] {
		sum += v
	}
	out[0] = sum / float64(order)

	for i := 1; i < len(out); i++ {
		out[i] = out[i-1] + x[i+order]/float64(order) - x[i-1]/float64(order)
	}

	return out, nil
}
