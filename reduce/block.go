package reduce

import (
	"fmt"

	"github.com/arloliu/tsrepr/aggregate"
	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/internal/chunk"
	"github.com/arloliu/tsrepr/internal/numeric"
)

// Block computes the piecewise aggregate approximation of x with block size
// q, reducing each block with agg.
//
// x is partitioned into ceil(n/q) contiguous blocks: floor(n/q) blocks of
// exactly q samples, plus one final block of n mod q samples when n is not
// evenly divisible by q. The shorter final block is aggregated like any
// other, not dropped. The result holds one scalar per block in block order.
//
// With q = 1 every block is a singleton, so the result equals x whenever
// agg maps a singleton to its own value (true for the built-in max, min,
// mean, sum and median).
//
// Returns errs.ErrInvalidBlockSize if q <= 0, errs.ErrEmptyInput if x is
// empty, and errs.ErrNonFiniteInput if x contains NaN or ±Inf.
func Block(x []float64, q int, agg aggregate.Func) ([]float64, error) {
	if q <= 0 {
		return nil, fmt.Errorf("%w: block size %d, need at least 1", errs.ErrInvalidBlockSize, q)
	}
	if agg == nil {
		return nil, fmt.Errorf("%w: nil aggregation function", errs.ErrInvalidArgument)
	}
	if len(x) == 0 {
		return nil, errs.ErrEmptyInput
	}
	if err := numeric.CheckFinite(x); err != nil {
		return nil, err
	}

	blocks := chunk.Blocks(x, q)

	repr := make([]float64, len(blocks))
	for i, block := range blocks {
		repr[i] = agg(block)
	}

	return repr, nil
}
