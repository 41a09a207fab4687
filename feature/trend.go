package feature

import (
	"fmt"

	"github.com/arloliu/tsrepr/aggregate"
	"github.com/arloliu/tsrepr/encoding"
	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/internal/chunk"
	"github.com/arloliu/tsrepr/internal/options"
	"github.com/arloliu/tsrepr/internal/pool"
	"github.com/arloliu/tsrepr/smooth"
)

// Trend computes the trend feature vector of x.
//
// The signal is first smoothed with a moving average (order DefaultOrder
// unless overridden with WithOrder), then split into equal contiguous
// pieces (DefaultPieces unless overridden with WithPieces) of
// floor(m/pieces) smoothed samples each. Any trailing remainder beyond
// pieces*floor(m/pieces) is silently discarded and never forms an extra
// piece.
//
// Each piece is trend encoded and run-length encoded; the run lengths are
// partitioned by bit value and reduced with agg, yielding two elements per
// piece. The result has length 2*pieces, interleaved as
//
//	[agg(1-run lengths of piece 0), agg(0-run lengths of piece 0),
//	 agg(1-run lengths of piece 1), agg(0-run lengths of piece 1), ...]
//
// with 0 substituted wherever a piece has no runs of the respective bit.
//
// Errors: errs.ErrInvalidPieces if pieces is not positive or the pieces
// degenerate to zero length, errs.ErrInvalidOrder if the order violates the
// moving average precondition, errs.ErrShortInput if a piece is too short
// to trend encode, and errs.ErrNonFiniteInput for NaN or ±Inf samples.
func Trend(x []float64, agg aggregate.Func, opts ...TrendOption) ([]float64, error) {
	if agg == nil {
		return nil, fmt.Errorf("%w: nil aggregation function", errs.ErrInvalidArgument)
	}

	cfg := newTrendConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	smoothed, err := smooth.SMA(x, cfg.order)
	if err != nil {
		return nil, err
	}

	pieces := chunk.Pieces(smoothed, cfg.pieces)
	if pieces == nil {
		return nil, fmt.Errorf("%w: %d pieces over %d smoothed samples leaves empty pieces",
			errs.ErrInvalidPieces, cfg.pieces, len(smoothed))
	}

	repr := make([]float64, 0, 2*cfg.pieces)
	for _, piece := range pieces {
		aggOnes, aggZeros, err := pieceTrendFeatures(piece, agg)
		if err != nil {
			return nil, err
		}
		repr = append(repr, aggOnes, aggZeros)
	}

	return repr, nil
}

// pieceTrendFeatures reduces one piece to its aggregated 1-run and 0-run
// lengths.
func pieceTrendFeatures(piece []float64, agg aggregate.Func) (aggOnes, aggZeros float64, err error) {
	bits, err := encoding.TrendEncode(piece)
	if err != nil {
		return 0, 0, fmt.Errorf("piece of %d smoothed samples: %w", len(piece), err)
	}

	runs, err := encoding.RunLength(bits)
	if err != nil {
		return 0, 0, err
	}

	ones, doneOnes := pool.GetFloat64Slice(len(runs))
	defer doneOnes()
	zeros, doneZeros := pool.GetFloat64Slice(len(runs))
	defer doneZeros()

	for _, r := range runs {
		if r.Value == 1 {
			ones = append(ones, float64(r.Length))
		} else {
			zeros = append(zeros, float64(r.Length))
		}
	}

	if len(ones) > 0 {
		aggOnes = agg(ones)
	}
	if len(zeros) > 0 {
		aggZeros = agg(zeros)
	}

	return aggOnes, aggZeros, nil
}
