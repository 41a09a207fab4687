package feature

import (
	"fmt"

	"github.com/arloliu/tsrepr/errs"
	"github.com/arloliu/tsrepr/internal/options"
)

// Default parameters for the trend feature extraction.
const (
	// DefaultPieces is the number of contiguous pieces the smoothed signal
	// is split into when WithPieces is not given.
	DefaultPieces = 2

	// DefaultOrder is the moving average order applied before trend encoding
	// when WithOrder is not given.
	DefaultOrder = 4
)

// TrendConfig holds the tunable parameters of the trend feature extraction.
// It is populated from defaults and TrendOption values; the zero value is
// not meaningful.
type TrendConfig struct {
	pieces int
	order  int
}

func newTrendConfig() *TrendConfig {
	return &TrendConfig{pieces: DefaultPieces, order: DefaultOrder}
}

// TrendOption represents a functional option for configuring the trend
// feature extraction.
type TrendOption = options.Option[*TrendConfig]

// WithPieces sets the number of contiguous pieces the smoothed signal is
// split into. Each piece contributes two output elements. Applying the
// option fails with errs.ErrInvalidPieces if pieces is not positive.
func WithPieces(pieces int) TrendOption {
	return options.New(func(c *TrendConfig) error {
		if pieces <= 0 {
			return fmt.Errorf("%w: %d pieces, need at least 1", errs.ErrInvalidPieces, pieces)
		}
		c.pieces = pieces

		return nil
	})
}

// WithOrder sets the moving average order applied before trend encoding.
// Applying the option fails with errs.ErrInvalidOrder if order is not
// positive; an order too large for the input sequence is reported by the
// extraction itself, which knows the sequence length.
func WithOrder(order int) TrendOption {
	return options.New(func(c *TrendConfig) error {
		if order < 1 {
			return fmt.Errorf("%w: order %d, need at least 1", errs.ErrInvalidOrder, order)
		}
		c.order = order

		return nil
	})
}
