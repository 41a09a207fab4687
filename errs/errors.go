// Package errs defines sentinel errors shared across the tsrepr packages.
//
// Two base sentinels form the error taxonomy:
//
//   - ErrInvalidArgument: a parameter is outside its allowed domain
//     (non-positive order/pieces/block size/frequency, a window exceeding
//     the sequence length, or an empty input where data is required).
//   - ErrNonFiniteInput: the input sequence contains NaN or ±Inf. The
//     transforms reject such inputs up front instead of propagating
//     undefined comparisons through the encoders.
//
// The remaining sentinels are specific refinements created by wrapping a
// base sentinel, so errors.Is matches both levels:
//
//	_, err := smooth.SMA(x, 0)
//	errors.Is(err, errs.ErrInvalidOrder)    // true
//	errors.Is(err, errs.ErrInvalidArgument) // true
//
// Call sites add context the same way, wrapping a sentinel with
// fmt.Errorf("%w: detail", ...). All failures are reported synchronously at
// the point of violation and no partial results are returned.
package errs

import (
	"errors"
	"fmt"
)

// Base sentinels. Every error returned by this module wraps exactly one of
// these two.
var (
	// ErrInvalidArgument indicates a parameter outside its allowed domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNonFiniteInput indicates a NaN or infinite value in an input
	// sequence.
	ErrNonFiniteInput = errors.New("non-finite input")
)

// Specific sentinels, each wrapping a base sentinel.
var (
	// ErrEmptyInput indicates an empty sequence where at least one sample is
	// required.
	ErrEmptyInput = fmt.Errorf("%w: empty input sequence", ErrInvalidArgument)

	// ErrShortInput indicates a sequence with too few samples for the
	// requested transform.
	ErrShortInput = fmt.Errorf("%w: input sequence too short", ErrInvalidArgument)

	// ErrInvalidOrder indicates a moving average order outside [1, n).
	ErrInvalidOrder = fmt.Errorf("%w: invalid moving average order", ErrInvalidArgument)

	// ErrInvalidPieces indicates a non-positive piece count, or a piece count
	// that degenerates pieces to zero length.
	ErrInvalidPieces = fmt.Errorf("%w: invalid piece count", ErrInvalidArgument)

	// ErrInvalidBlockSize indicates a non-positive block size.
	ErrInvalidBlockSize = fmt.Errorf("%w: invalid block size", ErrInvalidArgument)

	// ErrInvalidFrequency indicates a non-positive seasonal frequency, or a
	// frequency exceeding the sequence length.
	ErrInvalidFrequency = fmt.Errorf("%w: invalid seasonal frequency", ErrInvalidArgument)

	// ErrZeroRange indicates a normalization over a constant sequence whose
	// scale parameter (standard deviation or value range) is zero.
	ErrZeroRange = fmt.Errorf("%w: zero-range input", ErrInvalidArgument)
)
