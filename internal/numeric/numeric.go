// Package numeric provides input precondition checks shared by the public
// transform packages.
package numeric

import (
	"fmt"
	"math"

	"github.com/arloliu/tsrepr/errs"
)

// CheckFinite returns an error wrapping errs.ErrNonFiniteInput if values
// contains a NaN or infinite sample, and nil otherwise.
//
// Every public transform taking a raw sequence runs this check after its
// parameter-domain validation and before any computation, so a rejected
// input never produces a partial result.
func CheckFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value %v at index %d", errs.ErrNonFiniteInput, v, i)
		}
	}

	return nil
}
