package encoding

import "github.com/arloliu/tsrepr/errs"

// Run is a maximal contiguous repetition of one value, recorded as the
// value and the number of consecutive occurrences (always >= 1).
type Run[T comparable] struct {
	Value  T
	Length int
}

// RunLength computes the run-length encoding of x in a single left-to-right
// scan.
//
// The result satisfies three invariants consumed by the feature extractors:
// expanding each run reproduces x exactly, run lengths sum to len(x), and
// no two adjacent runs share a value. Values are compared with ==, so two
// floating-point samples extend the same run only when they match
// bit-for-bit; no tolerance is applied.
//
// Returns errs.ErrEmptyInput if x is empty. Time is O(n); extra space is
// O(k) for k runs.
func RunLength[T comparable](x []T) ([]Run[T], error) {
	if len(x) == 0 {
		return nil, errs.ErrEmptyInput
	}

	runs := make([]Run[T], 0, 1)
	cur := Run[T]{Value: x[0], Length: 1}

	for _, v := range x[1:] {
		if v == cur.Value {
			cur.Length++
			continue
		}
		runs = append(runs, cur)
		cur = Run[T]{Value: v, Length: 1}
	}

	return append(runs, cur), nil
}

// Expand reconstructs the sequence encoded by runs, repeating each run's
// value Length times in order. Expand(RunLength(x)) == x for any non-empty
// x.
func Expand[T comparable](runs []Run[T]) []T {
	total := 0
	for _, r := range runs {
		total += r.Length
	}

	out := make([]T, 0, total)
	for _, r := range runs {
		for k := 0; k < r.Length; k++ {
			out = append(out, r.Value)
		}
	}

	return out
}
