package feature

import (
	"github.com/arloliu/tsrepr/encoding"
)

// ClipLen is the length of the vector returned by Clip.
const ClipLen = 8

// Clip computes the 8-element level feature vector of x from the runs of
// its bit-level clipping encoding:
//
//	[0] longest run of 1s (0 if no 1s)
//	[1] total length of runs of 1s (0 if no 1s)
//	[2] longest run of 0s (0 if no 0s)
//	[3] number of level changes (runs - 1)
//	[4] length of the first run if it is a 0-run, else 0
//	[5] length of the last run if it is a 0-run, else 0
//	[6] length of the first run if it is a 1-run, else 0
//	[7] length of the last run if it is a 1-run, else 0
//
// When the encoding is constant there is a single run: the first and last
// run coincide, so elements 4 and 5 (or 6 and 7) both report that run's
// length. That is the defined behavior, not an anomaly.
//
// Returns errs.ErrEmptyInput if x is empty and errs.ErrNonFiniteInput if x
// contains NaN or ±Inf.
func Clip(x []float64) ([]float64, error) {
	bits, err := encoding.LevelEncode(x)
	if err != nil {
		return nil, err
	}

	runs, err := encoding.RunLength(bits)
	if err != nil {
		return nil, err
	}

	repr := make([]float64, ClipLen)
	repr[3] = float64(len(runs) - 1)

	first := runs[0]
	if first.Value == 0 {
		repr[4] = float64(first.Length)
	} else {
		repr[6] = float64(first.Length)
	}

	last := runs[len(runs)-1]
	if last.Value == 0 {
		repr[5] = float64(last.Length)
	} else {
		repr[7] = float64(last.Length)
	}

	// Single streaming pass over the runs: longest 1-run, total 1-run
	// length, longest 0-run.
	for _, r := range runs {
		length := float64(r.Length)
		if r.Value == 1 {
			if length > repr[0] {
				repr[0] = length
			}
			repr[1] += length
		} else if length > repr[2] {
			repr[2] = length
		}
	}

	return repr, nil
}
