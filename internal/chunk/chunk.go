// Package chunk implements the sub-sequence selection policies used by the
// representation transforms.
//
// Each policy gives a name to a boundary rule that would otherwise be
// re-derived from loop bounds at every call site:
//
//   - Blocks: fixed-size contiguous blocks with a possibly-shorter final
//     block (piecewise aggregation).
//   - Pieces: a fixed number of equal-size contiguous pieces, silently
//     discarding any trailing remainder (piecewise feature extraction).
//   - Phases: strided per-phase collections bounded by the number of
//     complete cycles (seasonal profiling).
//
// Callers are responsible for parameter validation; the functions here
// assume size, count and freq are positive.
package chunk

// Blocks splits x into contiguous blocks of exactly size samples each, plus
// one shorter final block holding the len(x) % size remaining samples when
// the length is not evenly divisible. The final block is never dropped.
//
// The returned blocks are subslices of x and share its backing array.
func Blocks(x []float64, size int) [][]float64 {
	n := len(x)
	count := n / size
	if n%size != 0 {
		count++
	}

	blocks := make([][]float64, 0, count)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		blocks = append(blocks, x[start:end])
	}

	return blocks
}

// Pieces splits x into exactly count contiguous pieces of len(x)/count
// samples each, starting at index 0. Any trailing remainder beyond
// count*(len(x)/count) is discarded and never forms an extra piece.
//
// Returns nil if len(x)/count is zero. The returned pieces are subslices of
// x and share its backing array.
func Pieces(x []float64, count int) [][]float64 {
	size := len(x) / count
	if size == 0 {
		return nil
	}

	pieces := make([][]float64, count)
	for i := 0; i < count; i++ {
		pieces[i] = x[i*size : (i+1)*size]
	}

	return pieces
}

// Phases collects the per-phase samples of x for a repeating cycle of length
// freq. Phase i holds x[i], x[i+freq], x[i+2*freq], ... limited to
// len(x)/freq occurrences, so samples belonging to an incomplete trailing
// cycle are excluded from every phase, including phases whose index inside
// that partial cycle exists.
//
// Returns nil if freq > len(x) (no complete cycle). The returned phase
// slices are freshly allocated copies since the collection is strided.
func Phases(x []float64, freq int) [][]float64 {
	cycles := len(x) / freq
	if cycles == 0 {
		return nil
	}

	phases := make([][]float64, freq)
	for i := 0; i < freq; i++ {
		phase := make([]float64, cycles)
		for j := 0; j < cycles; j++ {
			phase[j] = x[j*freq+i]
		}
		phases[i] = phase
	}

	return phases
}
