// Package pool provides pooled scratch slices for transforms that partition
// run lengths repeatedly inside a loop.
package pool

import "sync"

var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a zero-length float64 slice with at least the
// requested capacity from the pool.
//
// The slice is meant to be grown with append and handed to a consumer that
// does not retain it. The caller must call the returned cleanup function
// (typically with defer) once the slice is no longer referenced; the slice
// must not be used afterwards.
//
// Example:
//
//	ones, done := pool.GetFloat64Slice(len(runs))
//	defer done()
//	for _, r := range runs {
//	    ones = append(ones, float64(r.Length))
//	}
func GetFloat64Slice(capacity int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := *ptr

	if cap(slice) < capacity {
		slice = make([]float64, 0, capacity)
		*ptr = slice
	}

	slice = slice[:0]

	return slice, func() { float64SlicePool.Put(ptr) }
}
