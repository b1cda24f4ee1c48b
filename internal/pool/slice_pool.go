package pool

import "sync"

// float64SlicePool reuses the scratch slices the grid scan fills with model
// predictions. Each fit borrows one slice per worker, so batch runs over
// many tables recycle a handful of slices instead of allocating per fit.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of exactly the given length
// from the pool, growing it when the pooled capacity is too small. The
// contents are unspecified; callers must overwrite before reading.
//
// The returned cleanup function puts the slice back and must be called
// (typically with defer) once the slice is no longer referenced.
//
// Example:
//
//	predicted, cleanup := pool.GetFloat64Slice(len(observations))
//	defer cleanup()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}
