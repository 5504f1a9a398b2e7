package bump

import "unsafe"

// zeroSized is the address handed out for zero-size allocations, in the
// manner of the runtime's zerobase. Zero-size values occupy no buffer
// space, but the returned pointer must still be non-nil.
var zeroSized struct{}

// Alloc writes v into the arena and returns a pointer to the stored
// copy. The store is placed at the next address that satisfies T's
// alignment; padding bytes skipped to get there are consumed
// permanently, even if the subsequent size check fails. The returned
// pointer is valid as long as the backing buffer is.
func Alloc[T any](a *Arena, v T) (*T, error) {
	if err := a.skipPadding(unsafe.Alignof(v)); err != nil {
		return nil, err
	}
	return allocAligned(a, v)
}

// allocAligned stores v at the front of the remaining view.
// The view must already be aligned for T.
func allocAligned[T any](a *Arena, v T) (*T, error) {
	size := unsafe.Sizeof(v)
	if size == 0 {
		return (*T)(unsafe.Pointer(&zeroSized)), nil
	}
	if size > uintptr(len(a.mem)) {
		return nil, ErrOutOfMemory
	}
	region := a.take(int(size))
	p := (*T)(unsafe.Pointer(&region[0]))
	*p = v
	return p, nil
}

// AllocFromFunc allocates a contiguous array of n elements of type T,
// filling slot i with f(i). Alignment padding is applied once, before
// the first element; elements are packed with no padding between them.
// The capacity check is atomic: if padding plus n elements do not fit,
// the call fails with ErrOutOfMemory before consuming or writing
// anything. Returns nil, nil if n <= 0.
func AllocFromFunc[T any](a *Arena, n int, f func(int) T) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		out := unsafe.Slice((*T)(unsafe.Pointer(&zeroSized)), n)
		for i := range out {
			out[i] = f(i)
		}
		return out, nil
	}
	region, err := a.reserve(size, unsafe.Alignof(zero), n)
	if err != nil {
		return nil, err
	}
	out := unsafe.Slice((*T)(unsafe.Pointer(&region[0])), n)
	for i := range out {
		out[i] = f(i)
	}
	return out, nil
}

// AllocSlice copies src into the arena and returns the arena-backed
// copy. Like AllocFromFunc, the capacity check happens before anything
// is consumed. Returns nil, nil for an empty src.
func AllocSlice[T any](a *Arena, src []T) ([]T, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return unsafe.Slice((*T)(unsafe.Pointer(&zeroSized)), len(src)), nil
	}
	region, err := a.reserve(size, unsafe.Alignof(zero), len(src))
	if err != nil {
		return nil, err
	}
	out := unsafe.Slice((*T)(unsafe.Pointer(&region[0])), len(src))
	copy(out, src)
	return out, nil
}

// reserve consumes padding for align plus n*size bytes in one step,
// checking the whole amount up front so a failure consumes nothing.
// Element size is a multiple of alignment for every Go type, so only
// the first element needs padding.
func (a *Arena) reserve(size, align uintptr, n int) ([]byte, error) {
	pad := uintptr(a.padding(align))
	total := size * uintptr(n)
	if size != 0 && total/size != uintptr(n) { // n*size overflowed
		return nil, ErrOutOfMemory
	}
	if pad+total < pad || pad+total > uintptr(len(a.mem)) {
		return nil, ErrOutOfMemory
	}
	a.take(int(pad))
	return a.take(int(total)), nil
}
