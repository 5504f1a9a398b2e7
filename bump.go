// Package bump: core arena over a caller-supplied buffer.
// Typical usage: size a buffer once, bind an Arena to it, allocate until
// the buffer runs out. There is no cleanup step; the buffer is the
// caller's to reuse or drop.
package bump

import (
	"errors"
	"unsafe"
)

// ErrOutOfMemory is returned when the remaining buffer is too small for
// a request, including any alignment padding the request needs.
var ErrOutOfMemory = errors.New("bump: out of memory")

// Arena is a bump allocator over a fixed, externally owned byte buffer.
// It tracks only the unconsumed suffix of the buffer; everything before
// that suffix has been handed out and is never touched again. Not
// goroutine-safe. Use SafeArena for concurrent access.
type Arena struct {
	mem []byte // remaining view; shrinks monotonically, never reallocated
	cap int    // original buffer length
}

// New creates an Arena bound to buf. The arena borrows buf for its
// lifetime: no other code should read or write buf while the arena and
// the values allocated from it are in use. Never fails; a nil or empty
// buf yields an arena that is already exhausted.
func New(buf []byte) *Arena {
	return &Arena{mem: buf, cap: len(buf)}
}

// AllocBytes carves n raw bytes off the front of the remaining view and
// returns them. Byte regions are not aligned, so consecutive calls
// return adjacent regions. Returns nil, nil if n <= 0 and
// ErrOutOfMemory if fewer than n bytes remain.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	if n > len(a.mem) {
		return nil, ErrOutOfMemory
	}
	return a.take(n), nil
}

// take splits n bytes off the front of the remaining view.
// Callers must have checked that n fits.
func (a *Arena) take(n int) []byte {
	region := a.mem[:n:n]
	a.mem = a.mem[n:]
	return region
}

// padding reports how many bytes must be skipped so the remaining
// view's start address is a multiple of align. The backing buffer's
// base address is arbitrary, so this is computed from the live address,
// not from an offset into the original buffer.
func (a *Arena) padding(align uintptr) int {
	if align <= 1 || len(a.mem) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&a.mem[0]))
	return int((addr+align-1)&^(align-1) - addr)
}

// skipPadding consumes the padding bytes for align. The skipped bytes
// are wasted permanently; they are never returned to the pool. Fails
// with ErrOutOfMemory when the view is shorter than the padding itself.
func (a *Arena) skipPadding(align uintptr) error {
	pad := a.padding(align)
	if pad > len(a.mem) {
		return ErrOutOfMemory
	}
	a.take(pad)
	return nil
}
