package bump

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent
// access. All operations are thread-safe but come with the overhead of
// mutex locking. The exclusivity contract still applies: no other code
// may touch the backing buffer while the wrapper holds it, and a value
// handed out by one goroutine must not be read while another goroutine
// has an allocation in flight.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena bound to buf.
func NewSafeArena(buf []byte) *SafeArena {
	return &SafeArena{a: New(buf)}
}

// AllocBytes thread-safely carves n raw bytes off the arena.
func (s *SafeArena) AllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely writes v into the arena and returns a pointer
// to the stored copy.
func SafeAlloc[T any](s *SafeArena, v T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc(s.a, v)
}

// SafeAllocFromFunc thread-safely allocates a contiguous array of n
// elements, filling slot i with f(i).
func SafeAllocFromFunc[T any](s *SafeArena, n int, f func(int) T) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocFromFunc(s.a, n, f)
}

// SafeAllocSlice thread-safely copies src into the arena.
func SafeAllocSlice[T any](s *SafeArena, src []T) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice(s.a, src)
}
