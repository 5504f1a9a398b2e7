package bump

// Remaining returns the number of unconsumed bytes left in the arena.
func (a *Arena) Remaining() int {
	return len(a.mem)
}

// Capacity returns the length of the buffer the arena was bound to.
func (a *Arena) Capacity() int {
	return a.cap
}

// SizeInUse returns the total number of bytes consumed so far. This
// includes alignment padding, whether or not the allocation that
// skipped it ultimately succeeded.
func (a *Arena) SizeInUse() int {
	return a.cap - len(a.mem)
}

// Utilization returns the ratio of consumed bytes to buffer capacity
// (0.0 to 1.0). Returns 0.0 for an empty buffer.
func (a *Arena) Utilization() float64 {
	if a.cap == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(a.cap)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Remaining:   a.Remaining(),
		Capacity:    a.Capacity(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes consumed, padding included
	Remaining   int     // Bytes still available
	Capacity    int     // Backing buffer length
	Utilization float64 // Ratio of consumed to capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the total number of bytes consumed.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Remaining thread-safely returns the number of unconsumed bytes.
func (s *SafeArena) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Remaining()
}

// Capacity thread-safely returns the backing buffer length.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of consumed bytes to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
