// Package bump implements a fixed-buffer bump allocator for Go.
//
// # Overview
//
// A bump allocator carves typed values out of a single caller-supplied
// byte buffer by advancing a cursor. It never frees individual values
// and never grows the buffer, which makes allocation deterministic and
// O(1) with no fragmentation bookkeeping. This is particularly useful
// for:
//
//   - Pre-sized scratch buffers with a hard memory ceiling
//   - Embedded-style code paths that must not touch the heap
//   - Reducing garbage collection pressure for short-lived objects
//   - Predictable failure (a plain error) instead of unbounded growth
//
// # Basic Usage
//
//	buf := make([]byte, 4096)
//	a := bump.New(buf)
//
//	// Allocate a typed value
//	ptr, err := bump.Alloc(a, MyStruct{ID: 7})
//
//	// Allocate a contiguous array from a generator
//	squares, err := bump.AllocFromFunc(a, 10, func(i int) int { return i * i })
//
//	// Allocate raw bytes
//	scratch, err := a.AllocBytes(256)
//
// Every allocation either succeeds immediately or fails with
// ErrOutOfMemory; there is no other failure mode.
//
// # Memory Layout
//
// Values are placed at the lowest remaining offset that satisfies the
// type's alignment. Padding bytes skipped to reach that offset are
// consumed permanently. Array elements are packed back to back with no
// inter-element padding. Raw byte allocations are not aligned at all,
// so consecutive AllocBytes calls produce adjacent regions.
//
// # Thread Safety
//
// Arena is confined to a single owner at a time. For concurrent access,
// use SafeArena:
//
//	s := bump.NewSafeArena(buf)
//	ptr, err := bump.SafeAlloc(s, 42)
//
// # Important Notes
//
//   - The arena borrows the buffer; the caller keeps ownership and must
//     keep it alive for as long as any allocated value is in use.
//   - Allocated values must not contain Go pointers: the backing buffer
//     is pointerless memory, so the garbage collector will not see
//     references stored in it.
//   - There is no reset and no per-value free. When the buffer is
//     exhausted, the arena stays exhausted.
//   - A failed Alloc may still consume the alignment padding it skipped
//     before discovering the value itself does not fit.
package bump
