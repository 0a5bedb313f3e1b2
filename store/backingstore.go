// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store

import (
	"os"
	"runtime"
	"syscall"
	"unsafe"
)

// BackingStore is an opaque handle to a contiguous, anonymously-mapped
// region sized capacity*sizeof(T) bytes. Slots are uninitialised until
// written; Set and Get are raw bitwise copies with no destructor semantics.
//
// Every live BackingStore keeps its mapping alive until Close is called.
// The zero value is not usable; construct one with New.
//
// T should not hold Go pointers (strings, slices, maps, interfaces, pointer
// fields): the mapped region is invisible to the garbage collector, so a
// pointer stored there can be collected out from under the store while
// still referenced only from a slot. Prefer plain value types, or, for
// pointer-containing payloads, store a uintptr and keep the GC-visible
// owner alive elsewhere.
type BackingStore[T any] struct {
	mem      []byte
	capacity int
	elemSize uintptr
	closed   bool
}

// New requests an anonymous, read/write page mapping large enough to hold
// capacity slots of T and returns a BackingStore over it. Slot contents are
// zero-filled by the operating system but MUST be treated as uninitialised
// by the caller for any T whose zero value is not a valid starting state.
//
// New fails with *ErrAllocationFailed if the operating system refuses the
// mapping.
func New[T any](capacity int) (*BackingStore[T], error) {
	var zero T
	elemSize := unsafe.Sizeof(zero)

	size := int(elemSize) * capacity
	if size < 1 {
		// mmap(2) rejects a zero-length mapping; round up to one page so a
		// zero- or tiny-capacity store still returns a usable (if useless)
		// handle rather than a spurious allocation failure.
		size = os.Getpagesize()
	}

	mem, err := syscall.Mmap(-1, 0, size,
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_PRIVATE|syscall.MAP_ANON)
	if err != nil {
		return nil, &ErrAllocationFailed{Size: size, Err: err}
	}

	s := &BackingStore[T]{
		mem:      mem,
		capacity: capacity,
		elemSize: elemSize,
	}
	runtime.SetFinalizer(s, (*BackingStore[T]).Close)
	return s, nil
}

// Cap returns the number of T-sized slots this store holds.
func (s *BackingStore[T]) Cap() int {
	return s.capacity
}

// Set overwrites slot index with value, discarding any previous occupant
// without running destructors. The caller guarantees 0 <= index < Cap().
func (s *BackingStore[T]) Set(index int, value T) {
	*s.slot(index) = value
}

// Get produces a bitwise copy of slot index and leaves the slot's bytes
// unchanged. The caller guarantees there is a valid, not-yet-consumed T
// currently stored there.
func (s *BackingStore[T]) Get(index int) T {
	return *s.slot(index)
}

func (s *BackingStore[T]) slot(index int) *T {
	off := uintptr(index) * s.elemSize
	return (*T)(unsafe.Pointer(&s.mem[off]))
}

// Close unmaps the region. No per-slot finalisation is performed; any T
// values still occupying slots at Close time are not run through any
// cleanup. Close is idempotent.
func (s *BackingStore[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	runtime.SetFinalizer(s, nil)
	return syscall.Munmap(s.mem)
}
