// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package store provides a raw, page-mapped backing array independent of
// the Go allocator.
//
// A BackingStore[T] is an anonymous, read/write memory mapping sized to hold
// a fixed number of T-sized slots. It is deliberately "raw": slots are
// uninitialised until written, Set overwrites a slot without running any
// destructor on the previous occupant, and Get returns a bitwise copy
// without clearing the slot. Bounds checking is the caller's responsibility;
// BackingStore itself only checks that the mapping was created successfully.
//
// # Quick Start
//
//	s, err := store.New[Event](1024)
//	if err != nil {
//	    // s.Cap() slots could not be mapped
//	}
//	defer s.Close()
//
//	s.Set(0, Event{ID: 1})
//	ev := s.Get(0)
//
// # Why raw and not a slice
//
// A plain Go slice is a fine backing array for most ring buffers, but it is
// owned and scanned by the garbage collector. The queue built on top of this
// package (see the sibling queue package) transfers ownership of a slot's
// contents from producer to consumer purely by moving an index — no Go value
// is ever "dropped" in the Rust sense. Forcing GC-managed, destructor-bearing
// semantics into that protocol would either double-finalize or leak
// resources under the index-only discipline; BackingStore instead hands raw
// bitwise copy semantics to its caller and lets the layer that understands
// the ownership protocol (the queue) decide what, if anything, to do with a
// slot's previous contents.
//
// # Lifecycle
//
// New maps len(T)*capacity bytes, rounded up to a whole number of OS pages.
// Close unmaps the region. Using a BackingStore after Close is undefined
// behavior, just like using a slice after its backing array has been freed
// would be if Go allowed that.
//
// # Thread Safety
//
// BackingStore provides no synchronization of its own: Set and Get are raw
// memory accesses. Callers needing cross-goroutine visibility must establish
// their own happens-before edges (the queue package does this with atomic
// indices) before relying on a slot's contents.
package store
