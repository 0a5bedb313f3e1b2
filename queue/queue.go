// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"fmt"
	"runtime"
	"time"

	"code.hybscloud.com/spin"

	"github.com/nightmared/webserv/store"
)

// Sender is the exclusive producer handle for a queue. Exactly one Sender
// exists for the lifetime of a queue; it is created by New and is not
// cloneable.
type Sender[T any] struct {
	in       *internal[T]
	released bool
}

// Reader is a consumer handle for a queue. Any number of Readers may exist
// concurrently, on any goroutine; Reader is cloneable via Clone.
type Reader[T any] struct {
	in       *internal[T]
	released bool
}

// New creates a queue of the given capacity and returns its Sender and an
// initial Reader.
//
// New fails with ErrInvalidSize if capacity < 2, or ErrMemoryAllocationFailed
// if the backing store cannot be mapped.
func New[T any](capacity int) (*Sender[T], *Reader[T], error) {
	if capacity < 2 {
		return nil, nil, ErrInvalidSize
	}

	bs, err := store.New[T](capacity)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrMemoryAllocationFailed, err)
	}

	in := &internal[T]{
		capacity: capacity,
		store:    bs,
	}
	// One reference for the sender, one for the reader returned alongside it.
	in.refs.StoreRelaxed(2)

	sender := &Sender[T]{in: in}
	reader := &Reader[T]{in: in}
	runtime.SetFinalizer(sender, (*Sender[T]).Release)
	runtime.SetFinalizer(reader, (*Reader[T]).Release)
	return sender, reader, nil
}

// Send adds value to the queue. Returns ErrQueueFull if the queue is full;
// value is discarded in that case, not stored.
func (s *Sender[T]) Send(value T) error {
	in := s.in
	write := in.writeIndex.LoadRelaxed()
	read := in.readIndex.LoadAcquire()

	var dist uint64
	if write < read {
		dist = uint64(in.capacity) + write - read
	} else {
		dist = write - read
	}
	if dist == uint64(in.capacity-1) {
		return ErrQueueFull
	}

	in.store.Set(int(write), value)

	next := write + 1
	if next == uint64(in.capacity) {
		next = 0
	}
	in.writeIndex.StoreRelease(next)
	return nil
}

// NewReader creates another Reader sharing this queue's state.
func (s *Sender[T]) NewReader() *Reader[T] {
	s.in.acquire()
	r := &Reader[T]{in: s.in}
	runtime.SetFinalizer(r, (*Reader[T]).Release)
	return r
}

// Release drops this Sender's reference to the shared queue state, unmapping
// the backing store once every handle derived from the same New call has
// released. Release is idempotent.
func (s *Sender[T]) Release() {
	if s.released {
		return
	}
	s.released = true
	runtime.SetFinalizer(s, nil)
	s.in.release()
}

// Clone returns a new Reader sharing the same underlying queue.
func (r *Reader[T]) Clone() *Reader[T] {
	r.in.acquire()
	c := &Reader[T]{in: r.in}
	runtime.SetFinalizer(c, (*Reader[T]).Release)
	return c
}

// Read removes and returns the oldest unread value. ok is false if the
// queue is currently empty.
//
// Read copies the slot at the shared read index out and then claims it with
// a compare-and-swap on that index, retrying on a lost race, so that
// concurrent Readers never both return the same slot — this is the fix
// spec.md §9 calls for relative to a plain load-then-store advance.
func (r *Reader[T]) Read() (T, bool) {
	in := r.in
	for {
		read := in.readIndex.LoadAcquire()
		write := in.writeIndex.LoadAcquire()

		var dist uint64
		if write < read {
			dist = uint64(in.capacity) + write - read
		} else {
			dist = write - read
		}
		if dist == 0 {
			var zero T
			return zero, false
		}

		// Copy out before attempting to claim: if the claim below succeeds,
		// readIndex had not advanced past this slot during the copy, so the
		// producer had not been told the slot is free and the copy cannot
		// have observed an in-flight overwrite. A copy taken before a lost
		// race is discarded.
		val := in.store.Get(int(read))

		next := read + 1
		if next == uint64(in.capacity) {
			next = 0
		}
		if in.readIndex.CompareAndSwapAcqRel(read, next) {
			return val, true
		}
		// Another reader claimed this slot first; retry against the new
		// read index.
	}
}

// BlockingRead loops until a value is available, using an escalating
// back-off: roughly 50 busy attempts, then sleeps of 35µs (next 10
// attempts), 80µs (next 90), 250µs (next 400), and 500µs thereafter. There
// is no cancellation; wrap with a timeout at the call site if one is needed.
func (r *Reader[T]) BlockingRead() T {
	sw := spin.Wait{}
	for i := 0; i < 50; i++ {
		if v, ok := r.Read(); ok {
			return v
		}
		sw.Once()
	}

	count := 0
	for {
		var dur time.Duration
		switch {
		case count < 10:
			dur = 35 * time.Microsecond
		case count < 100:
			dur = 80 * time.Microsecond
		case count < 500:
			dur = 250 * time.Microsecond
		default:
			dur = 500 * time.Microsecond
		}
		time.Sleep(dur)
		if v, ok := r.Read(); ok {
			return v
		}
		count++
	}
}

// Available returns the number of values currently readable.
func (r *Reader[T]) Available() int {
	return r.in.dist()
}

// IsReady reports whether the next Read call would return a value.
func (r *Reader[T]) IsReady() bool {
	return r.Available() > 0
}

// Release drops this Reader's reference to the shared queue state, unmapping
// the backing store once every handle derived from the same New call has
// released. Release is idempotent.
func (r *Reader[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	runtime.SetFinalizer(r, nil)
	r.in.release()
}
