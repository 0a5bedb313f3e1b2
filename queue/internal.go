// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"code.hybscloud.com/atomix"

	"github.com/nightmared/webserv/store"
)

// pad is cache line padding to prevent false sharing between the write and
// read indices, which are touched by different goroutines.
type pad [64]byte

// internal is the state shared by exactly one Sender and any number of
// Reader handles derived from it. It is never copied; handles hold a
// pointer to one internal value for their entire lifetime.
//
// capacity is immutable after construction. writeIndex is written only by
// the sender; readIndex is advanced by readers via a compare-and-swap loop
// so that two concurrent readers can never claim the same slot (see
// Reader.Read). Both indices are kept in [0, capacity) at all times — unlike
// a power-of-2 mask ring, wraparound here is an explicit modulo by
// capacity, since capacity is caller-chosen and not required to be a power
// of 2.
type internal[T any] struct {
	_          pad
	writeIndex atomix.Uint64
	_          pad
	readIndex  atomix.Uint64
	_          pad
	refs       atomix.Int64
	capacity   int
	store      *store.BackingStore[T]
}

// dist returns (writeIndex - readIndex) mod capacity: the number of slots
// currently holding a published, not-yet-consumed value.
func (in *internal[T]) dist() int {
	w := in.writeIndex.LoadAcquire()
	r := in.readIndex.LoadAcquire()
	if w < r {
		return in.capacity + int(w) - int(r)
	}
	return int(w) - int(r)
}

// acquire increments the shared reference count. Called whenever a new
// handle (a cloned Reader, or the sender handing out a fresh Reader) starts
// sharing this internal state.
func (in *internal[T]) acquire() {
	in.refs.AddAcqRel(1)
}

// release decrements the shared reference count and unmaps the backing
// store once the last handle has released its reference.
func (in *internal[T]) release() {
	if in.refs.AddAcqRel(-1) == 0 {
		_ = in.store.Close()
	}
}
