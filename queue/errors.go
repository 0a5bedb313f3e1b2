// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrInvalidSize is returned by New when capacity < 2: one slot is always
// sacrificed to disambiguate an empty ring from a full one, so a queue needs
// at least two slots to ever hold anything.
var ErrInvalidSize = errors.New("queue: capacity must be >= 2")

// ErrMemoryAllocationFailed is returned by New when the backing store could
// not be mapped (for example, an absurd capacity). It wraps the underlying
// *store.ErrAllocationFailed.
var ErrMemoryAllocationFailed = errors.New("queue: backing store allocation failed")

// queueFullError is a control-flow signal, not a failure: the value was not
// stored, and the caller may retry, back off, or drop it. It also satisfies
// errors.Is(err, iox.ErrWouldBlock), so code already driving retries with
// iox.Backoff for other I/O in the same program can treat a full queue the
// same way.
type queueFullError struct{}

func (queueFullError) Error() string { return "queue: full" }

func (queueFullError) Is(target error) bool {
	return target == iox.ErrWouldBlock
}

// ErrQueueFull is returned by Sender.Send when the ring has no free slot.
var ErrQueueFull error = queueFullError{}

// IsWouldBlock reports whether err indicates the operation would block,
// delegating to [iox.IsWouldBlock] so ErrQueueFull is recognised alongside
// other iox-compatible would-block signals.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err) || errors.Is(err, ErrQueueFull)
}
