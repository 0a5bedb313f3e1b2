// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue provides a fixed-capacity, single-producer/multi-consumer
// (SPMC) ring-buffer queue over a raw, page-mapped backing store.
//
// # Quick Start
//
//	sender, reader, err := queue.New[Request](256)
//	if err != nil {
//	    // capacity < 2, or the backing store could not be mapped
//	}
//	defer sender.Release()
//	defer reader.Release()
//
//	if err := sender.Send(req); err != nil {
//	    // queue.ErrQueueFull: back off or drop
//	}
//
//	req, ok := reader.Read()
//	if !ok {
//	    // queue empty
//	}
//
// # Work Distribution
//
// A single dispatcher goroutine produces; any number of worker goroutines
// consume by cloning the initial Reader:
//
//	sender, reader, _ := queue.New[Task](1024)
//
//	for range numWorkers {
//	    w := reader.Clone()
//	    go func(r *queue.Reader[Task]) {
//	        defer r.Release()
//	        for {
//	            task := r.BlockingRead()
//	            task.Execute()
//	        }
//	    }(w)
//	}
//	reader.Release() // the original handle does no further reading itself
//
//	for task := range tasks {
//	    for sender.Send(task) == queue.ErrQueueFull {
//	        runtime.Gosched()
//	    }
//	}
//
// # Capacity
//
// Capacity is exact, not rounded to a power of 2 (unlike mask-based ring
// buffers): a queue of capacity C holds at most C-1 values at once, one slot
// being sacrificed to distinguish "empty" from "full" without a separate
// counter. New returns ErrInvalidSize for capacity < 2.
//
// # Thread Safety
//
// Send must only be called from the single goroutine that owns the Sender.
// Read, BlockingRead, Available, IsReady, and Clone are safe to call from
// any number of goroutines concurrently, each through its own Reader handle
// (Readers themselves, like Senders, are not meant to be shared across
// goroutines without external synchronization — clone one per goroutine
// instead).
//
// # Resource Management
//
// The backing store behind a queue is raw mapped memory, not a Go slice:
// it is only reclaimed when every Sender/Reader handle derived from one New
// call has had Release called (reference-counted internally). Call Release
// when a handle is done, even though a finalizer is registered as a safety
// net — relying on the finalizer alone defers reclamation to an
// unpredictable GC cycle.
//
// Values still held in unread slots when the last handle releases are not
// run through any finalisation; drain the queue first if T holds external
// resources that need explicit cleanup.
package queue
