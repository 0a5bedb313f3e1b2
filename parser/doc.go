// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parser provides a small set of composable, zero-copy byte-range
// extractors over a mutable cursor.
//
// An Extractor[T] reads from a shared input byte slice and a *State cursor,
// advancing the cursor past whatever it consumed and returning a borrowed
// slice (or a bool, for Match) on success. Primitive extractors —
// ReaderUntil, Peeker, ConsumerToEnd, Consumer, and Match — are composed
// with Combine (sequence two extractors, keep both results) and TryOr (try
// one, fall back to the other on a recoverable error, restoring the cursor
// first).
//
// # Error Taxonomy
//
// Errors returned by an Extractor are *Error values with one of five Kinds.
// Four are "data" errors: OutOfBoundsAccess, Overflow, InvalidData, and
// UTFError. These are recoverable — TryOr's second branch gets a chance to
// run. The fifth, InvalidState, means the current composition hit a state
// from which backtracking makes no sense (end-of-input mid-pattern, for
// Match); TryOr propagates it immediately without trying its other branch.
// This mirrors the classic PEG rule: once input has been meaningfully
// consumed toward an unrecoverable state, there is no backtrack.
//
// # Example
//
//	st := parser.NewState()
//	line, err := parser.ReaderUntil([]byte("\r\n"))(input, st)
package parser
