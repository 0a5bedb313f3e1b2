// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

// State is a single mutable cursor into an immutable input byte slice.
// Extractors advance it monotonically; it is never rewound across a
// successful call (TryOr rewinds it only when discarding a failed attempt).
type State struct {
	pos int
}

// NewState returns a State positioned at the start of the input.
func NewState() *State {
	return &State{}
}

// Pos returns the current cursor position.
func (s *State) Pos() int {
	return s.pos
}

// Extractor reads from input starting at st's cursor, advances the cursor
// past what it consumed on success, and returns a data error or an
// InvalidState error on failure without advancing further than it already
// did.
type Extractor[T any] func(input []byte, st *State) (T, error)
