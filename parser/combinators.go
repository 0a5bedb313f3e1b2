// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

// Pair is the result of Combine: both extractors' outputs, in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Combine sequences two extractors: evaluate a, then b, and return both
// results as a Pair. An error from either aborts the whole combination; the
// cursor is left wherever the failing extractor left it.
func Combine[A, B any](a Extractor[A], b Extractor[B]) Extractor[Pair[A, B]] {
	return func(input []byte, st *State) (Pair[A, B], error) {
		ra, err := a(input, st)
		if err != nil {
			return Pair[A, B]{}, err
		}
		rb, err := b(input, st)
		if err != nil {
			return Pair[A, B]{}, err
		}
		return Pair[A, B]{First: ra, Second: rb}, nil
	}
}

// Either is the result of TryOr: exactly one of First (if IsFirst) or
// Second was produced.
type Either[A, B any] struct {
	IsFirst bool
	First   A
	Second  B
}

// TryOr evaluates a. If a succeeds, its result is returned. If a fails with
// a data error, the cursor is rolled back to its pre-a position and b is
// evaluated instead. If a fails with an InvalidState error, it is
// propagated immediately and b is never tried — per the package doc, an
// invalid-state failure means there is nothing sensible to backtrack to.
func TryOr[A, B any](a Extractor[A], b Extractor[B]) Extractor[Either[A, B]] {
	return func(input []byte, st *State) (Either[A, B], error) {
		save := st.pos
		ra, err := a(input, st)
		if err == nil {
			return Either[A, B]{IsFirst: true, First: ra}, nil
		}
		if pe, ok := err.(*Error); ok && pe.InvalidState() {
			return Either[A, B]{}, err
		}
		st.pos = save
		rb, err := b(input, st)
		if err != nil {
			return Either[A, B]{}, err
		}
		return Either[A, B]{Second: rb}, nil
	}
}
