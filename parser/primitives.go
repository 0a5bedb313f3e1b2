// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import "bytes"

// ReaderUntil scans forward until the cursor's suffix starts with pattern
// and returns the slice between the entry position and the match. On
// end-of-input without a match, it returns what was accumulated rather than
// failing — this lets callers treat a trailing body (no closing delimiter)
// naturally instead of as an error.
func ReaderUntil(pattern []byte) Extractor[[]byte] {
	return func(input []byte, st *State) ([]byte, error) {
		start := st.pos
		n := len(input)
		for st.pos < n && !bytes.HasPrefix(input[st.pos:], pattern) {
			st.pos++
		}
		return input[start:st.pos], nil
	}
}

// Peeker returns the next n bytes and advances the cursor by n. It fails
// with KindOutOfBounds if fewer than n bytes remain.
func Peeker(n int) Extractor[[]byte] {
	return func(input []byte, st *State) ([]byte, error) {
		end := st.pos + n
		if end < st.pos {
			return nil, &Error{Kind: KindOverflow}
		}
		if end > len(input) {
			return nil, &Error{Kind: KindOutOfBounds}
		}
		res := input[st.pos:end]
		st.pos = end
		return res, nil
	}
}

// ConsumerToEnd returns the remaining suffix of the input and sets the
// cursor to the end.
func ConsumerToEnd() Extractor[[]byte] {
	return func(input []byte, st *State) ([]byte, error) {
		res := input[st.pos:]
		st.pos = len(input)
		return res, nil
	}
}

// Consumer repeatedly invokes predicate with the remaining input, advancing
// the cursor by whatever size it returns, and stops when predicate returns
// 0. It returns the whole consumed range. A non-nil error from predicate
// aborts immediately.
func Consumer(predicate func(remaining []byte) (int, error)) Extractor[[]byte] {
	return func(input []byte, st *State) ([]byte, error) {
		start := st.pos
		for {
			n, err := predicate(input[st.pos:])
			if err != nil {
				return nil, err
			}
			if n == 0 {
				break
			}
			st.pos += n
		}
		return input[start:st.pos], nil
	}
}

// Match reports whether the cursor's suffix starts with pattern, without
// advancing the cursor. It fails with KindInvalidState if fewer than
// len(pattern) bytes remain — there is no partial match to report and no
// useful state to backtrack to.
func Match(pattern []byte) Extractor[bool] {
	return func(input []byte, st *State) (bool, error) {
		if len(input)-st.pos < len(pattern) {
			return false, &Error{Kind: KindInvalidState}
		}
		return bytes.Equal(input[st.pos:st.pos+len(pattern)], pattern), nil
	}
}
