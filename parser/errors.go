// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import "fmt"

// Kind classifies a parse failure. See the package doc for the data/
// invalid-state distinction.
type Kind int

const (
	// KindOutOfBounds means an extractor tried to read past the input.
	KindOutOfBounds Kind = iota
	// KindOverflow means index arithmetic would overflow.
	KindOverflow
	// KindInvalidData means the input did not match the expected shape.
	KindInvalidData
	// KindInvalidState means the current composition cannot continue or
	// backtrack — e.g. end-of-input reached mid-pattern in Match.
	KindInvalidState
	// KindUTF means a caller-requested UTF-8 validation failed.
	KindUTF
)

func (k Kind) String() string {
	switch k {
	case KindOutOfBounds:
		return "out of bounds access"
	case KindOverflow:
		return "overflow"
	case KindInvalidData:
		return "invalid data"
	case KindInvalidState:
		return "invalid state"
	case KindUTF:
		return "utf-8 error"
	default:
		return "unknown parser error"
	}
}

// Error is the error type returned by every Extractor.
type Error struct {
	Kind Kind
	// Err is the wrapped cause, set for KindUTF.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parser: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("parser: %s", e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, parser.ErrInvalidData) (and friends) match any
// *Error of the same Kind, not just this exact value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// InvalidState reports whether this error is the unrecoverable,
// no-backtrack kind (currently always end-of-input).
func (e *Error) InvalidState() bool {
	return e.Kind == KindInvalidState
}

// Sentinel errors for use with errors.Is. UTFError instances are
// constructed per-occurrence (they wrap a concrete decode error) rather than
// exposed as a sentinel.
var (
	ErrOutOfBounds = &Error{Kind: KindOutOfBounds}
	ErrOverflow    = &Error{Kind: KindOverflow}
	ErrInvalidData = &Error{Kind: KindInvalidData}
	ErrInvalidState = &Error{Kind: KindInvalidState}
)
