// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/nightmared/webserv/parser"
)

func TestReaderUntilFindsPattern(t *testing.T) {
	input := []byte("GET / HTTP/1.1")
	st := parser.NewState()

	got, err := parser.ReaderUntil([]byte(" "))(input, st)
	if err != nil {
		t.Fatalf("ReaderUntil: %v", err)
	}
	if string(got) != "GET" {
		t.Fatalf("ReaderUntil: got %q, want %q", got, "GET")
	}
	if st.Pos() != 3 {
		t.Fatalf("Pos after ReaderUntil: got %d, want 3", st.Pos())
	}
}

func TestReaderUntilReturnsAccumulatedOnEOF(t *testing.T) {
	input := []byte("no delimiter here")
	st := parser.NewState()

	got, err := parser.ReaderUntil([]byte("\r\n"))(input, st)
	if err != nil {
		t.Fatalf("ReaderUntil at EOF must not error, got: %v", err)
	}
	if string(got) != string(input) {
		t.Fatalf("ReaderUntil at EOF: got %q, want %q", got, input)
	}
}

func TestReaderUntilConcatenationInvariant(t *testing.T) {
	pattern := []byte("\r\n")
	input := []byte("header-line\r\nbody")
	st := parser.NewState()

	before, err := parser.ReaderUntil(pattern)(input, st)
	if err != nil {
		t.Fatalf("ReaderUntil: %v", err)
	}
	consumedPattern, err := parser.Peeker(len(pattern))(input, st)
	if err != nil {
		t.Fatalf("Peeker: %v", err)
	}

	got := append(append([]byte{}, before...), consumedPattern...)
	want := input[:len(before)+len(pattern)]
	if !bytes.Equal(got, want) {
		t.Fatalf("concatenation: got %q, want %q", got, want)
	}
}

func TestPeekerComposesAdditively(t *testing.T) {
	input := []byte("0123456789")

	st1 := parser.NewState()
	a, err := parser.Peeker(3)(input, st1)
	if err != nil {
		t.Fatalf("Peeker(3): %v", err)
	}
	b, err := parser.Peeker(4)(input, st1)
	if err != nil {
		t.Fatalf("Peeker(4): %v", err)
	}

	st2 := parser.NewState()
	combined, err := parser.Peeker(7)(input, st2)
	if err != nil {
		t.Fatalf("Peeker(7): %v", err)
	}

	gotSeen := append(append([]byte{}, a...), b...)
	if !bytes.Equal(gotSeen, combined) {
		t.Fatalf("Peeker(3)+Peeker(4): got %q, want %q", gotSeen, combined)
	}
	if st1.Pos() != st2.Pos() {
		t.Fatalf("cursor: got %d, want %d", st1.Pos(), st2.Pos())
	}
}

func TestPeekerOutOfBounds(t *testing.T) {
	input := []byte("ab")
	st := parser.NewState()
	if _, err := parser.Peeker(5)(input, st); !errors.Is(err, parser.ErrOutOfBounds) {
		t.Fatalf("Peeker(5) on 2-byte input: got %v, want ErrOutOfBounds", err)
	}
}

func TestConsumerToEndConsumesRemainder(t *testing.T) {
	input := []byte("abcdef")
	st := parser.NewState()
	parser.Peeker(2)(input, st)

	rest, err := parser.ConsumerToEnd()(input, st)
	if err != nil {
		t.Fatalf("ConsumerToEnd: %v", err)
	}
	if string(rest) != "cdef" {
		t.Fatalf("ConsumerToEnd: got %q, want %q", rest, "cdef")
	}
	if st.Pos() != len(input) {
		t.Fatalf("Pos after ConsumerToEnd: got %d, want %d", st.Pos(), len(input))
	}
}

func TestConsumerStopsAtZero(t *testing.T) {
	input := []byte("aaabbb")
	isA := func(b []byte) (int, error) {
		if len(b) > 0 && b[0] == 'a' {
			return 1, nil
		}
		return 0, nil
	}
	st := parser.NewState()
	got, err := parser.Consumer(isA)(input, st)
	if err != nil {
		t.Fatalf("Consumer: %v", err)
	}
	if string(got) != "aaa" {
		t.Fatalf("Consumer: got %q, want %q", got, "aaa")
	}
}

func TestMatchDoesNotAdvance(t *testing.T) {
	input := []byte("HTTP/1.1\r\n")
	st := parser.NewState()

	ok, err := parser.Match([]byte("HTTP/1.1"))(input, st)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if !ok {
		t.Fatalf("Match: got false, want true")
	}
	if st.Pos() != 0 {
		t.Fatalf("Pos after Match: got %d, want 0 (Match must not advance)", st.Pos())
	}
}

func TestMatchEOFIsInvalidState(t *testing.T) {
	input := []byte("HT")
	st := parser.NewState()
	_, err := parser.Match([]byte("HTTP/1.1"))(input, st)
	if !errors.Is(err, parser.ErrInvalidState) {
		t.Fatalf("Match on short input: got %v, want ErrInvalidState", err)
	}
}

func TestCombineSequencesBothAndAbortsOnError(t *testing.T) {
	input := []byte("GET /\r\n")
	st := parser.NewState()

	ex := parser.Combine(parser.ReaderUntil([]byte(" ")), parser.Peeker(1))
	pair, err := ex(input, st)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if string(pair.First) != "GET" || string(pair.Second) != " " {
		t.Fatalf("Combine: got (%q, %q), want (%q, %q)", pair.First, pair.Second, "GET", " ")
	}

	// The second extractor runs past the 7-byte input; Combine must report
	// its error instead of a Pair.
	failing := parser.Combine(parser.Peeker(1), parser.Peeker(99))
	if _, err := failing(input, parser.NewState()); !errors.Is(err, parser.ErrOutOfBounds) {
		t.Fatalf("Combine with failing second extractor: got %v, want ErrOutOfBounds", err)
	}
}

func TestTryOrFallsBackAndRollsBackCursor(t *testing.T) {
	input := []byte("ab")
	st := parser.NewState()

	// The first branch consumes one byte, then Peeker(5) fails with a data
	// error (OutOfBounds); TryOr must restore the cursor to 0 and try the
	// second branch, which only succeeds from position 0.
	first := parser.Combine(parser.Peeker(1), parser.Peeker(5))
	ex := parser.TryOr(first, parser.Peeker(2))
	res, err := ex(input, st)
	if err != nil {
		t.Fatalf("TryOr: %v", err)
	}
	if res.IsFirst {
		t.Fatalf("TryOr: got IsFirst=true, want false (first branch should have failed)")
	}
	if string(res.Second) != "ab" {
		t.Fatalf("TryOr: got %q, want %q", res.Second, "ab")
	}
}

func TestTryOrPropagatesInvalidStateWithoutTryingSecond(t *testing.T) {
	input := []byte("HT")
	st := parser.NewState()

	secondCalled := false
	second := func(input []byte, st *parser.State) (bool, error) {
		secondCalled = true
		return true, nil
	}

	ex := parser.TryOr(parser.Match([]byte("HTTP/1.1")), second)
	_, err := ex(input, st)
	if !errors.Is(err, parser.ErrInvalidState) {
		t.Fatalf("TryOr: got %v, want ErrInvalidState", err)
	}
	if secondCalled {
		t.Fatalf("TryOr: second branch was called after an InvalidState error")
	}
}
