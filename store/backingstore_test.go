// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store_test

import (
	"testing"

	"github.com/nightmared/webserv/store"
)

type sample struct {
	ID    int64
	Flag  bool
	Label [8]byte
}

func TestBackingStoreSetGetRoundTrip(t *testing.T) {
	s, err := store.New[sample](16)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	want := sample{ID: 42, Flag: true, Label: [8]byte{'h', 'e', 'l', 'l', 'o'}}
	s.Set(3, want)

	got := s.Get(3)
	if got != want {
		t.Fatalf("Get(3): got %+v, want %+v", got, want)
	}
}

func TestBackingStoreCap(t *testing.T) {
	s, err := store.New[int](257)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if s.Cap() != 257 {
		t.Fatalf("Cap: got %d, want 257", s.Cap())
	}
}

func TestBackingStoreSlotsIndependent(t *testing.T) {
	s, err := store.New[int64](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	for i := 0; i < 4; i++ {
		s.Set(i, int64(i*100))
	}
	for i := 0; i < 4; i++ {
		if got := s.Get(i); got != int64(i*100) {
			t.Fatalf("Get(%d): got %d, want %d", i, got, i*100)
		}
	}
}

func TestBackingStoreCloseIdempotent(t *testing.T) {
	s, err := store.New[int](8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestBackingStoreOverwriteDiscardsPrevious(t *testing.T) {
	s, err := store.New[[16]byte](4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	var first, second [16]byte
	copy(first[:], "first")
	copy(second[:], "second")

	s.Set(0, first)
	s.Set(0, second)
	if got := s.Get(0); got != second {
		t.Fatalf("Get(0): got %q, want %q", got[:], second[:])
	}
}
