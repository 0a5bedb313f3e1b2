// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package store_test

import (
	"fmt"

	"github.com/nightmared/webserv/store"
)

// ExampleNew demonstrates allocating a raw backing store and writing to a
// slot.
func ExampleNew() {
	s, err := store.New[int64](8)
	if err != nil {
		panic(err)
	}
	defer s.Close()

	s.Set(0, 100)
	s.Set(1, 200)

	fmt.Println(s.Get(0) + s.Get(1))
	// Output:
	// 300
}
