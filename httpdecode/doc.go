// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package httpdecode decodes a single well-formed HTTP/1.1 request frame
// into a borrowed HttpQuery view using the parser package's extractors.
//
// Decode performs no copying beyond the unavoidable string header built
// over the input: URL, header names, header values, and the body are all
// sub-slices (or unsafe.String views) of the caller's buffer. The returned
// HttpQuery is only valid for as long as that buffer is not modified or
// released.
//
//	q, err := httpdecode.Decode(buf)
//	if err != nil {
//		return err
//	}
//	fmt.Println(q.Verb, q.URL)
package httpdecode
