// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package httpdecode

import (
	"bytes"
	"unsafe"

	"github.com/nightmared/webserv/parser"
)

// HttpQuery is a borrowed view over a decoded HTTP/1.1 request. URL, Body,
// and every header name and value reference bytes inside the buffer passed
// to Decode; the view is invalid once that buffer is modified or released.
type HttpQuery struct {
	Verb    Verb
	URL     string
	Body    []byte
	Headers map[string]string
}

var (
	sp         = []byte(" ")
	crlf       = []byte("\r\n")
	httpVer11  = []byte("HTTP/1.1")
)

// Decode parses a single well-formed HTTP/1.1 request frame:
//
//	[\r|\n]*  VERB SP URL SP "HTTP/1.1" \r\n
//	(NAME ":" VALUE \r\n)*
//	\r\n
//	BODY...
//
// It performs no UTF-8 validation on the URL or header fields; they are
// exposed as byte ranges reinterpreted as text. The body is always returned
// as a raw byte slice.
func Decode(input []byte) (*HttpQuery, error) {
	st := parser.NewState()

	// 1. Leading whitespace: tolerate a run of \r and \n before the
	// request line per RFC 2616 §4.
	if _, err := parser.Consumer(skipCRLF)(input, st); err != nil {
		return nil, err
	}

	// 2. Verb.
	rawVerb, err := parser.ReaderUntil(sp)(input, st)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Peeker(len(sp))(input, st); err != nil {
		return nil, err
	}
	verb := parseVerb(rawVerb)

	// 3. URL.
	rawURL, err := parser.ReaderUntil(sp)(input, st)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Peeker(len(sp))(input, st); err != nil {
		return nil, err
	}

	// 4. Version.
	rawVersion, err := parser.ReaderUntil(crlf)(input, st)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Peeker(len(crlf))(input, st); err != nil {
		return nil, err
	}
	if !bytes.Equal(rawVersion, httpVer11) {
		return nil, &parser.Error{Kind: parser.KindInvalidData}
	}

	// 5. Headers.
	headers := make(map[string]string)
	for {
		line, err := parser.ReaderUntil(crlf)(input, st)
		if err != nil {
			return nil, err
		}
		if _, err := parser.Peeker(len(crlf))(input, st); err != nil {
			return nil, err
		}
		if len(line) == 0 {
			break
		}
		idx := bytes.IndexByte(line, ':')
		if idx <= 0 {
			return nil, &parser.Error{Kind: parser.KindInvalidData}
		}
		// No trimming: the leading space commonly present after the
		// colon is preserved in the value, matching the source this
		// decoder is modelled on.
		headers[bytesToString(line[:idx])] = bytesToString(line[idx+1:])
	}

	// 6. Body: everything after the blank line.
	body, err := parser.ConsumerToEnd()(input, st)
	if err != nil {
		return nil, err
	}

	return &HttpQuery{
		Verb:    verb,
		URL:     bytesToString(rawURL),
		Body:    body,
		Headers: headers,
	}, nil
}

func skipCRLF(remaining []byte) (int, error) {
	if len(remaining) > 0 && (remaining[0] == '\r' || remaining[0] == '\n') {
		return 1, nil
	}
	return 0, nil
}

// bytesToString reinterprets b as a string without copying. b must outlive
// the returned string and must not be mutated afterwards.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
