// Copyright 2026 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rdf

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

var bom = []byte("\xef\xbb\xbf")

// LineReader yields the statement lines of a UTF-8 stream. Blank lines and
// comment lines are skipped, but still counted by Line.
type LineReader struct {
	r       *bufio.Reader
	buf     []byte
	line    int
	skipped int
	err     error
}

// NewLineReader returns a LineReader that takes its input from r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// NextLine returns the next statement line without its line terminator.
// It returns io.EOF once the input is exhausted. Any error, including
// invalid UTF-8, is returned by every following call.
func (lr *LineReader) NextLine() (string, error) {
	if lr.err != nil {
		return "", lr.err
	}
	for {
		line, err := lr.readLine()
		if err != nil {
			lr.err = err
			return "", err
		}
		lr.line++
		if lr.line == 1 {
			line = bytes.TrimPrefix(line, bom)
		}
		if i := invalidUTF8(line); i >= 0 {
			lr.err = &ParseError{Line: lr.line, Column: i + 1, Err: ErrInvalidEncoding}
			return "", lr.err
		}
		if t := bytes.TrimSpace(line); len(t) == 0 || t[0] == '#' {
			lr.skipped++
			continue
		}
		return string(line), nil
	}
}

// Line returns the 1-based number of the last line read.
func (lr *LineReader) Line() int { return lr.line }

// Skipped returns the number of blank and comment lines seen so far.
func (lr *LineReader) Skipped() int { return lr.skipped }

func (lr *LineReader) readLine() ([]byte, error) {
	lr.buf = lr.buf[:0]
	for {
		l, more, err := lr.r.ReadLine()
		if err != nil {
			return nil, err
		}
		lr.buf = append(lr.buf, l...)
		if !more {
			return lr.buf, nil
		}
	}
}

func invalidUTF8(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n == 1 {
			return i
		}
		i += n
	}
	return -1
}
