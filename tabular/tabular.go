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

// Package tabular writes delimited text records.
//
// The quoting rule is deliberately small: a field is quoted only when it
// contains the delimiter, the quote character or a line break, and quotes
// inside a quoted field are doubled. Nothing else is escaped.
package tabular

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Dialect describes the delimiters of a record.
type Dialect struct {
	Delimiter      rune
	Quote          rune
	LineTerminator string
}

// DefaultDialect is the semicolon separated dialect used by spreadsheet
// applications in north-european locales.
var DefaultDialect = Dialect{
	Delimiter:      ';',
	Quote:          '"',
	LineTerminator: "\r\n",
}

var ErrInvalidDialect = errors.New("invalid tabular dialect")

func validDelim(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}

// Validate checks that the dialect can produce records that split back
// into the original fields.
func (d Dialect) Validate() error {
	switch {
	case !validDelim(d.Delimiter):
		return fmt.Errorf("%w: delimiter %q", ErrInvalidDialect, d.Delimiter)
	case !validDelim(d.Quote):
		return fmt.Errorf("%w: quote %q", ErrInvalidDialect, d.Quote)
	case d.Delimiter == d.Quote:
		return fmt.Errorf("%w: delimiter and quote are both %q", ErrInvalidDialect, d.Quote)
	case d.LineTerminator != "\n" && d.LineTerminator != "\r\n":
		return fmt.Errorf("%w: line terminator %q", ErrInvalidDialect, d.LineTerminator)
	}
	return nil
}

// Encoder renders records in a fixed dialect.
type Encoder struct {
	d     Dialect
	quote string
	twice string
}

// NewEncoder returns an encoder for d.
func NewEncoder(d Dialect) (*Encoder, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	q := string(d.Quote)
	return &Encoder{d: d, quote: q, twice: q + q}, nil
}

func (e *Encoder) Dialect() Dialect { return e.d }

// Encode returns a single record including its line terminator.
func (e *Encoder) Encode(fields []string) string {
	return string(e.AppendRecord(nil, fields))
}

// AppendRecord appends the encoded record to dst and returns the extended
// buffer.
func (e *Encoder) AppendRecord(dst []byte, fields []string) []byte {
	for i, f := range fields {
		if i > 0 {
			dst = utf8.AppendRune(dst, e.d.Delimiter)
		}
		if !e.needsQuotes(f) {
			dst = append(dst, f...)
			continue
		}
		dst = append(dst, e.quote...)
		dst = append(dst, strings.ReplaceAll(f, e.quote, e.twice)...)
		dst = append(dst, e.quote...)
	}
	return append(dst, e.d.LineTerminator...)
}

func (e *Encoder) needsQuotes(f string) bool {
	return strings.ContainsRune(f, e.d.Delimiter) ||
		strings.ContainsRune(f, e.d.Quote) ||
		strings.ContainsAny(f, "\r\n")
}

// Writer writes encoded records to an io.Writer through a buffer.
//
// The first write error is sticky.
type Writer struct {
	enc *Encoder
	w   *bufio.Writer
	buf []byte
	n   int
	err error
}

// NewWriter returns a buffered record writer.
func NewWriter(w io.Writer, enc *Encoder) *Writer {
	return &Writer{enc: enc, w: bufio.NewWriter(w)}
}

// Write encodes and buffers one record.
func (w *Writer) Write(fields ...string) error {
	if w.err != nil {
		return w.err
	}
	w.buf = w.enc.AppendRecord(w.buf[:0], fields)
	if _, err := w.w.Write(w.buf); err != nil {
		w.err = err
		return err
	}
	w.n++
	return nil
}

// Flush writes any buffered records to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Records returns the number of records accepted by Write.
func (w *Writer) Records() int { return w.n }

// Error reports any error from a previous Write or Flush.
func (w *Writer) Error() error { return w.err }
