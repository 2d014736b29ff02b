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
	"errors"
	"fmt"
	"io"

	"github.com/cayleygraph/rdf2csv/clog"
)

// StatementReader is implemented by sources of statements.
//
// ReadStatement returns the next statement, or io.EOF if none are left.
type StatementReader interface {
	ReadStatement() (Statement, error)
}

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// Source names the input in error messages, usually a file path.
	Source string
	// Log receives diagnostics that do not stop the reader.
	Log clog.Logger
}

// Reader reads statements from a line-based RDF stream.
//
// The first error is sticky: once ReadStatement fails, all following calls
// return the same error.
type Reader struct {
	lines  *LineReader
	parser *Parser
	src    string
	log    clog.Logger
	c      io.Closer
	n      int
	err    error
}

var _ StatementReader = (*Reader)(nil)

// NewReader creates a statement reader on top of r. If r is an io.Closer it
// is closed by Close.
func NewReader(r io.Reader, p *Parser, opts ReaderOptions) *Reader {
	if opts.Log == nil {
		opts.Log = clog.Discard
	}
	rd := &Reader{
		lines:  NewLineReader(r),
		parser: p,
		src:    opts.Source,
		log:    opts.Log,
	}
	if c, ok := r.(io.Closer); ok {
		rd.c = c
	}
	return rd
}

// ReadStatement returns the next statement.
func (r *Reader) ReadStatement() (Statement, error) {
	if r.err != nil {
		return Statement{}, r.err
	}
	for {
		line, err := r.lines.NextLine()
		if err != nil {
			r.err = r.locate(err)
			return Statement{}, r.err
		}
		st, ok, err := r.parser.Parse(line)
		if err != nil {
			r.err = r.locate(err)
			return Statement{}, r.err
		} else if !ok {
			continue
		}
		r.n++
		return st, nil
	}
}

func (r *Reader) locate(err error) error {
	if err == io.EOF {
		return err
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Source = r.src
		if pe.Line == 0 {
			pe.Line = r.lines.Line()
		}
		return pe
	}
	return fmt.Errorf("%s: read failed after line %d: %w", r.src, r.lines.Line(), err)
}

// Source returns the name of the input.
func (r *Reader) Source() string { return r.src }

// Lines returns the number of physical lines read so far.
func (r *Reader) Lines() int { return r.lines.Line() }

// Skipped returns the number of blank and comment lines read so far.
func (r *Reader) Skipped() int { return r.lines.Skipped() }

// Statements returns the number of statements returned so far.
func (r *Reader) Statements() int { return r.n }

// Close releases the underlying input. A failure to close an input cannot
// lose data, so it is logged and not returned.
func (r *Reader) Close() error {
	if r.c == nil {
		return nil
	}
	if err := r.c.Close(); err != nil {
		r.log.Warningf("could not close %q: %v", r.src, err)
	}
	r.c = nil
	return nil
}
