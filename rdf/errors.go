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
)

// Errors reported by the scanner and the line reader. They are always
// wrapped in a *ParseError carrying the position.
var (
	ErrUnterminatedLiteral = errors.New("unterminated literal, expecting '\"'")
	ErrUnterminatedIRI     = errors.New("unterminated IRI, expecting '>'")
	ErrMissingTerminator   = errors.New("missing statement terminator '.'")
	ErrTooFewTerms         = errors.New("line ends before all terms were read")
	ErrMalformedLine       = errors.New("malformed statement")
	ErrInvalidEncoding     = errors.New("invalid UTF-8 sequence")
)

// Configuration errors.
var (
	ErrUnknownDialect = errors.New("unknown input format")
	ErrUnknownMode    = errors.New("unknown split mode")
)

// ParseError provides the location of a statement that could not be read.
// Line and Column are 1-based; zero means unknown.
type ParseError struct {
	Source string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	src := e.Source
	if src == "" {
		src = "<input>"
	}
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s:%d:%d: %v", src, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", src, e.Line, e.Err)
	case e.Column > 0:
		return fmt.Sprintf("%s: column %d: %v", src, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", src, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Code returns a short stable name for the kind of err, suitable for metric
// labels. It returns an empty string for nil and io.EOF.
func Code(err error) string {
	switch {
	case err == nil, err == io.EOF:
		return ""
	case errors.Is(err, ErrUnterminatedLiteral):
		return "unterminated_literal"
	case errors.Is(err, ErrUnterminatedIRI):
		return "unterminated_iri"
	case errors.Is(err, ErrMissingTerminator):
		return "missing_terminator"
	case errors.Is(err, ErrTooFewTerms):
		return "too_few_terms"
	case errors.Is(err, ErrMalformedLine):
		return "malformed_line"
	case errors.Is(err, ErrInvalidEncoding):
		return "encoding"
	case errors.Is(err, ErrUnknownDialect), errors.Is(err, ErrUnknownMode):
		return "configuration"
	}
	return "other"
}

func errAt(col int, err error) error {
	return &ParseError{Column: col + 1, Err: err}
}
