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

// Package rdf splits line-based RDF statements (N-Triples and N-Quads) into
// their surface terms.
//
// Terms are never decoded: a Term holds the token exactly as written in the
// source line, so an IRI keeps its angle brackets and a literal keeps its
// quotes, escapes and datatype or language suffix.
package rdf

import (
	"fmt"
	"strings"
)

// Dialect selects the statement syntax of an input.
type Dialect int

const (
	NTriples Dialect = iota
	NQuads
)

// ParseDialect returns the dialect for a short format name ("nt" or "nq").
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "nt", "":
		return NTriples, nil
	case "nq":
		return NQuads, nil
	}
	return 0, fmt.Errorf("%w: %q (expected \"nt\" or \"nq\")", ErrUnknownDialect, name)
}

// Terms returns the maximal number of terms in a statement.
func (d Dialect) Terms() int {
	if d == NQuads {
		return 4
	}
	return 3
}

func (d Dialect) String() string {
	switch d {
	case NTriples:
		return "nt"
	case NQuads:
		return "nq"
	}
	return fmt.Sprintf("Dialect(%d)", int(d))
}

// Mode selects how statement lines are split into terms.
type Mode int

const (
	// ModeQuoted respects IRI brackets and literal quotes.
	ModeQuoted Mode = iota
	// ModeNaive splits on the first, second and last separator only. It
	// reproduces the output of the historical converter, including its
	// mistakes on literals that contain spaces.
	ModeNaive
)

// ParseMode returns the split mode by name ("quoted" or "naive").
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "quoted", "":
		return ModeQuoted, nil
	case "naive":
		return ModeNaive, nil
	}
	return 0, fmt.Errorf("%w: %q (expected \"quoted\" or \"naive\")", ErrUnknownMode, name)
}

func (m Mode) String() string {
	switch m {
	case ModeQuoted:
		return "quoted"
	case ModeNaive:
		return "naive"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Term is a single RDF term in its surface syntax: `<iri>`, `_:label`, or a
// literal such as `"v"`, `"v"@en` or `"v"^^<type>`.
type Term string

// Statement is a subject, predicate and object triple. A graph term of an
// N-Quads statement is never part of it.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Fields returns the terms in column order.
func (s Statement) Fields() []string {
	return []string{string(s.Subject), string(s.Predicate), string(s.Object)}
}

func (s Statement) String() string {
	return fmt.Sprintf("%s %s %s .", s.Subject, s.Predicate, s.Object)
}

// Span is a half-open byte range of a line.
type Span struct {
	Start, End int
}

// In returns the part of line covered by the span.
func (s Span) In(line string) string { return line[s.Start:s.End] }
