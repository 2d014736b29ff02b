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

import "strings"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isLangChar(c byte) bool {
	return c == '-' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// Scan finds the terms of a single statement line.
//
// With terms == 3 the line must hold exactly subject, predicate and object.
// With terms == 4 an optional graph term may follow the object. The
// returned spans cover the terms in order and never include the
// terminating dot; a missing graph term yields three spans.
//
// Literals may contain whitespace and escaped quotes, so the line is scanned
// term by term instead of being split on whitespace. Errors are
// *ParseError values with the column of the offending byte.
func Scan(line string, terms int) ([]Span, error) {
	s := scanner{line: line}
	spans := make([]Span, 0, terms)
	for i := 0; i < terms; i++ {
		n := s.skipSpace()
		switch {
		case s.eol() && i < 3:
			return nil, errAt(s.pos, ErrTooFewTerms)
		case s.eol():
			return nil, errAt(s.pos, ErrMissingTerminator)
		case s.peek() == '.' && i < 3:
			return nil, errAt(s.pos, ErrMalformedLine)
		case s.peek() == '.':
			// no graph term
			return spans, s.terminator()
		case i > 0 && n == 0:
			// terms must be separated by whitespace
			return nil, errAt(s.pos, ErrMalformedLine)
		}
		sp, err := s.term()
		if err != nil {
			return nil, err
		}
		spans = append(spans, sp)
	}
	return spans, s.terminator()
}

type scanner struct {
	line string
	pos  int
}

func (s *scanner) eol() bool { return s.pos >= len(s.line) }

func (s *scanner) peek() byte { return s.line[s.pos] }

func (s *scanner) skipSpace() int {
	start := s.pos
	for s.pos < len(s.line) && isSpace(s.line[s.pos]) {
		s.pos++
	}
	return s.pos - start
}

// terminator consumes the final dot and checks that only whitespace or a
// comment follows it.
func (s *scanner) terminator() error {
	s.skipSpace()
	if s.eol() {
		return errAt(s.pos, ErrMissingTerminator)
	}
	if s.peek() != '.' {
		return errAt(s.pos, ErrMalformedLine)
	}
	s.pos++
	s.skipSpace()
	if !s.eol() && s.peek() != '#' {
		return errAt(s.pos, ErrMalformedLine)
	}
	return nil
}

func (s *scanner) term() (Span, error) {
	start := s.pos
	var err error
	switch s.peek() {
	case '<':
		err = s.iri()
	case '"':
		err = s.literal()
	default:
		// blank nodes, and anything else, run up to the next delimiter
		s.bare()
	}
	if err != nil {
		return Span{}, err
	}
	return Span{Start: start, End: s.pos}, nil
}

func (s *scanner) iri() error {
	start := s.pos
	for s.pos++; s.pos < len(s.line); s.pos++ {
		switch c := s.line[s.pos]; {
		case c == '>':
			s.pos++
			return nil
		case c == '\\':
			s.pos++
		case isSpace(c):
			return errAt(start, ErrUnterminatedIRI)
		}
	}
	return errAt(start, ErrUnterminatedIRI)
}

func (s *scanner) literal() error {
	start := s.pos
	for s.pos++; ; s.pos++ {
		if s.pos >= len(s.line) {
			return errAt(start, ErrUnterminatedLiteral)
		}
		c := s.line[s.pos]
		if c == '\\' {
			s.pos++
		} else if c == '"' {
			s.pos++
			break
		}
	}
	switch {
	case strings.HasPrefix(s.line[s.pos:], "^^"):
		s.pos += 2
		if s.eol() || s.peek() != '<' {
			return errAt(s.pos, ErrMalformedLine)
		}
		return s.iri()
	case !s.eol() && s.peek() == '@':
		s.pos++
		tag := s.pos
		for s.pos < len(s.line) && isLangChar(s.line[s.pos]) {
			s.pos++
		}
		if s.pos == tag {
			return errAt(tag, ErrMalformedLine)
		}
	}
	return nil
}

// bare scans up to whitespace, or up to a dot that ends the line or is
// followed by whitespace. Dots inside a label, as in _:a.b, are kept.
func (s *scanner) bare() {
	for s.pos < len(s.line) {
		c := s.line[s.pos]
		if isSpace(c) {
			return
		}
		if c == '.' && (s.pos+1 == len(s.line) || isSpace(s.line[s.pos+1])) {
			return
		}
		s.pos++
	}
}
