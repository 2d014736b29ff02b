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

// Parser turns statement lines into statements. The dialect and split mode
// are fixed for the lifetime of a parser.
type Parser struct {
	dialect Dialect
	mode    Mode
}

// NewParser creates a parser for the given dialect and split mode.
func NewParser(d Dialect, m Mode) *Parser {
	return &Parser{dialect: d, mode: m}
}

func (p *Parser) Dialect() Dialect { return p.dialect }
func (p *Parser) Mode() Mode       { return p.mode }

// Parse parses one line. It returns false without an error for blank lines
// and comments. Errors are *ParseError values without line information.
func (p *Parser) Parse(line string) (Statement, bool, error) {
	if t := strings.TrimSpace(line); t == "" || t[0] == '#' {
		return Statement{}, false, nil
	}
	var (
		spans []Span
		err   error
	)
	if p.mode == ModeNaive {
		spans, err = ScanNaive(line, p.dialect.Terms())
	} else {
		spans, err = Scan(line, p.dialect.Terms())
	}
	if err != nil {
		return Statement{}, false, err
	}
	return Statement{
		Subject:   Term(spans[0].In(line)),
		Predicate: Term(spans[1].In(line)),
		Object:    Term(spans[2].In(line)),
	}, true, nil
}
