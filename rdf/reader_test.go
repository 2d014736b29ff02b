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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	warnings []string
}

func (r *recorder) Infof(string, ...interface{}) {}
func (r *recorder) Warningf(format string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}
func (r *recorder) Errorf(string, ...interface{}) {}
func (r *recorder) Fatalf(string, ...interface{}) {}

type failingCloser struct {
	io.Reader
}

func (failingCloser) Close() error { return errors.New("device busy") }

func readAll(r StatementReader) ([]Statement, error) {
	var out []Statement
	for {
		st, err := r.ReadStatement()
		if err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, err
		}
		out = append(out, st)
	}
}

func TestReader(t *testing.T) {
	const input = "# people\n" +
		"<urn:alice> <urn:knows> <urn:bob> <urn:g1> .\n" +
		"\n" +
		"_:b0 <urn:name> \"Bob Smith\"@en .\n"
	r := NewReader(strings.NewReader(input), NewParser(NQuads, ModeQuoted), ReaderOptions{Source: "people.nq"})
	got, err := readAll(r)
	require.NoError(t, err)
	require.Equal(t, []Statement{
		{Subject: `<urn:alice>`, Predicate: `<urn:knows>`, Object: `<urn:bob>`},
		{Subject: `_:b0`, Predicate: `<urn:name>`, Object: `"Bob Smith"@en`},
	}, got)
	require.Equal(t, "people.nq", r.Source())
	require.Equal(t, 4, r.Lines())
	require.Equal(t, 2, r.Skipped())
	require.Equal(t, 2, r.Statements())
}

func TestReaderLocatesErrors(t *testing.T) {
	const input = "<urn:a> <urn:b> <urn:c> .\n" +
		"# comment\n" +
		"<urn:a> <urn:b> \"open .\n" +
		"<urn:x> <urn:y> <urn:z> .\n"
	r := NewReader(strings.NewReader(input), NewParser(NTriples, ModeQuoted), ReaderOptions{Source: "data.nt"})
	got, err := readAll(r)
	require.Len(t, got, 1)
	require.True(t, errors.Is(err, ErrUnterminatedLiteral))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, "data.nt", pe.Source)
	require.Equal(t, 3, pe.Line)
	require.Equal(t, 17, pe.Column)
	require.Equal(t, `data.nt:3:17: unterminated literal, expecting '"'`, err.Error())

	// the reader does not resume after a failure
	_, err2 := r.ReadStatement()
	require.Equal(t, err, err2)
}

func TestReaderEncodingError(t *testing.T) {
	r := NewReader(strings.NewReader("<urn:a> <urn:b> \"\xc3\x28\" .\n"), NewParser(NTriples, ModeQuoted), ReaderOptions{Source: "bad.nt"})
	_, err := r.ReadStatement()
	require.True(t, errors.Is(err, ErrInvalidEncoding))
	require.Equal(t, "bad.nt:1:18: invalid UTF-8 sequence", err.Error())
	require.Equal(t, "encoding", Code(err))
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestReaderIOError(t *testing.T) {
	r := NewReader(brokenReader{}, NewParser(NTriples, ModeQuoted), ReaderOptions{Source: "pipe"})
	_, err := r.ReadStatement()
	require.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	require.Equal(t, "pipe: read failed after line 0: unexpected EOF", err.Error())
	require.Equal(t, "other", Code(err))
}

func TestReaderCloseLogs(t *testing.T) {
	log := &recorder{}
	r := NewReader(failingCloser{strings.NewReader("")}, NewParser(NTriples, ModeQuoted), ReaderOptions{Source: "in.nt", Log: log})
	_, err := r.ReadStatement()
	require.Equal(t, io.EOF, err)
	require.NoError(t, r.Close())
	require.Equal(t, []string{`could not close "in.nt": device busy`}, log.warnings)

	// closing twice does not touch the input again
	require.NoError(t, r.Close())
	require.Len(t, log.warnings, 1)
}
