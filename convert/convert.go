// Package convert streams RDF statements from one or more inputs into a
// single delimited output.
package convert

import (
	"io"

	"github.com/cayleygraph/rdf2csv/clog"
	"github.com/cayleygraph/rdf2csv/rdf"
	"github.com/cayleygraph/rdf2csv/tabular"
)

// Options configures a Converter.
type Options struct {
	Dialect rdf.Dialect
	Mode    rdf.Mode
	// Log receives progress and diagnostics; nothing is logged if nil.
	Log clog.Logger
}

// Source is a named input that is opened on first use.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Converter converts statements into records, one statement at a time.
type Converter struct {
	parser *rdf.Parser
	log    clog.Logger
}

// New creates a converter.
func New(opts Options) *Converter {
	if opts.Log == nil {
		opts.Log = clog.Discard
	}
	return &Converter{
		parser: rdf.NewParser(opts.Dialect, opts.Mode),
		log:    opts.Log,
	}
}

// Copy writes one record per statement of src to dst until src is
// exhausted. It stops at the first error; the failing statement produces
// no record. It returns the number of records written.
func (c *Converter) Copy(dst *tabular.Writer, src rdf.StatementReader) (int, error) {
	var n int
	for {
		st, err := src.ReadStatement()
		if err == io.EOF {
			return n, nil
		} else if err != nil {
			mErrors.WithLabelValues(rdf.Code(err)).Inc()
			return n, err
		}
		if err = dst.Write(st.Fields()...); err != nil {
			mErrors.WithLabelValues("sink").Inc()
			return n, &SinkError{Op: "write", Err: err}
		}
		mRows.Inc()
		n++
	}
}

// Convert copies all sources into dst, strictly one after the other and in
// the given order.
func (c *Converter) Convert(dst *tabular.Writer, sources []Source) (int, error) {
	multi := c.newMultiReader(sources)
	defer multi.Close()
	return c.Copy(dst, multi)
}

// Run converts sources into the output, which is opened once and flushed
// and closed before Run returns.
func (c *Converter) Run(out Output, enc *tabular.Encoder, sources []Source) (n int, err error) {
	if out.Log == nil {
		out.Log = c.log
	}
	err = WithSink(out, enc, func(w *tabular.Writer) error {
		n, err = c.Convert(w, sources)
		return err
	})
	return n, err
}

func (c *Converter) newMultiReader(sources []Source) *multiReader {
	m := &multiReader{}
	for _, s := range sources {
		m.rc = append(m.rc, &lazyReader{src: s, c: c})
	}
	return m
}

type lazyReader struct {
	src Source
	c   *Converter
	r   *rdf.Reader
}

func (l *lazyReader) ReadStatement() (rdf.Statement, error) {
	if l.r == nil {
		l.c.log.Infof("converting %q", l.src.Name)
		rc, err := l.src.Open()
		if err != nil {
			return rdf.Statement{}, err
		}
		l.r = rdf.NewReader(rc, l.c.parser, rdf.ReaderOptions{Source: l.src.Name, Log: l.c.log})
	}
	return l.r.ReadStatement()
}

func (l *lazyReader) Close() error {
	if l.r == nil {
		return nil
	}
	mLines.Add(float64(l.r.Lines()))
	mSkipped.Add(float64(l.r.Skipped()))
	if clog.Enabled(l.c.log, 1) {
		l.c.log.Infof("%q: %d lines, %d statements, %d skipped", l.src.Name, l.r.Lines(), l.r.Statements(), l.r.Skipped())
	}
	err := l.r.Close()
	l.r = nil
	return err
}

type multiReader struct {
	rc []*lazyReader
	i  int
}

func (r *multiReader) ReadStatement() (rdf.Statement, error) {
	for {
		if r.i >= len(r.rc) {
			return rdf.Statement{}, io.EOF
		}
		rc := r.rc[r.i]
		st, err := rc.ReadStatement()
		if err == io.EOF {
			rc.Close()
			mFiles.Inc()
			r.i++
			continue
		}
		return st, err
	}
}

func (r *multiReader) Close() error {
	var first error
	if r.i < len(r.rc) {
		for _, rc := range r.rc[r.i:] {
			if err := rc.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
