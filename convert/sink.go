package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	gzip "github.com/klauspost/pgzip"
	"github.com/spf13/afero"

	"github.com/cayleygraph/rdf2csv/clog"
	"github.com/cayleygraph/rdf2csv/tabular"
)

// SinkError reports a failure to write the output. Unlike input errors it
// is never ignored: records may have been lost.
type SinkError struct {
	Op   string
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	path := e.Path
	if path == "" || path == "-" {
		path = "stdout"
	}
	return fmt.Sprintf("could not %s output %q: %v", e.Op, path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// Output describes where records go.
type Output struct {
	// Path of the output file; "" or "-" selects Stdout. A ".gz" extension
	// compresses the output.
	Path string
	// Stdout is used when no path is set; os.Stdout if nil.
	Stdout io.Writer
	// Fs is the filesystem for Path; the OS filesystem if nil.
	Fs  afero.Fs
	Log clog.Logger
}

func (o Output) isStdout() bool { return o.Path == "" || o.Path == "-" }

// WithSink opens the output, calls fn with a record writer for it, then
// flushes and closes the output whatever fn returned. Records written
// before a failure are kept. A flush or close failure is returned unless fn
// already failed, in which case it is logged.
func WithSink(out Output, enc *tabular.Encoder, fn func(w *tabular.Writer) error) (err error) {
	if out.Log == nil {
		out.Log = clog.Discard
	}
	var (
		w       io.Writer
		closers []io.Closer
	)
	if out.isStdout() {
		w = out.Stdout
		if w == nil {
			w = os.Stdout
		}
		out.Log.Infof("writing records to stdout")
	} else {
		fs := out.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		if dir := filepath.Dir(out.Path); dir != "." {
			if err := fs.MkdirAll(dir, 0755); err != nil {
				return &SinkError{Op: "create", Path: out.Path, Err: err}
			}
		}
		f, err := fs.Create(out.Path)
		if err != nil {
			return &SinkError{Op: "create", Path: out.Path, Err: err}
		}
		closers = append(closers, f)
		w = f
		if filepath.Ext(out.Path) == ".gz" {
			zw := gzip.NewWriter(f)
			closers = append(closers, zw)
			w = zw
		}
		out.Log.Infof("writing records to file %q", out.Path)
	}

	tw := tabular.NewWriter(w, enc)
	defer func() {
		var cerr error
		if ferr := tw.Flush(); ferr != nil {
			cerr = &SinkError{Op: "flush", Path: out.Path, Err: ferr}
		}
		for i := len(closers) - 1; i >= 0; i-- {
			if e := closers[i].Close(); e != nil && cerr == nil {
				cerr = &SinkError{Op: "close", Path: out.Path, Err: e}
			}
		}
		if err == nil {
			err = cerr
			return
		}
		var se *SinkError
		if errors.As(err, &se) {
			if se.Path == "" {
				se.Path = out.Path
			}
		} else if cerr != nil {
			out.Log.Errorf("%v", cerr)
		}
	}()
	return fn(tw)
}
