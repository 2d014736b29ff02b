// Package inputs resolves input paths and opens them for reading.
package inputs

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	pb "gopkg.in/cheggaaa/pb.v1"

	"github.com/cayleygraph/rdf2csv/clog"
	"github.com/cayleygraph/rdf2csv/internal/decompressor"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ErrInputNotFound is returned when no input file could be resolved.
var ErrInputNotFound = errors.New("no input files found")

// Expand resolves paths into a flat list of files. Directories are walked
// recursively and their files are listed in lexical order. Entries that
// cannot be read while walking are logged and skipped.
func Expand(fs afero.Fs, paths []string, log clog.Logger) ([]string, error) {
	if log == nil {
		log = clog.Discard
	}
	var files []string
	for _, p := range paths {
		if p == Stdin {
			files = append(files, p)
			continue
		}
		fi, err := fs.Stat(p)
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrInputNotFound, p)
		} else if err != nil {
			return nil, errors.Wrapf(err, "could not stat %q", p)
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}
		err = afero.Walk(fs, p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				log.Warningf("skipping %q: %v", path, err)
				return nil
			}
			if !info.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "could not list %q", p)
		}
	}
	if len(files) == 0 {
		return nil, ErrInputNotFound
	}
	return files, nil
}

// Opener opens resolved inputs, decompressing them when needed.
type Opener struct {
	Fs afero.Fs
	// Stdin is read for the "-" path; os.Stdin if nil.
	Stdin io.Reader
	// Progress receives a progress bar for file inputs, if set.
	Progress io.Writer
}

// Open returns the decompressed content of path. Closing it never closes
// standard input.
func (o Opener) Open(path string) (io.ReadCloser, error) {
	in := &input{}
	var r io.Reader
	if path == Stdin {
		r = o.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		fs := o.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		f, err := fs.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open file %q", path)
		}
		in.closers = append(in.closers, f)
		r = f
		if o.Progress != nil {
			if st, err := f.Stat(); err == nil {
				bar := pb.New64(st.Size()).SetUnits(pb.U_BYTES).SetRefreshRate(500 * time.Millisecond)
				bar.Output = o.Progress
				bar.ShowSpeed = true
				bar.Prefix(filepath.Base(path) + " ")
				bar.Start()
				in.closers = append(in.closers, finisher{bar})
				r = bar.NewProxyReader(f)
			}
		}
	}
	dr, err := decompressor.New(r)
	if err != nil {
		in.Close()
		return nil, errors.Wrapf(err, "could not read %q", path)
	}
	in.ReadCloser = dr
	return in, nil
}

type finisher struct {
	bar *pb.ProgressBar
}

func (f finisher) Close() error {
	f.bar.Finish()
	return nil
}

// input closes the decoder, then everything it was stacked on, last opened
// first.
type input struct {
	io.ReadCloser
	closers []io.Closer
}

func (in *input) Close() error {
	var first error
	if in.ReadCloser != nil {
		first = in.ReadCloser.Close()
	}
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	in.closers = nil
	return first
}
