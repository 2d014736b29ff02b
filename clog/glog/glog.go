// Package glog installs github.com/golang/glog as the clog backend.
//
// Verbosity follows glog's -v and -vmodule flags.
package glog

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/cayleygraph/rdf2csv/clog"
)

func init() {
	clog.SetLogger(Logger{Depth: 1})
}

// Logger forwards messages to glog. Depth is the number of frames between
// the logging statement and the Logger method, so that glog reports the
// caller's file and line.
type Logger struct {
	Depth int
}

var _ clog.Leveled = Logger{}

func (l Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(l.Depth+1, fmt.Sprintf(format, args...))
}

func (l Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(l.Depth+1, fmt.Sprintf(format, args...))
}

func (l Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(l.Depth+1, fmt.Sprintf(format, args...))
}

func (l Logger) Fatalf(format string, args ...interface{}) {
	glog.FatalDepth(l.Depth+1, fmt.Sprintf(format, args...))
}

func (Logger) V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}

// Flush writes pending log entries to their destination.
func Flush() { glog.Flush() }
