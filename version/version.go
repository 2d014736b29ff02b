// Package version holds the build information of rdf2csv.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version = "0.1.0"

	// set at link time:
	// 	go build -ldflags="-X github.com/cayleygraph/rdf2csv/version.GitHash=$(git rev-parse --short HEAD)"

	GitHash   = "dev snapshot"
	BuildDate string
)

// String describes the build in a single line.
func String() string {
	s := fmt.Sprintf("rdf2csv %s (%s", Version, GitHash)
	if BuildDate != "" {
		s += ", built " + BuildDate
	}
	return s + ", " + runtime.Version() + ")"
}
