package main

import (
	"flag"
	"os"

	"github.com/cayleygraph/rdf2csv/clog"
	"github.com/cayleygraph/rdf2csv/clog/glog"
	"github.com/cayleygraph/rdf2csv/cmd/rdf2csv/command"
)

func main() {
	// glog writes to files unless told otherwise
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse(nil)
	cmd := command.NewRootCmd()
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmd.SilenceErrors = true
	err := cmd.Execute()
	if err != nil {
		clog.Errorf("%v", err)
	}
	glog.Flush()
	os.Exit(command.ExitCode(err))
}
