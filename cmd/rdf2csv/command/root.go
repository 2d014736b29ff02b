package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/rdf2csv/version"
)

// NewRootCmd creates the rdf2csv command. Without a subcommand it converts
// its inputs.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rdf2csv [flags] [input...]",
		Short: "Convert N-Triples and N-Quads files into a single CSV file.",
		Long: "Convert N-Triples and N-Quads files into a single delimited file with one\n" +
			"record per statement: subject, predicate and object. Graph terms are dropped.\n" +
			"Directories are converted file by file, in lexical order.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runConvert,
	}
	registerConvertFlags(cmd)
	cmd.AddCommand(NewVersionCmd())
	return cmd
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Version information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
}
