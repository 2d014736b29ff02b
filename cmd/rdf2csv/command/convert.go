package command

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/rdf2csv/clog"
	"github.com/cayleygraph/rdf2csv/convert"
	"github.com/cayleygraph/rdf2csv/internal/config"
	"github.com/cayleygraph/rdf2csv/internal/inputs"
	"github.com/cayleygraph/rdf2csv/rdf"
	"github.com/cayleygraph/rdf2csv/tabular"
)

const (
	flagConfig         = "config"
	flagInput          = "input"
	flagOutput         = "output"
	flagFormat         = "format"
	flagSplit          = "split"
	flagDelimiter      = "delimiter"
	flagQuote          = "quote"
	flagLineTerminator = "line_terminator"
	flagProgress       = "progress"
	flagMetricsFile    = "metrics_file"
	flagQuiet          = "quiet"
)

// ExitCode maps an error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, inputs.ErrInputNotFound):
		return 2
	}
	return 1
}

func registerConvertFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(flagConfig, "", "path to an explicit configuration file (json, yaml or toml)")
	f.StringSliceP(flagInput, "i", nil, `input file or directory (repeatable, "-" for stdin; compressed files are detected)`)
	f.StringP(flagOutput, "o", "-", `output file (".gz" supported, "-" for stdout)`)
	f.StringP(flagFormat, "f", rdf.NTriples.String(), `input format ("nt" or "nq")`)
	f.String(flagSplit, rdf.ModeQuoted.String(), `term splitting ("quoted", or "naive" to reproduce the historical output)`)
	f.String(flagDelimiter, string(tabular.DefaultDialect.Delimiter), `field delimiter ("tab" and "space" are accepted)`)
	f.String(flagQuote, string(tabular.DefaultDialect.Quote), "quote character")
	f.String(flagLineTerminator, "crlf", `record terminator ("crlf" or "lf")`)
	f.Bool(flagProgress, false, "show a progress bar for input files on stderr")
	f.String(flagMetricsFile, "", "write conversion metrics in Prometheus text format to this file")
	cmd.PersistentFlags().BoolP(flagQuiet, "q", false, "hide all log output")
}

func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	config.SetDefaults(v)
	for key, name := range map[string]string{
		config.KeyFormat:         flagFormat,
		config.KeySplit:          flagSplit,
		config.KeyProgress:       flagProgress,
		config.KeyOutput:         flagOutput,
		config.KeyDelimiter:      flagDelimiter,
		config.KeyQuote:          flagQuote,
		config.KeyLineTerminator: flagLineTerminator,
		config.KeyMetricsFile:    flagMetricsFile,
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, err
		}
	}
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if file, _ := cmd.Flags().GetString(flagConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log := clog.Default()
	if quiet, _ := cmd.Flags().GetBool(flagQuiet); quiet {
		log = clog.Discard
	}
	if cfg.Mode == rdf.ModeNaive {
		log.Warningf("naive splitting is enabled: literals containing spaces will be split incorrectly")
	}

	paths, _ := cmd.Flags().GetStringSlice(flagInput)
	paths = append(paths, args...)
	if len(paths) == 0 {
		paths = []string{inputs.Stdin}
	}
	fs := afero.NewOsFs()
	files, err := inputs.Expand(fs, paths, log)
	if err != nil {
		return err
	}

	op := inputs.Opener{Fs: fs, Stdin: cmd.InOrStdin()}
	if cfg.Progress {
		op.Progress = cmd.ErrOrStderr()
	}
	sources := make([]convert.Source, 0, len(files))
	for _, path := range files {
		path := path
		name := path
		if path == inputs.Stdin {
			name = "stdin"
		}
		sources = append(sources, convert.Source{
			Name: name,
			Open: func() (io.ReadCloser, error) { return op.Open(path) },
		})
	}

	enc, err := tabular.NewEncoder(cfg.Tabular)
	if err != nil {
		return err
	}
	conv := convert.New(convert.Options{Dialect: cfg.Dialect, Mode: cfg.Mode, Log: log})
	start := time.Now()
	n, err := conv.Run(convert.Output{
		Path:   cfg.Output,
		Stdout: cmd.OutOrStdout(),
		Fs:     fs,
		Log:    log,
	}, enc, sources)
	if cfg.MetricsFile != "" {
		if merr := convert.WriteMetrics(cfg.MetricsFile); merr != nil {
			log.Warningf("could not write metrics to %q: %v", cfg.MetricsFile, merr)
		}
	}
	if err != nil {
		return err
	}
	log.Infof("%d records were written in %v", n, time.Since(start))
	return nil
}
