// Copyright 2014 The Cayley Authors. All rights reserved.
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

// Package config holds the settings of a conversion run.
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/cayleygraph/rdf2csv/rdf"
	"github.com/cayleygraph/rdf2csv/tabular"
)

const (
	KeyFormat   = "input.format"
	KeySplit    = "input.split"
	KeyProgress = "input.progress"

	KeyOutput         = "output.path"
	KeyDelimiter      = "output.delimiter"
	KeyQuote          = "output.quote"
	KeyLineTerminator = "output.line_terminator"

	KeyMetricsFile = "metrics.file"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// for example RDF2CSV_INPUT_FORMAT.
const EnvPrefix = "RDF2CSV"

var ErrInvalidOption = errors.New("invalid option")

// Config defines the behavior of a conversion run.
type Config struct {
	Dialect     rdf.Dialect
	Mode        rdf.Mode
	Output      string
	Tabular     tabular.Dialect
	Progress    bool
	MetricsFile string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, rdf.NTriples.String())
	v.SetDefault(KeySplit, rdf.ModeQuoted.String())
	v.SetDefault(KeyProgress, false)
	v.SetDefault(KeyOutput, "-")
	v.SetDefault(KeyDelimiter, string(tabular.DefaultDialect.Delimiter))
	v.SetDefault(KeyQuote, string(tabular.DefaultDialect.Quote))
	v.SetDefault(KeyLineTerminator, "crlf")
	v.SetDefault(KeyMetricsFile, "")
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	d, err := rdf.ParseDialect(v.GetString(KeyFormat))
	if err != nil {
		return nil, err
	}
	m, err := rdf.ParseMode(v.GetString(KeySplit))
	if err != nil {
		return nil, err
	}
	delim, err := parseRune(KeyDelimiter, v.GetString(KeyDelimiter))
	if err != nil {
		return nil, err
	}
	quote, err := parseRune(KeyQuote, v.GetString(KeyQuote))
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(v.GetString(KeyLineTerminator))
	if err != nil {
		return nil, err
	}
	td := tabular.Dialect{Delimiter: delim, Quote: quote, LineTerminator: term}
	if err := td.Validate(); err != nil {
		return nil, err
	}
	return &Config{
		Dialect:     d,
		Mode:        m,
		Output:      v.GetString(KeyOutput),
		Tabular:     td,
		Progress:    v.GetBool(KeyProgress),
		MetricsFile: v.GetString(KeyMetricsFile),
	}, nil
}

func parseRune(key, s string) (rune, error) {
	switch strings.ToLower(s) {
	case "tab", `\t`:
		return '\t', nil
	case "space":
		return ' ', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidOption, key, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func parseTerminator(s string) (string, error) {
	switch strings.ToLower(s) {
	case "crlf", `\r\n`:
		return "\r\n", nil
	case "lf", `\n`:
		return "\n", nil
	}
	return "", fmt.Errorf("%w: %s must be \"crlf\" or \"lf\", got %q", ErrInvalidOption, KeyLineTerminator, s)
}
