package command

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdf2csv/internal/inputs"
	"github.com/cayleygraph/rdf2csv/rdf"
	"github.com/cayleygraph/rdf2csv/version"
)

func writeFile(t testing.TB, path, data string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

func execute(t testing.TB, stdin string, args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "in", "b.nt"), "<urn:b> <urn:p> <urn:2> .\n")
	writeFile(t, filepath.Join(dir, "in", "a.nt"), "<urn:a> <urn:p> <urn:1> .\n")
	outPath := filepath.Join(dir, "out", "result.csv")

	_, err := execute(t, "", "-i", filepath.Join(dir, "in"), "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "<urn:a>;<urn:p>;<urn:1>\r\n<urn:b>;<urn:p>;<urn:2>\r\n", string(data))
}

func TestConvertStdin(t *testing.T) {
	out, err := execute(t, "<urn:a> <urn:b> \"hi\" <urn:g> .\n",
		"--format", "nq", "--delimiter", "tab", "--line_terminator", "lf")
	require.NoError(t, err)
	require.Equal(t, "<urn:a>\t<urn:b>\t\"\"\"hi\"\"\"\n", out)
}

func TestConvertPositionalArgs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.nt")
	b := filepath.Join(dir, "b.nt")
	writeFile(t, a, "<urn:a> <urn:p> <urn:1> .\n")
	writeFile(t, b, "<urn:b> <urn:p> <urn:2> .\n")

	out, err := execute(t, "", b, a)
	require.NoError(t, err)
	require.Equal(t, "<urn:b>;<urn:p>;<urn:2>\r\n<urn:a>;<urn:p>;<urn:1>\r\n", out)
}

func TestConvertEnvironment(t *testing.T) {
	t.Setenv("RDF2CSV_OUTPUT_DELIMITER", ",")
	t.Setenv("RDF2CSV_INPUT_SPLIT", "naive")
	out, err := execute(t, "<urn:a> <urn:b> <urn:c> .\n")
	require.NoError(t, err)
	require.Equal(t, "<urn:a>,<urn:b>,<urn:c>\r\n", out)
}

func TestConvertConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "rdf2csv.yml")
	writeFile(t, conf, "input:\n  format: nq\noutput:\n  delimiter: \"|\"\n  line_terminator: lf\n")

	out, err := execute(t, "<urn:a> <urn:b> <urn:c> <urn:g> .\n", "--config", conf)
	require.NoError(t, err)
	require.Equal(t, "<urn:a>|<urn:b>|<urn:c>\n", out)

	// flags win over the file
	out, err = execute(t, "<urn:a> <urn:b> <urn:c> .\n", "--config", conf, "--delimiter", ";")
	require.NoError(t, err)
	require.Equal(t, "<urn:a>;<urn:b>;<urn:c>\n", out)
}

func TestConvertMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rdf2csv.prom")
	_, err := execute(t, "<urn:a> <urn:b> <urn:c> .\n", "--metrics_file", path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "rdf2csv_rows_written_total")
}

func TestConvertMalformed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.nt")
	writeFile(t, in, "<urn:a> <urn:b> <urn:c> .\n<urn:a> <urn:b>\n")

	out, err := execute(t, "", in)
	require.True(t, errors.Is(err, rdf.ErrTooFewTerms), "got %v", err)
	require.Equal(t, in+":2:16: line ends before all terms were read", err.Error())
	require.Equal(t, 1, ExitCode(err))
	require.Equal(t, "<urn:a>;<urn:b>;<urn:c>\r\n", out)
}

func TestConvertMissingInput(t *testing.T) {
	_, err := execute(t, "", filepath.Join(t.TempDir(), "missing.nt"))
	require.True(t, errors.Is(err, inputs.ErrInputNotFound), "got %v", err)
	require.Equal(t, 2, ExitCode(err))
}

func TestConvertInvalidOptions(t *testing.T) {
	for _, args := range [][]string{
		{"--format", "ttl"},
		{"--split", "regex"},
		{"--delimiter", "ab"},
		{"--delimiter", `"`},
		{"--line_terminator", "cr"},
	} {
		_, err := execute(t, "", args...)
		require.Error(t, err, "%v", args)
		require.Equal(t, 1, ExitCode(err), "%v", args)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "rdf2csv "+version.Version), out)
}
