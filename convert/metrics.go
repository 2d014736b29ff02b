package convert

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mLines = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdf2csv_lines_read_total",
		Help: "Number of input lines read, including blank and comment lines.",
	})
	mSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdf2csv_lines_skipped_total",
		Help: "Number of blank and comment lines.",
	})
	mRows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdf2csv_rows_written_total",
		Help: "Number of records written to the output.",
	})
	mFiles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rdf2csv_inputs_converted_total",
		Help: "Number of inputs converted completely.",
	})
	mErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rdf2csv_errors_total",
		Help: "Number of conversions stopped by an error, by kind.",
	}, []string{"kind"})
)

// WriteMetrics dumps the conversion metrics to a file in the Prometheus
// text format, for node exporter's textfile collector.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
