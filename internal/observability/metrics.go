package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus counters, gauges and histograms for a run.
type Metrics struct {
	RecordsParsed     prometheus.Counter
	LinesSkipped      *prometheus.CounterVec // labels: reason={field_count,code,coordinate}
	RegionsAggregated prometheus.Gauge
	RunDuration       prometheus.Histogram
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewMetrics creates all metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.RecordsParsed,
		m.LinesSkipped,
		m.RegionsAggregated,
		m.RunDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "zip_extremes",
			Name:      "records_parsed_total",
			Help:      "Total records successfully parsed from the input file.",
		}),
		LinesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "zip_extremes",
			Name:      "lines_skipped_total",
			Help:      "Malformed input lines skipped during bulk reads, by reason.",
		}, []string{"reason"}),
		RegionsAggregated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "zip_extremes",
			Name:      "regions_aggregated",
			Help:      "Number of distinct regions in the last aggregation.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "zip_extremes",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete read-and-aggregate run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}

// WriteTextfile writes all metrics gathered from g to path in the Prometheus
// text format, for pickup by node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
