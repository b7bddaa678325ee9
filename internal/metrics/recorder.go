package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "fibfinder"

// Recorder collects the metrics of benchmark runs in a private registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	generatorDuration *prometheus.HistogramVec
	percentError      *prometheus.GaugeVec
	referenceFailures *prometheus.CounterVec
	benchmarkRuns     prometheus.Counter
}

// NewRecorder creates a Recorder with its own registry. Go runtime metrics
// are registered alongside the benchmark metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		generatorDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generator_duration_seconds",
			Help:      "Time spent computing one Fibonacci number, by generator.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"algorithm", "domain"}),
		percentError: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generator_percent_error",
			Help:      "Percent error of the last result against the reference value.",
		}, []string{"algorithm", "domain"}),
		referenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reference_failures_total",
			Help:      "Reference lookups that failed, by failure kind.",
		}, []string{"kind"}),
		benchmarkRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "benchmark_runs_total",
			Help:      "Completed benchmark runs.",
		}),
	}
	r.registry.MustRegister(
		r.generatorDuration,
		r.percentError,
		r.referenceFailures,
		r.benchmarkRuns,
		collectors.NewGoCollector(),
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveGenerator records the duration of one generator call.
func (r *Recorder) ObserveGenerator(algorithm, domain string, d time.Duration) {
	if r == nil {
		return
	}
	r.generatorDuration.WithLabelValues(algorithm, domain).Observe(d.Seconds())
}

// SetPercentError records a generator's percent error.
func (r *Recorder) SetPercentError(algorithm, domain string, pct float64) {
	if r == nil {
		return
	}
	r.percentError.WithLabelValues(algorithm, domain).Set(pct)
}

// ReferenceFailure counts a failed reference lookup.
func (r *Recorder) ReferenceFailure(kind string) {
	if r == nil {
		return
	}
	r.referenceFailures.WithLabelValues(kind).Inc()
}

// BenchmarkRun counts a completed benchmark.
func (r *Recorder) BenchmarkRun() {
	if r == nil {
		return
	}
	r.benchmarkRuns.Inc()
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format, suitable for the node_exporter textfile collector.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
