// Package metrics exposes generation-run metrics on a private Prometheus registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/simaogato/banksynth/internal/domain"
)

const namespace = "banksynth"

// Metrics holds the collectors updated by the generation pipeline
type Metrics struct {
	registry *prometheus.Registry

	// Runs counts completed generation runs
	Runs prometheus.Counter
	// Rows counts generated rows, labelled by table
	Rows *prometheus.CounterVec
	// SkippedTransactions counts ledger iterations skipped for lack of a date window
	SkippedTransactions prometheus.Counter
	// RunDuration observes end-to-end run time
	RunDuration prometheus.Histogram
	// StageFailures counts aborted stages, labelled by stage
	StageFailures *prometheus.CounterVec
	// SinkFailures counts failed persistence attempts, labelled by sink
	SinkFailures *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_runs_total",
			Help:      "Total completed generation runs",
		}),
		Rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_rows_total",
			Help:      "Total generated rows by table",
		}, []string{"table"}),
		SkippedTransactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_transactions_total",
			Help:      "Ledger iterations skipped because the account had no valid date window",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Generation run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		StageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_failures_total",
			Help:      "Generation stages aborted by a precondition failure",
		}, []string{"stage"}),
		SinkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_failures_total",
			Help:      "Failed attempts to persist a dataset",
		}, []string{"sink"}),
	}

	m.registry.MustRegister(
		m.Runs,
		m.Rows,
		m.SkippedTransactions,
		m.RunDuration,
		m.StageFailures,
		m.SinkFailures,
	)

	return m
}

// Registry returns the private registry the collectors live on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRun records the row counts, skips and duration of a completed run
func (m *Metrics) ObserveRun(stats domain.GenerationStats) {
	m.Runs.Inc()
	m.Rows.WithLabelValues("customers").Add(float64(stats.CustomerCount))
	m.Rows.WithLabelValues("kyc").Add(float64(stats.KYCCount))
	m.Rows.WithLabelValues("accounts").Add(float64(stats.AccountCount))
	m.Rows.WithLabelValues("transactions").Add(float64(stats.TransactionCount))
	m.Rows.WithLabelValues("transfers").Add(float64(stats.TransferCount))
	m.SkippedTransactions.Add(float64(stats.SkippedTransactions))
	m.RunDuration.Observe(stats.ElapsedSeconds)
}

// StageFailed records an aborted stage
func (m *Metrics) StageFailed(stage string) {
	m.StageFailures.WithLabelValues(stage).Inc()
}

// SinkFailed records a failed persistence attempt
func (m *Metrics) SinkFailed(sink string) {
	m.SinkFailures.WithLabelValues(sink).Inc()
}
