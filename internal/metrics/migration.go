// Package metrics provides Prometheus metrics for backup imports.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MigrationMetrics contains Prometheus metrics for myWOD imports.
type MigrationMetrics struct {
	registry *prometheus.Registry

	runsTotal   *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
	itemsTotal  *prometheus.CounterVec
}

// NewMigrationMetrics creates and registers new migration metrics
func NewMigrationMetrics(registry *prometheus.Registry) (*MigrationMetrics, error) {
	m := &MigrationMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MigrationMetrics) initMetrics() {
	m.runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mywod_import_runs_total",
			Help: "Total number of myWOD backup imports",
		},
		[]string{"status"}, // success, invalid_file, forbidden, not_found, interrupted, error
	)

	m.runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "mywod_import_duration_seconds",
			Help: "Time taken by a myWOD backup import",
			// 50ms to ~100s
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
		[]string{"status"},
	)

	m.itemsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mywod_import_items_total",
			Help: "Total number of legacy records processed by imports",
		},
		[]string{"kind", "status"}, // status: migrated, skipped, failed
	)
}

// Describe implements the Collector interface
func (m *MigrationMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.runsTotal.Describe(ch)
	m.runDuration.Describe(ch)
	m.itemsTotal.Describe(ch)
}

// Collect implements the Collector interface
func (m *MigrationMetrics) Collect(ch chan<- prometheus.Metric) {
	m.runsTotal.Collect(ch)
	m.runDuration.Collect(ch)
	m.itemsTotal.Collect(ch)
}

// RunFinished records a completed import run.
func (m *MigrationMetrics) RunFinished(status string, elapsed time.Duration) {
	m.runsTotal.WithLabelValues(status).Inc()
	m.runDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}

// ItemProcessed records the outcome of one legacy record.
func (m *MigrationMetrics) ItemProcessed(kind, status string) {
	m.itemsTotal.WithLabelValues(kind, status).Inc()
}

// Registry returns the registry the metrics are registered with.
func (m *MigrationMetrics) Registry() *prometheus.Registry {
	return m.registry
}
