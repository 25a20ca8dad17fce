package loader

import (
	"strconv"
	"time"

	pkgerrors "github.com/k-code-yt/ecommerce-dataset/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics uses its own registry; a batch run has no scrape endpoint, so the
// registry is written to a node_exporter textfile instead.
type Metrics struct {
	Registry *prometheus.Registry

	rowsLoaded      *prometheus.GaugeVec
	failures        *prometheus.CounterVec
	emptyDatasets   *prometheus.CounterVec
	loadDuration    prometheus.Histogram
	lastSuccess     prometheus.Gauge
	kpiRows         prometheus.Gauge
	validationPhase prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		rowsLoaded: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ecomdata_rows_loaded",
				Help: "Rows inserted per table by the last committed load",
			},
			[]string{"table"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecomdata_load_failures_total",
				Help: "Aborted loads by error code",
			},
			[]string{"code"},
		),
		emptyDatasets: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecomdata_empty_datasets_total",
				Help: "Source tables that had no rows",
			},
			[]string{"table"},
		),
		loadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ecomdata_load_duration_seconds",
				Help:    "Duration of the load transaction",
				Buckets: prometheus.DefBuckets,
			},
		),
		validationPhase: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ecomdata_validation_duration_seconds",
				Help:    "Duration of reading, transforming and validating the sources",
				Buckets: prometheus.DefBuckets,
			},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ecomdata_last_success_timestamp_seconds",
				Help: "Unix time of the last committed load",
			},
		),
		kpiRows: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ecomdata_customer_kpis_rows",
				Help: "Rows materialized into customer_kpis",
			},
		),
	}
	m.Registry.MustRegister(m.rowsLoaded, m.failures, m.emptyDatasets, m.loadDuration, m.validationPhase, m.lastSuccess, m.kpiRows)
	return m
}

func (m *Metrics) ObserveRows(table string, n int) {
	m.rowsLoaded.WithLabelValues(table).Set(float64(n))
}

func (m *Metrics) ObserveFailure(err error) {
	m.failures.WithLabelValues(strconv.Itoa(pkgerrors.GetErrorCode(err))).Inc()
}

func (m *Metrics) ObserveEmpty(table string) {
	m.emptyDatasets.WithLabelValues(table).Inc()
}

func (m *Metrics) ObserveValidation(start time.Time) {
	m.validationPhase.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveLoad(start time.Time, kpis int) {
	m.loadDuration.Observe(time.Since(start).Seconds())
	m.kpiRows.Set(float64(kpis))
	m.lastSuccess.SetToCurrentTime()
}

// WriteTextfile is a no-op for an empty path.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
