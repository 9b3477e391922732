package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard service.
type Metrics struct {
	DatasetsGenerated  *prometheus.CounterVec // label: region
	GenerationDuration prometheus.Histogram
	DatasetSize        prometheus.Histogram

	// Reference data metrics.
	CatalogCache      *prometheus.CounterVec // label: result={hit,miss}
	CoordinateMisses  prometheus.Counter
	LoadedDistricts   prometheus.Gauge
	LoadedCoordinates prometheus.Gauge

	// Workflow metrics.
	RequestsSubmitted prometheus.Counter
	RequestsApproved  prometheus.Counter
	RejectedActions   *prometheus.CounterVec // label: reason
	Logins            prometheus.Counter
	ActiveSessions    prometheus.Gauge
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_dashboard",
			Name:      "datasets_generated_total",
			Help:      "Region datasets generated, by region.",
		}, []string{"region"}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crisis_dashboard",
			Name:      "generation_duration_seconds",
			Help:      "Duration of one region dataset generation.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		DatasetSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "crisis_dashboard",
			Name:      "dataset_size_districts",
			Help:      "Districts per generated dataset.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		CatalogCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_dashboard",
			Name:      "catalog_cache_total",
			Help:      "District catalog cache lookups by result.",
		}, []string{"result"}),
		CoordinateMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_dashboard",
			Name:      "coordinate_misses_total",
			Help:      "Generated districts missing from the coordinate table.",
		}),
		LoadedDistricts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crisis_dashboard",
			Name:      "refdata_districts",
			Help:      "District rows loaded from the catalog reference file.",
		}),
		LoadedCoordinates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crisis_dashboard",
			Name:      "refdata_coordinates",
			Help:      "Districts with coordinates in the reference table.",
		}),
		RequestsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_dashboard",
			Name:      "aid_requests_submitted_total",
			Help:      "Aid requests appended to session request sequences.",
		}),
		RequestsApproved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_dashboard",
			Name:      "aid_requests_approved_total",
			Help:      "Aid requests transitioned from Pending to Approved.",
		}),
		RejectedActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crisis_dashboard",
			Name:      "rejected_actions_total",
			Help:      "User actions rejected as recoverable no-ops, by reason.",
		}, []string{"reason"}),
		Logins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crisis_dashboard",
			Name:      "logins_total",
			Help:      "Successful government logins.",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crisis_dashboard",
			Name:      "active_sessions",
			Help:      "Sessions issued since startup.",
		}),
	}

	prometheus.MustRegister(
		m.DatasetsGenerated,
		m.GenerationDuration,
		m.DatasetSize,
		m.CatalogCache,
		m.CoordinateMisses,
		m.LoadedDistricts,
		m.LoadedCoordinates,
		m.RequestsSubmitted,
		m.RequestsApproved,
		m.RejectedActions,
		m.Logins,
		m.ActiveSessions,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DatasetsGenerated:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "crisis_dashboard", Name: "datasets_generated_total"}, []string{"region"}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "crisis_dashboard", Name: "generation_duration_seconds"}),
		DatasetSize:        prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "crisis_dashboard", Name: "dataset_size_districts"}),
		CatalogCache:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "crisis_dashboard", Name: "catalog_cache_total"}, []string{"result"}),
		CoordinateMisses:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_dashboard", Name: "coordinate_misses_total"}),
		LoadedDistricts:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "crisis_dashboard", Name: "refdata_districts"}),
		LoadedCoordinates:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "crisis_dashboard", Name: "refdata_coordinates"}),
		RequestsSubmitted:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_dashboard", Name: "aid_requests_submitted_total"}),
		RequestsApproved:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_dashboard", Name: "aid_requests_approved_total"}),
		RejectedActions:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "crisis_dashboard", Name: "rejected_actions_total"}, []string{"reason"}),
		Logins:             prometheus.NewCounter(prometheus.CounterOpts{Namespace: "crisis_dashboard", Name: "logins_total"}),
		ActiveSessions:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "crisis_dashboard", Name: "active_sessions"}),
	}
}
