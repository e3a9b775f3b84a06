// Package metrics provides Prometheus metrics for the dashboard.
package metrics

import (
	"github.com/jmagar/ytdash/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ytdash"

var (
	// HTTPRequestsTotal counts served requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// DashboardUpdatesTotal counts dashboard updates by outcome.
	DashboardUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_updates_total",
			Help:      "Total number of dashboard updates",
		},
		[]string{"country", "outcome"},
	)

	// DatasetRows tracks rows loaded per country.
	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_rows",
			Help:      "Number of rows loaded per country",
		},
		[]string{"country"},
	)

	// ParseFailuresTotal counts cells that could not be parsed at load.
	ParseFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "Total number of unparseable cells at load",
		},
		[]string{"country", "kind"},
	)
)

// RecordRequest records a served request.
func RecordRequest(method, route, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordUpdate records a dashboard update.
func RecordUpdate(update *models.DashboardUpdate) {
	outcome := "selection"
	if update.SelectedRow == nil {
		outcome = "no_selection"
	}
	DashboardUpdatesTotal.WithLabelValues(update.Country, outcome).Inc()
}

// RecordDataset publishes load statistics for a dataset.
func RecordDataset(ds *models.Dataset) {
	DatasetRows.WithLabelValues(ds.Country).Set(float64(ds.Len()))
	ParseFailuresTotal.WithLabelValues(ds.Country, "date").Add(float64(ds.DateParseFailures))
	ParseFailuresTotal.WithLabelValues(ds.Country, "number").Add(float64(ds.NumberParseFailures))
}
