package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leengari/kidb/internal/engine"
)

// Metrics owns a private registry so several servers (and tests) can
// coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	// QueriesTotal counts engine queries by entry point.
	QueriesTotal *prometheus.CounterVec
	// QueryDuration is the latency of engine queries.
	QueryDuration *prometheus.HistogramVec
	// QueryRows is the number of rows or values a query returned.
	QueryRows *prometheus.HistogramVec
	// RequestTotal counts HTTP requests by method, route and status.
	RequestTotal *prometheus.CounterVec
	// RequestDuration is the latency of HTTP requests.
	RequestDuration *prometheus.HistogramVec
	// TableRows is the size of the loaded table.
	TableRows prometheus.Gauge
}

// New creates the collectors and registers them with a fresh registry,
// together with the Go runtime and process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kidb_queries_total",
				Help: "Total number of engine queries",
			},
			[]string{"op"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kidb_query_duration_seconds",
				Help:    "Engine query latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"op"},
		),
		QueryRows: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kidb_query_rows",
				Help:    "Rows or values returned per engine query",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"op"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kidb_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kidb_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		TableRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "kidb_table_rows",
			Help: "Number of rows in the loaded Ki table",
		}),
	}

	reg.MustRegister(
		m.QueriesTotal,
		m.QueryDuration,
		m.QueryRows,
		m.RequestTotal,
		m.RequestDuration,
		m.TableRows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// OnEvent implements engine.Observer
func (m *Metrics) OnEvent(event engine.Event) {
	if event.Type != engine.EventQueryEnd {
		return
	}
	op := string(event.Op)
	m.QueriesTotal.WithLabelValues(op).Inc()
	m.QueryDuration.WithLabelValues(op).Observe(event.Duration.Seconds())
	m.QueryRows.WithLabelValues(op).Observe(float64(event.Rows))
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	m.RequestTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// SetTableRows publishes the loaded table size
func (m *Metrics) SetTableRows(n int) {
	m.TableRows.Set(float64(n))
}

// Handler returns the Prometheus HTTP handler for /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
