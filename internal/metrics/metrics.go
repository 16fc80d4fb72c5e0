// Package metrics defines the Prometheus collectors shared by the fetch
// pipeline and the assistant relay server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "carbontradle"

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	FetchChunks       *prometheus.CounterVec
	FetchedUnits      prometheus.Counter
	SimplifiedRecords prometheus.Counter

	CompletionRequests *prometheus.CounterVec
	CompletionDuration *prometheus.HistogramVec

	HTTPRequests *prometheus.CounterVec
}

// New creates a private registry and registers all metrics on it
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		FetchChunks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_chunks_total",
			Help:      "Emissions API chunk requests by outcome",
		}, []string{"outcome"}),
		FetchedUnits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_response_units_total",
			Help:      "Raw response units collected from the emissions API",
		}),
		SimplifiedRecords: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simplified_records_total",
			Help:      "Flat emission records produced by the simplifier",
		}),
		CompletionRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completion_requests_total",
			Help:      "Chat-completion calls by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		CompletionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "completion_duration_seconds",
			Help:      "Latency of chat-completion calls",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40},
		}, []string{"endpoint"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served by route and status",
		}, []string{"method", "route", "status"}),
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveChunk records the outcome of one emissions API chunk request
func (m *Metrics) ObserveChunk(ok bool, units int) {
	if m == nil {
		return
	}
	if !ok {
		m.FetchChunks.WithLabelValues("failed").Inc()
		return
	}
	m.FetchChunks.WithLabelValues("ok").Inc()
	m.FetchedUnits.Add(float64(units))
}

// ObserveSimplified records how many flat records a simplify pass produced
func (m *Metrics) ObserveSimplified(n int) {
	if m == nil {
		return
	}
	m.SimplifiedRecords.Add(float64(n))
}

// ObserveCompletion records one chat-completion call
func (m *Metrics) ObserveCompletion(endpoint string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.CompletionRequests.WithLabelValues(endpoint, outcome).Inc()
	m.CompletionDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// ObserveHTTP records one served HTTP request
func (m *Metrics) ObserveHTTP(method, route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
