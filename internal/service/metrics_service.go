package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the panel.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec
	auditWrites     *prometheus.CounterVec
}

// NewMetricsService registers the panel's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	dbQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database statements in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	auditWrites := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "audit_entries_total",
		Help: "Audit ledger append attempts by outcome",
	}, []string{"outcome"})

	registry.MustRegister(requestDuration, requestTotal, dbQueryDuration, auditWrites)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		dbQueryDuration: dbQueryDuration,
		auditWrites:     auditWrites,
	}
}

// Handler returns the Prometheus scrape handler.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one completed HTTP request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveDBQuery records one database statement.
func (s *MetricsService) ObserveDBQuery(operation string, duration time.Duration) {
	s.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveAuditWrite counts an audit append attempt by outcome.
func (s *MetricsService) ObserveAuditWrite(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	s.auditWrites.WithLabelValues(outcome).Inc()
}
