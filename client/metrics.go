package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records per-request counters and latencies of a Client.
// A nil *Metrics records nothing.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the client collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logquery_client_requests_total",
				Help: "Total number of log query requests by query type and status code",
			},
			[]string{"type", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "logquery_client_request_duration_seconds",
				Help:    "Log query round trip duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type"},
		),
	}
}

// observe records one round trip. A statusCode of 0 marks a network failure.
func (m *Metrics) observe(queryType string, statusCode int, d time.Duration) {
	if m == nil {
		return
	}
	code := "error"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	m.requestsTotal.WithLabelValues(queryType, code).Inc()
	m.requestDuration.WithLabelValues(queryType).Observe(d.Seconds())
}
