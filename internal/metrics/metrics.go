package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Server metrics collectors
var (
	// HTTP

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pits_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pits_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Authentication

	AuthCompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pits_auth_completions_total",
			Help: "Total number of OAuth callback completions",
		},
		[]string{"provider", "status"},
	)

	// Devices

	DeviceReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pits_device_reports_total",
			Help: "Total number of device reports received over MQTT",
		},
		[]string{"status"},
	)
)
