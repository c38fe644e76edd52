package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "motix_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "motix_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	AuthRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "motix_auth_rejections_total",
			Help: "Write requests rejected by the API-key gate",
		},
		[]string{"reason"}, // "missing" or "invalid"
	)

	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "motix_ml_predictions_total",
			Help: "Should-move predictions served, by decision",
		},
		[]string{"decision"}, // "move" or "stay"
	)
)
