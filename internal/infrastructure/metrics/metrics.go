// Package metrics provides Prometheus metrics for the match backend.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchesGenerated counts scored pairs by the scorer that produced them
	MatchesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatormatch",
			Subsystem: "matching",
			Name:      "generated_total",
			Help:      "Total number of generated matches by source",
		},
		[]string{"source"},
	)

	// MatchesReused counts pairs answered from an existing match record
	MatchesReused = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "creatormatch",
			Subsystem: "matching",
			Name:      "reused_total",
			Help:      "Total number of pairs served from stored matches",
		},
	)

	// GeneratorDuration tracks time spent scoring one pair, fallback included
	GeneratorDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "creatormatch",
			Subsystem: "matching",
			Name:      "generation_duration_seconds",
			Help:      "Duration of single pair generation in seconds",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 20, 30},
		},
	)

	// HTTPRequestsTotal tracks inbound HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "creatormatch",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks inbound HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "creatormatch",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of inbound HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
