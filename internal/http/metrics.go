package http

import (
	"log-report/internal/shared/metrics"
)

// Labels shared by the report API request metrics. route is the chi pattern,
// so every report id is counted under /reports/{reportID}.
var requestLabels = []string{"method", "route", "status", metrics.FieldErrorCode}

var (
	metricRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
			Help:      "Report API requests per route and outcome.",
		},
		requestLabels,
	)

	metricRequestDurationSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Help:      "Time spent serving report API requests, including report generation.",
			Buckets:   metrics.DefBuckets,
		},
		requestLabels,
	)
)
