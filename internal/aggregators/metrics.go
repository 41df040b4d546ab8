package aggregators

import (
	"log-report/internal/shared/metrics"
)

var (
	// metricAggregationDurationSeconds observes the wall time of one Aggregate call
	// (all three reducers).
	metricAggregationDurationSeconds = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "aggregation_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
	)
)
