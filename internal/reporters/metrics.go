package reporters

import (
	"log-report/internal/shared/metrics"
)

var (
	// metricReportGeneratedTotal counts GenerateReport calls by requested format and
	// outcome. A successful run has an empty error_code.
	metricReportGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "generated_total",
		},
		[]string{metrics.FieldFormat, metrics.FieldErrorCode},
	)
)
