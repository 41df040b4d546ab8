package ingestors

import (
	"log-report/internal/shared/metrics"
)

const (
	lineResultParsed   = "parsed"
	lineResultSkipped  = "skipped"
	lineResultFiltered = "filtered"
)

var (
	// metricLinesTotal counts input lines by outcome:
	//   - parsed: turned into a record kept in the collection
	//   - skipped: rejected by the parser (too few fields)
	//   - filtered: parsed but excluded by the endpoint filter
	metricLinesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubPipeline,
			Name:      "lines_total",
		},
		[]string{metrics.FieldResult},
	)

	metricWarningsSuppressedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDiagnostics,
			Name:      "warnings_suppressed_total",
		},
	)
)
