package aggregators

import (
	"context"
	"time"

	"log-report/internal/models"
	"log-report/internal/shared/loggers"

	"github.com/sourcegraph/conc"
)

// ReportAggregator runs the three reducers over one record collection.
type ReportAggregator interface {
	Aggregate(ctx context.Context, records []models.LogRecord) *models.Report
}

type reportAggregator struct {
	parallel bool
}

// NewReportAggregator returns an aggregator. With parallel set the reducers
// run concurrently; they only read the shared slice.
func NewReportAggregator(parallel bool) ReportAggregator {
	return &reportAggregator{parallel: parallel}
}

func (a *reportAggregator) Aggregate(ctx context.Context, records []models.LogRecord) *models.Report {
	start := time.Now()
	report := models.NewEmptyReport()

	if a.parallel {
		var wg conc.WaitGroup
		wg.Go(func() { report.RequestTypes = CountByRequestType(records) })
		wg.Go(func() { report.Errors = CountErrorsByEndpointAndStatus(records) })
		wg.Go(func() { report.AvgResponseTime = AvgResponseTimeByEndpoint(records) })
		wg.Wait()
	} else {
		report.RequestTypes = CountByRequestType(records)
		report.Errors = CountErrorsByEndpointAndStatus(records)
		report.AvgResponseTime = AvgResponseTimeByEndpoint(records)
	}

	elapsed := time.Since(start)
	metricAggregationDurationSeconds.Observe(elapsed.Seconds())
	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldRecordCount, len(records)).
		Dur(loggers.FieldDuration, elapsed).
		Bool("parallel", a.parallel).
		Msg("records aggregated")

	return report
}
