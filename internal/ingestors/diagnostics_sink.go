package ingestors

import (
	"context"

	"log-report/internal/shared/loggers"

	"golang.org/x/time/rate"
)

// DiagnosticsSink receives human-readable warnings about skipped lines.
// Warn never fails and never aborts the pipeline.
type DiagnosticsSink interface {
	Warn(ctx context.Context, msg string)
}

type loggerDiagnosticsSink struct {
	limiter *rate.Limiter
}

// NewLoggerDiagnosticsSink writes warnings to the context logger, at most
// warningsPerSecond per second with the given burst. Warnings over the limit are
// only counted. A rate of 0 disables throttling.
func NewLoggerDiagnosticsSink(warningsPerSecond float64, burst int) DiagnosticsSink {
	sink := &loggerDiagnosticsSink{}
	if warningsPerSecond > 0 {
		sink.limiter = rate.NewLimiter(rate.Limit(warningsPerSecond), max(burst, 1))
	}
	return sink
}

func (s *loggerDiagnosticsSink) Warn(ctx context.Context, msg string) {
	if s.limiter != nil && !s.limiter.Allow() {
		metricWarningsSuppressedTotal.Inc()
		return
	}
	loggers.Ctx(ctx).Warn().Msg(msg)
}
