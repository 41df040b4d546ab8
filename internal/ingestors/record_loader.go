package ingestors

import (
	"context"
	"errors"
	"fmt"
	"io"

	"log-report/internal/models"
	"log-report/internal/parsers"
	"log-report/internal/shared/loggers"
	"log-report/internal/sources"
)

// LoadResult is the record collection produced from one line source.
type LoadResult struct {
	// Records keeps input order and is never nil.
	Records       []models.LogRecord
	TotalLines    int
	SkippedLines  int
	FilteredLines int
}

// RecordLoader drains a line source into a record collection. Unparseable
// lines are reported to the diagnostics sink and skipped; a failing source
// aborts the load with ErrIoFailure.
type RecordLoader interface {
	Load(ctx context.Context, source sources.LineSource) (*LoadResult, error)
}

type recordLoader struct {
	lineParser     parsers.LineParser
	endpointFilter EndpointFilter
	diagnostics    DiagnosticsSink
}

func NewRecordLoader(lineParser parsers.LineParser, endpointFilter EndpointFilter, diagnostics DiagnosticsSink) RecordLoader {
	return &recordLoader{
		lineParser:     lineParser,
		endpointFilter: endpointFilter,
		diagnostics:    diagnostics,
	}
}

func (l *recordLoader) Load(ctx context.Context, source sources.LineSource) (*LoadResult, error) {
	result := &LoadResult{Records: make([]models.LogRecord, 0)}
	defer recordLineMetrics(result)

	for {
		line, err := source.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			loggers.Ctx(ctx).Error().Err(err).Int(loggers.FieldLineNumber, result.TotalLines+1).Msg("error reading log input")
			return nil, fmt.Errorf("%w: %w", ErrIoFailure, err)
		}
		result.TotalLines++

		record, err := l.lineParser.Parse(line.Text)
		if err != nil {
			result.SkippedLines++
			l.diagnostics.Warn(ctx, fmt.Sprintf("error parsing line %d: %v", line.Number, err))
			continue
		}

		if !l.endpointFilter.Match(record.EndpointPath) {
			result.FilteredLines++
			continue
		}
		result.Records = append(result.Records, record)
	}

	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldTotalLines, result.TotalLines).
		Int(loggers.FieldSkippedLines, result.SkippedLines).
		Int(loggers.FieldFiltered, result.FilteredLines).
		Msg("log input loaded")

	return result, nil
}

func recordLineMetrics(result *LoadResult) {
	metricLinesTotal.WithLabelValues(lineResultParsed).Add(float64(len(result.Records)))
	metricLinesTotal.WithLabelValues(lineResultSkipped).Add(float64(result.SkippedLines))
	metricLinesTotal.WithLabelValues(lineResultFiltered).Add(float64(result.FilteredLines))
}
