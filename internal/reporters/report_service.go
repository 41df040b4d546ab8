// Package reporters runs the parse, aggregate and render pipeline and keeps the
// resulting report artifacts.
package reporters

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"log-report/internal/aggregators"
	"log-report/internal/formatters"
	"log-report/internal/ingestors"
	"log-report/internal/models"
	"log-report/internal/shared/loggers"
	"log-report/internal/shared/metrics"
	"log-report/internal/shared/svcerrors"
	"log-report/internal/shared/ulid"
	"log-report/internal/sources"
	"log-report/internal/stores"
)

// GenerateReportRequest describes one report run.
type GenerateReportRequest struct {
	Source sources.LineSource
	// Format is a user supplied format name; empty selects the service default.
	Format string
	// ReportID stores the report under reports/<ReportID>/. Empty stores it as the
	// format's fixed artifact (output.txt, output.csv) at the storage root.
	ReportID string
}

// ReportResult is a rendered report and where it was stored.
type ReportResult struct {
	ReportID string
	Format   models.OutputFormat
	Key      string
	Path     string
	Content  []byte

	TotalLines    int
	SkippedLines  int
	FilteredLines int
	RecordCount   int
}

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// GenerateReport loads records from the request source, aggregates them and
	// stores the rendered report. Nothing is stored when any step fails.
	GenerateReport(ctx context.Context, req GenerateReportRequest) (*ReportResult, error)
	// GetReport returns a report previously generated with a ReportID.
	GetReport(ctx context.Context, reportID string, format string) (*ReportResult, error)
}

type reportService struct {
	recordLoader     ingestors.RecordLoader
	reportAggregator aggregators.ReportAggregator
	reportStore      stores.ReportStore
	defaultFormat    models.OutputFormat
}

func NewReportService(recordLoader ingestors.RecordLoader, reportAggregator aggregators.ReportAggregator, reportStore stores.ReportStore, defaultFormat models.OutputFormat) ReportService {
	return &reportService{
		recordLoader:     recordLoader,
		reportAggregator: reportAggregator,
		reportStore:      reportStore,
		defaultFormat:    defaultFormat,
	}
}

func (s *reportService) GenerateReport(ctx context.Context, req GenerateReportRequest) (result *ReportResult, err error) {
	format, err := s.resolveFormat(req.Format)
	defer func() {
		metricReportGeneratedTotal.WithLabelValues(metricFormatLabel(format), errorCodeLabel(err)).Inc()
	}()
	if err != nil {
		return nil, err
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldOutputFormat, string(format)).Str(loggers.FieldReportID, req.ReportID).Msg("started generating report")

	loadResult, err := s.recordLoader.Load(ctx, req.Source)
	if err != nil {
		return nil, errInputUnreadable(err)
	}

	report := s.reportAggregator.Aggregate(ctx, loadResult.Records)

	formatter, err := formatters.New(format)
	if err != nil {
		return nil, errUnsupportedFormat(string(format), err)
	}
	var buf bytes.Buffer
	if err := formatter.Render(&buf, report); err != nil {
		return nil, errInternalRenderFailed(err)
	}

	key := format.FileName()
	save := s.reportStore.Save
	if req.ReportID != "" {
		key = stores.ReportKey(req.ReportID, format)
		save = s.reportStore.Create
	}
	path, err := save(ctx, key, buf.Bytes())
	if err != nil {
		return nil, errInternalReportStoreFailed(err)
	}

	logger.Info().
		Str(loggers.FieldReportID, req.ReportID).
		Str(loggers.FieldOutputFormat, string(format)).
		Str(loggers.FieldFileKey, key).
		Int(loggers.FieldTotalLines, loadResult.TotalLines).
		Int(loggers.FieldSkippedLines, loadResult.SkippedLines).
		Int(loggers.FieldFiltered, loadResult.FilteredLines).
		Int(loggers.FieldRecordCount, len(loadResult.Records)).
		Msg("report generated")

	return &ReportResult{
		ReportID:      req.ReportID,
		Format:        format,
		Key:           key,
		Path:          path,
		Content:       buf.Bytes(),
		TotalLines:    loadResult.TotalLines,
		SkippedLines:  loadResult.SkippedLines,
		FilteredLines: loadResult.FilteredLines,
		RecordCount:   len(loadResult.Records),
	}, nil
}

func (s *reportService) GetReport(ctx context.Context, reportID string, format string) (*ReportResult, error) {
	if !ulid.IsValid(reportID) {
		return nil, errInvalidReportID(reportID)
	}
	outputFormat, err := s.resolveFormat(format)
	if err != nil {
		return nil, err
	}

	key := stores.ReportKey(reportID, outputFormat)
	content, err := s.reportStore.Get(ctx, key)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return nil, errReportNotFound(reportID, err)
		}
		return nil, errInternalReportStoreFailed(err)
	}

	return &ReportResult{
		ReportID: reportID,
		Format:   outputFormat,
		Key:      key,
		Content:  content,
	}, nil
}

func (s *reportService) resolveFormat(format string) (models.OutputFormat, error) {
	if strings.TrimSpace(format) == "" {
		return s.defaultFormat, nil
	}
	outputFormat, err := models.NewOutputFormatFromString(format)
	if err != nil {
		return "", errUnsupportedFormat(format, err)
	}
	return outputFormat, nil
}

func metricFormatLabel(format models.OutputFormat) string {
	if format == "" {
		return "unknown"
	}
	return string(format)
}

func errorCodeLabel(err error) string {
	if err == nil {
		return metrics.ValueNoError
	}
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	return svcErr.Code
}
