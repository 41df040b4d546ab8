package http

import (
	"net/http"

	"log-report/internal/reporters"
	"log-report/internal/shared/ulid"
	"log-report/internal/sources"

	"github.com/go-chi/chi/v5"
)

type generateReportHandler struct {
	reportService reporters.ReportService
	maxBodyBytes  int64
}

func NewGenerateReportHandler(reportService reporters.ReportService, maxBodyBytes int64) AppHttpHandler {
	return &generateReportHandler{
		reportService: reportService,
		maxBodyBytes:  maxBodyBytes,
	}
}

// Handle processes POST /reports. The body is read as raw log lines; the
// rendered report is stored and echoed back with status 201.
func (h *generateReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	reportID := ulid.NewULID()
	markReport(w, reportID)

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	result, err := h.reportService.GenerateReport(r.Context(), reporters.GenerateReportRequest{
		Source:   sources.NewReaderLineSource(body),
		Format:   outputFormat(r),
		ReportID: reportID,
	})
	if err != nil {
		return err
	}

	setReportHeaders(w, result.ReportID, result.Format.ContentType())
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(result.Content)
	return nil
}

type getReportHandler struct {
	reportService reporters.ReportService
}

func NewGetReportHandler(reportService reporters.ReportService) AppHttpHandler {
	return &getReportHandler{reportService: reportService}
}

// Handle processes GET /reports/{reportID}.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	reportID := chi.URLParam(r, paramReportID)
	markReport(w, reportID)

	result, err := h.reportService.GetReport(r.Context(), reportID, outputFormat(r))
	if err != nil {
		return err
	}

	setReportHeaders(w, result.ReportID, result.Format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
	return nil
}
