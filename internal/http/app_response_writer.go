package http

import (
	"net/http"

	"log-report/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter wraps the http.ResponseWriter so middleware can see what the
// handler did: the service error it failed with and the report it touched.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
	reportID string
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

func (w *appResponseWriter) SetReportID(reportID string) {
	w.reportID = reportID
}

func (w *appResponseWriter) ReportID() string {
	return w.reportID
}

// markReport records reportID on w when w is an appResponseWriter.
func markReport(w http.ResponseWriter, reportID string) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetReportID(reportID)
	}
}
