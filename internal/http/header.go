package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerReportID    = "x-report-id"
	headerContentType = "content-type"

	queryFormat = "format"

	paramReportID = "reportID"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// outputFormat returns the ?format= query value; empty means the configured default.
func outputFormat(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(queryFormat))
}

func setReportHeaders(w http.ResponseWriter, reportID string, contentType string) {
	w.Header().Set(headerReportID, reportID)
	w.Header().Set(headerContentType, contentType)
}
