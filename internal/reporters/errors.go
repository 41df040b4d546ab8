package reporters

import (
	"fmt"

	"log-report/internal/shared/svcerrors"
)

// ReportService errors
const (
	codeUnsupportedFormat = "RPT_1000"
	codeInputUnreadable   = "RPT_1001"
	codeReportNotFound    = "RPT_1002"
	codeInvalidReportID   = "RPT_1003"

	codeInternalRenderFailed      = "RPT_9000"
	codeInternalReportStoreFailed = "RPT_9001"
)

func errUnsupportedFormat(format string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat, fmt.Sprintf("unsupported output format: %q", format), cause)
}

// errInputUnreadable returns an error when the log input fails mid-read. No
// report is produced.
func errInputUnreadable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInputUnreadable, "log input could not be read", cause)
}

func errReportNotFound(reportID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("report %s not found", reportID), cause)
}

func errInvalidReportID(reportID string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportID, fmt.Sprintf("invalid report id: %q", reportID), nil)
}

// errInternalRenderFailed returns an error when a formatter fails to render a report.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed: %w", cause))
}

// errInternalReportStoreFailed returns an error when a report store operation fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
