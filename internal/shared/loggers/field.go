package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID        = "run_id"
	FieldReportID     = "report_id"
	FieldInput        = "input"
	FieldOutputFormat = "output_format"
	FieldFileKey      = "file_key"
	FieldLineNumber   = "line_number"
	FieldTotalLines   = "total_lines"
	FieldSkippedLines = "skipped_lines"
	FieldFiltered     = "filtered_lines"
	FieldRecordCount  = "record_count"
)
