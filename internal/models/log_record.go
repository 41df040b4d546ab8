package models

// LogRecord is one parsed access-log line.
//
// StatusCode and ResponseTimeMs use 0 for a token that was present but not a
// valid number; a record always carries both fields.
type LogRecord struct {
	RequestType    string `json:"requestType"`
	EndpointPath   string `json:"endpointPath"`
	StatusCode     uint16 `json:"statusCode"`
	ResponseTimeMs uint32 `json:"responseTimeMs"`
}

// IsError reports whether the record counts towards error analysis.
func (r LogRecord) IsError() bool {
	return r.StatusCode >= 400
}
