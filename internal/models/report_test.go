package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmptyReport(t *testing.T) {
	t.Parallel()

	report := NewEmptyReport()
	assert.NotNil(t, report.RequestTypes)
	assert.NotNil(t, report.Errors)
	assert.NotNil(t, report.AvgResponseTime)
	assert.Empty(t, report.RequestTypes.Sorted())
	assert.Empty(t, report.Errors.Sorted())
	assert.Empty(t, report.AvgResponseTime.Sorted())
}

func TestErrorCounts_Sorted_OrdersByEndpointThenStatus(t *testing.T) {
	t.Parallel()

	counts := ErrorCounts{
		{EndpointPath: "/users", StatusCode: 404}: 1,
		{EndpointPath: "/login", StatusCode: 500}: 1,
		{EndpointPath: "/login", StatusCode: 404}: 2,
	}

	expected := []ErrorCount{
		{ErrorKey: ErrorKey{EndpointPath: "/login", StatusCode: 404}, Count: 2},
		{ErrorKey: ErrorKey{EndpointPath: "/login", StatusCode: 500}, Count: 1},
		{ErrorKey: ErrorKey{EndpointPath: "/users", StatusCode: 404}, Count: 1},
	}
	assert.Equal(t, expected, counts.Sorted())
}

func TestRequestTypeCounts_Sorted(t *testing.T) {
	t.Parallel()

	counts := RequestTypeCounts{"PUT": 1, "GET": 2, "POST": 1}

	expected := []RequestTypeCount{
		{RequestType: "GET", Count: 2},
		{RequestType: "POST", Count: 1},
		{RequestType: "PUT", Count: 1},
	}
	assert.Equal(t, expected, counts.Sorted())
}

func TestAvgResponseTime_Sorted(t *testing.T) {
	t.Parallel()

	avg := AvgResponseTime{"/endpoint_test": 150, "/endpoint2": 225}

	expected := []EndpointAvg{
		{EndpointPath: "/endpoint2", AvgMs: 225},
		{EndpointPath: "/endpoint_test", AvgMs: 150},
	}
	assert.Equal(t, expected, avg.Sorted())
}

func TestLogRecord_IsError(t *testing.T) {
	t.Parallel()

	assert.False(t, LogRecord{StatusCode: 0}.IsError())
	assert.False(t, LogRecord{StatusCode: 399}.IsError())
	assert.True(t, LogRecord{StatusCode: 400}.IsError())
	assert.True(t, LogRecord{StatusCode: 503}.IsError())
}
