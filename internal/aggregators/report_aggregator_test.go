package aggregators

import (
	"context"
	"testing"

	"log-report/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestReportAggregator_Aggregate(t *testing.T) {
	t.Parallel()

	records := []models.LogRecord{
		rec("GET", "/home", 200, 100),
		rec("GET", "/home", 200, 200),
		rec("POST", "/login", 404, 150),
		rec("POST", "/login", 500, 300),
	}

	expected := &models.Report{
		RequestTypes: models.RequestTypeCounts{"GET": 2, "POST": 2},
		Errors: models.ErrorCounts{
			{EndpointPath: "/login", StatusCode: 404}: 1,
			{EndpointPath: "/login", StatusCode: 500}: 1,
		},
		AvgResponseTime: models.AvgResponseTime{"/home": 150, "/login": 225},
	}

	for _, parallel := range []bool{false, true} {
		report := NewReportAggregator(parallel).Aggregate(context.Background(), records)
		assert.Equal(t, expected, report, "parallel=%v", parallel)
	}
}

func TestReportAggregator_Aggregate_Empty(t *testing.T) {
	t.Parallel()

	for _, parallel := range []bool{false, true} {
		report := NewReportAggregator(parallel).Aggregate(context.Background(), []models.LogRecord{})
		assert.Equal(t, models.NewEmptyReport(), report, "parallel=%v", parallel)
	}
}
