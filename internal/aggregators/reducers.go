package aggregators

import (
	"log-report/internal/models"
)

// CountByRequestType counts records per request type. Request types are
// matched exactly and case-sensitively.
func CountByRequestType(records []models.LogRecord) models.RequestTypeCounts {
	counts := make(models.RequestTypeCounts)
	for _, record := range records {
		counts[record.RequestType]++
	}
	return counts
}

// CountErrorsByEndpointAndStatus counts records with status >= 400 per
// (endpoint, status) pair.
func CountErrorsByEndpointAndStatus(records []models.LogRecord) models.ErrorCounts {
	counts := make(models.ErrorCounts)
	for _, record := range records {
		if !record.IsError() {
			continue
		}
		counts[models.ErrorKey{EndpointPath: record.EndpointPath, StatusCode: record.StatusCode}]++
	}
	return counts
}

// AvgResponseTimeByEndpoint returns the floor of the mean response time per
// endpoint. Sums are kept in 64 bits so large inputs cannot overflow.
func AvgResponseTimeByEndpoint(records []models.LogRecord) models.AvgResponseTime {
	type accumulator struct {
		sum   uint64
		count uint64
	}

	accumulators := make(map[string]*accumulator)
	for _, record := range records {
		acc, ok := accumulators[record.EndpointPath]
		if !ok {
			acc = &accumulator{}
			accumulators[record.EndpointPath] = acc
		}
		acc.sum += uint64(record.ResponseTimeMs)
		acc.count++
	}

	averages := make(models.AvgResponseTime, len(accumulators))
	for endpoint, acc := range accumulators {
		averages[endpoint] = uint32(acc.sum / acc.count)
	}
	return averages
}
