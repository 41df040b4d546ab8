package models

import (
	"sort"
)

// RequestTypeCounts maps a request type (GET, POST, ...) to its occurrence count.
type RequestTypeCounts map[string]int64

// ErrorKey identifies one error bucket: the exact endpoint and status code of a record.
type ErrorKey struct {
	EndpointPath string `json:"endpointPath"`
	StatusCode   uint16 `json:"statusCode"`
}

// ErrorCounts maps an (endpoint, status) pair to the number of records with status >= 400.
type ErrorCounts map[ErrorKey]int64

// AvgResponseTime maps an endpoint to the floor mean of its response times in ms.
type AvgResponseTime map[string]uint32

// Report bundles the three aggregate outputs rendered by a formatter.
//
// Example (plain rendering):
//
//	Request Summary:
//	GET: 2
//	POST: 1
//
//	Error Analysis:
//	Endpoint: /login, Status Code: 404: 2
//
//	Performance Metrics:
//	Endpoint: /login, Avg. Response Time: 150 ms
type Report struct {
	RequestTypes    RequestTypeCounts
	Errors          ErrorCounts
	AvgResponseTime AvgResponseTime
}

func NewEmptyReport() *Report {
	return &Report{
		RequestTypes:    make(RequestTypeCounts),
		Errors:          make(ErrorCounts),
		AvgResponseTime: make(AvgResponseTime),
	}
}

type RequestTypeCount struct {
	RequestType string
	Count       int64
}

type ErrorCount struct {
	ErrorKey
	Count int64
}

type EndpointAvg struct {
	EndpointPath string
	AvgMs        uint32
}

// Sorted returns the entries ordered by request type.
func (c RequestTypeCounts) Sorted() []RequestTypeCount {
	entries := make([]RequestTypeCount, 0, len(c))
	for requestType, count := range c {
		entries = append(entries, RequestTypeCount{RequestType: requestType, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].RequestType < entries[j].RequestType
	})
	return entries
}

// Sorted returns the entries ordered by endpoint, then status code.
func (c ErrorCounts) Sorted() []ErrorCount {
	entries := make([]ErrorCount, 0, len(c))
	for key, count := range c {
		entries = append(entries, ErrorCount{ErrorKey: key, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EndpointPath != entries[j].EndpointPath {
			return entries[i].EndpointPath < entries[j].EndpointPath
		}
		return entries[i].StatusCode < entries[j].StatusCode
	})
	return entries
}

// Sorted returns the entries ordered by endpoint.
func (a AvgResponseTime) Sorted() []EndpointAvg {
	entries := make([]EndpointAvg, 0, len(a))
	for endpoint, avg := range a {
		entries = append(entries, EndpointAvg{EndpointPath: endpoint, AvgMs: avg})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EndpointPath < entries[j].EndpointPath
	})
	return entries
}
