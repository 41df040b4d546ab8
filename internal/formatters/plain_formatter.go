package formatters

import (
	"bufio"
	"fmt"
	"io"

	"log-report/internal/models"
)

const (
	plainHeaderRequestSummary     = "Request Summary:"
	plainHeaderErrorAnalysis      = "Error Analysis:"
	plainHeaderPerformanceMetrics = "Performance Metrics:"
)

type plainFormatter struct{}

// Render writes:
//
//	Request Summary:
//	GET: 2
//
//	Error Analysis:
//	Endpoint: /login, Status Code: 404: 2
//
//	Performance Metrics:
//	Endpoint: /login, Avg. Response Time: 150 ms
func (f *plainFormatter) Render(w io.Writer, report *models.Report) error {
	// bufio.Writer keeps the first write error and returns it from Flush.
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, plainHeaderRequestSummary)
	for _, entry := range report.RequestTypes.Sorted() {
		fmt.Fprintf(bw, "%s: %d\n", entry.RequestType, entry.Count)
	}

	fmt.Fprintf(bw, "\n%s\n", plainHeaderErrorAnalysis)
	for _, entry := range report.Errors.Sorted() {
		fmt.Fprintf(bw, "Endpoint: %s, Status Code: %d: %d\n", entry.EndpointPath, entry.StatusCode, entry.Count)
	}

	fmt.Fprintf(bw, "\n%s\n", plainHeaderPerformanceMetrics)
	for _, entry := range report.AvgResponseTime.Sorted() {
		fmt.Fprintf(bw, "Endpoint: %s, Avg. Response Time: %d ms\n", entry.EndpointPath, entry.AvgMs)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write plain report: %w", err)
	}
	return nil
}
