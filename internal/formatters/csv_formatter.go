package formatters

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"log-report/internal/models"
)

const (
	csvHeaderRequestSummary     = "Request Summary"
	csvHeaderErrorAnalysis      = "Error Analysis"
	csvHeaderPerformanceMetrics = "Performance Metrics"
)

type csvFormatter struct{}

// Render writes the three sections as header line, data rows, blank line.
// Data rows are encoded by encoding/csv, so endpoints containing commas or
// quotes come out quoted.
func (f *csvFormatter) Render(w io.Writer, report *models.Report) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)

	// Headers and separators bypass the csv.Writer: a record holding one empty
	// field would be written as `""` rather than an empty line.
	section := func(header string, leadingBlank bool) {
		cw.Flush()
		if leadingBlank {
			bw.WriteString("\n")
		}
		bw.WriteString(header + "\n")
	}

	section(csvHeaderRequestSummary, false)
	for _, entry := range report.RequestTypes.Sorted() {
		cw.Write([]string{entry.RequestType, strconv.FormatInt(entry.Count, 10)})
	}

	section(csvHeaderErrorAnalysis, true)
	for _, entry := range report.Errors.Sorted() {
		cw.Write([]string{
			entry.EndpointPath,
			strconv.FormatUint(uint64(entry.StatusCode), 10),
			strconv.FormatInt(entry.Count, 10),
		})
	}

	section(csvHeaderPerformanceMetrics, true)
	for _, entry := range report.AvgResponseTime.Sorted() {
		cw.Write([]string{entry.EndpointPath, strconv.FormatUint(uint64(entry.AvgMs), 10)})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv report: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv report: %w", err)
	}
	return nil
}
