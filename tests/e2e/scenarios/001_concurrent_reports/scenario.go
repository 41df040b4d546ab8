package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	totalLines     = 40000 // Total number of log lines in the generated access log
	malformedEvery = 97    // Every Nth line is truncated to fewer than 6 fields
)

var (
	methods   = []string{"GET", "POST", "PUT", "DELETE"}
	endpoints = []string{"/home", "/login", "/user/profile", "/api/update", "/contact"}
	statuses  = []int{200, 201, 304, 400, 403, 404, 500}
)

// ### End - fixed configs

type reportRequest struct {
	index  int
	format string
}

type reportResponse struct {
	reportID string
	body     string
}

// main runs the e2e scenario: 001_concurrent_reports
//
// This scenario generates a deterministic access log, computes the expected
// reports locally and submits the same log to the report API many times in
// parallel, in both formats.
//
// What it tests:
//   - Report generation via POST /reports?format=plain|csv
//   - Malformed lines are skipped without failing the run
//   - Concurrent report generation writes independent artifacts
//   - Stored reports are served back by GET /reports/{reportID}
//
// Expected results:
//   - Every POST returns 201 and a body identical to the locally computed report
//   - Every GET of a returned report ID returns the same body
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:8080") // Base URL of the report API server
	reportsPerFormat := getEnvInt("REPORTS_PER_FORMAT", 20) // Number of reports requested per format
	parallel := getEnvInt("PARALLEL", 4)                     // Number of concurrent requests

	fmt.Println("Starting e2e scenario: 001_concurrent_reports")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("REPORTS_PER_FORMAT: %d\n", reportsPerFormat)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_LINES: %d\n", totalLines)
	fmt.Println()

	logBody, expected := generateLog()
	fmt.Printf("Generated %d lines (%d bytes)\n", totalLines, len(logBody))
	fmt.Println()

	requests := make([]reportRequest, 0, 2*reportsPerFormat)
	for i := 0; i < reportsPerFormat; i++ {
		requests = append(requests, reportRequest{index: 2 * i, format: "plain"}, reportRequest{index: 2*i + 1, format: "csv"})
	}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var created int64
	var verified int64

	for _, req := range requests {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(r reportRequest) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			err := runReport(baseURL, r.format, logBody, expected[r.format])
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("report %d (%s): %w", r.index, r.format, err))
				mu.Unlock()
				fmt.Fprintf(os.Stderr, "ERROR: Report %d (%s) failed: %v\n", r.index, r.format, err)
				return
			}
			atomic.AddInt64(&created, 1)
			atomic.AddInt64(&verified, 1)
			fmt.Printf("Report %d (%s) verified\n", r.index, r.format)
		}(req)
	}

	wg.Wait()

	fmt.Println()
	if len(errors) > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d reports failed\n", len(errors))
		os.Exit(1)
	}

	fmt.Println("=== Statistics ===")
	fmt.Printf("Reports created: %d\n", atomic.LoadInt64(&created))
	fmt.Printf("Reports verified: %d\n", atomic.LoadInt64(&verified))
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intValue int
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// generateLog returns the access log body and the expected plain and csv reports.
func generateLog() ([]byte, map[string]string) {
	type errorKey struct {
		endpoint string
		status   int
	}
	requestTypes := map[string]int{}
	errorCounts := map[errorKey]int{}
	sums := map[string]uint64{}
	counts := map[string]uint64{}

	var buf bytes.Buffer
	for i := 0; i < totalLines; i++ {
		method := methods[i%len(methods)]
		endpoint := endpoints[(i/len(methods))%len(endpoints)]
		status := statuses[(i*7+i/11)%len(statuses)]
		responseMs := (i*37)%900 + 5
		timestamp := fmt.Sprintf("[2024-07-05 %02d:%02d:%02d]", (i/3600)%24, (i/60)%60, i%60)

		if i%malformedEvery == 0 {
			fmt.Fprintf(&buf, "%s %s %s\n", timestamp, method, endpoint)
			continue
		}
		fmt.Fprintf(&buf, "%s %s %s %d %d\n", timestamp, method, endpoint, status, responseMs)

		requestTypes[method]++
		if status >= 400 {
			errorCounts[errorKey{endpoint, status}]++
		}
		sums[endpoint] += uint64(responseMs)
		counts[endpoint]++
	}

	sortedTypes := make([]string, 0, len(requestTypes))
	for method := range requestTypes {
		sortedTypes = append(sortedTypes, method)
	}
	sort.Strings(sortedTypes)

	sortedErrors := make([]errorKey, 0, len(errorCounts))
	for key := range errorCounts {
		sortedErrors = append(sortedErrors, key)
	}
	sort.Slice(sortedErrors, func(i, j int) bool {
		if sortedErrors[i].endpoint != sortedErrors[j].endpoint {
			return sortedErrors[i].endpoint < sortedErrors[j].endpoint
		}
		return sortedErrors[i].status < sortedErrors[j].status
	})

	sortedEndpoints := make([]string, 0, len(counts))
	for endpoint := range counts {
		sortedEndpoints = append(sortedEndpoints, endpoint)
	}
	sort.Strings(sortedEndpoints)

	var plain, csv strings.Builder
	plain.WriteString("Request Summary:\n")
	csv.WriteString("Request Summary\n")
	for _, method := range sortedTypes {
		fmt.Fprintf(&plain, "%s: %d\n", method, requestTypes[method])
		fmt.Fprintf(&csv, "%s,%d\n", method, requestTypes[method])
	}
	plain.WriteString("\nError Analysis:\n")
	csv.WriteString("\nError Analysis\n")
	for _, key := range sortedErrors {
		fmt.Fprintf(&plain, "Endpoint: %s, Status Code: %d: %d\n", key.endpoint, key.status, errorCounts[key])
		fmt.Fprintf(&csv, "%s,%d,%d\n", key.endpoint, key.status, errorCounts[key])
	}
	plain.WriteString("\nPerformance Metrics:\n")
	csv.WriteString("\nPerformance Metrics\n")
	for _, endpoint := range sortedEndpoints {
		avg := sums[endpoint] / counts[endpoint]
		fmt.Fprintf(&plain, "Endpoint: %s, Avg. Response Time: %d ms\n", endpoint, avg)
		fmt.Fprintf(&csv, "%s,%d\n", endpoint, avg)
	}

	return buf.Bytes(), map[string]string{"plain": plain.String(), "csv": csv.String()}
}

func runReport(baseURL, format string, logBody []byte, expected string) error {
	created, err := postReport(baseURL, format, logBody)
	if err != nil {
		return err
	}
	if created.body != expected {
		return fmt.Errorf("POST body mismatch for report %s", created.reportID)
	}

	stored, err := getReport(baseURL, created.reportID, format)
	if err != nil {
		return err
	}
	if stored != expected {
		return fmt.Errorf("GET body mismatch for report %s", created.reportID)
	}
	return nil
}

var client = &http.Client{
	Timeout: 60 * time.Second,
}

func postReport(baseURL, format string, logBody []byte) (*reportResponse, error) {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/reports?format="+format, bytes.NewReader(logBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}

	reportID := resp.Header.Get("X-Report-Id")
	if reportID == "" {
		return nil, fmt.Errorf("missing X-Report-Id header")
	}
	return &reportResponse{reportID: reportID, body: string(body)}, nil
}

func getReport(baseURL, reportID, format string) (string, error) {
	resp, err := client.Get(baseURL + "/reports/" + reportID + "?format=" + format)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}
	return string(body), nil
}
