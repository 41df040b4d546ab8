package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"log-report/internal/models"
	"log-report/internal/shared/filestorages"
)

var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportAlreadyExists = errors.New("report already exists")
)

const reportsDir = "reports"

// ReportKey is the storage key of a report generated through the API:
// reports/<reportID>/output.txt or reports/<reportID>/output.csv.
func ReportKey(reportID string, format models.OutputFormat) string {
	return path.Join(reportsDir, reportID, format.FileName())
}

// ReportStore persists rendered reports. Save replaces any report already
// stored under the key, the same way re-running the CLI replaces output.txt.
// Create never replaces: a report published under an id is immutable.
// Readers never observe a partially written report.
//
//go:generate mockgen -source=report_store.go -destination=./mocks/report_store_mock.go -package=mocks
type ReportStore interface {
	// Save stores content under key and returns the path it was published to.
	Save(ctx context.Context, key string, content []byte) (string, error)
	// Create stores content under key, failing with ErrReportAlreadyExists when
	// the key is taken.
	Create(ctx context.Context, key string, content []byte) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

type reportStore struct {
	fileStorage filestorages.FileStorage
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage}
}

func (s *reportStore) Save(ctx context.Context, key string, content []byte) (string, error) {
	return s.put(ctx, key, content, true)
}

func (s *reportStore) Create(ctx context.Context, key string, content []byte) (string, error) {
	return s.put(ctx, key, content, false)
}

func (s *reportStore) put(ctx context.Context, key string, content []byte, allowOverwrite bool) (string, error) {
	result, err := s.fileStorage.Put(ctx, key, bytes.NewReader(content), filestorages.PutOptions{AllowOverwrite: allowOverwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", fmt.Errorf("%w: %q", ErrReportAlreadyExists, key)
		}
		return "", fmt.Errorf("failed to put report %q: %w", key, err)
	}
	return result.Path, nil
}

func (s *reportStore) Get(ctx context.Context, key string) ([]byte, error) {
	rc, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report %q: %w", key, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %q: %w", key, err)
	}
	return content, nil
}
