// Package formatters renders aggregated reports into their output formats.
package formatters

import (
	"fmt"
	"io"

	"log-report/internal/models"
)

// ReportFormatter writes a report in one fixed format. Entries are written in
// sorted order so the same report always renders to the same bytes.
type ReportFormatter interface {
	Render(w io.Writer, report *models.Report) error
}

// New returns the formatter for format.
func New(format models.OutputFormat) (ReportFormatter, error) {
	switch format {
	case models.OutputPlain:
		return &plainFormatter{}, nil
	case models.OutputCSV:
		return &csvFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedOutputFormat, format)
	}
}
