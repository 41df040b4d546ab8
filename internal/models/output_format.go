package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedOutputFormat = errors.New("unsupported output format")

type OutputFormat string

const (
	OutputPlain OutputFormat = "plain"
	OutputCSV   OutputFormat = "csv"
)

// NewOutputFormatFromString parses a user supplied format name.
func NewOutputFormatFromString(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case OutputPlain:
		return OutputPlain, nil
	case OutputCSV:
		return OutputCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, s)
	}
}

// FileName is the fixed artifact name a report in this format is written to.
func (f OutputFormat) FileName() string {
	switch f {
	case OutputPlain:
		return "output.txt"
	case OutputCSV:
		return "output.csv"
	default:
		panic(fmt.Sprintf("invalid OutputFormat: %q", f))
	}
}

func (f OutputFormat) ContentType() string {
	switch f {
	case OutputPlain:
		return "text/plain; charset=utf-8"
	case OutputCSV:
		return "text/csv; charset=utf-8"
	default:
		panic(fmt.Sprintf("invalid OutputFormat: %q", f))
	}
}
