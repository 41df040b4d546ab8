package parsers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"log-report/internal/models"
)

// MinFields is the smallest token count a parsable line can have.
const MinFields = 6

// Token positions. Tokens 0 and 1 hold the bracketed timestamp and are ignored.
const (
	fieldRequestType = 2
	fieldEndpoint    = 3
	fieldStatusCode  = 4
	fieldResponseMs  = 5
)

var ErrMissingFields = errors.New("missing fields in log entry")

// LineParser turns one raw access-log line into a LogRecord.
//
// Expected layout (whitespace separated, extra trailing tokens ignored):
//
//	[2024-07-05 05:13:35] POST /user/session 404 54
//	 ^0          ^1       ^2   ^3            ^4  ^5
type LineParser interface {
	Parse(line string) (models.LogRecord, error)
}

type lineParser struct{}

func NewLineParser() LineParser {
	return &lineParser{}
}

func (p *lineParser) Parse(line string) (models.LogRecord, error) {
	return ParseLine(line)
}

// ParseLine parses line without side effects. A line with fewer than MinFields
// tokens fails with ErrMissingFields; numeric fields that do not parse are 0.
func ParseLine(line string) (models.LogRecord, error) {
	tokens := strings.Fields(line)
	if len(tokens) < MinFields {
		return models.LogRecord{}, fmt.Errorf("%w: got %d tokens, want at least %d", ErrMissingFields, len(tokens), MinFields)
	}

	return models.LogRecord{
		RequestType:    tokens[fieldRequestType],
		EndpointPath:   tokens[fieldEndpoint],
		StatusCode:     uint16(parseUintOrZero(tokens[fieldStatusCode], 16)),
		ResponseTimeMs: uint32(parseUintOrZero(tokens[fieldResponseMs], 32)),
	}, nil
}

// parseUintOrZero returns 0 for anything that is not a base-10 integer fitting in bitSize bits.
// A single leading '+' is accepted.
func parseUintOrZero(token string, bitSize int) uint64 {
	v, err := strconv.ParseUint(strings.TrimPrefix(token, "+"), 10, bitSize)
	if err != nil {
		return 0
	}
	return v
}
