// Package sources provides the line sources the report pipeline reads from.
package sources

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Line is one raw input line without its trailing newline.
type Line struct {
	Text string
	// Number is the 1-based line number in the input.
	Number int
}

// LineSource yields lines in input order. Next returns io.EOF once the input is
// exhausted; any other error means the underlying read failed.
type LineSource interface {
	Next() (Line, error)
}

type readerLineSource struct {
	reader     *bufio.Reader
	lineNumber int
	err        error
}

// NewReaderLineSource reads newline-terminated lines from r. Lines have no
// length limit; a trailing "\r" is dropped.
func NewReaderLineSource(r io.Reader) LineSource {
	return &readerLineSource{reader: bufio.NewReader(r)}
}

func (s *readerLineSource) Next() (Line, error) {
	if s.err != nil {
		return Line{}, s.err
	}

	text, err := s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = fmt.Errorf("read line %d: %w", s.lineNumber+1, err)
			return Line{}, s.err
		}
		s.err = io.EOF
		if text == "" {
			return Line{}, s.err
		}
	}

	s.lineNumber++
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return Line{Text: text, Number: s.lineNumber}, nil
}

// FileLineSource is a LineSource over an opened file. Close releases the file.
type FileLineSource struct {
	LineSource
	file *os.File
}

// OpenFile opens path for line reading.
func OpenFile(path string) (*FileLineSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &FileLineSource{
		LineSource: NewReaderLineSource(file),
		file:       file,
	}, nil
}

func (s *FileLineSource) Close() error {
	return s.file.Close()
}
