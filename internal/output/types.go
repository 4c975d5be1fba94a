// Package output writes analysis reports in the supported formats.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/instalens/instalens/instaexport"
	"github.com/instalens/instalens/internal/stats"
)

// Report is everything a writer may render: the summary tables, the
// parse statistics (skip counts are part of the user-visible result,
// not optional logging), and the normalized message sequence.
type Report struct {
	Tables     *stats.SummaryTables   `json:"tables"`
	ParseStats instaexport.ParseStats `json:"parse_stats"`
	Messages   []instaexport.Message  `json:"-"`
	TopN       int                    `json:"-"`
}

// Writer renders a report to its destination.
type Writer interface {
	WriteReport(r *Report) error
	Close() error
}

// NewWriter returns a writer for the named format. An empty path means
// stdout.
func NewWriter(format, path string) (Writer, error) {
	dest, err := openDest(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case "text":
		return NewTextWriter(dest), nil
	case "json":
		return NewJSONWriter(dest), nil
	case "csv":
		return NewCSVWriter(dest), nil
	case "transcript":
		return NewTranscriptWriter(dest, DefaultTranscriptOptions()), nil
	default:
		dest.Close()
		return nil, fmt.Errorf("unknown output format %q (want text, json, csv or transcript)", format)
	}
}

func openDest(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
