package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/instalens/instalens/internal/stats"
)

// JSONWriter renders the full report as indented JSON, rankings
// included, suitable for a chart renderer to consume directly.
type JSONWriter struct {
	dest io.WriteCloser
}

func NewJSONWriter(dest io.WriteCloser) *JSONWriter {
	return &JSONWriter{dest: dest}
}

type jsonReport struct {
	*Report
	TopSenders []stats.RankedEntry `json:"top_senders"`
	TopEmojis  []stats.RankedEntry `json:"top_emojis"`
}

func (w *JSONWriter) WriteReport(r *Report) error {
	encoder := json.NewEncoder(w.dest)
	encoder.SetIndent("", "  ")
	doc := jsonReport{
		Report:     r,
		TopSenders: r.Tables.TopSenders(r.TopN),
		TopEmojis:  r.Tables.TopEmojis(r.TopN),
	}
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

func (w *JSONWriter) Close() error {
	return w.dest.Close()
}
