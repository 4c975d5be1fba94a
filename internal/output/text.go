package output

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/instalens/instalens/instaexport"
	"github.com/instalens/instalens/internal/stats"
)

// TextWriter renders a human-readable summary: totals, top senders and
// emoji, daily activity, and the skip report.
type TextWriter struct {
	writer *bufio.Writer
	dest   io.WriteCloser
}

func NewTextWriter(dest io.WriteCloser) *TextWriter {
	return &TextWriter{
		writer: bufio.NewWriter(dest),
		dest:   dest,
	}
}

func (w *TextWriter) WriteReport(r *Report) error {
	t := r.Tables

	w.section("Conversation")
	w.line("Messages:  %d", t.Totals.Messages)
	w.line("Text:      %d", t.Totals.Text)
	w.line("Media:     %d", t.Totals.Media)
	w.line("Shared:    %d", t.Totals.Shared)
	w.line("Reactions: %d", t.Totals.Reactions)
	w.line("Unsent:    %d", t.Totals.Unsent)
	if !t.Totals.First.IsZero() {
		w.line("Range:     %s - %s",
			t.Totals.First.Format(time.DateOnly),
			t.Totals.Last.Format(time.DateOnly))
	}

	w.ranking("Top senders", t.TopSenders(r.TopN))
	w.ranking("Top emoji", t.TopEmojis(r.TopN))

	w.section("Activity by hour")
	for hour := 0; hour < 24; hour++ {
		if count := t.HourlyCounts[hour]; count > 0 {
			w.line("%02d:00  %d", hour, count)
		}
	}

	w.section("Activity by weekday")
	for day := time.Sunday; day <= time.Saturday; day++ {
		count := 0
		for _, cell := range t.Heatmap {
			if cell.Day == int(day) {
				count += cell.Count
			}
		}
		if count > 0 {
			w.line("%-9s %d", day.String(), count)
		}
	}

	WriteStats(w.writer, r.ParseStats)

	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}

func (w *TextWriter) section(title string) {
	fmt.Fprintf(w.writer, "\n%s\n", title)
	for range title {
		w.writer.WriteByte('-')
	}
	w.writer.WriteByte('\n')
}

func (w *TextWriter) line(format string, args ...interface{}) {
	fmt.Fprintf(w.writer, format+"\n", args...)
}

func (w *TextWriter) ranking(title string, entries []stats.RankedEntry) {
	if len(entries) == 0 {
		return
	}
	w.section(title)
	for _, e := range entries {
		w.line("%-24s %d", e.Key, e.Count)
	}
}

func (w *TextWriter) Close() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.dest.Close()
}

// WriteStats reports parse statistics, skip counts included. Skips are
// always surfaced so the user can judge result completeness.
func WriteStats(dest io.Writer, s instaexport.ParseStats) {
	fmt.Fprintf(dest, "\nParsed %d messages from %d file(s) (%d blocks)\n",
		s.MessagesParsed, s.FilesParsed, s.BlocksSeen)
	if s.FilesFailed > 0 {
		fmt.Fprintf(dest, "Files failed: %d\n", s.FilesFailed)
	}
	if s.Skipped() > 0 {
		fmt.Fprintf(dest, "Skipped messages: %d (bad timestamp: %d, bad encoding: %d, unclassifiable: %d)\n",
			s.Skipped(), s.SkippedBadTimestamp, s.SkippedBadEncoding, s.SkippedUnclassifiable)
	}
	if s.DuplicatesDropped > 0 {
		fmt.Fprintf(dest, "Duplicates dropped: %d\n", s.DuplicatesDropped)
	}
}
