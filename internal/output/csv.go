package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// CSVWriter renders every table as (table, key, count) rows. Rows are
// sorted per table so re-runs produce byte-identical output.
type CSVWriter struct {
	writer *csv.Writer
	dest   io.WriteCloser
}

func NewCSVWriter(dest io.WriteCloser) *CSVWriter {
	return &CSVWriter{
		writer: csv.NewWriter(dest),
		dest:   dest,
	}
}

func (w *CSVWriter) WriteReport(r *Report) error {
	if err := w.writer.Write([]string{"table", "key", "count"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	t := r.Tables
	sections := []struct {
		name   string
		counts map[string]int
	}{
		{"daily_counts", t.DailyCounts},
		{"weekly_counts", t.WeeklyCounts},
		{"monthly_counts", t.MonthlyCounts},
		{"emoji_counts", t.EmojiCounts},
		{"sender_counts", t.SenderCounts},
		{"reaction_counts", t.ReactionCounts},
	}

	for _, section := range sections {
		for _, key := range sortedKeys(section.counts) {
			if err := w.writeRow(section.name, key, section.counts[key]); err != nil {
				return err
			}
		}
	}

	for hour := 0; hour < 24; hour++ {
		if err := w.writeRow("hourly_counts", strconv.Itoa(hour), t.HourlyCounts[hour]); err != nil {
			return err
		}
	}
	for _, cell := range t.Heatmap {
		key := fmt.Sprintf("%d:%02d", cell.Day, cell.Hour)
		if err := w.writeRow("heatmap", key, cell.Count); err != nil {
			return err
		}
	}

	// Skip counts travel with the data so consumers can judge
	// completeness.
	s := r.ParseStats
	statRows := []struct {
		key   string
		value int
	}{
		{"files_parsed", s.FilesParsed},
		{"files_failed", s.FilesFailed},
		{"blocks_seen", s.BlocksSeen},
		{"messages_parsed", s.MessagesParsed},
		{"skipped_bad_timestamp", s.SkippedBadTimestamp},
		{"skipped_bad_encoding", s.SkippedBadEncoding},
		{"skipped_unclassifiable", s.SkippedUnclassifiable},
		{"duplicates_dropped", s.DuplicatesDropped},
	}
	for _, row := range statRows {
		if err := w.writeRow("parse_stats", row.key, row.value); err != nil {
			return err
		}
	}

	w.writer.Flush()
	return w.writer.Error()
}

func (w *CSVWriter) writeRow(table, key string, count int) error {
	if err := w.writer.Write([]string{table, key, strconv.Itoa(count)}); err != nil {
		return fmt.Errorf("failed to write CSV record: %w", err)
	}
	return nil
}

func (w *CSVWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	return w.dest.Close()
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
