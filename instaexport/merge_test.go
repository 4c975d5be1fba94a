package instaexport

import (
	"testing"
	"time"
)

func msgAt(sender string, ts time.Time, file, order int) Message {
	return Message{
		Sender:          sender,
		Timestamp:       ts,
		ContentType:     ContentText,
		Text:            "m",
		SourceFileIndex: file,
		WithinFileOrder: order,
	}
}

func TestMerge_SortsByTimestamp(t *testing.T) {
	base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	batches := [][]Message{
		{msgAt("a", base.Add(2*time.Hour), 0, 0), msgAt("a", base, 0, 1)},
		{msgAt("b", base.Add(time.Hour), 1, 0)},
	}

	merged := Merge(batches, OldestFirst)

	if len(merged) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(merged))
	}
	for i := 1; i < len(merged); i++ {
		if merged[i].Timestamp.Before(merged[i-1].Timestamp) {
			t.Errorf("Message %d out of order: %v before %v",
				i, merged[i].Timestamp, merged[i-1].Timestamp)
		}
	}
}

func TestMerge_TieBreakOldestFirst(t *testing.T) {
	ts := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	batches := [][]Message{
		{msgAt("file1-block0", ts, 1, 0)},
		{msgAt("file0-block1", ts, 0, 1), msgAt("file0-block0", ts, 0, 0)},
	}

	merged := Merge(batches, OldestFirst)

	want := []string{"file0-block0", "file0-block1", "file1-block0"}
	for i, w := range want {
		if merged[i].Sender != w {
			t.Errorf("Position %d: expected %q, got %q", i, w, merged[i].Sender)
		}
	}
}

func TestMerge_TieBreakNewestFirst(t *testing.T) {
	ts := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	batches := [][]Message{
		{msgAt("file0-block0", ts, 0, 0), msgAt("file0-block1", ts, 0, 1)},
		{msgAt("file1-block0", ts, 1, 0)},
	}

	// Newest-first numbering: higher file index is older, and blocks
	// within a file run newest-first.
	merged := Merge(batches, NewestFirst)

	want := []string{"file1-block0", "file0-block1", "file0-block0"}
	for i, w := range want {
		if merged[i].Sender != w {
			t.Errorf("Position %d: expected %q, got %q", i, w, merged[i].Sender)
		}
	}
}

func TestMerge_Empty(t *testing.T) {
	merged := Merge(nil, OldestFirst)
	if len(merged) != 0 {
		t.Errorf("Expected empty merge, got %d messages", len(merged))
	}
}

func TestMerge_Deterministic(t *testing.T) {
	ts := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	batches := [][]Message{
		{msgAt("a", ts, 0, 0), msgAt("b", ts.Add(time.Minute), 0, 1)},
		{msgAt("c", ts, 1, 0)},
	}

	first := Merge(batches, OldestFirst)
	second := Merge(batches, OldestFirst)

	for i := range first {
		if first[i].Sender != second[i].Sender {
			t.Errorf("Run mismatch at %d: %q vs %q", i, first[i].Sender, second[i].Sender)
		}
	}
}
