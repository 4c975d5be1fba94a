package instaexport

import "sort"

// Merge combines per-file message batches into one chronological
// sequence: timestamp ascending, ties broken by
// (SourceFileIndex, WithinFileOrder) under the configured convention.
//
// With OldestFirst the lower file index is the older slice and blocks
// run oldest-first within a file, so ties sort both fields ascending.
// With NewestFirst both relationships invert and ties sort descending.
// The sort is stable, so equal keys keep their input order and the
// result is deterministic across runs.
func Merge(batches [][]Message, order FileOrder) []Message {
	total := 0
	for _, b := range batches {
		total += len(b)
	}
	merged := make([]Message, 0, total)
	for _, b := range batches {
		merged = append(merged, b...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if a.SourceFileIndex != b.SourceFileIndex {
			if order == NewestFirst {
				return a.SourceFileIndex > b.SourceFileIndex
			}
			return a.SourceFileIndex < b.SourceFileIndex
		}
		if order == NewestFirst {
			return a.WithinFileOrder > b.WithinFileOrder
		}
		return a.WithinFileOrder < b.WithinFileOrder
	})

	return merged
}
