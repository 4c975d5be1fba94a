// Package instaexport parses Instagram HTML chat exports into a
// normalized, chronologically ordered message sequence.
package instaexport

import (
	"fmt"
	"time"
)

// ContentType classifies what a message block carries.
type ContentType string

const (
	ContentText       ContentType = "text"
	ContentPhoto      ContentType = "photo"
	ContentVideo      ContentType = "video"
	ContentAudio      ContentType = "audio"
	ContentSharedPost ContentType = "shared_post"
	ContentReaction   ContentType = "reaction"
	ContentUnsent     ContentType = "unsent"
	ContentOther      ContentType = "other"
)

// Reaction is a (reactor, emoji) pair attached to a message.
type Reaction struct {
	Reactor string `json:"reactor"`
	Emoji   string `json:"emoji"`
}

// Message is one normalized event from a conversation export.
type Message struct {
	ID          string      `json:"id"`
	Sender      string      `json:"sender"`
	Timestamp   time.Time   `json:"timestamp"`
	ContentType ContentType `json:"content_type"`
	Text        string      `json:"text,omitempty"`
	Reactions   []Reaction  `json:"reactions,omitempty"`

	// SourceFileIndex and WithinFileOrder exist only to break timestamp
	// ties deterministically when merging multi-file exports.
	SourceFileIndex int `json:"source_file_index"`
	WithinFileOrder int `json:"within_file_order"`
}

// FileOrder is the documented convention mapping export file numbering
// to chronology. Instagram's numbering is export-version-dependent, so
// the convention is configured, never inferred per run.
type FileOrder int

const (
	// OldestFirst: lower file index = older slice (the default).
	OldestFirst FileOrder = iota
	// NewestFirst: lower file index = newer slice (2024-era exports
	// number message_1.html as the most recent slice).
	NewestFirst
)

// ParseStats counts what a parse run saw, produced, and skipped.
// Skip counters are a correctness-transparency requirement: per-message
// failures never abort a run, but they are always reported.
type ParseStats struct {
	FilesParsed           int `json:"files_parsed"`
	FilesFailed           int `json:"files_failed"`
	BlocksSeen            int `json:"blocks_seen"`
	MessagesParsed        int `json:"messages_parsed"`
	SkippedBadTimestamp   int `json:"skipped_bad_timestamp"`
	SkippedBadEncoding    int `json:"skipped_bad_encoding"`
	SkippedUnclassifiable int `json:"skipped_unclassifiable"`
	DuplicatesDropped     int `json:"duplicates_dropped"`
}

// Skipped returns the total number of per-message skips.
func (s ParseStats) Skipped() int {
	return s.SkippedBadTimestamp + s.SkippedBadEncoding + s.SkippedUnclassifiable
}

// Add accumulates another file's stats into s.
func (s *ParseStats) Add(other ParseStats) {
	s.FilesParsed += other.FilesParsed
	s.FilesFailed += other.FilesFailed
	s.BlocksSeen += other.BlocksSeen
	s.MessagesParsed += other.MessagesParsed
	s.SkippedBadTimestamp += other.SkippedBadTimestamp
	s.SkippedBadEncoding += other.SkippedBadEncoding
	s.SkippedUnclassifiable += other.SkippedUnclassifiable
	s.DuplicatesDropped += other.DuplicatesDropped
}

// MalformedExportError reports a file that does not match the expected
// export structure at all. It aborts that file's contribution only.
type MalformedExportError struct {
	File   string
	Reason string
}

func (e *MalformedExportError) Error() string {
	return fmt.Sprintf("malformed export %q: %s", e.File, e.Reason)
}

// UnrecognizedTimestampFormatError reports a block whose timestamp text
// matched none of the known export formats.
type UnrecognizedTimestampFormatError struct {
	Value string
}

func (e *UnrecognizedTimestampFormatError) Error() string {
	return fmt.Sprintf("unrecognized timestamp format: %q", e.Value)
}

// EncodingDecodeError reports block text that could not be decoded into
// valid Unicode.
type EncodingDecodeError struct {
	Reason string
}

func (e *EncodingDecodeError) Error() string {
	return fmt.Sprintf("failed to decode block text: %s", e.Reason)
}
