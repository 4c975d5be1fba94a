package output

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/instalens/instalens/instaexport"
)

// TranscriptOptions controls what the transcript rendering includes.
type TranscriptOptions struct {
	IncludeSendTime  bool
	IncludeReactions bool
	IncludeMedia     bool
}

// DefaultTranscriptOptions returns sensible defaults
func DefaultTranscriptOptions() TranscriptOptions {
	return TranscriptOptions{
		IncludeSendTime:  false,
		IncludeReactions: true,
		IncludeMedia:     true,
	}
}

// TranscriptWriter renders the normalized message sequence as a plain
// text transcript, one line per message.
type TranscriptWriter struct {
	writer *bufio.Writer
	dest   io.WriteCloser
	opts   TranscriptOptions
}

func NewTranscriptWriter(dest io.WriteCloser, opts TranscriptOptions) *TranscriptWriter {
	return &TranscriptWriter{
		writer: bufio.NewWriter(dest),
		dest:   dest,
		opts:   opts,
	}
}

func (w *TranscriptWriter) WriteReport(r *Report) error {
	for _, m := range r.Messages {
		line := EncodeMessage(m, w.opts)
		if line == "" {
			continue
		}
		if _, err := w.writer.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write transcript line: %w", err)
		}
	}
	WriteStats(w.writer, r.ParseStats)
	return w.writer.Flush()
}

func (w *TranscriptWriter) Close() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.dest.Close()
}

// EncodeMessage renders one message as a transcript line.
func EncodeMessage(m instaexport.Message, opts TranscriptOptions) string {
	var b strings.Builder

	if opts.IncludeSendTime && !m.Timestamp.IsZero() {
		b.WriteString(fmt.Sprintf("[%s] ", m.Timestamp.Format("2006-01-02 3:04pm")))
	}
	b.WriteString(m.Sender)
	b.WriteString(": ")

	switch m.ContentType {
	case instaexport.ContentText:
		b.WriteString(m.Text)
	case instaexport.ContentPhoto:
		if !opts.IncludeMedia {
			return ""
		}
		b.WriteString("[Photo]")
	case instaexport.ContentVideo:
		if !opts.IncludeMedia {
			return ""
		}
		b.WriteString("[Video]")
	case instaexport.ContentAudio:
		if !opts.IncludeMedia {
			return ""
		}
		b.WriteString("[Audio]")
	case instaexport.ContentSharedPost:
		if !opts.IncludeMedia {
			return ""
		}
		b.WriteString("[Shared post]")
	case instaexport.ContentUnsent:
		b.WriteString("[Unsent]")
	case instaexport.ContentReaction:
		b.WriteString("[Reaction]")
	default:
		b.WriteString("[Attachment]")
	}

	if opts.IncludeReactions {
		if suffix := formatReactions(m.Reactions); suffix != "" {
			b.WriteString(" ")
			b.WriteString(suffix)
		}
	}

	return b.String()
}

// formatReactions renders reactions as a deterministic sorted suffix,
// e.g. "[❤️(2), 😂]".
func formatReactions(reactions []instaexport.Reaction) string {
	if len(reactions) == 0 {
		return ""
	}

	reactionCounts := make(map[string]int)
	for _, r := range reactions {
		if r.Emoji != "" {
			reactionCounts[r.Emoji]++
		}
	}
	if len(reactionCounts) == 0 {
		return ""
	}

	var parts []string
	for glyph, count := range reactionCounts {
		if count > 1 {
			parts = append(parts, fmt.Sprintf("%s(%d)", glyph, count))
		} else {
			parts = append(parts, glyph)
		}
	}

	// Sort for determinism
	sort.Strings(parts)

	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
