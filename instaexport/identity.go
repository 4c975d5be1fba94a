package instaexport

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// messageNamespace is the fixed UUID namespace for message identities.
var messageNamespace = uuid.MustParse("7f9b2c44-1d6a-4e03-9a5e-c1b8f0a3d210")

// MessageID derives a stable identity for a message from its sender,
// timestamp, content type and text. The same message parsed twice (or
// present in two overlapping export files) yields the same ID, which is
// what optional deduplication keys on.
func MessageID(m Message) string {
	seed := fmt.Sprintf("%s\x00%s\x00%s\x00%s",
		m.Sender,
		m.Timestamp.UTC().Format(time.RFC3339Nano),
		m.ContentType,
		m.Text,
	)
	return uuid.NewSHA1(messageNamespace, []byte(seed)).String()
}

// Dedupe removes messages whose ID was already seen, keeping the first
// occurrence, and returns the number dropped. Off by default: exports
// are not deduplicated unless the caller opts in.
func Dedupe(messages []Message) ([]Message, int) {
	seen := make(map[string]struct{}, len(messages))
	out := messages[:0:0]
	dropped := 0
	for _, m := range messages {
		id := m.ID
		if id == "" {
			id = MessageID(m)
		}
		if _, dup := seen[id]; dup {
			dropped++
			continue
		}
		seen[id] = struct{}{}
		out = append(out, m)
	}
	return out, dropped
}
