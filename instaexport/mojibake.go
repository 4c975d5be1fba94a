package instaexport

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Instagram's HTML exports contain UTF-8 text that was written through a
// Latin-1-like intermediate: each original byte became one code point.
// Read naively, every emoji and non-ASCII name turns into sequences
// like "ðŸ˜‚". RepairMojibake undoes that by encoding the string back
// to single bytes and reinterpreting them as UTF-8.

// RepairMojibake returns the repaired string when the mojibake
// heuristic holds, otherwise the input unchanged. The repair applies
// only when the text contains non-ASCII runes, every rune maps back to
// a single byte under ISO 8859-1 or Windows-1252, and the recovered
// bytes form valid UTF-8. Genuine accented text fails the round trip
// and passes through untouched.
func RepairMojibake(s string) string {
	if !hasNonASCII(s) {
		return s
	}
	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		raw, err := cm.NewEncoder().String(s)
		if err != nil {
			continue
		}
		if utf8.ValidString(raw) && utf8.RuneCountInString(raw) < utf8.RuneCountInString(s) {
			return raw
		}
	}
	return s
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r >= 0x80 {
			return true
		}
	}
	return false
}

// DecodeText repairs mojibake and then cleans the result for storage.
// It fails when the text still carries replacement characters, which is
// how the HTML decoder marks bytes it could not interpret; such a block
// is skipped and counted rather than silently corrupted downstream.
func DecodeText(s string) (string, error) {
	s = RepairMojibake(s)
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", &EncodingDecodeError{Reason: "text contains undecodable byte sequences"}
	}
	return CleanText(s), nil
}

// CleanText normalizes whitespace in decoded block text.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(s)
}
