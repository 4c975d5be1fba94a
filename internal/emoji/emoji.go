// Package emoji extracts emoji glyphs from text. Matching is
// grapheme-cluster based so multi-code-point sequences (skin-tone
// modifiers, ZWJ joins, flags, keycaps) count as one glyph each.
package emoji

import (
	"strings"

	"github.com/rivo/uniseg"
)

type runeRange struct {
	lo, hi rune
}

// emojiRanges is the data-driven matching table. A grapheme cluster is
// one emoji glyph when it contains at least one rune from this table.
var emojiRanges = []runeRange{
	{0x203C, 0x203C}, // double exclamation
	{0x2049, 0x2049}, // exclamation question
	{0x20E3, 0x20E3}, // combining enclosing keycap
	{0x2194, 0x21AA}, // arrows
	{0x231A, 0x231B}, // watch, hourglass
	{0x23E9, 0x23FA}, // media controls
	{0x25AA, 0x25FE}, // geometric shapes subset
	{0x2600, 0x26FF}, // miscellaneous symbols
	{0x2700, 0x27BF}, // dingbats (includes ❤ U+2764)
	{0x2B05, 0x2B07}, // heavy arrows
	{0x2B1B, 0x2B1C}, // large squares
	{0x2B50, 0x2B50}, // star
	{0x2B55, 0x2B55}, // heavy circle
	{0x1F004, 0x1F004}, // mahjong tile
	{0x1F0CF, 0x1F0CF}, // joker
	{0x1F170, 0x1F19A}, // enclosed alphanumerics
	{0x1F1E6, 0x1F1FF}, // regional indicators (flags)
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F700, 0x1F77F}, // alchemical
	{0x1F780, 0x1F7FF}, // geometric shapes extended
	{0x1F800, 0x1F8FF}, // supplemental arrows
	{0x1F900, 0x1F9FF}, // supplemental symbols and pictographs
	{0x1FA00, 0x1FA6F}, // chess symbols
	{0x1FA70, 0x1FAFF}, // symbols and pictographs extended
}

func isEmojiRune(r rune) bool {
	for _, rr := range emojiRanges {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// IsEmoji reports whether the grapheme cluster g renders as an emoji
// glyph.
func IsEmoji(g string) bool {
	for _, r := range g {
		if isEmojiRune(r) {
			return true
		}
	}
	return false
}

// Extract returns every emoji glyph in s, in order, one entry per
// grapheme cluster.
func Extract(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		if IsEmoji(cluster) {
			out = append(out, cluster)
		}
	}
	return out
}

// CountInto increments counts[g] for every emoji glyph g found in s.
func CountInto(s string, counts map[string]int) {
	for _, g := range Extract(s) {
		counts[g]++
	}
}

// SplitLeading splits s into its leading run of emoji glyphs and the
// remaining text. Export reaction list items are shaped
// "❤️Some Name", so the leading run is the reaction emoji and the rest
// is the reactor.
func SplitLeading(s string) (glyphs string, rest string) {
	g := uniseg.NewGraphemes(s)
	offset := 0
	for g.Next() {
		cluster := g.Str()
		if strings.TrimSpace(cluster) == "" {
			offset += len(cluster)
			continue
		}
		if !IsEmoji(cluster) {
			break
		}
		offset += len(cluster)
	}
	return strings.TrimSpace(s[:offset]), strings.TrimSpace(s[offset:])
}
