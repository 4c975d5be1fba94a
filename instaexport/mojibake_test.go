package instaexport

import (
	"errors"
	"testing"
)

func TestRepairMojibake_Emoji(t *testing.T) {
	// "😂" (F0 9F 98 82) read through Latin-1: one code point per byte.
	mojibake := "\u00f0\u009f\u0098\u0082"
	repaired := RepairMojibake(mojibake)
	if repaired != "😂" {
		t.Errorf("Expected %q, got %q", "😂", repaired)
	}
}

func TestRepairMojibake_Windows1252(t *testing.T) {
	// The same bytes read through Windows-1252 map 9F/98/82 onto
	// printable punctuation instead of C1 controls.
	mojibake := "\u00f0\u0178\u02dc\u201a"
	repaired := RepairMojibake(mojibake)
	if repaired != "😂" {
		t.Errorf("Expected %q, got %q", "😂", repaired)
	}
}

func TestRepairMojibake_MixedText(t *testing.T) {
	mojibake := "lol \u00f0\u009f\u0098\u0082 nice"
	repaired := RepairMojibake(mojibake)
	if repaired != "lol 😂 nice" {
		t.Errorf("Expected %q, got %q", "lol 😂 nice", repaired)
	}
}

func TestRepairMojibake_LeavesASCII(t *testing.T) {
	in := "hello world"
	if got := RepairMojibake(in); got != in {
		t.Errorf("Expected ASCII text unchanged, got %q", got)
	}
}

func TestRepairMojibake_LeavesAccentedText(t *testing.T) {
	// Genuine Latin-1-range text does not survive the UTF-8 round trip
	// and must pass through untouched.
	in := "café con leche"
	if got := RepairMojibake(in); got != in {
		t.Errorf("Expected accented text unchanged, got %q", got)
	}
}

func TestRepairMojibake_LeavesProperEmoji(t *testing.T) {
	in := "already fine 😂"
	if got := RepairMojibake(in); got != in {
		t.Errorf("Expected proper emoji unchanged, got %q", got)
	}
}

func TestDecodeText_RoundTrip(t *testing.T) {
	// "👍" is F0 9F 91 8D.
	got, err := DecodeText("  \u00f0\u009f\u0091\u008d  ")
	if err != nil {
		t.Fatalf("DecodeText failed: %v", err)
	}
	if got != "👍" {
		t.Errorf("Expected %q, got %q", "👍", got)
	}
}

func TestDecodeText_UndecodableFails(t *testing.T) {
	_, err := DecodeText("broken � text")
	if err == nil {
		t.Fatal("Expected error for text with replacement characters")
	}
	var decodeErr *EncodingDecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("Expected *EncodingDecodeError, got %T", err)
	}
}

func TestCleanText_NonBreakingSpace(t *testing.T) {
	got := CleanText("Dec\u00a025, 2023")
	if got != "Dec 25, 2023" {
		t.Errorf("Expected %q, got %q", "Dec 25, 2023", got)
	}
}
