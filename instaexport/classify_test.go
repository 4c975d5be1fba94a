package instaexport

import "testing"

func TestClassify_Text(t *testing.T) {
	if got := Classify("hey, how are you?", MediaHints{}); got != ContentText {
		t.Errorf("Expected %q, got %q", ContentText, got)
	}
}

func TestClassify_MediaHints(t *testing.T) {
	cases := []struct {
		hints MediaHints
		want  ContentType
	}{
		{MediaHints{HasImage: true}, ContentPhoto},
		{MediaHints{HasVideo: true}, ContentVideo},
		{MediaHints{HasAudio: true}, ContentAudio},
		{MediaHints{HasLink: true}, ContentSharedPost},
	}
	for _, c := range cases {
		if got := Classify("", c.hints); got != c.want {
			t.Errorf("Expected %q for %+v, got %q", c.want, c.hints, got)
		}
	}
}

func TestClassify_Markers(t *testing.T) {
	cases := []struct {
		body string
		want ContentType
	}{
		{"Alice sent a photo.", ContentPhoto},
		{"Bob sent a video.", ContentVideo},
		{"Alice sent an audio message.", ContentAudio},
		{"Alice sent a voice message.", ContentAudio},
		{"Bob shared a story.", ContentSharedPost},
		{"Alice shared a post.", ContentSharedPost},
		{"Bob sent an attachment.", ContentOther},
		{"Alice unsent a message", ContentUnsent},
		{"This message is no longer available", ContentUnsent},
		{"Reacted ❤️ to your message", ContentReaction},
		{"", ContentOther},
	}
	for _, c := range cases {
		if got := Classify(c.body, MediaHints{}); got != c.want {
			t.Errorf("Expected %q for %q, got %q", c.want, c.body, got)
		}
	}
}

func TestReactionEmoji(t *testing.T) {
	glyph, ok := ReactionEmoji("Reacted ❤️ to your message")
	if !ok {
		t.Fatal("Expected a reaction emoji")
	}
	if glyph != "❤️" {
		t.Errorf("Expected %q, got %q", "❤️", glyph)
	}
}

func TestReactionEmoji_NotAReaction(t *testing.T) {
	if _, ok := ReactionEmoji("just a normal message"); ok {
		t.Error("Expected no reaction emoji for plain text")
	}
}
