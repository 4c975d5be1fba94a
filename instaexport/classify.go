package instaexport

import "strings"

// Export blocks mark non-text events with fixed English phrases. The
// markers below cover the shapes seen in real exports; anything with
// body text that matches none of them is a plain text message.
const (
	markerAttachment  = "sent an attachment"
	markerPhoto       = "sent a photo"
	markerVideo       = "sent a video"
	markerAudio       = "sent an audio message"
	markerVoice       = "sent a voice message"
	markerStory       = "shared a story"
	markerPost        = "shared a post"
	markerLink        = "shared a link"
	markerUnsent      = "unsent a message"
	markerUnavailable = "This message is no longer available"
	markerLiked       = "Liked a message"

	reactionPrefix = "Reacted "
	reactionSuffix = " to your message"
)

// MediaHints carries structural evidence from the block markup that the
// text-level markers cannot see.
type MediaHints struct {
	HasImage bool
	HasVideo bool
	HasAudio bool
	HasLink  bool
}

// Classify maps decoded block body text plus markup hints onto the
// content taxonomy.
func Classify(body string, hints MediaHints) ContentType {
	switch {
	case hints.HasImage:
		return ContentPhoto
	case hints.HasVideo:
		return ContentVideo
	case hints.HasAudio:
		return ContentAudio
	}

	trimmed := strings.TrimSpace(body)
	lower := strings.ToLower(trimmed)
	switch {
	case IsUnsent(trimmed):
		return ContentUnsent
	case IsReactionText(trimmed):
		return ContentReaction
	case strings.Contains(lower, markerPhoto):
		return ContentPhoto
	case strings.Contains(lower, markerVideo):
		return ContentVideo
	case strings.Contains(lower, markerAudio), strings.Contains(lower, markerVoice):
		return ContentAudio
	case strings.Contains(lower, markerStory),
		strings.Contains(lower, markerPost),
		strings.Contains(lower, markerLink),
		hints.HasLink:
		return ContentSharedPost
	case strings.Contains(lower, markerAttachment):
		return ContentOther
	case trimmed == "", trimmed == markerLiked:
		return ContentOther
	default:
		return ContentText
	}
}

// IsUnsent reports whether the block is a deleted-message placeholder.
func IsUnsent(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return strings.Contains(lower, markerUnsent) ||
		strings.Contains(lower, strings.ToLower(markerUnavailable))
}

// IsReactionText reports whether text is a standalone reaction block
// ("Reacted ❤️ to your message").
func IsReactionText(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, reactionPrefix) && strings.Contains(t, reactionSuffix)
}

// ReactionEmoji extracts the emoji from a standalone reaction block.
func ReactionEmoji(text string) (string, bool) {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, reactionPrefix) {
		return "", false
	}
	t = strings.TrimPrefix(t, reactionPrefix)
	idx := strings.Index(t, reactionSuffix)
	if idx < 0 {
		return "", false
	}
	e := strings.TrimSpace(t[:idx])
	if e == "" {
		return "", false
	}
	return e, true
}
