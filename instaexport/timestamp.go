package instaexport

import (
	"strings"
	"time"
)

// timestampLayouts are the known export timestamp formats, tried in
// order. Exports encode a human-readable localized instant such as
// "Dec 25, 2023 10:30 PM"; newer exports add a comma before the time.
var timestampLayouts = []string{
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006, 3:04 PM",
	"Jan 2, 2006 3:04:05 PM",
	"2006-01-02 15:04:05",
	"2 Jan 2006 15:04",
	"2006-01-02",
}

// ParseTimestamp interprets an export timestamp string in loc.
// An unrecognized format is a loud failure, never a silent drop: the
// caller skips the message and counts it.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	v := CleanText(value)
	// Newer exports use narrow no-break spaces and lowercase meridiems.
	// Only a trailing meridiem token is rewritten; "am"/"pm" elsewhere in
	// the value must stay untouched.
	v = strings.ReplaceAll(v, "\u202f", " ")
	switch {
	case strings.HasSuffix(v, " am"):
		v = strings.TrimSuffix(v, " am") + " AM"
	case strings.HasSuffix(v, " pm"):
		v = strings.TrimSuffix(v, " pm") + " PM"
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &UnrecognizedTimestampFormatError{Value: value}
}
