package stats

import (
	"fmt"

	"github.com/instalens/instalens/instaexport"
	"github.com/instalens/instalens/internal/emoji"
)

// Options widens which content types count toward the volume tables
// (daily/hourly/weekly/monthly/sender/heatmap). Defaults are the
// documented policy: text messages only. Emoji and reaction tables are
// unaffected by these flags.
type Options struct {
	// CountUnsent counts deleted-message placeholders as events.
	CountUnsent bool
	// CountMedia counts photo/video/audio/shared-post events.
	CountMedia bool
}

// Aggregate computes all summary tables in a single pass over the
// message sequence.
func Aggregate(messages []instaexport.Message, opts Options) *SummaryTables {
	t := &SummaryTables{
		DailyCounts:    make(map[string]int),
		HourlyCounts:   make(map[int]int),
		WeeklyCounts:   make(map[string]int),
		MonthlyCounts:  make(map[string]int),
		EmojiCounts:    make(map[string]int),
		SenderCounts:   make(map[string]int),
		ReactionCounts: make(map[string]int),
	}

	heat := make([]int, 7*24)

	for _, m := range messages {
		t.Totals.Messages++
		switch m.ContentType {
		case instaexport.ContentText:
			t.Totals.Text++
		case instaexport.ContentPhoto, instaexport.ContentVideo, instaexport.ContentAudio:
			t.Totals.Media++
		case instaexport.ContentSharedPost:
			t.Totals.Shared++
		case instaexport.ContentUnsent:
			t.Totals.Unsent++
		}

		if !m.Timestamp.IsZero() {
			if t.Totals.First.IsZero() || m.Timestamp.Before(t.Totals.First) {
				t.Totals.First = m.Timestamp
			}
			if m.Timestamp.After(t.Totals.Last) {
				t.Totals.Last = m.Timestamp
			}
		}

		if m.ContentType == instaexport.ContentText {
			emoji.CountInto(m.Text, t.EmojiCounts)
		}
		for _, r := range m.Reactions {
			t.Totals.Reactions++
			emoji.CountInto(r.Emoji, t.EmojiCounts)
			if r.Reactor != "" {
				t.ReactionCounts[r.Reactor]++
			}
		}

		if !countsTowardVolume(m.ContentType, opts) || m.Timestamp.IsZero() {
			continue
		}

		ts := m.Timestamp
		t.DailyCounts[ts.Format("2006-01-02")]++
		t.HourlyCounts[ts.Hour()]++
		year, week := ts.ISOWeek()
		t.WeeklyCounts[fmt.Sprintf("%d-W%02d", year, week)]++
		t.MonthlyCounts[ts.Format("2006-01")]++
		t.SenderCounts[m.Sender]++
		heat[int(ts.Weekday())*24+ts.Hour()]++
	}

	t.Heatmap = make([]HeatmapCell, 0, len(heat))
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			t.Heatmap = append(t.Heatmap, HeatmapCell{
				Day:   day,
				Hour:  hour,
				Count: heat[day*24+hour],
			})
		}
	}

	return t
}

func countsTowardVolume(ct instaexport.ContentType, opts Options) bool {
	switch ct {
	case instaexport.ContentText:
		return true
	case instaexport.ContentUnsent:
		return opts.CountUnsent
	case instaexport.ContentPhoto, instaexport.ContentVideo,
		instaexport.ContentAudio, instaexport.ContentSharedPost:
		return opts.CountMedia
	default:
		return false
	}
}
