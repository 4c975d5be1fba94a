// Package stats computes summary tables over a normalized message
// sequence. The aggregator is pure: one pass, no state between runs.
package stats

import (
	"sort"
	"time"
)

// HeatmapCell is one weekday×hour bucket. Day follows time.Weekday
// numbering (0 = Sunday).
type HeatmapCell struct {
	Day   int `json:"day"`
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Totals summarizes overall conversation volume by content class.
type Totals struct {
	Messages  int       `json:"messages"`
	Text      int       `json:"text"`
	Media     int       `json:"media"`
	Shared    int       `json:"shared"`
	Reactions int       `json:"reactions"`
	Unsent    int       `json:"unsent"`
	First     time.Time `json:"first,omitempty"`
	Last      time.Time `json:"last,omitempty"`
}

// SummaryTables is the aggregator output handed to the presentation
// layer. Keys: daily YYYY-MM-DD, weekly ISO year-Www, monthly YYYY-MM.
type SummaryTables struct {
	DailyCounts    map[string]int `json:"daily_counts"`
	HourlyCounts   map[int]int    `json:"hourly_counts"`
	WeeklyCounts   map[string]int `json:"weekly_counts"`
	MonthlyCounts  map[string]int `json:"monthly_counts"`
	EmojiCounts    map[string]int `json:"emoji_counts"`
	SenderCounts   map[string]int `json:"sender_counts"`
	ReactionCounts map[string]int `json:"reaction_counts"`
	Heatmap        []HeatmapCell  `json:"heatmap"`
	Totals         Totals         `json:"totals"`
}

// RankedEntry is one row of a top-N ranking.
type RankedEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopSenders returns up to n senders ordered by count descending, key
// ascending on ties. Ordering is fully deterministic.
func (t *SummaryTables) TopSenders(n int) []RankedEntry {
	return topN(t.SenderCounts, n)
}

// TopEmojis returns up to n emoji glyphs ordered by count descending,
// key ascending on ties.
func (t *SummaryTables) TopEmojis(n int) []RankedEntry {
	return topN(t.EmojiCounts, n)
}

func topN(counts map[string]int, n int) []RankedEntry {
	entries := make([]RankedEntry, 0, len(counts))
	for k, c := range counts {
		entries = append(entries, RankedEntry{Key: k, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
