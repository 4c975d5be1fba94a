package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/instalens/instalens/instaexport"
)

func textMsg(sender, text string, ts time.Time) instaexport.Message {
	return instaexport.Message{
		Sender:      sender,
		Timestamp:   ts,
		ContentType: instaexport.ContentText,
		Text:        text,
	}
}

func TestAggregate_Empty(t *testing.T) {
	tables := Aggregate(nil, Options{})

	if len(tables.DailyCounts) != 0 || len(tables.HourlyCounts) != 0 ||
		len(tables.WeeklyCounts) != 0 || len(tables.MonthlyCounts) != 0 ||
		len(tables.EmojiCounts) != 0 || len(tables.SenderCounts) != 0 ||
		len(tables.ReactionCounts) != 0 {
		t.Errorf("Expected all tables empty, got %+v", tables)
	}
	if tables.Totals.Messages != 0 {
		t.Errorf("Expected zero totals, got %+v", tables.Totals)
	}
}

func TestAggregate_SenderAndDailyCounts(t *testing.T) {
	day := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	messages := []instaexport.Message{
		textMsg("Alice", "one", day.Add(8*time.Hour)),
		textMsg("Bob", "two", day.Add(9*time.Hour)),
		textMsg("Alice", "three", day.Add(12*time.Hour)),
		textMsg("Bob", "four", day.Add(15*time.Hour)),
		textMsg("Alice", "five", day.Add(21*time.Hour)),
	}

	tables := Aggregate(messages, Options{})

	wantSenders := map[string]int{"Alice": 3, "Bob": 2}
	if !reflect.DeepEqual(tables.SenderCounts, wantSenders) {
		t.Errorf("Expected %v, got %v", wantSenders, tables.SenderCounts)
	}
	if len(tables.DailyCounts) != 1 {
		t.Fatalf("Expected exactly one daily entry, got %v", tables.DailyCounts)
	}
	if tables.DailyCounts["2023-05-01"] != 5 {
		t.Errorf("Expected 5 messages on 2023-05-01, got %d", tables.DailyCounts["2023-05-01"])
	}
}

func TestAggregate_VolumeTotalsAgree(t *testing.T) {
	base := time.Date(2023, 5, 1, 6, 0, 0, 0, time.UTC)
	messages := []instaexport.Message{
		textMsg("Alice", "a", base),
		textMsg("Bob", "b", base.Add(26*time.Hour)),
		textMsg("Alice", "c", base.Add(50*time.Hour)),
		{Sender: "Bob", Timestamp: base.Add(time.Hour), ContentType: instaexport.ContentPhoto},
		{Sender: "Bob", Timestamp: base.Add(2 * time.Hour), ContentType: instaexport.ContentUnsent},
	}

	tables := Aggregate(messages, Options{})

	daily, hourly, weekly := 0, 0, 0
	for _, c := range tables.DailyCounts {
		daily += c
	}
	for _, c := range tables.HourlyCounts {
		hourly += c
	}
	for _, c := range tables.WeeklyCounts {
		weekly += c
	}

	if daily != tables.Totals.Text || hourly != tables.Totals.Text || weekly != tables.Totals.Text {
		t.Errorf("Expected all volume tables to sum to %d text messages, got daily=%d hourly=%d weekly=%d",
			tables.Totals.Text, daily, hourly, weekly)
	}
	if tables.Totals.Text != 3 {
		t.Errorf("Expected 3 text messages, got %d", tables.Totals.Text)
	}
}

func TestAggregate_MediaAndReactionsExcludedByDefault(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	messages := []instaexport.Message{
		textMsg("Alice", "hello", ts),
		{Sender: "Bob", Timestamp: ts, ContentType: instaexport.ContentPhoto},
		{Sender: "Bob", Timestamp: ts, ContentType: instaexport.ContentReaction,
			Reactions: []instaexport.Reaction{{Reactor: "Bob", Emoji: "❤️"}}},
	}

	tables := Aggregate(messages, Options{})

	if tables.SenderCounts["Bob"] != 0 {
		t.Errorf("Expected Bob excluded from sender counts, got %d", tables.SenderCounts["Bob"])
	}
	if tables.DailyCounts["2023-05-01"] != 1 {
		t.Errorf("Expected 1 counted message, got %d", tables.DailyCounts["2023-05-01"])
	}
	if tables.ReactionCounts["Bob"] != 1 {
		t.Errorf("Expected Bob's reaction counted, got %d", tables.ReactionCounts["Bob"])
	}
}

func TestAggregate_CountUnsentPolicy(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	messages := []instaexport.Message{
		textMsg("Alice", "hello", ts),
		{Sender: "Alice", Timestamp: ts, ContentType: instaexport.ContentUnsent},
	}

	off := Aggregate(messages, Options{})
	if off.SenderCounts["Alice"] != 1 {
		t.Errorf("Expected 1 with count_unsent off, got %d", off.SenderCounts["Alice"])
	}

	on := Aggregate(messages, Options{CountUnsent: true})
	if on.SenderCounts["Alice"] != 2 {
		t.Errorf("Expected 2 with count_unsent on, got %d", on.SenderCounts["Alice"])
	}
	if on.DailyCounts["2023-05-01"] != 2 {
		t.Errorf("Expected 2 daily with count_unsent on, got %d", on.DailyCounts["2023-05-01"])
	}
}

func TestAggregate_CountMediaPolicy(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	messages := []instaexport.Message{
		textMsg("Alice", "hello", ts),
		{Sender: "Alice", Timestamp: ts, ContentType: instaexport.ContentPhoto},
		{Sender: "Alice", Timestamp: ts, ContentType: instaexport.ContentSharedPost},
	}

	on := Aggregate(messages, Options{CountMedia: true})
	if on.SenderCounts["Alice"] != 3 {
		t.Errorf("Expected 3 with count_media on, got %d", on.SenderCounts["Alice"])
	}
}

func TestAggregate_EmojiRoundTrip(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	messages := []instaexport.Message{
		textMsg("Alice", "😂 this 😂", ts),
		textMsg("Bob", "👍🏽", ts.Add(time.Minute)),
		{Sender: "Alice", Timestamp: ts, ContentType: instaexport.ContentText, Text: "😂",
			Reactions: []instaexport.Reaction{{Reactor: "Bob", Emoji: "😂"}}},
	}

	tables := Aggregate(messages, Options{})

	if tables.EmojiCounts["😂"] != 4 {
		t.Errorf("Expected 😂 counted 4 times across text and reactions, got %d", tables.EmojiCounts["😂"])
	}
	// Skin-toned thumbs-up is one glyph, not two.
	if tables.EmojiCounts["👍🏽"] != 1 {
		t.Errorf("Expected 👍🏽 counted once, got %d", tables.EmojiCounts["👍🏽"])
	}
	if len(tables.EmojiCounts) != 2 {
		t.Errorf("Expected 2 distinct glyphs, got %v", tables.EmojiCounts)
	}
}

func TestAggregate_HourlyAndHeatmap(t *testing.T) {
	// 2023-05-01 is a Monday.
	day := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	messages := []instaexport.Message{
		textMsg("Alice", "a", day.Add(8*time.Hour)),
		textMsg("Alice", "b", day.Add(8*time.Hour+30*time.Minute)),
		textMsg("Bob", "c", day.Add(22*time.Hour)),
	}

	tables := Aggregate(messages, Options{})

	if tables.HourlyCounts[8] != 2 || tables.HourlyCounts[22] != 1 {
		t.Errorf("Unexpected hourly counts: %v", tables.HourlyCounts)
	}

	monday := int(time.Monday)
	found := 0
	for _, cell := range tables.Heatmap {
		if cell.Day == monday && cell.Hour == 8 && cell.Count == 2 {
			found++
		}
		if cell.Day == monday && cell.Hour == 22 && cell.Count == 1 {
			found++
		}
	}
	if found != 2 {
		t.Errorf("Expected heatmap cells for Monday 8h and 22h, got %v", tables.Heatmap)
	}
}

func TestAggregate_WeekAndMonthKeys(t *testing.T) {
	ts := time.Date(2023, 1, 2, 10, 0, 0, 0, time.UTC) // ISO week 2023-W01
	tables := Aggregate([]instaexport.Message{textMsg("Alice", "hi", ts)}, Options{})

	if tables.WeeklyCounts["2023-W01"] != 1 {
		t.Errorf("Expected ISO week key 2023-W01, got %v", tables.WeeklyCounts)
	}
	if tables.MonthlyCounts["2023-01"] != 1 {
		t.Errorf("Expected month key 2023-01, got %v", tables.MonthlyCounts)
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	ts := time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)
	messages := []instaexport.Message{
		textMsg("Alice", "😂 hi", ts),
		textMsg("Bob", "yo", ts.Add(time.Hour)),
	}

	first := Aggregate(messages, Options{})
	second := Aggregate(messages, Options{})

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical tables across runs")
	}
}

func TestTopSenders_Ordering(t *testing.T) {
	tables := &SummaryTables{SenderCounts: map[string]int{
		"carol": 5, "alice": 9, "bob": 5, "dave": 1,
	}}

	got := tables.TopSenders(3)
	want := []RankedEntry{{"alice", 9}, {"bob", 5}, {"carol", 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
