package instaexport

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/instalens/instalens/internal/emoji"
)

// Selectors for the repeated export markup. The schema is an external,
// versioned format: one div per message event, with sender, body and
// timestamp in fixed class-tagged children.
const (
	blockSelector    = "div.pam.uiBoxWhite.noborder"
	senderSelector   = "h2"
	bodySelector     = "div._3-95._a6-p"
	timeSelector     = "div._3-94._a6-o"
	reactionSelector = "ul._a6-q li"
)

// Parser converts Instagram HTML export files into normalized messages.
// A Parser is stateless across calls; each ParseFile operates on its
// own document.
type Parser struct {
	loc   *time.Location
	order FileOrder
	log   *zap.SugaredLogger
}

// NewParser returns a parser that interprets export timestamps in loc
// and resolves standalone reaction blocks per the file-order
// convention. A nil loc means UTC; a nil log disables logging.
func NewParser(loc *time.Location, order FileOrder, log *zap.SugaredLogger) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Parser{loc: loc, order: order, log: log}
}

// ParseFile parses one export file into messages in file order.
//
// File-level structural failures return a *MalformedExportError and
// contribute nothing. Per-message failures are recovered locally: the
// block is skipped and the matching ParseStats counter incremented, so
// one bad block never aborts the run. An empty file is an empty
// sequence, not an error.
func (p *Parser) ParseFile(name string, r io.Reader, fileIndex int) ([]Message, ParseStats, error) {
	var stats ParseStats

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		stats.FilesParsed = 1
		return nil, stats, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, stats, &MalformedExportError{File: name, Reason: fmt.Sprintf("not parseable as HTML: %v", err)}
	}

	blocks := doc.Find(blockSelector)
	if blocks.Length() == 0 {
		return nil, stats, &MalformedExportError{
			File:   name,
			Reason: fmt.Sprintf("no message blocks matched %q; not an Instagram message export", blockSelector),
		}
	}

	var (
		messages []Message
		pending  []Message // standalone reaction blocks awaiting their message
	)

	blocks.Each(func(i int, block *goquery.Selection) {
		stats.BlocksSeen++

		msg, kind := p.parseBlock(block, fileIndex, i)
		switch kind {
		case blockMessage:
			// Exports list blocks newest-first when files are numbered
			// newest-first; a standalone reaction then precedes the
			// message it refers to, so pending reactions attach here.
			if p.order == NewestFirst && len(pending) > 0 {
				for _, r := range pending {
					msg.Reactions = append(msg.Reactions, r.Reactions...)
				}
				pending = nil
			}
			msg.ID = MessageID(*msg)
			messages = append(messages, *msg)
			stats.MessagesParsed++
		case blockReaction:
			if p.order == OldestFirst && len(messages) > 0 {
				last := &messages[len(messages)-1]
				last.Reactions = append(last.Reactions, msg.Reactions...)
			} else if p.order == NewestFirst {
				pending = append(pending, *msg)
			} else {
				msg.ID = MessageID(*msg)
				messages = append(messages, *msg)
				stats.MessagesParsed++
			}
		case blockSkippedTimestamp:
			stats.SkippedBadTimestamp++
		case blockSkippedEncoding:
			stats.SkippedBadEncoding++
		case blockSkippedStructure:
			stats.SkippedUnclassifiable++
		}
	})

	// Documented fallback: reaction blocks whose message never appeared
	// become standalone reaction records, keeping their own block
	// timestamp and position.
	for _, m := range pending {
		m.ID = MessageID(m)
		messages = append(messages, m)
		stats.MessagesParsed++
	}

	stats.FilesParsed = 1
	return messages, stats, nil
}

type blockKind int

const (
	blockMessage blockKind = iota
	blockReaction
	blockSkippedTimestamp
	blockSkippedEncoding
	blockSkippedStructure
)

// parseBlock extracts one message event from a block selection. For
// blockReaction the returned message carries exactly one reaction and
// the block's own timestamp; the caller decides whether it attaches to
// a neighboring message or stands alone.
func (p *Parser) parseBlock(block *goquery.Selection, fileIndex, order int) (*Message, blockKind) {
	senderSel := block.Find(senderSelector).First()
	timeSel := block.Find(timeSelector).First()
	if senderSel.Length() == 0 || timeSel.Length() == 0 {
		p.log.Warnw("skipping block without sender or timestamp markup",
			"file_index", fileIndex, "block", order)
		return nil, blockSkippedStructure
	}

	sender, err := DecodeText(senderSel.Text())
	if err != nil || sender == "" {
		p.log.Warnw("skipping block with undecodable sender",
			"file_index", fileIndex, "block", order, "error", err)
		return nil, blockSkippedEncoding
	}

	ts, err := ParseTimestamp(timeSel.Text(), p.loc)
	if err != nil {
		p.log.Warnw("skipping block with unrecognized timestamp",
			"file_index", fileIndex, "block", order, "error", err)
		return nil, blockSkippedTimestamp
	}

	bodySel := block.Find(bodySelector).First()
	reactions := p.parseInlineReactions(bodySel)
	// Drop the reaction list before reading the body so reactor names
	// do not leak into message text.
	bodySel.Find("ul").Remove()

	hints := MediaHints{
		HasImage: bodySel.Find("img").Length() > 0,
		HasVideo: bodySel.Find("video").Length() > 0,
		HasAudio: bodySel.Find("audio").Length() > 0,
		HasLink:  bodySel.Find("a").Length() > 0,
	}

	body, err := DecodeText(bodySel.Text())
	if err != nil {
		p.log.Warnw("skipping block with undecodable body",
			"file_index", fileIndex, "block", order, "error", err)
		return nil, blockSkippedEncoding
	}

	msg := &Message{
		Sender:          sender,
		Timestamp:       ts,
		Reactions:       reactions,
		SourceFileIndex: fileIndex,
		WithinFileOrder: order,
	}

	ct := Classify(body, hints)
	if ct == ContentReaction {
		glyph, ok := ReactionEmoji(body)
		if !ok {
			return nil, blockSkippedStructure
		}
		msg.ContentType = ContentReaction
		msg.Reactions = []Reaction{{Reactor: sender, Emoji: glyph}}
		return msg, blockReaction
	}

	msg.ContentType = ct
	if ct == ContentText {
		msg.Text = body
	}
	return msg, blockMessage
}

// parseInlineReactions reads the reaction list attached to a block.
// List items are shaped "❤️Some Name".
func (p *Parser) parseInlineReactions(bodySel *goquery.Selection) []Reaction {
	var reactions []Reaction
	bodySel.Find(reactionSelector).Each(func(_ int, li *goquery.Selection) {
		text, err := DecodeText(li.Text())
		if err != nil {
			return
		}
		glyph, reactor := emoji.SplitLeading(text)
		if glyph == "" {
			return
		}
		reactions = append(reactions, Reaction{Reactor: reactor, Emoji: glyph})
	})
	return reactions
}
