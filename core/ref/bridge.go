package ref

import (
	"math"
	"unicode/utf8"
)

// VerseBridge is the result of scanning a typed verse number.
type VerseBridge struct {
	// Literal is the verse text that was consumed, e.g. "3a-5".
	Literal string

	// Remaining is the text following Literal.
	Remaining string

	// First and Last are the bridge bounds. Without a bridge they are equal.
	First Ref
	Last  Ref
}

// IsBridge reports whether the scanned text spanned more than one verse.
func (b VerseBridge) IsBridge() bool {
	return b.First.Verse != b.Last.Verse || b.First.Segment != b.Last.Segment
}

// bridgeState tracks which side of a verse bridge the scanner is on.
type bridgeState int

const (
	bridgeFirst bridgeState = iota
	bridgeLast
)

// literalEnd returns the byte offset where the verse literal at the start of
// text ends.
//
// Digits extend the numeral and a letter directly after a digit is a segment.
// The first dash opens the bridge. A second dash, any other letter, or any
// other character ends the literal; a dash directly before the end is not
// part of it. Bidi marks are skipped and never count as the previous
// character.
func literalEnd(text string) int {
	state := bridgeFirst
	var prev rune
	prevAt := -1
	for i, ch := range text {
		switch {
		case isBidiMark(ch):
			continue
		case isDigit(ch):
		case isLetter(ch) && isDigit(prev):
		case isDash(ch) && state == bridgeFirst:
			state = bridgeLast
		default:
			if isDash(prev) {
				return prevAt
			}
			return i
		}
		prev, prevAt = ch, i
	}
	if isDash(prev) {
		return prevAt
	}
	return len(text)
}

// versePart parses "12" or "12a". The letter only marks the end of the
// literal; segments are numbered from prev. Values beyond a signed 16-bit
// integer fail.
func versePart(s string) (verse int, ok bool) {
	digits := 0
	lettered := false
	for _, ch := range s {
		switch {
		case isBidiMark(ch):
		case isDigit(ch) && !lettered:
			verse = verse*10 + int(ch-'0')
			if verse > math.MaxInt16 {
				return 0, false
			}
			digits++
		case isLetter(ch) && digits > 0:
			lettered = true
		default:
			return 0, false
		}
	}
	return verse, digits > 0
}

// VerseToScrRef scans a typed verse number such as "3", "3a", "12-14" or
// "3a-3b", possibly wrapped in bidi marks and followed by other text.
//
// Book, chapter and scheme come from prev, the reference that precedes the
// typed verse. The first verse continues prev's segment (prev.Segment+1)
// when the verses are equal and starts at segment 1 otherwise. The last verse
// of a bridge takes the first verse's segment plus one when the verses are
// equal and segment 1 otherwise. It returns false when no verse number can
// be read or a number overflows.
func VerseToScrRef(text string, prev Ref) (VerseBridge, bool) {
	end := literalEnd(text)
	literal := text[:end]

	firstText, lastText, bridged := literal, "", false
	for i, ch := range literal {
		if isDash(ch) {
			firstText, lastText, bridged = literal[:i], literal[i+utf8.RuneLen(ch):], true
			break
		}
	}

	firstVerse, ok := versePart(firstText)
	if !ok {
		return VerseBridge{}, false
	}

	first := prev
	first.Verse = firstVerse
	first.Segment = 1
	if firstVerse == prev.Verse {
		first.Segment = prev.Segment + 1
	}

	last := first
	if bridged {
		lastVerse, ok := versePart(lastText)
		if !ok {
			return VerseBridge{}, false
		}
		last.Verse = lastVerse
		last.Segment = 1
		if lastVerse == firstVerse {
			last.Segment = first.Segment + 1
		}
	}

	return VerseBridge{
		Literal:   literal,
		Remaining: text[end:],
		First:     first,
		Last:      last,
	}, true
}
