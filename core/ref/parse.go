package ref

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/FocuswithJustin/scrref/core/books"
)

// Reserved suffixes that follow the book code.
const (
	TitleSuffix = "Title"
	IntroSuffix = "Intro"
)

// ScanState is the state of the chapter/verse scanner.
type ScanState int

const (
	// InChapter accumulates chapter digits.
	InChapter ScanState = iota
	// InVerse accumulates verse digits after the separator.
	InVerse
	// Failed is entered on a second separator; no further input is accepted.
	Failed
)

func (s ScanState) String() string {
	switch s {
	case InChapter:
		return "InChapter"
	case InVerse:
		return "InVerse"
	default:
		return "Failed"
	}
}

// Scanner reads "C:V" numerals one character at a time.
//
// Digits extend the active field. The first character that is neither a
// digit nor a space moves InChapter to InVerse; another such character in
// InVerse moves to Failed.
type Scanner struct {
	state   ScanState
	chapter int
	verse   int
}

// State returns the current scanner state.
func (s *Scanner) State() ScanState {
	return s.state
}

// Feed consumes one character and reports whether scanning may continue.
func (s *Scanner) Feed(ch rune) bool {
	if s.state == Failed {
		return false
	}
	switch {
	case isDigit(ch):
		field := &s.chapter
		if s.state == InVerse {
			field = &s.verse
		}
		d := int(ch - '0')
		if *field > (math.MaxInt32-d)/10 {
			s.state = Failed
			return false
		}
		*field = *field*10 + d
	case isSpace(ch):
	case s.state == InChapter:
		s.state = InVerse
	default:
		s.state = Failed
		return false
	}
	return true
}

// Result returns the scanned chapter and verse. The verse defaults to 1 when
// no separator was seen.
func (s *Scanner) Result() (chapter, verse int, ok bool) {
	switch s.state {
	case InChapter:
		return s.chapter, 1, true
	case InVerse:
		return s.chapter, s.verse, true
	default:
		return 0, 0, false
	}
}

// ScanChapterVerse scans a "C:V" group such as "3:16" or "12".
func ScanChapterVerse(text string) (chapter, verse int, ok bool) {
	var s Scanner
	for _, ch := range text {
		if !s.Feed(ch) {
			return 0, 0, false
		}
	}
	return s.Result()
}

// Parser parses reference text against a book registry.
type Parser struct {
	Books *books.Registry
}

// DefaultParser parses against the canonical registry.
var DefaultParser = Parser{Books: books.Canonical()}

// NewParser returns a parser for reg.
func NewParser(reg *books.Registry) Parser {
	return Parser{Books: reg}
}

func (p Parser) registry() *books.Registry {
	if p.Books == nil {
		return books.Canonical()
	}
	return p.Books
}

// Parse parses text such as "GEN 1:1", "GEN Title", "GEN Intro" or "GEN".
// It never fails: unparsable text yields a reference with Book 0.
func (p Parser) Parse(text string) Ref {
	var r Ref
	p.ParseInto(&r, text)
	return r
}

// ParseInto parses text into r, replacing its book, chapter and verse.
// Segment and Versification are left untouched.
func (p Parser) ParseInto(r *Ref, text string) {
	r.Book, r.Chapter, r.Verse = 0, 0, 0

	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if utf8.RuneCountInString(text) < 3 {
		return
	}
	runes := []rune(text)
	lookup := p.registry().BookToNumber(string(runes[:3]))
	if !lookup.OK() {
		return
	}
	rest := string(runes[3:])
	trimmed := strings.TrimSpace(rest)

	switch trimmed {
	case TitleSuffix:
		r.Book = lookup.Book
		return
	case IntroSuffix:
		r.Book, r.Chapter = lookup.Book, 1
		return
	case "":
		r.Book, r.Chapter, r.Verse = lookup.Book, 1, 1
		return
	}

	chapter, verse, ok := ScanChapterVerse(rest)
	if !ok {
		return
	}
	r.Book, r.Chapter, r.Verse = lookup.Book, chapter, verse
}

// Parse parses text against the canonical registry. See Parser.Parse.
func Parse(text string) Ref {
	return DefaultParser.Parse(text)
}

// Parse replaces r's book, chapter and verse with those parsed from text.
func (r *Ref) Parse(text string) {
	DefaultParser.ParseInto(r, text)
}
