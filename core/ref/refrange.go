package ref

import (
	"strconv"
	"strings"
)

// MaxVerseToken is the largest bare number ParseRefRange reads as a verse;
// larger numbers are canonical BBCCCVVV integers.
const MaxVerseToken = 150

// RefRange is an immutable pair of references.
type RefRange struct {
	start Ref
	end   Ref
}

// NewRefRange returns a range from start to end.
func NewRefRange(start, end Ref) RefRange {
	return RefRange{start: start, end: end}
}

// Start returns a copy of the first reference.
func (rr RefRange) Start() Ref {
	return rr.start
}

// End returns a copy of the last reference.
func (rr RefRange) End() Ref {
	return rr.end
}

// Contains reports whether r lies between Start and End inclusive.
func (rr RefRange) Contains(r Ref) bool {
	return Compare(rr.start, r) <= 0 && Compare(r, rr.end) <= 0
}

func (rr RefRange) String() string {
	if Compare(rr.start, rr.end) == 0 {
		return rr.start.String()
	}
	return rr.start.String() + "-" + rr.end.String()
}

// ParseRefRange parses text such as "GEN 1:1-3:4", "3-5" or "MRK 2:1" into
// start and end. Bare verse numbers and references without a book code take
// the missing parts from the opposite bound.
//
// On failure start and end are left exactly as they were.
func (p Parser) ParseRefRange(text string, start, end *Ref, allowDifferentBooks bool) bool {
	savedStart, savedEnd := *start, *end
	if p.parseRefRange(text, start, end, allowDifferentBooks) {
		return true
	}
	*start, *end = savedStart, savedEnd
	return false
}

// ParseRefRange parses against the canonical registry. See Parser.ParseRefRange.
func ParseRefRange(text string, start, end *Ref, allowDifferentBooks bool) bool {
	return DefaultParser.ParseRefRange(text, start, end, allowDifferentBooks)
}

func (p Parser) parseRefRange(text string, start, end *Ref, allowDifferentBooks bool) bool {
	tokens := strings.Split(strings.TrimSpace(text), "-")
	if len(tokens) > 2 {
		return false
	}
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
		if tokens[i] == "" {
			return false
		}
	}

	// Start bound: numbers borrow book and chapter from end.
	if n, err := strconv.Atoi(tokens[0]); err == nil {
		if n > MaxVerseToken {
			p.setCanonical(start, n)
		} else {
			if start.Chapter != end.Chapter {
				return false
			}
			start.Book, start.Chapter, start.Verse, start.Segment = end.Book, end.Chapter, n, 0
		}
	} else if !p.parseToken(start, tokens[0], *end) {
		return false
	}

	if len(tokens) == 1 {
		scheme := end.Versification
		*end = *start
		end.Versification = scheme
		return start.ValidIn(p.registry())
	}

	// End bound: numbers borrow book and chapter from the new start.
	if n, err := strconv.Atoi(tokens[1]); err == nil {
		if n > MaxVerseToken {
			p.setCanonical(end, n)
		} else {
			end.Book, end.Chapter, end.Verse, end.Segment = start.Book, start.Chapter, n, 0
		}
	} else if !p.parseToken(end, tokens[1], *start) {
		return false
	}

	reg := p.registry()
	if !start.ValidIn(reg) || !end.ValidIn(reg) {
		return false
	}
	if Compare(*start, *end) > 0 {
		return false
	}
	return start.Book == end.Book || allowDifferentBooks
}

func (p Parser) setCanonical(r *Ref, n int) {
	c := FromCanonical(n)
	r.Book, r.Chapter, r.Verse, r.Segment = c.Book, c.Chapter, c.Verse, 0
}

// parseToken parses a reference token into r. A token that lacks a book
// code takes the code of other. Book codes may start with a digit ("2JN"),
// so a token has a code when it is at least 3 characters long and its second
// character is a letter.
func (p Parser) parseToken(r *Ref, token string, other Ref) bool {
	if !hasBookCode(token) {
		code, ok := p.registry().NumberToBookCode(other.Book)
		if !ok {
			return false
		}
		token = code + " " + token
	}
	p.ParseInto(r, token)
	r.Segment = 0
	return r.Book != 0
}

func hasBookCode(token string) bool {
	runes := []rune(token)
	return len(runes) >= 3 && isLetter(runes[1])
}
