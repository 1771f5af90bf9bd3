package ref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/scrref/core/errors"
)

// An OSIS reference is a book ID with an optional chapter and verse,
// optionally followed by "-" and a range end. The end is either a bare verse
// ("Matt.5.3-12") or a second full ID ("Gen.50.26-Exod.1.1").
//
//nolint:govet // participle grammar tags are not standard struct tags
type osisRef struct {
	Start osisID   `@@`
	End   *osisEnd `( "-" @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisEnd struct {
	ID    *osisID    `  @@`
	Verse *osisVerse `| @@`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisID struct {
	Book    string       `@Book`
	Chapter *osisChapter `( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisChapter struct {
	Number int        `@Int`
	Verse  *osisVerse `( "." @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type osisVerse struct {
	Number int     `@Int`
	Letter *string `@Letter?`
}

// Book IDs may carry a leading digit ("1John") and always start their name
// with a capital, so a bare verse number never lexes as a book.
var osisLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `[0-9]?[A-Z][A-Za-z]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Letter", Pattern: `[a-z]`},
	{Name: "Punct", Pattern: `[.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var osisParser = participle.MustBuild[osisRef](
	participle.Lexer(osisLexer),
	participle.Elide("Whitespace"),
)

// ParseOSIS parses an OSIS reference such as "Gen.1.1", "Matt.5.3-12" or
// "Gen.1.1-Gen.1.5". A missing chapter or verse defaults to 1 and a letter
// becomes the segment ("a" = 1). The range end may name another book; it
// must not precede the start.
func (p Parser) ParseOSIS(s string) (RefRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RefRange{}, errors.NewValidation("osis", "empty reference string")
	}

	parsed, err := osisParser.ParseString("", s)
	if err != nil {
		return RefRange{}, &errors.ParseError{Format: "OSIS reference", Message: fmt.Sprintf("%q", s), Err: err}
	}

	start, err := p.osisRef(parsed.Start)
	if err != nil {
		return RefRange{}, err
	}
	end := start
	switch e := parsed.End; {
	case e == nil:
	case e.ID != nil:
		if end, err = p.osisRef(*e.ID); err != nil {
			return RefRange{}, err
		}
	case e.Verse != nil:
		end.Verse = e.Verse.Number
		end.Segment = osisSegment(e.Verse)
	}

	if Compare(start, end) > 0 {
		return RefRange{}, errors.NewValidation("osis", fmt.Sprintf("range end precedes start in %q", s))
	}
	return NewRefRange(start, end), nil
}

func (p Parser) osisRef(id osisID) (Ref, error) {
	book, ok := p.registry().OSISToNumber(id.Book)
	if !ok {
		return Ref{}, errors.NewNotFound("OSIS book", id.Book)
	}
	r := Ref{Book: book, Chapter: 1, Verse: 1}
	if c := id.Chapter; c != nil {
		r.Chapter = c.Number
		if v := c.Verse; v != nil {
			r.Verse = v.Number
			r.Segment = osisSegment(v)
		}
	}
	return r, nil
}

func osisSegment(v *osisVerse) int {
	if v.Letter == nil {
		return 0
	}
	return int((*v.Letter)[0]-'a') + 1
}

// ParseOSIS parses against the canonical registry. See Parser.ParseOSIS.
func ParseOSIS(s string) (RefRange, error) {
	return DefaultParser.ParseOSIS(s)
}

// OSIS returns the OSIS ID of r, e.g. "Gen.1.1" or "Gen.1.1b".
func (p Parser) OSIS(r Ref) string {
	id, ok := p.registry().NumberToOSIS(r.Book)
	if !ok {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(id)
	if r.Chapter > 0 {
		sb.WriteString(".")
		sb.WriteString(strconv.Itoa(r.Chapter))
		if r.Verse > 0 {
			sb.WriteString(".")
			sb.WriteString(strconv.Itoa(r.Verse))
			if r.Segment > 0 && r.Segment <= 26 {
				sb.WriteByte(byte('a' + r.Segment - 1))
			}
		}
	}
	return sb.String()
}

// OSIS returns the OSIS ID of r using the canonical registry.
func (r Ref) OSIS() string {
	return DefaultParser.OSIS(r)
}
