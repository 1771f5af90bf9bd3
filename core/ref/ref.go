package ref

import (
	"fmt"

	"github.com/FocuswithJustin/scrref/core/books"
)

// Ref is a book/chapter/verse reference with an optional segment.
//
// Chapter 0 addresses the book title and chapter 1 verse 0 the book
// introduction. Segment only breaks ties between references with the same
// canonical integer.
type Ref struct {
	// Book is the 1-based book number.
	Book int `json:"book"`

	// Chapter is the chapter number (0 = book title).
	Chapter int `json:"chapter"`

	// Verse is the verse number (0 = intro when Chapter is 1).
	Verse int `json:"verse"`

	// Segment is the sub-verse ordinal (1 for "a", 2 for "b", ...).
	Segment int `json:"segment,omitempty"`

	// Versification is the scheme the chapter and verse numbers follow.
	Versification Scheme `json:"versification,omitempty"`
}

// New returns a reference to book, chapter and verse.
func New(book, chapter, verse int) Ref {
	return Ref{Book: book, Chapter: chapter, Verse: verse}
}

// NewWithSegment returns a reference including a segment.
func NewWithSegment(book, chapter, verse, segment int) Ref {
	return Ref{Book: book, Chapter: chapter, Verse: verse, Segment: segment}
}

// FromCanonical decodes a BBCCCVVV integer.
func FromCanonical(n int) Ref {
	return Ref{
		Book:    (n / 1000000) % 100,
		Chapter: (n / 1000) % 1000,
		Verse:   n % 1000,
	}
}

// ToCanonical encodes r as BBCCCVVV. Values beyond 99 books, 999 chapters or
// 999 verses are truncated; the segment is not encoded.
func (r Ref) ToCanonical() int {
	return (r.Book%100)*1000000 + (r.Chapter%1000)*1000 + r.Verse%1000
}

// BookIsValid reports whether Book is a canonical book number.
func (r Ref) BookIsValid() bool {
	return r.BookIsValidIn(books.Canonical())
}

// BookIsValidIn reports whether Book is valid in reg.
func (r Ref) BookIsValidIn(reg *books.Registry) bool {
	return reg.IsValid(r.Book)
}

// Valid reports whether r is a usable canonical reference: a valid book,
// chapter >= 1, and a verse > 0 unless r is a book introduction (1:0).
func (r Ref) Valid() bool {
	return r.ValidIn(books.Canonical())
}

// ValidIn is Valid against a specific book registry.
func (r Ref) ValidIn(reg *books.Registry) bool {
	if !r.BookIsValidIn(reg) || r.Chapter < 1 {
		return false
	}
	return r.Verse > 0 || (r.Verse == 0 && r.Chapter == 1)
}

// IsTitle reports whether r addresses a book title.
func (r Ref) IsTitle() bool {
	return r.Chapter == 0 && r.Verse == 0
}

// IsIntro reports whether r addresses a book introduction.
func (r Ref) IsIntro() bool {
	return r.Chapter == 1 && r.Verse == 0
}

// Compare orders a and b by canonical integer, then by segment.
func Compare(a, b Ref) int {
	ca, cb := a.ToCanonical(), b.ToCanonical()
	switch {
	case ca < cb:
		return -1
	case ca > cb:
		return 1
	case a.Segment < b.Segment:
		return -1
	case a.Segment > b.Segment:
		return 1
	}
	return 0
}

// Compare orders r against other. See Compare.
func (r Ref) Compare(other Ref) int {
	return Compare(r, other)
}

// Less reports whether r sorts before other.
func (r Ref) Less(other Ref) bool {
	return Compare(r, other) < 0
}

// EqualsCanonical reports whether r encodes to n, treating n as a canonical
// integer in r's own scheme.
func (r Ref) EqualsCanonical(n int) bool {
	return r.ToCanonical() == n
}

// String formats r as "BBB C:V" using the canonical book codes. This is the
// key format of versification mapping tables.
func (r Ref) String() string {
	return r.StringIn(books.Canonical())
}

// StringIn formats r using the codes of reg. An invalid book prints as "???".
func (r Ref) StringIn(reg *books.Registry) string {
	code, ok := reg.NumberToBookCode(r.Book)
	if !ok {
		code = "???"
	}
	return fmt.Sprintf("%s %d:%d", code, r.Chapter, r.Verse)
}
