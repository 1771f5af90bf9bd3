// Package books provides the registry of canonical Bible book numbers and
// their 3-letter SIL codes, 2-letter abbreviations and OSIS identifiers.
//
// The 66-book canon is always present. The 26 deuterocanonical books are
// appended after Revelation (numbers 67-92) only when a Registry is built
// with WithDeuterocanon(true).
//
//	reg := books.NewRegistry(books.WithDeuterocanon(true))
//	n := reg.BookToNumber("tob").Number() // 67
package books

import (
	"strings"
	"unicode/utf8"
)

// CanonicalCount is the number of books in the canonical list.
const CanonicalCount = 66

// DeuterocanonicalCount is the number of books in the deuterocanonical list.
const DeuterocanonicalCount = 26

// Legacy sentinel values returned by Lookup.Number.
const (
	UnknownBook          = 0
	KnownButDisabledBook = -1
)

// LookupKind distinguishes the outcomes of BookToNumber.
type LookupKind int

const (
	// Unknown means the code is in neither book list.
	Unknown LookupKind = iota
	// KnownButDisabled means the code is deuterocanonical but the registry
	// does not include the deuterocanon.
	KnownButDisabled
	// Found means the code resolved to a book number.
	Found
)

// String returns the name of the lookup kind.
func (k LookupKind) String() string {
	switch k {
	case KnownButDisabled:
		return "known-but-disabled"
	case Found:
		return "found"
	default:
		return "unknown"
	}
}

// Lookup is the result of resolving a book code.
type Lookup struct {
	Kind LookupKind
	Book int // valid only when Kind == Found
}

// OK reports whether the code resolved to a book number.
func (l Lookup) OK() bool {
	return l.Kind == Found
}

// Number returns the book number, or UnknownBook / KnownButDisabledBook.
func (l Lookup) Number() int {
	switch l.Kind {
	case Found:
		return l.Book
	case KnownButDisabled:
		return KnownButDisabledBook
	default:
		return UnknownBook
	}
}

// Registry resolves book codes. It is immutable once built and safe for
// concurrent use.
type Registry struct {
	deuterocanon bool
	books        []bookInfo
	byCode       map[string]int
	byOSIS       map[string]int
	deutero      map[string]int // code -> index in deuterocanonicalBooks
}

// Option configures a Registry.
type Option func(*Registry)

// WithDeuterocanon includes the deuterocanonical books when enabled is true.
func WithDeuterocanon(enabled bool) Option {
	return func(r *Registry) {
		r.deuterocanon = enabled
	}
}

var canonical = NewRegistry()

// Canonical returns the shared registry without the deuterocanon.
func Canonical() *Registry {
	return canonical
}

// NewRegistry builds a registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}

	r.books = append(r.books, canonicalBooks...)
	if r.deuterocanon {
		r.books = append(r.books, deuterocanonicalBooks...)
	}

	r.byCode = make(map[string]int, len(r.books))
	r.byOSIS = make(map[string]int, len(r.books))
	for i, b := range r.books {
		r.byCode[b.Code] = i + 1
		r.byOSIS[strings.ToLower(b.OSIS)] = i + 1
	}
	r.deutero = make(map[string]int, len(deuterocanonicalBooks))
	for i, b := range deuterocanonicalBooks {
		r.deutero[b.Code] = i
	}
	return r
}

// Deuterocanon reports whether the deuterocanonical books are included.
func (r *Registry) Deuterocanon() bool {
	return r.deuterocanon
}

// LastBook returns the highest valid book number.
func (r *Registry) LastBook() int {
	return len(r.books)
}

// IsValid reports whether n is a book number of this registry.
func (r *Registry) IsValid(n int) bool {
	return n >= 1 && n <= len(r.books)
}

// NormalizeCode trims s, keeps its first three characters and uppercases them.
func NormalizeCode(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > 3 {
		runes := []rune(s)
		s = string(runes[:3])
	}
	return strings.ToUpper(s)
}

// BookToNumber resolves a 3-letter book code.
func (r *Registry) BookToNumber(code string) Lookup {
	code = NormalizeCode(code)
	if i, ok := r.byCode[code]; ok && i <= CanonicalCount {
		return Lookup{Kind: Found, Book: i}
	}
	if i, ok := r.deutero[code]; ok {
		if r.deuterocanon {
			return Lookup{Kind: Found, Book: CanonicalCount + i + 1}
		}
		return Lookup{Kind: KnownButDisabled}
	}
	return Lookup{Kind: Unknown}
}

// NumberToBookCode returns the 3-letter code for book n.
func (r *Registry) NumberToBookCode(n int) (string, bool) {
	if !r.IsValid(n) {
		return "", false
	}
	return r.books[n-1].Code, true
}

// NumberToAbbrev returns the 2-letter abbreviation for book n.
func (r *Registry) NumberToAbbrev(n int) (string, bool) {
	if !r.IsValid(n) {
		return "", false
	}
	return r.books[n-1].Abbrev, true
}

// NumberToOSIS returns the OSIS book ID for book n.
func (r *Registry) NumberToOSIS(n int) (string, bool) {
	if !r.IsValid(n) {
		return "", false
	}
	return r.books[n-1].OSIS, true
}

// OSISToNumber resolves an OSIS book ID (case-insensitive).
func (r *Registry) OSISToNumber(id string) (int, bool) {
	n, ok := r.byOSIS[strings.ToLower(strings.TrimSpace(id))]
	return n, ok
}

// IsDeuterocanonical reports whether n is one of the appended books.
func (r *Registry) IsDeuterocanonical(n int) bool {
	return r.deuterocanon && n > CanonicalCount && n <= len(r.books)
}

// Codes returns the 3-letter codes in book-number order.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.books))
	for i, b := range r.books {
		codes[i] = b.Code
	}
	return codes
}
