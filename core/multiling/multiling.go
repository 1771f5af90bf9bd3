// Package multiling maps book names in several writing systems to book
// numbers and parses free-text references such as "Génesis 3:5".
package multiling

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"

	"github.com/FocuswithJustin/scrref/core/books"
	"github.com/FocuswithJustin/scrref/core/errors"
	"github.com/FocuswithJustin/scrref/core/ref"
	"github.com/FocuswithJustin/scrref/internal/logging"
)

// NotFound is returned by Search when no book matches.
const NotFound = -1

// Built-in writing systems.
const (
	SIL     = "sil"
	English = "en"
	Spanish = "es"
)

// Provider supplies the project settings references are parsed and
// formatted with.
type Provider interface {
	Versification() ref.Scheme
	ChapterVerseSeparator() string
}

// StaticProvider is a Provider with fixed values.
type StaticProvider struct {
	Scheme    ref.Scheme
	Separator string
}

// Versification implements Provider.
func (p StaticProvider) Versification() ref.Scheme { return p.Scheme }

// ChapterVerseSeparator implements Provider.
func (p StaticProvider) ChapterVerseSeparator() string {
	if p.Separator == "" {
		return ":"
	}
	return p.Separator
}

// DefaultProvider uses the English scheme and ":".
var DefaultProvider = StaticProvider{Scheme: ref.SchemeEnglish, Separator: ":"}

// names is the name and abbreviation table of one writing system.
type names struct {
	names, abbrevs             []string
	foldedNames, foldedAbbrevs []string
}

func newNames(n, a []string, size int) *names {
	t := &names{
		names:         make([]string, size),
		abbrevs:       make([]string, size),
		foldedNames:   make([]string, size),
		foldedAbbrevs: make([]string, size),
	}
	copy(t.names, n)
	copy(t.abbrevs, a)
	for i := 0; i < size; i++ {
		t.foldedNames[i] = fold(t.names[i])
		t.foldedAbbrevs[i] = fold(t.abbrevs[i])
	}
	return t
}

// ScrBooks resolves book names across writing systems. It is safe for
// concurrent use.
type ScrBooks struct {
	provider Provider
	books    *books.Registry
	parser   ref.Parser

	mu        sync.RWMutex
	tables    map[string]*names
	requested []string
}

// Option configures a ScrBooks.
type Option func(*ScrBooks)

// WithBooks sets the book registry. The default is the canonical registry.
func WithBooks(reg *books.Registry) Option {
	return func(m *ScrBooks) {
		if reg != nil {
			m.books = reg
		}
	}
}

// New creates a ScrBooks with the sil, en and es tables. A nil provider
// means DefaultProvider. English is requested first.
func New(provider Provider, opts ...Option) *ScrBooks {
	if provider == nil {
		provider = DefaultProvider
	}
	m := &ScrBooks{
		provider: provider,
		books:    books.Canonical(),
		tables:   make(map[string]*names),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.parser = ref.NewParser(m.books)

	size := m.books.LastBook()
	codes := make([]string, size)
	abbrevs := make([]string, size)
	for n := 1; n <= size; n++ {
		codes[n-1], _ = m.books.NumberToBookCode(n)
		abbrevs[n-1], _ = m.books.NumberToAbbrev(n)
	}
	m.tables[SIL] = newNames(codes, abbrevs, size)
	m.tables[English] = newNames(englishNames, englishAbbrevs, size)
	m.tables[Spanish] = newNames(spanishNames, spanishAbbrevs, size)
	m.requested = []string{English}
	return m
}

// Books returns the book registry.
func (m *ScrBooks) Books() *books.Registry {
	return m.books
}

func normalizeWS(ws string) string {
	return strings.ToLower(strings.TrimSpace(ws))
}

// validateWS accepts "sil" and any BCP 47 tag.
func validateWS(ws string) error {
	if ws == "" {
		return errors.NewValidation("writing system", "empty id")
	}
	if ws == SIL {
		return nil
	}
	if _, err := language.Parse(ws); err != nil {
		return &errors.ValidationError{Field: "writing system", Value: ws, Message: "not a BCP 47 tag: " + ws}
	}
	return nil
}

// SetRequestedEncodings sets the writing systems searched, in priority
// order. The first is primary. The SIL code table is always searched last
// and need not be listed.
func (m *ScrBooks) SetRequestedEncodings(ws ...string) error {
	var out []string
	seen := make(map[string]bool)
	for _, w := range ws {
		w = normalizeWS(w)
		if seen[w] {
			continue
		}
		if err := validateWS(w); err != nil {
			return err
		}
		seen[w] = true
		out = append(out, w)
	}
	m.mu.Lock()
	m.requested = out
	m.mu.Unlock()
	return nil
}

// RequestedEncodings returns the search order including the trailing sil.
func (m *ScrBooks) RequestedEncodings() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.searchOrder()
}

// searchOrder must be called with mu held.
func (m *ScrBooks) searchOrder() []string {
	out := make([]string, 0, len(m.requested)+1)
	for _, w := range m.requested {
		if w != SIL {
			out = append(out, w)
		}
	}
	return append(out, SIL)
}

// WritingSystems returns the ids of every registered table.
func (m *ScrBooks) WritingSystems() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.tables))
	for ws := range m.tables {
		out = append(out, ws)
	}
	return out
}

// AddWritingSystem registers or replaces the table of ws. names and abbrevs
// are indexed by book number - 1; missing or empty entries fall through to
// the next table in priority order.
func (m *ScrBooks) AddWritingSystem(ws string, bookNames, abbrevs []string) error {
	ws = normalizeWS(ws)
	if err := validateWS(ws); err != nil {
		return err
	}
	size := m.books.LastBook()
	if len(bookNames) > size || len(abbrevs) > size {
		return errors.NewValidation("writing system "+ws, "more entries than books")
	}
	t := newNames(bookNames, abbrevs, size)

	m.mu.Lock()
	m.tables[ws] = t
	m.mu.Unlock()
	return nil
}

// Search returns the 0-based book index in ws's table whose name or
// abbreviation equals term (ignoring case), scanning from startIndex. If
// nothing is equal, the first name or abbreviation that term is a prefix
// of wins. The scan does not wrap around.
func (m *ScrBooks) Search(ws, term string, startIndex int) int {
	m.mu.RLock()
	t, ok := m.tables[normalizeWS(ws)]
	m.mu.RUnlock()
	if !ok {
		return NotFound
	}
	return t.search(fold(term), startIndex)
}

func (t *names) search(key string, startIndex int) int {
	if key == "" {
		return NotFound
	}
	if startIndex < 0 {
		startIndex = 0
	}
	prefix := NotFound
	for i := startIndex; i < len(t.foldedNames); i++ {
		name, abbrev := t.foldedNames[i], t.foldedAbbrevs[i]
		if key == name || key == abbrev {
			return i
		}
		if prefix == NotFound && ((name != "" && strings.HasPrefix(name, key)) ||
			(abbrev != "" && strings.HasPrefix(abbrev, key))) {
			prefix = i
		}
	}
	return prefix
}

// splitReference splits "1 Samuel 3:5" into "1 Samuel" and "3:5". The
// numeral group is the trailing run without letters, when it starts with a
// digit.
func splitReference(text string) (phrase, numerals string) {
	runes := []rune(strings.TrimSpace(text))
	i := len(runes)
	for i > 0 && !unicode.IsLetter(runes[i-1]) {
		i--
	}
	phrase = strings.TrimSpace(string(runes[:i]))
	tail := strings.TrimSpace(string(runes[i:]))
	if tail == "" || tail[0] < '0' || tail[0] > '9' {
		if i == 0 {
			return tail, ""
		}
		return phrase, ""
	}
	return strings.Join(strings.Fields(phrase), " "), tail
}

// resolve searches each requested table in order and returns the book
// number, or 0.
func (m *ScrBooks) resolve(phrase string, startingBook int) int {
	key := fold(strings.Join(strings.Fields(phrase), " "))
	start := startingBook - 1
	if start < 0 {
		start = 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ws := range m.searchOrder() {
		t, ok := m.tables[ws]
		if !ok {
			continue
		}
		if i := t.search(key, start); i != NotFound {
			return i + 1
		}
	}
	return 0
}

// LookupRef parses text such as "Gen 3:5", "Génesis 3" or "1 Juan" using
// the requested writing systems. The search for the book name starts at
// startingBook (1-based). Chapter and verse default to 1. A book name that
// matches nothing is a NotFoundError; a chapter/verse group that cannot be
// scanned, such as "3:5:7", is a ValidationError.
func (m *ScrBooks) LookupRef(text string, startingBook int) (ref.Ref, error) {
	r, found, numeralsOK := m.lookup(text, startingBook)
	if !found {
		return ref.Ref{}, errors.NewNotFound("book", strings.TrimSpace(text))
	}
	if !numeralsOK {
		return ref.Ref{}, errors.NewValidation("reference", fmt.Sprintf("malformed chapter and verse in %q", strings.TrimSpace(text)))
	}
	return r, nil
}

// ParseRefString is LookupRef that never fails: an unresolved book yields
// GEN 1:1 and unreadable numerals yield chapter 1 verse 1 of the book.
func (m *ScrBooks) ParseRefString(text string, startingBook int) ref.Ref {
	r, found, _ := m.lookup(text, startingBook)
	if !found {
		r = ref.New(1, 1, 1)
		r.Versification = m.provider.Versification()
	}
	return r
}

func (m *ScrBooks) lookup(text string, startingBook int) (r ref.Ref, found, numeralsOK bool) {
	phrase, numerals := splitReference(text)
	book := m.resolve(phrase, startingBook)
	if book == 0 {
		return ref.Ref{}, false, false
	}

	chapter, verse := 1, 1
	numeralsOK = true
	if numerals != "" {
		if c, v, ok := ref.ScanChapterVerse(numerals); ok {
			chapter, verse = c, v
		} else {
			numeralsOK = false
		}
	}
	r = ref.New(book, chapter, verse)
	r.Versification = m.provider.Versification()
	return r, true, numeralsOK
}

func (m *ScrBooks) entry(book int, abbrev bool) string {
	if !m.books.IsValid(book) {
		return ""
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ws := range m.searchOrder() {
		t, ok := m.tables[ws]
		if !ok {
			continue
		}
		s := t.names[book-1]
		if abbrev {
			s = t.abbrevs[book-1]
		}
		if s != "" {
			return s
		}
	}
	return ""
}

// BookName returns the name of book in the first writing system that has
// one, or "" for an invalid book.
func (m *ScrBooks) BookName(book int) string {
	return m.entry(book, false)
}

// BookAbbrev returns the abbreviation of book in the first writing system
// that has one.
func (m *ScrBooks) BookAbbrev(book int) string {
	return m.entry(book, true)
}

// BookLabel is a display label for a book chooser.
type BookLabel struct {
	Label string
	Book  int
}

// BookLabels returns a label for every book, in book order.
func (m *ScrBooks) BookLabels() []BookLabel {
	out := make([]BookLabel, 0, m.books.LastBook())
	for n := 1; n <= m.books.LastBook(); n++ {
		out = append(out, BookLabel{Label: m.BookName(n), Book: n})
	}
	return out
}

// RefString formats start..end with the book's display name and the
// provider's chapter/verse separator, e.g. "Genesis 1:1-5".
func (m *ScrBooks) RefString(start, end ref.Ref) string {
	f := ref.DefaultFormat
	f.ChapterVerseSep = m.provider.ChapterVerseSeparator()
	return ref.MakeReferenceString(m.BookName(start.Book), start, end, f)
}

// Parser returns a reference parser for the same book registry.
func (m *ScrBooks) Parser() ref.Parser {
	return m.parser
}

func (m *ScrBooks) logLoaded(ws, source string) {
	m.mu.RLock()
	t := m.tables[ws]
	m.mu.RUnlock()
	count := 0
	if t != nil {
		for _, n := range t.names {
			if n != "" {
				count++
			}
		}
	}
	logging.BookNamesLoaded(ws, source, count)
}
