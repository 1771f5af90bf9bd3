package versification

import (
	"sort"

	"github.com/FocuswithJustin/scrref/core/books"
	"github.com/FocuswithJustin/scrref/core/ref"
)

// Table holds the chapter/verse counts of one scheme and its verse mappings
// to and from the standard scheme. A Table is read-only once loaded.
type Table struct {
	scheme ref.Scheme
	path   string
	digest string

	books  *books.Registry
	parser ref.Parser

	// bookList[book-1][chapter-1] is the number of verses in the chapter.
	bookList [][]int

	// toStandard maps "GEN 31:55" in this scheme to the standard scheme;
	// fromStandard is the reverse.
	toStandard   map[string]string
	fromStandard map[string]string

	// tables resolves the source scheme in ChangeVersification.
	tables *Registry
}

func newTable(scheme ref.Scheme, reg *books.Registry) *Table {
	return &Table{
		scheme:       scheme,
		books:        reg,
		parser:       ref.NewParser(reg),
		bookList:     make([][]int, reg.LastBook()),
		toStandard:   make(map[string]string),
		fromStandard: make(map[string]string),
	}
}

// Scheme returns the scheme the table describes.
func (t *Table) Scheme() ref.Scheme {
	return t.scheme
}

// Path returns the data file the table was loaded from. It differs from the
// scheme's own file name when the English fallback was used.
func (t *Table) Path() string {
	return t.path
}

// Digest returns the hex BLAKE3 digest of the (decompressed) data file.
func (t *Table) Digest() string {
	return t.digest
}

// LastChapter returns the number of chapters in book, or 1 when the table
// has no data for it.
func (t *Table) LastChapter(book int) int {
	if book < 1 || book > len(t.bookList) || len(t.bookList[book-1]) == 0 {
		return 1
	}
	return len(t.bookList[book-1])
}

// LastVerse returns the number of verses in chapter, or 1 when the table has
// no data for it. Chapter 0 (the book title) always has one verse.
func (t *Table) LastVerse(book, chapter int) int {
	if chapter == 0 {
		return 1
	}
	if book < 1 || book > len(t.bookList) {
		return 1
	}
	chapters := t.bookList[book-1]
	if chapter < 1 || chapter > len(chapters) || chapters[chapter-1] == 0 {
		return 1
	}
	return chapters[chapter-1]
}

// ToStandard returns the standard-scheme key for key ("GEN 31:55").
func (t *Table) ToStandard(key string) (string, bool) {
	s, ok := t.toStandard[key]
	return s, ok
}

// FromStandard returns this scheme's key for a standard-scheme key.
func (t *Table) FromStandard(key string) (string, bool) {
	s, ok := t.fromStandard[key]
	return s, ok
}

// ChangeVersification converts r in place from its own scheme to the
// table's scheme. References without a mapping keep their numbers; the
// scheme tag is always updated. Loading the source scheme's table may fail
// with a configuration error.
func (t *Table) ChangeVersification(r *ref.Ref) error {
	if r.Versification == t.scheme {
		return nil
	}

	source, err := t.source(r.Versification)
	if err != nil {
		return err
	}

	original := r.StringIn(t.books)
	key := original
	if std, ok := source.toStandard[key]; ok {
		key = std
	}
	if mapped, ok := t.fromStandard[key]; ok {
		key = mapped
	}
	if key != original {
		t.parser.ParseInto(r, key)
	}
	r.Versification = t.scheme
	return nil
}

func (t *Table) source(scheme ref.Scheme) (*Table, error) {
	if t.tables == nil {
		return nil, ErrNotInitialized
	}
	return t.tables.Table(scheme)
}

// BookChapters is the verse count per chapter of one book.
type BookChapters struct {
	Book   int
	Verses []int // Verses[i] is the verse count of chapter i+1
}

// Books returns the books that have count data, in book order.
func (t *Table) Books() []BookChapters {
	var out []BookChapters
	for i, chapters := range t.bookList {
		if len(chapters) == 0 {
			continue
		}
		verses := make([]int, len(chapters))
		copy(verses, chapters)
		out = append(out, BookChapters{Book: i + 1, Verses: verses})
	}
	return out
}

// Mapping is one verse of this scheme and its standard-scheme equivalent.
type Mapping struct {
	From string // this scheme, e.g. "GEN 31:55"
	To   string // standard scheme, e.g. "GEN 32:1"
}

// Mappings returns every mapping sorted by the source reference.
func (t *Table) Mappings() []Mapping {
	out := make([]Mapping, 0, len(t.toStandard))
	for from, to := range t.toStandard {
		out = append(out, Mapping{From: from, To: to})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := t.parser.Parse(out[i].From), t.parser.Parse(out[j].From)
		if c := ref.Compare(a, b); c != 0 {
			return c < 0
		}
		return out[i].From < out[j].From
	})
	return out
}
