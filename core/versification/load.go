package versification

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/scrref/core/books"
	"github.com/FocuswithJustin/scrref/core/errors"
	"github.com/FocuswithJustin/scrref/core/ref"
)

const format = "versification"

// decompress returns data unchanged, or inflated when name ends in ".xz".
func decompress(name string, data []byte) ([]byte, error) {
	if !strings.HasSuffix(name, ".xz") {
		return data, nil
	}
	xzr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xz reader: %w", err)
	}
	out, err := io.ReadAll(xzr)
	if err != nil {
		return nil, fmt.Errorf("xz decompress: %w", err)
	}
	return out, nil
}

// Parse reads a versification data file. path is used in error messages
// only. Unknown book codes and malformed lines are fatal; lines for
// deuterocanonical books that reg does not include are skipped.
func Parse(scheme ref.Scheme, path string, data []byte, reg *books.Registry) (*Table, error) {
	t := newTable(scheme, reg)
	t.path = path
	sum := blake3.Sum256(data)
	t.digest = hex.EncodeToString(sum[:])

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		text := stripComment(raw)
		if text == "" {
			continue
		}

		line, err := vrsParser.ParseString(path, text)
		if err != nil {
			pe := errors.NewParse(format, path, lineNo, raw, "malformed line")
			pe.Err = err
			return nil, pe
		}

		book, skip, err := resolveBook(reg, line.Book)
		if err != nil {
			return nil, errors.NewParse(format, path, lineNo, raw, err.Error())
		}
		if skip {
			continue
		}

		if line.isMapping() {
			err = t.addMapping(book, line)
		} else {
			err = t.addCounts(book, line)
		}
		if err != nil {
			return nil, errors.NewParse(format, path, lineNo, raw, err.Error())
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return t, nil
}

// resolveBook returns the book number for code, or skip=true for a
// deuterocanonical code the registry does not include.
func resolveBook(reg *books.Registry, code string) (book int, skip bool, err error) {
	lookup := reg.BookToNumber(code)
	switch lookup.Kind {
	case books.Found:
		return lookup.Book, false, nil
	case books.KnownButDisabled:
		return 0, true, nil
	default:
		return 0, false, fmt.Errorf("unknown book code %s", code)
	}
}

func (t *Table) addCounts(book int, line *vrsLine) error {
	if line.End != nil {
		return fmt.Errorf("verse range in a chapter/verse count line")
	}
	pairs := append([]*vrsPair{line.First}, line.Rest...)
	chapters := t.bookList[book-1]
	for _, p := range pairs {
		if p.Chapter < 1 {
			return fmt.Errorf("chapter %d out of range", p.Chapter)
		}
		for len(chapters) < p.Chapter {
			chapters = append(chapters, 0)
		}
		chapters[p.Chapter-1] = p.Verse
	}
	t.bookList[book-1] = chapters
	return nil
}

func (t *Table) addMapping(book int, line *vrsLine) error {
	if len(line.Rest) > 0 {
		return fmt.Errorf("trailing text after mapping")
	}
	target, skip, err := resolveBook(t.books, line.Target.Book)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	last := line.First.Verse
	if line.End != nil {
		last = *line.End
	}
	if last < line.First.Verse {
		return fmt.Errorf("verse range %d-%d is reversed", line.First.Verse, last)
	}

	for i := 0; i <= last-line.First.Verse; i++ {
		from := ref.New(book, line.First.Chapter, line.First.Verse+i).StringIn(t.books)
		to := ref.New(target, line.Target.Pair.Chapter, line.Target.Pair.Verse+i).StringIn(t.books)
		t.toStandard[from] = to
		t.fromStandard[to] = from
	}
	return nil
}
