package multiling

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/FocuswithJustin/scrref/core/errors"
)

const xmlFormat = "book names"

var (
	writingSystemExpr = xpath.MustCompile("/ScrBookNames/WritingSystem")
	bookExpr          = xpath.MustCompile("Book")
)

// LoadXML registers every writing system in a book-names document:
//
//	<ScrBookNames>
//	  <WritingSystem id="fr">
//	    <Book code="GEN" name="Genèse" abbrev="Gn"/>
//	  </WritingSystem>
//	</ScrBookNames>
//
// Books not listed keep falling through to other tables. Book codes the
// registry does not know (or has disabled) are ignored. It returns the ids
// loaded, in document order.
func (m *ScrBooks) LoadXML(r io.Reader) ([]string, error) {
	return m.loadXML(r, "")
}

// LoadXMLFile is LoadXML on a file.
func (m *ScrBooks) LoadXMLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()
	return m.loadXML(f, path)
}

func (m *ScrBooks) loadXML(r io.Reader, path string) ([]string, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{Format: xmlFormat, Path: path, Message: "invalid XML", Err: err}
	}

	systems := xmlquery.QuerySelectorAll(doc, writingSystemExpr)
	if len(systems) == 0 {
		return nil, &errors.ParseError{Format: xmlFormat, Path: path, Message: "no ScrBookNames/WritingSystem elements"}
	}

	size := m.books.LastBook()
	type pending struct {
		ws             string
		names, abbrevs []string
	}
	var loaded []pending
	for _, wsNode := range systems {
		ws := normalizeWS(wsNode.SelectAttr("id"))
		if err := validateWS(ws); err != nil {
			return nil, &errors.ParseError{Format: xmlFormat, Path: path, Message: err.Error()}
		}
		p := pending{ws: ws, names: make([]string, size), abbrevs: make([]string, size)}
		for _, b := range xmlquery.QuerySelectorAll(wsNode, bookExpr) {
			code := b.SelectAttr("code")
			lookup := m.books.BookToNumber(code)
			if !lookup.OK() {
				continue
			}
			p.names[lookup.Book-1] = strings.TrimSpace(b.SelectAttr("name"))
			p.abbrevs[lookup.Book-1] = strings.TrimSpace(b.SelectAttr("abbrev"))
		}
		loaded = append(loaded, p)
	}

	ids := make([]string, 0, len(loaded))
	for _, p := range loaded {
		if err := m.AddWritingSystem(p.ws, p.names, p.abbrevs); err != nil {
			return ids, fmt.Errorf("writing system %s: %w", p.ws, err)
		}
		source := path
		if source == "" {
			source = "xml"
		}
		m.logLoaded(p.ws, source)
		ids = append(ids, p.ws)
	}
	return ids, nil
}
