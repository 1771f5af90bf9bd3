// Command scrref parses Scripture references, converts them between
// versification schemes and exports versification data to SQLite.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/scrref/core/books"
	"github.com/FocuswithJustin/scrref/core/multiling"
	"github.com/FocuswithJustin/scrref/core/ref"
	"github.com/FocuswithJustin/scrref/core/sqlite"
	"github.com/FocuswithJustin/scrref/core/versification"
	"github.com/FocuswithJustin/scrref/internal/logging"
	"github.com/FocuswithJustin/scrref/internal/refdb"
)

const version = "0.1.0"

// CLI defines the command-line interface for scrref.
type CLI struct {
	// Global flags
	DataDir        string   `name:"data-dir" help:"Versification data directory" env:"SCRREF_DATA_DIR" default:"data/versification" type:"path"`
	Deuterocanon   bool     `help:"Include the deuterocanonical books"`
	LogLevel       string   `name:"log-level" help:"Log level" default:"warn" enum:"debug,info,warn,error"`
	LogFormat      string   `name:"log-format" help:"Log format" default:"text" enum:"text,json"`
	WritingSystems []string `name:"ws" help:"Writing systems searched for book names, in priority order" default:"en" sep:","`
	Names          string   `name:"names" help:"Additional book-names XML file" type:"existingfile"`

	Parse   ParseCmd   `cmd:"" help:"Parse a reference such as \"GEN 1:1\" or an OSIS reference"`
	Range   RangeCmd   `cmd:"" help:"Parse a reference range relative to a start and end"`
	Bridge  BridgeCmd  `cmd:"" help:"Parse a verse bridge or segment such as \"12-14\" or \"3a\""`
	Name    NameCmd    `cmd:"" help:"Parse a reference with a book name, e.g. \"Génesis 3:5\""`
	Convert ConvertCmd `cmd:"" help:"Convert a reference between versification schemes"`
	Books   BooksCmd   `cmd:"" help:"List book codes and names"`
	Info    InfoCmd    `cmd:"" help:"Show a versification table"`
	Export  ExportCmd  `cmd:"" help:"Export versification tables to a SQLite database"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// app carries the configured registries to each command.
type app struct {
	out   io.Writer
	books *books.Registry
	vers  *versification.Registry
	names *multiling.ScrBooks
}

func newApp(cli *CLI, out io.Writer) (*app, error) {
	reg := books.NewRegistry(books.WithDeuterocanon(cli.Deuterocanon))

	vers := versification.NewRegistry(versification.WithBooks(reg))
	if err := vers.Initialize(cli.DataDir); err != nil {
		return nil, err
	}

	names := multiling.New(multiling.StaticProvider{Scheme: ref.SchemeEnglish, Separator: ":"}, multiling.WithBooks(reg))
	if cli.Names != "" {
		if _, err := names.LoadXMLFile(cli.Names); err != nil {
			return nil, err
		}
	}
	if err := names.SetRequestedEncodings(cli.WritingSystems...); err != nil {
		return nil, err
	}

	return &app{out: out, books: reg, vers: vers, names: names}, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) parser() ref.Parser {
	return ref.NewParser(a.books)
}

// refView is the JSON form of a parsed reference.
type refView struct {
	Ref       string `json:"ref"`
	Book      int    `json:"book"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Segment   int    `json:"segment,omitempty"`
	Scheme    string `json:"versification,omitempty"`
	Canonical int    `json:"bbcccvvv"`
	Valid     bool   `json:"valid"`
	OSIS      string `json:"osis,omitempty"`
}

func (a *app) view(r ref.Ref) refView {
	v := refView{
		Ref:       r.StringIn(a.books),
		Book:      r.Book,
		Chapter:   r.Chapter,
		Verse:     r.Verse,
		Segment:   r.Segment,
		Canonical: r.ToCanonical(),
		Valid:     r.ValidIn(a.books),
	}
	if r.Versification != ref.SchemeUnknown {
		v.Scheme = r.Versification.String()
	}
	if v.Valid {
		v.OSIS = a.parser().OSIS(r)
	}
	return v
}

func (a *app) printRef(r ref.Ref, asJSON bool) error {
	v := a.view(r)
	if asJSON {
		return a.printJSON(v)
	}
	a.printf("%s\tbbcccvvv=%08d\tvalid=%v\n", v.Ref, v.Canonical, v.Valid)
	return nil
}

// ParseCmd parses a SIL-code reference.
type ParseCmd struct {
	Text []string `arg:"" help:"Reference text"`
	OSIS bool     `name:"osis" help:"Parse an OSIS reference such as Gen.1.1-Gen.1.5"`
	JSON bool     `name:"json" help:"Output as JSON"`
}

func (c *ParseCmd) Run(a *app) error {
	text := strings.Join(c.Text, " ")
	if c.OSIS {
		rr, err := a.parser().ParseOSIS(text)
		if err != nil {
			return err
		}
		if c.JSON {
			return a.printJSON([]refView{a.view(rr.Start()), a.view(rr.End())})
		}
		a.printf("%s\n", rr)
		return nil
	}
	return a.printRef(a.parser().Parse(text), c.JSON)
}

// RangeCmd parses a range relative to existing bounds.
type RangeCmd struct {
	Text                string `arg:"" help:"Range text, e.g. \"3-5\" or \"GEN 1:1-EXO 2:2\""`
	Start               string `help:"Current start reference" default:"GEN 1:1"`
	End                 string `help:"Current end reference (defaults to --start)"`
	AllowDifferentBooks bool   `name:"allow-different-books" help:"Allow the range to span books"`
}

func (c *RangeCmd) Run(a *app) error {
	p := a.parser()
	start := p.Parse(c.Start)
	end := start
	if c.End != "" {
		end = p.Parse(c.End)
	}
	if !p.ParseRefRange(c.Text, &start, &end, c.AllowDifferentBooks) {
		return fmt.Errorf("invalid range %q", c.Text)
	}
	a.printf("%s\n", ref.NewRefRange(start, end))
	return nil
}

// BridgeCmd parses the text after a verse marker.
type BridgeCmd struct {
	Text string `arg:"" help:"Verse text, e.g. \"12-14\" or \"3a\""`
	Prev string `help:"Previous verse reference" default:"GEN 1:1"`
}

func (c *BridgeCmd) Run(a *app) error {
	prev := a.parser().Parse(c.Prev)
	b, ok := ref.VerseToScrRef(c.Text, prev)
	if !ok {
		return fmt.Errorf("invalid verse %q", c.Text)
	}
	a.printf("literal=%q first=%d seg=%d last=%d seg=%d bridge=%v\n",
		b.Literal, b.First.Verse, b.First.Segment, b.Last.Verse, b.Last.Segment, b.IsBridge())
	return nil
}

// NameCmd parses a reference with a book name in any writing system.
type NameCmd struct {
	Text      []string `arg:"" help:"Reference text"`
	StartBook int      `name:"start-book" help:"Book number the name search starts at" default:"1"`
	Strict    bool     `help:"Fail instead of falling back to GEN 1:1"`
	JSON      bool     `name:"json" help:"Output as JSON"`
}

func (c *NameCmd) Run(a *app) error {
	text := strings.Join(c.Text, " ")
	var r ref.Ref
	if c.Strict {
		var err error
		if r, err = a.names.LookupRef(text, c.StartBook); err != nil {
			return err
		}
	} else {
		r = a.names.ParseRefString(text, c.StartBook)
	}
	if c.JSON {
		return a.printJSON(a.view(r))
	}
	a.printf("%s\t%s\n", r.StringIn(a.books), a.names.RefString(r, r))
	return nil
}

// ConvertCmd converts a reference between schemes.
type ConvertCmd struct {
	Ref  []string `arg:"" help:"Reference, e.g. \"GEN 31:55\""`
	From string   `help:"Source scheme" default:"English"`
	To   string   `help:"Target scheme" default:"Original"`
}

func (c *ConvertCmd) Run(a *app) error {
	from, err := ref.ParseScheme(c.From)
	if err != nil {
		return err
	}
	to, err := ref.ParseScheme(c.To)
	if err != nil {
		return err
	}
	text := strings.Join(c.Ref, " ")
	r := a.parser().Parse(text)
	if !r.BookIsValidIn(a.books) {
		return fmt.Errorf("invalid reference %q", text)
	}
	r.Versification = from
	if err := a.vers.ChangeVersification(to, &r); err != nil {
		return err
	}
	a.printf("%s %s = %s %s\n", text, from, r.StringIn(a.books), to)
	return nil
}

// BooksCmd lists books.
type BooksCmd struct {
	JSON bool `name:"json" help:"Output as JSON"`
}

type bookView struct {
	Number int    `json:"number"`
	Code   string `json:"code"`
	Abbrev string `json:"abbrev"`
	OSIS   string `json:"osis"`
	Name   string `json:"name"`
}

func (c *BooksCmd) Run(a *app) error {
	var out []bookView
	for _, label := range a.names.BookLabels() {
		code, _ := a.books.NumberToBookCode(label.Book)
		abbrev, _ := a.books.NumberToAbbrev(label.Book)
		osis, _ := a.books.NumberToOSIS(label.Book)
		out = append(out, bookView{Number: label.Book, Code: code, Abbrev: abbrev, OSIS: osis, Name: label.Label})
	}
	if c.JSON {
		return a.printJSON(out)
	}
	for _, b := range out {
		a.printf("%3d  %s  %-2s  %-7s %s\n", b.Number, b.Code, b.Abbrev, b.OSIS, b.Name)
	}
	return nil
}

// InfoCmd shows a versification table.
type InfoCmd struct {
	Scheme string `arg:"" optional:"" help:"Scheme name" default:"English"`
	Book   string `arg:"" optional:"" help:"Book code to show chapter counts for"`
}

func (c *InfoCmd) Run(a *app) error {
	scheme, err := ref.ParseScheme(c.Scheme)
	if err != nil {
		return err
	}
	t, err := a.vers.Table(scheme)
	if err != nil {
		return err
	}
	a.printf("Scheme:   %s\n", t.Scheme())
	a.printf("  File:     %s\n", t.Path())
	a.printf("  BLAKE3:   %s\n", t.Digest())
	a.printf("  Books:    %d\n", len(t.Books()))
	a.printf("  Mappings: %d\n", len(t.Mappings()))

	if c.Book == "" {
		return nil
	}
	lookup := a.books.BookToNumber(c.Book)
	if !lookup.OK() {
		return fmt.Errorf("unknown book %q (%s)", c.Book, lookup.Kind)
	}
	a.printf("  %s: %d chapters\n", c.Book, t.LastChapter(lookup.Book))
	for ch := 1; ch <= t.LastChapter(lookup.Book); ch++ {
		a.printf("    %d:%d\n", ch, t.LastVerse(lookup.Book, ch))
	}
	return nil
}

// ExportCmd writes versification tables to SQLite.
type ExportCmd struct {
	Output  string   `arg:"" help:"Database path"`
	Schemes []string `name:"scheme" help:"Schemes to export (default: all)" sep:","`
}

func (c *ExportCmd) Run(a *app) error {
	schemes := ref.Schemes()
	if len(c.Schemes) > 0 {
		schemes = nil
		for _, name := range c.Schemes {
			s, err := ref.ParseScheme(name)
			if err != nil {
				return err
			}
			schemes = append(schemes, s)
		}
	}

	var tables []*versification.Table
	for _, s := range schemes {
		t, err := a.vers.Table(s)
		if err != nil {
			return err
		}
		tables = append(tables, t)
	}

	db, err := refdb.Open(c.Output)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = logging.WithRunID(ctx, uuid.NewString())

	res, err := db.Export(ctx, a.books, tables...)
	if err != nil {
		return err
	}
	a.printf("Exported: %s\n", c.Output)
	a.printf("  Export ID: %s\n", res.ExportID)
	a.printf("  Schemes:   %d\n", res.Schemes)
	a.printf("  Chapters:  %d\n", res.Chapters)
	a.printf("  Mappings:  %d\n", res.Mappings)
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	info := sqlite.GetInfo()
	a.printf("scrref version %s\n", version)
	a.printf("  SQLite driver: %s (%s)\n", info.Package, info.DriverType)
	a.printf("  Unicode:       %s\n", ref.UnicodeVersion)
	return nil
}

func newParser(cli *CLI, stdout, stderr io.Writer) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("scrref"),
		kong.Description("Scripture reference parsing and versification"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
}

// run parses args and runs the selected command.
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli, stdout, stderr)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logging.InitLoggerTo(stderr, logging.ParseLevel(cli.LogLevel), logging.ParseFormat(cli.LogFormat))

	a, err := newApp(&cli, stdout)
	if err != nil {
		return err
	}
	return ctx.Run(a)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "scrref: %v\n", err)
		os.Exit(1)
	}
}
