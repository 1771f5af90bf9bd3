package refdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/scrref/core/books"
	"github.com/FocuswithJustin/scrref/core/errors"
	"github.com/FocuswithJustin/scrref/core/ref"
	"github.com/FocuswithJustin/scrref/core/sqlite"
	"github.com/FocuswithJustin/scrref/core/versification"
)

const dataDir = "../../data/versification"

func loadTables(t *testing.T) (*versification.Registry, []*versification.Table) {
	t.Helper()
	reg := versification.NewRegistry()
	if err := reg.Initialize(dataDir); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	var tables []*versification.Table
	for _, s := range []ref.Scheme{ref.SchemeOriginal, ref.SchemeEnglish} {
		tbl, err := reg.Table(s)
		if err != nil {
			t.Fatalf("Table(%v) error = %v", s, err)
		}
		tables = append(tables, tbl)
	}
	return reg, tables
}

func memoryDB(t *testing.T) *DB {
	t.Helper()
	db, err := sqlite.OpenMemory(context.Background())
	if err != nil {
		t.Fatalf("OpenMemory() error = %v", err)
	}
	d := New(db)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestExportReproducesTables(t *testing.T) {
	ctx := context.Background()
	reg, tables := loadTables(t)
	d := memoryDB(t)

	res, err := d.Export(ctx, reg.Books(), tables...)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if res.Schemes != 2 {
		t.Errorf("Schemes = %d, want 2", res.Schemes)
	}
	if _, err := uuid.Parse(res.ExportID); err != nil {
		t.Errorf("ExportID %q is not a UUID: %v", res.ExportID, err)
	}
	if res.Mappings != len(tables[1].Mappings()) {
		t.Errorf("Mappings = %d, want %d", res.Mappings, len(tables[1].Mappings()))
	}

	id, err := d.Meta(ctx, "export_id")
	if err != nil || id != res.ExportID {
		t.Errorf("Meta(export_id) = %q, %v, want %q", id, err, res.ExportID)
	}

	eng := tables[1]
	checks := []struct{ book, chapter int }{
		{1, 0}, {1, 1}, {1, 31}, {19, 119}, {29, 2}, {39, 4}, {66, 22}, {1, 51}, {70, 1},
	}
	for _, c := range checks {
		got, err := d.LastVerse(ctx, ref.SchemeEnglish, c.book, c.chapter)
		if err != nil {
			t.Fatalf("LastVerse() error = %v", err)
		}
		if want := eng.LastVerse(c.book, c.chapter); got != want {
			t.Errorf("LastVerse(%d, %d) = %d, want %d", c.book, c.chapter, got, want)
		}
	}

	for _, book := range []int{1, 19, 39, 66, 0} {
		for i, tbl := range tables {
			got, err := d.LastChapter(ctx, tbl.Scheme(), book)
			if err != nil {
				t.Fatalf("LastChapter() error = %v", err)
			}
			if want := tbl.LastChapter(book); got != want {
				t.Errorf("tables[%d] LastChapter(%d) = %d, want %d", i, book, got, want)
			}
		}
	}

	for _, m := range eng.Mappings() {
		std, ok, err := d.ToStandard(ctx, ref.SchemeEnglish, m.From)
		if err != nil || !ok || std != m.To {
			t.Errorf("ToStandard(%s) = %q, %v, %v, want %q", m.From, std, ok, err, m.To)
		}
		src, ok, err := d.FromStandard(ctx, ref.SchemeEnglish, m.To)
		if err != nil || !ok || src != m.From {
			t.Errorf("FromStandard(%s) = %q, %v, %v, want %q", m.To, src, ok, err, m.From)
		}
	}

	if _, ok, err := d.ToStandard(ctx, ref.SchemeOriginal, "GEN 31:55"); err != nil || ok {
		t.Errorf("Original has no mappings, got ok=%v err=%v", ok, err)
	}
}

func TestExportReplacesContents(t *testing.T) {
	ctx := context.Background()
	reg, tables := loadTables(t)
	d := memoryDB(t)

	first, err := d.Export(ctx, reg.Books(), tables...)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	second, err := d.Export(ctx, reg.Books(), tables[0])
	if err != nil {
		t.Fatalf("second Export() error = %v", err)
	}
	if first.ExportID == second.ExportID {
		t.Error("export IDs should differ between exports")
	}
	if _, ok, _ := d.ToStandard(ctx, ref.SchemeEnglish, "GEN 31:55"); ok {
		t.Error("English mappings should be gone after the second export")
	}
}

func TestExportDuplicateScheme(t *testing.T) {
	reg, tables := loadTables(t)
	d := memoryDB(t)
	_, err := d.Export(context.Background(), reg.Books(), tables[0], tables[0])
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Export(duplicate) error = %v, want ErrInvalidInput", err)
	}
}

func TestStale(t *testing.T) {
	ctx := context.Background()
	reg, tables := loadTables(t)
	d := memoryDB(t)

	if _, err := d.Export(ctx, reg.Books(), tables[1]); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if stale, err := d.Stale(ctx, tables[1]); err != nil || stale {
		t.Errorf("Stale(English) = %v, %v, want false", stale, err)
	}
	if stale, err := d.Stale(ctx, tables[0]); err != nil || !stale {
		t.Errorf("Stale(Original) = %v, %v, want true (never exported)", stale, err)
	}

	other, err := versification.Parse(ref.SchemeEnglish, "x.vrs", []byte("GEN 1:31\n"), books.Canonical())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if stale, err := d.Stale(ctx, other); err != nil || !stale {
		t.Errorf("Stale(changed data) = %v, %v, want true", stale, err)
	}
}

func TestBooksTable(t *testing.T) {
	ctx := context.Background()
	reg := books.NewRegistry(books.WithDeuterocanon(true))
	d := memoryDB(t)
	if _, err := d.Export(ctx, reg); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var count, deutero int
	if err := d.db.QueryRowContext(ctx, "SELECT COUNT(*), SUM(deuterocanonical) FROM books").Scan(&count, &deutero); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != books.CanonicalCount+books.DeuterocanonicalCount || deutero != books.DeuterocanonicalCount {
		t.Errorf("books = %d (%d deuterocanonical)", count, deutero)
	}
	if v, _ := d.Meta(ctx, "deuterocanon"); v != "true" {
		t.Errorf("Meta(deuterocanon) = %q, want true", v)
	}
	if _, err := d.Meta(ctx, "missing"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Meta(missing) error = %v, want ErrNotFound", err)
	}
}

func TestOpenFile(t *testing.T) {
	ctx := context.Background()
	reg, tables := loadTables(t)
	path := filepath.Join(t.TempDir(), "refs.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := d.Export(ctx, reg.Books(), tables...); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	d.Close()

	ro, err := OpenReadOnly(path)
	if err != nil {
		t.Fatalf("OpenReadOnly() error = %v", err)
	}
	defer ro.Close()
	if got, err := ro.LastVerse(ctx, ref.SchemeOriginal, 1, 32); err != nil || got != 33 {
		t.Errorf("LastVerse(Original GEN 32) = %d, %v, want 33", got, err)
	}
}
