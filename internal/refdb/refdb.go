// Package refdb exports loaded versification tables into a SQLite database
// and answers chapter/verse and mapping queries from it.
package refdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/scrref/core/books"
	"github.com/FocuswithJustin/scrref/core/errors"
	"github.com/FocuswithJustin/scrref/core/ref"
	"github.com/FocuswithJustin/scrref/core/sqlite"
	"github.com/FocuswithJustin/scrref/core/versification"
	"github.com/FocuswithJustin/scrref/internal/logging"
)

// SchemaVersion is stored in the meta table.
const SchemaVersion = "1"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS books (
		number INTEGER PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		abbrev TEXT NOT NULL,
		osis TEXT NOT NULL,
		deuterocanonical INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS schemes (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		path TEXT NOT NULL,
		digest TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chapters (
		scheme INTEGER NOT NULL,
		book INTEGER NOT NULL,
		chapter INTEGER NOT NULL,
		verses INTEGER NOT NULL,
		PRIMARY KEY (scheme, book, chapter)
	)`,
	`CREATE TABLE IF NOT EXISTS mappings (
		scheme INTEGER NOT NULL,
		source TEXT NOT NULL,
		standard TEXT NOT NULL,
		source_bcv INTEGER NOT NULL,
		standard_bcv INTEGER NOT NULL,
		PRIMARY KEY (scheme, source)
	)`,
	`CREATE INDEX IF NOT EXISTS mappings_standard ON mappings (scheme, standard)`,
}

// Result summarizes an export.
type Result struct {
	ExportID string
	Schemes  int
	Chapters int
	Mappings int
}

// DB is an export database.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path.
func Open(path string) (*DB, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return &DB{db: db, path: path}, nil
}

// OpenReadOnly opens an existing database for queries.
func OpenReadOnly(path string) (*DB, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return &DB{db: db, path: path}, nil
}

// New wraps an open database handle.
func New(db *sql.DB) *DB {
	return &DB{db: db}
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Export replaces the contents of the database with reg's books and the
// given tables, in one transaction. Tables are keyed by scheme; exporting
// two tables of the same scheme is an error.
func (d *DB) Export(ctx context.Context, reg *books.Registry, tables ...*versification.Table) (Result, error) {
	start := time.Now()
	res := Result{ExportID: uuid.NewString()}

	seen := make(map[ref.Scheme]bool)
	for _, t := range tables {
		if seen[t.Scheme()] {
			return Result{}, errors.NewValidation("tables", "scheme "+t.Scheme().String()+" exported twice")
		}
		seen[t.Scheme()] = true
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin export: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return Result{}, fmt.Errorf("create schema: %w", err)
		}
	}
	for _, table := range []string{"meta", "books", "schemes", "chapters", "mappings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return Result{}, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	meta := map[string]string{
		"schema_version": SchemaVersion,
		"export_id":      res.ExportID,
		"created_at":     start.UTC().Format(time.RFC3339),
		"deuterocanon":   fmt.Sprint(reg.Deuterocanon()),
		"driver":         sqlite.DriverType(),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, "INSERT INTO meta (key, value) VALUES (?, ?)", k, v); err != nil {
			return Result{}, fmt.Errorf("insert meta %s: %w", k, err)
		}
	}

	if err := insertBooks(ctx, tx, reg); err != nil {
		return Result{}, err
	}

	for _, t := range tables {
		chapters, mappings, err := insertTable(ctx, tx, reg, t)
		if err != nil {
			return Result{}, err
		}
		res.Schemes++
		res.Chapters += chapters
		res.Mappings += mappings
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit export: %w", err)
	}
	logging.ExportCompleted(ctx, d.path, res.Schemes, time.Since(start),
		"export_id", res.ExportID, "chapters", res.Chapters, "mappings", res.Mappings)
	return res, nil
}

func insertBooks(ctx context.Context, tx *sql.Tx, reg *books.Registry) error {
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO books (number, code, abbrev, osis, deuterocanonical) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare books: %w", err)
	}
	defer stmt.Close()

	for n := 1; n <= reg.LastBook(); n++ {
		code, _ := reg.NumberToBookCode(n)
		abbrev, _ := reg.NumberToAbbrev(n)
		osis, _ := reg.NumberToOSIS(n)
		if _, err := stmt.ExecContext(ctx, n, code, abbrev, osis, reg.IsDeuterocanonical(n)); err != nil {
			return fmt.Errorf("insert book %s: %w", code, err)
		}
	}
	return nil
}

func insertTable(ctx context.Context, tx *sql.Tx, reg *books.Registry, t *versification.Table) (chapters, mappings int, err error) {
	scheme := int(t.Scheme())
	if _, err := tx.ExecContext(ctx, "INSERT INTO schemes (id, name, path, digest) VALUES (?, ?, ?, ?)",
		scheme, t.Scheme().String(), t.Path(), t.Digest()); err != nil {
		return 0, 0, fmt.Errorf("insert scheme %s: %w", t.Scheme(), err)
	}

	chStmt, err := tx.PrepareContext(ctx, "INSERT INTO chapters (scheme, book, chapter, verses) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, 0, fmt.Errorf("prepare chapters: %w", err)
	}
	defer chStmt.Close()

	for _, bc := range t.Books() {
		for i, verses := range bc.Verses {
			if verses == 0 {
				continue
			}
			if _, err := chStmt.ExecContext(ctx, scheme, bc.Book, i+1, verses); err != nil {
				return 0, 0, fmt.Errorf("insert chapter %d %d:%d: %w", scheme, bc.Book, i+1, err)
			}
			chapters++
		}
	}

	mapStmt, err := tx.PrepareContext(ctx, "INSERT INTO mappings (scheme, source, standard, source_bcv, standard_bcv) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, 0, fmt.Errorf("prepare mappings: %w", err)
	}
	defer mapStmt.Close()

	parser := ref.NewParser(reg)
	for _, m := range t.Mappings() {
		from, to := parser.Parse(m.From), parser.Parse(m.To)
		if _, err := mapStmt.ExecContext(ctx, scheme, m.From, m.To, from.ToCanonical(), to.ToCanonical()); err != nil {
			return 0, 0, fmt.Errorf("insert mapping %s: %w", m.From, err)
		}
		mappings++
	}
	return chapters, mappings, nil
}

// Meta returns a meta value such as "export_id".
func (d *DB) Meta(ctx context.Context, key string) (string, error) {
	var v string
	err := d.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errors.NewNotFound("meta key", key)
	}
	if err != nil {
		return "", fmt.Errorf("query meta %s: %w", key, err)
	}
	return v, nil
}

// LastVerse returns the verse count of a chapter, with the same defaults
// as versification.Table.LastVerse.
func (d *DB) LastVerse(ctx context.Context, scheme ref.Scheme, book, chapter int) (int, error) {
	if chapter == 0 {
		return 1, nil
	}
	var verses int
	err := d.db.QueryRowContext(ctx,
		"SELECT verses FROM chapters WHERE scheme = ? AND book = ? AND chapter = ?",
		int(scheme), book, chapter).Scan(&verses)
	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query last verse: %w", err)
	}
	return verses, nil
}

// LastChapter returns the chapter count of a book, or 1 when absent.
func (d *DB) LastChapter(ctx context.Context, scheme ref.Scheme, book int) (int, error) {
	var last sql.NullInt64
	err := d.db.QueryRowContext(ctx,
		"SELECT MAX(chapter) FROM chapters WHERE scheme = ? AND book = ?",
		int(scheme), book).Scan(&last)
	if err != nil {
		return 0, fmt.Errorf("query last chapter: %w", err)
	}
	if !last.Valid {
		return 1, nil
	}
	return int(last.Int64), nil
}

// ToStandard returns the standard-scheme reference a scheme's reference
// maps to.
func (d *DB) ToStandard(ctx context.Context, scheme ref.Scheme, source string) (string, bool, error) {
	return d.lookup(ctx, "SELECT standard FROM mappings WHERE scheme = ? AND source = ?", scheme, source)
}

// FromStandard returns the scheme's reference for a standard-scheme one.
func (d *DB) FromStandard(ctx context.Context, scheme ref.Scheme, standard string) (string, bool, error) {
	return d.lookup(ctx, "SELECT source FROM mappings WHERE scheme = ? AND standard = ?", scheme, standard)
}

func (d *DB) lookup(ctx context.Context, query string, scheme ref.Scheme, key string) (string, bool, error) {
	var v string
	err := d.db.QueryRowContext(ctx, query, int(scheme), key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query mapping %s: %w", key, err)
	}
	return v, true, nil
}

// Stale reports whether the exported copy of t's scheme differs from t,
// comparing data-file digests. A scheme that was never exported is stale.
func (d *DB) Stale(ctx context.Context, t *versification.Table) (bool, error) {
	var digest string
	err := d.db.QueryRowContext(ctx, "SELECT digest FROM schemes WHERE id = ?", int(t.Scheme())).Scan(&digest)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("query digest: %w", err)
	}
	return digest != t.Digest(), nil
}
