// Package versification loads per-scheme chapter/verse tables and converts
// references between versification schemes.
package versification

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/FocuswithJustin/scrref/core/books"
	"github.com/FocuswithJustin/scrref/core/errors"
	"github.com/FocuswithJustin/scrref/core/ref"
	"github.com/FocuswithJustin/scrref/internal/logging"
)

// FallbackFile is loaded when a scheme's own data file is missing.
const FallbackFile = "eng.vrs"

// ErrNotInitialized is returned by Table before Initialize has been called.
var ErrNotInitialized = errors.NewConfig("versification data directory", "not initialized", nil)

var schemeFiles = map[ref.Scheme]string{
	ref.SchemeOriginal:          "org.vrs",
	ref.SchemeSeptuagint:        "lxx.vrs",
	ref.SchemeVulgate:           "vul.vrs",
	ref.SchemeEnglish:           "eng.vrs",
	ref.SchemeRussianProtestant: "rsc.vrs",
	ref.SchemeRussianOrthodox:   "rso.vrs",
}

// FileName returns the data file name of scheme. SchemeUnknown has no file
// of its own and resolves to the fallback.
func FileName(scheme ref.Scheme) string {
	if name, ok := schemeFiles[scheme]; ok {
		return name
	}
	return FallbackFile
}

type entry struct {
	once  sync.Once
	table *Table
	err   error
}

// Registry loads and caches one Table per scheme. Tables are loaded lazily
// on first use and are never reloaded; a failed load is cached as well.
type Registry struct {
	books *books.Registry

	mu      sync.Mutex
	dir     string
	entries map[ref.Scheme]*entry
}

// Option configures a Registry.
type Option func(*Registry)

// WithBooks sets the book registry used to resolve codes in data files.
// The default is the canonical 66-book registry.
func WithBooks(reg *books.Registry) Option {
	return func(r *Registry) {
		if reg != nil {
			r.books = reg
		}
	}
}

// NewRegistry creates an uninitialized Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		books:   books.Canonical(),
		entries: make(map[ref.Scheme]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Books returns the book registry the tables are built against.
func (r *Registry) Books() *books.Registry {
	return r.books
}

// Initialize sets the directory data files are read from. It may be called
// once.
func (r *Registry) Initialize(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.NewConfig("versification data directory", "empty path", nil)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dir != "" {
		return errors.NewConfig("versification data directory", "already initialized with "+r.dir, nil)
	}
	r.dir = dir
	return nil
}

// Dir returns the data directory, or "" before Initialize.
func (r *Registry) Dir() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dir
}

// Table returns the table for scheme, loading it on first use.
func (r *Registry) Table(scheme ref.Scheme) (*Table, error) {
	if scheme != ref.SchemeUnknown && !scheme.IsValid() {
		return nil, errors.NewUnsupported("versification scheme", fmt.Sprintf("scheme %d has no data file", int(scheme)))
	}
	r.mu.Lock()
	if r.dir == "" {
		r.mu.Unlock()
		return nil, ErrNotInitialized
	}
	e, ok := r.entries[scheme]
	if !ok {
		e = &entry{}
		r.entries[scheme] = e
	}
	dir := r.dir
	r.mu.Unlock()

	e.once.Do(func() {
		e.table, e.err = r.load(dir, scheme)
		if e.table != nil {
			e.table.tables = r
		}
	})
	return e.table, e.err
}

// ChangeVersification converts ref to the target scheme.
func (r *Registry) ChangeVersification(target ref.Scheme, rf *ref.Ref) error {
	t, err := r.Table(target)
	if err != nil {
		return err
	}
	return t.ChangeVersification(rf)
}

func (r *Registry) load(dir string, scheme ref.Scheme) (*Table, error) {
	name := FileName(scheme)
	path, data, err := readData(dir, name)
	if err != nil && errors.Is(err, fs.ErrNotExist) && name != FallbackFile {
		var ferr error
		path, data, ferr = readData(dir, FallbackFile)
		if ferr == nil {
			logging.VersificationFallback(scheme.String(), name, path)
		}
		err = ferr
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			missing := name
			if name != FallbackFile {
				missing += " or " + FallbackFile
			}
			return nil, errors.NewConfig("versification data file", "no "+missing+" in "+dir, err)
		}
		return nil, errors.Wrapf(err, "load %s versification", scheme)
	}

	t, err := Parse(scheme, path, data, r.books)
	if err != nil {
		return nil, err
	}
	logging.VersificationLoaded(scheme.String(), path, len(t.Books()), len(t.toStandard))
	return t, nil
}

// readData reads dir/name, or dir/name.xz when the plain file is absent,
// and returns the decompressed contents.
func readData(dir, name string) (string, []byte, error) {
	var lastErr error
	for _, candidate := range []string{name, name + ".xz"} {
		path := filepath.Join(dir, candidate)
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				lastErr = err
				continue
			}
			return path, nil, errors.NewIO("read", path, err)
		}
		data, err := decompress(candidate, raw)
		if err != nil {
			return path, nil, errors.NewIO("decompress", path, err)
		}
		return path, data, nil
	}
	return "", nil, lastErr
}
