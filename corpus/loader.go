package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/halcyonforge/eu5ref/core"
)

// Loader reads a corpus directory into an immutable Snapshot.
// Collection files are parsed concurrently on a worker pool; the resulting
// snapshot is assembled in manifest order, so loads are deterministic
// regardless of which file finishes first.
type Loader struct {
	pool   *ants.Pool
	logger *slog.Logger
	closed bool
	mu     sync.Mutex
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent file parsing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a new corpus loader.
func NewLoader(opts ...Option) (*Loader, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			l.pool.Release()
			return nil, err
		}
	}

	return l, nil
}

// Close releases the loader's worker pool. Snapshots produced by earlier
// Load calls remain valid.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	l.pool.Release()
	return nil
}

// Load reads every manifest file under dir and builds a Snapshot.
//
// A missing file yields an empty collection for its category. Any file that
// exists but cannot be read or parsed aborts the load with a *LoadError
// naming the file; no snapshot is produced in that case.
func (l *Loader) Load(ctx context.Context, dir string) (*Snapshot, error) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil, ErrLoaderClosed
	}
	l.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, &LoadError{File: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &LoadError{File: dir, Err: errors.New("not a directory")}
	}

	collections := make([][]*core.Entry, len(manifest))
	loadErrs := make([]error, len(manifest))

	var wg sync.WaitGroup
	for i, cf := range manifest {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			collections[i], loadErrs[i] = l.loadCollection(filepath.Join(dir, cf.Name), cf)
		}
		if err := l.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	for _, err := range loadErrs {
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := newSnapshot(collections)
	l.logger.Info("corpus loaded",
		"dir", dir,
		"entries", snapshot.TotalEntries(),
		"scopes", snapshot.TotalScopes(),
	)
	return snapshot, nil
}

// loadCollection reads and parses one collection file.
func (l *Loader) loadCollection(path string, cf collectionFile) ([]*core.Entry, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("collection file absent", "file", cf.Name)
		return nil, nil
	}
	if err != nil {
		return nil, &LoadError{File: cf.Name, Err: err}
	}

	entries, err := decodeCollection(data, cf)
	if err != nil {
		return nil, &LoadError{File: cf.Name, Err: err}
	}

	l.logger.Info("loaded collection", "file", cf.Name, "entries", len(entries))
	return entries, nil
}

// decodeCollection normalizes the two shapes the extraction pipeline
// produces into entries: a flat list of entry objects, or a mapping from
// name to an attributes object. Mapping keys are consumed from the token
// stream so file order is preserved.
func decodeCollection(data []byte, cf collectionFile) ([]*core.Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, ErrUnexpectedShape
	}

	var entries []*core.Entry
	switch delim {
	case '[':
		entries, err = decodeList(dec, cf)
	case '{':
		entries, err = decodeMapping(dec, cf)
	default:
		return nil, ErrUnexpectedShape
	}
	if err != nil {
		return nil, err
	}

	// closing delimiter, then nothing but EOF
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrUnexpectedShape
	}

	return entries, nil
}

func decodeList(dec *json.Decoder, cf collectionFile) ([]*core.Entry, error) {
	var entries []*core.Entry
	for dec.More() {
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		name, ok := raw["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrMissingName, len(entries))
		}
		delete(raw, "name")

		entries = append(entries, newEntry(name, raw, cf))
	}
	return entries, nil
}

func decodeMapping(dec *json.Decoder, cf collectionFile) ([]*core.Entry, error) {
	var entries []*core.Entry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrMissingName, len(entries))
		}

		var attrs map[string]any
		if err := dec.Decode(&attrs); err != nil {
			return nil, err
		}
		if attrs == nil {
			attrs = map[string]any{}
		}

		entries = append(entries, newEntry(name, attrs, cf))
	}
	return entries, nil
}

func newEntry(name string, attrs map[string]any, cf collectionFile) *core.Entry {
	entry := &core.Entry{
		Name:       name,
		Category:   cf.Category,
		Group:      cf.Group,
		Scope:      scopeOf(attrs),
		Attributes: attrs,
	}
	entry.Id = core.IDFromContent(entry.Key())
	return entry
}

// scopeOf extracts the scope tag from raw attributes. The pipeline emits
// either a "scope" string or a "scopes" list; the first declared scope wins.
func scopeOf(attrs map[string]any) string {
	if scope, ok := attrs["scope"].(string); ok {
		return scope
	}
	if scopes, ok := attrs["scopes"].([]any); ok && len(scopes) > 0 {
		if scope, ok := scopes[0].(string); ok {
			return scope
		}
	}
	return ""
}
