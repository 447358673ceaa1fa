package corpus

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Source provides the current corpus snapshot to the query layer.
// Implementations must return fully-built snapshots only; a query must
// never observe a partially-loaded corpus.
type Source interface {
	Snapshot() *Snapshot
}

// Static is a Source fixed to a single snapshot for the life of the process.
type Static struct {
	snapshot *Snapshot
}

var _ Source = (*Static)(nil)

// NewStatic wraps an already-loaded snapshot as a Source.
func NewStatic(snapshot *Snapshot) *Static {
	return &Static{snapshot: snapshot}
}

func (s *Static) Snapshot() *Snapshot {
	return s.snapshot
}

// Watcher is a Source that re-runs the full load phase whenever collection
// files under the corpus directory change, then swaps the new snapshot in
// atomically. Reloads are always whole-corpus rebuilds; a failed reload
// keeps the previous snapshot in place. Queries in flight keep whichever
// snapshot they started with.
type Watcher struct {
	dir      string
	loader   *Loader
	logger   *slog.Logger
	debounce time.Duration

	current atomic.Pointer[Snapshot]
	fsw     *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

var _ Source = (*Watcher)(nil)

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithWatcherLogger sets a custom logger.
// Default is slog.Default().
func WithWatcherLogger(logger *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
	}
}

// WithDebounce sets how long the watcher waits after the last file event
// before reloading. Default is 500ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// NewWatcher performs an initial load of dir and starts watching it for
// changes. The caller owns the loader and must keep it open for the life
// of the watcher.
func NewWatcher(ctx context.Context, loader *Loader, dir string, opts ...WatcherOption) (*Watcher, error) {
	w := &Watcher{
		dir:      dir,
		loader:   loader,
		logger:   slog.Default(),
		debounce: 500 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	snapshot, err := loader.Load(ctx, dir)
	if err != nil {
		return nil, err
	}
	w.current.Store(snapshot)

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.watch()

	return w, nil
}

// Snapshot returns the most recently loaded snapshot.
func (w *Watcher) Snapshot() *Snapshot {
	return w.current.Load()
}

// Reload re-runs the full load phase and swaps the new snapshot in.
// On failure the previous snapshot stays current and the error is returned.
func (w *Watcher) Reload(ctx context.Context) error {
	snapshot, err := w.loader.Load(ctx, w.dir)
	if err != nil {
		return err
	}
	w.current.Store(snapshot)
	return nil
}

// Close stops watching. The current snapshot remains readable.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// watch coalesces bursts of file events into a single reload.
func (w *Watcher) watch() {
	defer w.wg.Done()

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isCollectionEvent(event) {
				continue
			}
			w.logger.Debug("corpus file changed", "file", filepath.Base(event.Name), "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("corpus watch error", "err", err)

		case <-pending:
			pending = nil
			if err := w.Reload(context.Background()); err != nil {
				w.logger.Error("corpus reload failed, keeping previous snapshot", "err", err)
				continue
			}
			w.logger.Info("corpus reloaded", "entries", w.Snapshot().TotalEntries())
		}
	}
}

// isCollectionEvent reports whether an fsnotify event touches a manifest file.
func isCollectionEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	for _, cf := range manifest {
		if strings.EqualFold(name, cf.Name) {
			return true
		}
	}
	return false
}
