/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package watch reports changes to token files and preview documents.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a file must stay quiet before its change is
// reported.
const DefaultDebounce = 200 * time.Millisecond

// Kind says what a watched file feeds.
type Kind int

const (
	// Tokens files hold component token definitions.
	Tokens Kind = iota
	// Preview files make up the preview document.
	Preview
)

func (k Kind) String() string {
	switch k {
	case Tokens:
		return "tokens"
	case Preview:
		return "preview"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a settled change to one watched file.
type Event struct {
	Path string
	Kind Kind
	// Removed is set when the file was deleted or renamed away.
	Removed bool
}

// Handler receives events. It is called from a timer goroutine, one call
// per settled file.
type Handler func(Event)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// Watcher watches a set of files.
//
// Directories are watched rather than files, so editors that save by
// renaming a temporary file over the original are still seen.
type Watcher struct {
	fsw      *fsnotify.Watcher
	handler  Handler
	debounce time.Duration
	log      *zap.Logger

	mu     sync.Mutex
	files  map[string]Kind
	dirs   map[string]bool
	timers map[string]*time.Timer
	closed bool

	done      chan struct{}
	closeOnce sync.Once
}

// New creates a watcher that reports to handler.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		handler:  handler,
		debounce: DefaultDebounce,
		log:      zap.NewNop(),
		files:    make(map[string]Kind),
		dirs:     make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.Named("watch")
	return w, nil
}

// Add starts watching paths as files of the given kind.
func (w *Watcher) Add(kind Kind, paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return fmt.Errorf("watcher closed")
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files[abs] = kind

		dir := filepath.Dir(abs)
		if w.dirs[dir] {
			continue
		}
		if err := w.fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
		w.log.Debug("watching directory", zap.String("dir", dir))
	}
	return nil
}

// Files returns the number of watched files.
func (w *Watcher) Files() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.files)
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return w.Close()

		case <-w.done:
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("file watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher and cancels pending events. It is safe to call
// more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		for _, t := range w.timers {
			t.Stop()
		}
		clear(w.timers)
		w.mu.Unlock()

		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) handle(event fsnotify.Event) {
	name := filepath.Clean(event.Name)

	w.mu.Lock()
	kind, watched := w.files[name]
	w.mu.Unlock()
	if !watched {
		return
	}

	w.log.Debug("file event", zap.String("op", event.Op.String()), zap.String("file", name))

	switch {
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		w.schedule(Event{Path: name, Kind: kind})
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.schedule(Event{Path: name, Kind: kind, Removed: true})
	}
}

// schedule reports ev once its file has been quiet for the debounce period.
// A later event for the same file replaces an earlier pending one.
func (w *Watcher) schedule(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	if t, ok := w.timers[ev.Path]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		current := w.timers[ev.Path] == timer
		if current {
			delete(w.timers, ev.Path)
		}
		closed := w.closed
		w.mu.Unlock()

		if current && !closed && w.handler != nil {
			w.handler(ev)
		}
	})
	w.timers[ev.Path] = timer
}
