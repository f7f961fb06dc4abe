/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
	ch     chan Event
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan Event, 16)}
}

func (r *recorder) handle(ev Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	r.ch <- ev
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *recorder) next(t *testing.T) Event {
	t.Helper()
	select {
	case ev := <-r.ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func start(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func TestWatcher_ReportsKind(t *testing.T) {
	dir := t.TempDir()
	tokens := filepath.Join(dir, "components.json")
	css := filepath.Join(dir, "theme.css")
	require.NoError(t, os.WriteFile(tokens, []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(css, []byte(""), 0o644))

	rec := newRecorder()
	w, err := New(rec.handle, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Add(Tokens, tokens))
	require.NoError(t, w.Add(Preview, css))
	assert.Equal(t, 2, w.Files())
	start(t, w)

	require.NoError(t, os.WriteFile(css, []byte(":root { --wm-x: 1px; }"), 0o644))
	ev := rec.next(t)
	assert.Equal(t, css, ev.Path)
	assert.Equal(t, Preview, ev.Kind)
	assert.False(t, ev.Removed)

	require.NoError(t, os.WriteFile(tokens, []byte(`{"chip": {}}`), 0o644))
	ev = rec.next(t)
	assert.Equal(t, tokens, ev.Path)
	assert.Equal(t, Tokens, ev.Kind)

	require.NoError(t, os.Remove(tokens))
	ev = rec.next(t)
	assert.Equal(t, tokens, ev.Path)
	assert.True(t, ev.Removed)
}

func TestWatcher_IgnoresUnwatchedFiles(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "theme.css")
	require.NoError(t, os.WriteFile(css, []byte(""), 0o644))

	rec := newRecorder()
	w, err := New(rec.handle, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Add(Preview, css))
	start(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.css"), []byte("a{}"), 0o644))
	require.NoError(t, os.WriteFile(css, []byte("b{}"), 0o644))

	ev := rec.next(t)
	assert.Equal(t, css, ev.Path)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestWatcher_Debounces(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "theme.css")
	require.NoError(t, os.WriteFile(css, []byte(""), 0o644))

	rec := newRecorder()
	w, err := New(rec.handle, WithDebounce(300*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Add(Preview, css))
	start(t, w)

	for range 5 {
		require.NoError(t, os.WriteFile(css, []byte("a{}"), 0o644))
	}

	rec.next(t)
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestWatcher_Close(t *testing.T) {
	w, err := New(nil)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Error(t, w.Add(Tokens, filepath.Join(t.TempDir(), "a.json")))
	assert.NoError(t, w.Run(context.Background()))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "tokens", Tokens.String())
	assert.Equal(t, "preview", Preview.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
