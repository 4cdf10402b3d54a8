package backend

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher, match func(Event) bool) Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case evt, ok := <-w.Events():
			require.True(t, ok, "events channel closed early")
			if match(evt) {
				return evt
			}
		case <-deadline:
			t.Fatalf("timed out waiting for reload event")
		}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "links.yaml")
	require.NoError(t, os.WriteFile(path, []byte("links:\n  - label: Home\n"), 0o644))

	w, err := NewWatcher(path, 10*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() {
		w.Stop()
		w.Wait()
	})

	require.NoError(t, os.WriteFile(path, []byte("links:\n  - label: Home\n  - label: About\n"), 0o644))
	evt := waitEvent(t, w, func(e Event) bool { return e.Err == nil && len(e.Items) == 2 })
	assert.Equal(t, "about", evt.Items[1].ID)
	assert.Equal(t, w.Path(), evt.Path)
}

func TestWatcherReportsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "links.yaml")
	require.NoError(t, os.WriteFile(path, []byte("links:\n  - label: Home\n"), 0o644))

	w, err := NewWatcher(path, 0)
	require.NoError(t, err)
	t.Cleanup(func() {
		w.Stop()
		w.Wait()
	})

	require.NoError(t, os.WriteFile(path, []byte("links: []\n"), 0o644))
	// a truncated intermediate read may surface first; wait for the final content
	evt := waitEvent(t, w, func(e Event) bool {
		return e.Err != nil && strings.Contains(e.Err.Error(), "no links defined")
	})
	assert.Nil(t, evt.Items)
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "links.yaml")
	require.NoError(t, os.WriteFile(path, []byte("links:\n  - label: Home\n"), 0o644))

	w, err := NewWatcher(path, 0)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event %#v", evt)
	case <-time.After(200 * time.Millisecond):
	}
	w.Stop()
	w.Wait()
	_, ok := <-w.Events()
	assert.False(t, ok, "events closed after stop")
}

func TestThrottleHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, th.wait(ctx), "first slot is immediate")
	cancel()
	assert.False(t, th.wait(ctx))

	var none *throttle
	assert.True(t, none.wait(context.Background()))
}
