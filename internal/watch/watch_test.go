package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeatlas-io/codeatlas/internal/scanner"
)

// Test Plan:
// - event filtering: op mask, ignore patterns, language detection, directories
// - a burst of writes inside the debounce window yields one batched callback
// - Stop is idempotent and terminates the event loop

func newTestWatcher(t *testing.T, root string, onChange func(context.Context, []string)) *Watcher {
	t.Helper()

	sc, err := scanner.New(root, nil, []string{"node_modules/**"})
	require.NoError(t, err)

	w, err := New(root, sc, onChange)
	require.NoError(t, err)
	t.Cleanup(w.Stop)
	return w
}

func TestShouldProcessEvent(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hi\n"), 0o644))

	w := newTestWatcher(t, root, func(context.Context, []string) {})

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to source file", fsnotify.Event{Name: filepath.Join(root, "a.py"), Op: fsnotify.Write}, true},
		{"chmod only", fsnotify.Event{Name: filepath.Join(root, "a.py"), Op: fsnotify.Chmod}, false},
		{"non-source file", fsnotify.Event{Name: filepath.Join(root, "notes.txt"), Op: fsnotify.Write}, false},
		{"ignored directory", fsnotify.Event{Name: filepath.Join(root, "node_modules"), Op: fsnotify.Create}, false},
		{"new directory", fsnotify.Event{Name: filepath.Join(root, "sub"), Op: fsnotify.Create}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, w.shouldProcessEvent(tt.event), tt.name)
	}
}

func TestWatcher_DebouncedBatch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	batches := make(chan []string, 1)

	w := newTestWatcher(t, root, func(_ context.Context, changed []string) {
		select {
		case batches <- changed:
		default:
		}
	})
	w.debounceTime = 50 * time.Millisecond
	w.Start(context.Background())

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.py"), []byte("y = 2\n"), 0o644))

	select {
	case changed := <-batches:
		assert.Subset(t, []string{"a.py", "b.py"}, changed)
		assert.NotEmpty(t, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch within timeout")
	}
}

func TestWatcher_StopIdempotent(t *testing.T) {
	t.Parallel()

	w := newTestWatcher(t, t.TempDir(), func(context.Context, []string) {})
	w.Start(context.Background())
	w.Stop()
	w.Stop()
}
