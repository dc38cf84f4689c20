package fileio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, w *Watcher) {
	t.Helper()
	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change notification")
	}
}

func drain(w *Watcher) {
	for {
		select {
		case <-w.Changes():
		case <-time.After(200 * time.Millisecond):
			return
		}
	}
}

func newTestWatcher(t *testing.T, content string) (*Watcher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w, path
}

func TestWatcherReportsExternalWrite(t *testing.T) {
	w, path := newTestWatcher(t, "one\n")

	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o600))
	waitChange(t, w)

	op, changed := w.Check()
	assert.True(t, changed)
	assert.Equal(t, OpModified, op)

	_, changed = w.Check()
	assert.False(t, changed, "a change is reported once")
}

func TestWatcherReportsRemoval(t *testing.T) {
	w, path := newTestWatcher(t, "one\n")

	require.NoError(t, os.Remove(path))
	waitChange(t, w)

	op, changed := w.Check()
	assert.True(t, changed)
	assert.Equal(t, OpRemoved, op)
}

func TestWatcherIgnoresRecordedSave(t *testing.T) {
	w, path := newTestWatcher(t, "one\n")

	_, err := Save(path, []byte("one\ntwo\nthree\n"))
	require.NoError(t, err)
	require.NoError(t, w.Record())
	drain(w)

	_, changed := w.Check()
	assert.False(t, changed)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	w, path := newTestWatcher(t, "one\n")

	other := filepath.Join(filepath.Dir(path), "other.txt")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o600))

	select {
	case <-w.Changes():
		t.Fatal("unexpected change for a sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, _ := newTestWatcher(t, "")
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "modified", OpModified.String())
	assert.Equal(t, "removed", OpRemoved.String())
	assert.Equal(t, "unknown", Op(0).String())
}
