package fsnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForChange(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case path := <-ch:
		return path
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for change notification")
		return ""
	}
}

func TestWatch_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "massnoun.txt")
	require.NoError(t, os.WriteFile(path, []byte("porridge\n"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 8)
	require.NoError(t, w.Watch([]string{path}, func(p string) { changes <- p }))

	require.NoError(t, os.WriteFile(path, []byte("gravel\n"), 0o644))

	got := waitForChange(t, changes)
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}

func TestWatch_FiresOnAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badwords.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 8)
	require.NoError(t, w.Watch([]string{path}, func(p string) { changes <- p }))

	// write-then-rename, as editors and the state saver do
	tmp := filepath.Join(dir, "badwords.txt.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("new\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	waitForChange(t, changes)
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "massnoun.txt")
	sibling := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(watched, []byte("porridge\n"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	changes := make(chan string, 8)
	require.NoError(t, w.Watch([]string{watched}, func(p string) { changes <- p }))

	require.NoError(t, os.WriteFile(sibling, []byte("noise\n"), 0o644))

	select {
	case p := <-changes:
		t.Fatalf("unexpected notification for %s", p)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	err = w.Watch([]string{filepath.Join(t.TempDir(), "gone", "list.txt")}, func(string) {})
	assert.Error(t, err)
}

func TestStop_Idempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
