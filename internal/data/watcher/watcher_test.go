package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFileWatcherReportsWatchedFile(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "wells.csv")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte("a\n"), 0644))

	fw, err := NewFileWatcher([]string{watched})
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored\n"), 0644))
	require.NoError(t, os.WriteFile(watched, []byte("a\nb\n"), 0644))

	select {
	case ev := <-fw.Events():
		assert.Equal(t, watched, ev.Path)
		assert.NotEmpty(t, ev.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for watched file")
	}
}

func TestFileWatcherCloseStopsLoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "WILM.dat")
	require.NoError(t, os.WriteFile(path, []byte("1 2 3\n"), 0644))

	fw, err := NewFileWatcher([]string{path})
	require.NoError(t, err)

	require.NoError(t, fw.Close())
	require.NoError(t, fw.Close(), "close is idempotent")

	for range fw.Events() {
	}
}

func TestFileWatcherMissingDirectory(t *testing.T) {
	_, err := NewFileWatcher([]string{"/path/that/does/not/exist/wells.csv"})
	assert.Error(t, err)
}

func TestChangeDetector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wells.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))

	d := NewChangeDetector()
	assert.True(t, d.Changed(path), "first sight counts as a change")
	assert.False(t, d.Changed(path))

	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n3,4\n"), 0644))
	assert.True(t, d.Changed(path))

	assert.False(t, d.Changed(filepath.Join(t.TempDir(), "missing.csv")))
}
