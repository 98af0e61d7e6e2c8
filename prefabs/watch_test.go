package prefabs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsSpecEdit(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(dir, "physics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gravity:\n  y: 2\n"), 0o644))

	select {
	case changed := <-w.Events:
		assert.Equal(t, path, changed)
	case <-time.After(2 * time.Second):
		t.Fatal("no event for spec edit")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case changed := <-w.Events:
		t.Fatalf("unexpected event %q", changed)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseDrainsCleanly(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)

	// queue more edits than the Events buffer holds, consume nothing
	for i := 0; i < 32; i++ {
		name := filepath.Join(dir, fmt.Sprintf("spec%02d.yaml", i))
		require.NoError(t, os.WriteFile(name, []byte("x: 1\n"), 0o644))
	}
	time.Sleep(200 * time.Millisecond)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	// the pump closes Events on exit, so draining terminates
	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("Events never closed after Close")
		}
	}
}
