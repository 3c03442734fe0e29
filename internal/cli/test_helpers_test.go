package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/runnerr0/unshorts/internal/history"
)

// testStore creates an empty history store in a temp dir and returns it with
// a stats file path next to it.
func testStore(t *testing.T) (*history.FileStore, string) {
	t.Helper()

	dir := t.TempDir()
	store := history.NewFileStore(filepath.Join(dir, "history.json"))
	require.NoError(t, store.Load())
	return store, filepath.Join(dir, "stats.json")
}

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}
