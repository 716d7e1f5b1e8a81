package trace

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInputFile(t *testing.T) {
	path, err := ResolveInput("test_data/ptp_offset_history.csv")
	require.NoError(t, err)
	assert.Equal(t, "test_data/ptp_offset_history.csv", path)
}

func TestResolveInputDirectory(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	files := map[string]time.Time{
		"ptp_offset_history_20250416_171155.csv": now.Add(-2 * time.Hour),
		"ptp_offset_history_20250417_091500.csv": now.Add(-time.Hour),
		"bandwidth_delays_20250418_101010.csv":   now,
		"ptp_offset_history_notes.txt":           now,
	}
	for name, mtime := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("Sample\n"), 0644))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "ptp_offset_history_old.csv"), 0755))

	path, err := ResolveInput(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ptp_offset_history_20250417_091500.csv"), path)
}

func TestResolveInputSameModTime(t *testing.T) {
	dir := t.TempDir()
	mtime := time.Now().Add(-time.Minute)

	for _, name := range []string{"ptp_offset_history_20250416_171155.csv", "ptp_offset_history_20250416_171156.csv"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("Sample\n"), 0644))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}

	path, err := ResolveInput(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ptp_offset_history_20250416_171156.csv"), path)
}

func TestResolveInputMissing(t *testing.T) {
	_, err := ResolveInput(filepath.Join(t.TempDir(), "nothing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ResolveInput(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
