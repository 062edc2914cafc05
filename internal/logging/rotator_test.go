package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listBackups(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), LogFileName+".") {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 5, 0, true)
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("x"), 600*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	backups := listBackups(t, dir)
	require.Len(t, backups, 1)
	assert.True(t, strings.HasSuffix(backups[0], ".gz"))

	info, err := os.Stat(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_PrunesBeyondMaxBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, 1, 2, 0, false)
	require.NoError(t, err)
	defer r.Close()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		stamp := base.Add(time.Duration(i) * time.Second)
		r.now = func() time.Time { return stamp }
		_, err := r.Write([]byte("line\n"))
		require.NoError(t, err)
		r.mu.Lock()
		require.NoError(t, r.rotate())
		r.mu.Unlock()
		backup := filepath.Join(dir, LogFileName+"."+stamp.Format("2006-01-02-15-04-05.000"))
		require.NoError(t, os.Chtimes(backup, stamp, stamp))
	}

	assert.Len(t, listBackups(t, dir), 2)
}
