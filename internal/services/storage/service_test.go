package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestStorage(t *testing.T) *StorageService {
	t.Helper()
	return NewStorageService(t.TempDir(), zaptest.NewLogger(t))
}

func TestExists(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, os.WriteFile(s.Path("test.jpg"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(s.Path("folder.jpg"), 0o755))

	assert.True(t, s.Exists("test.jpg"))
	assert.False(t, s.Exists("missing.jpg"))
	assert.False(t, s.Exists("folder.jpg"), "directories are not images")
	assert.False(t, s.Exists(""))
}

func TestDownload(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, os.WriteFile(s.Path("logo.png"), []byte("data"), 0o644))

	data, err := s.Download(context.Background(), "logo.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	_, err = s.Download(context.Background(), "nope.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUploadWritesFile(t *testing.T) {
	s := newTestStorage(t)

	path, err := s.Upload(context.Background(), "out.jpg", func(w io.Writer) error {
		_, err := w.Write([]byte("encoded"))
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Root(), "out.jpg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "encoded", string(data))
	assertOnlyFiles(t, s.Root(), "out.jpg")
}

func TestUploadFailureLeavesNothing(t *testing.T) {
	s := newTestStorage(t)
	boom := errors.New("encode failed")

	_, err := s.Upload(context.Background(), "out.jpg", func(w io.Writer) error {
		w.Write([]byte("partial"))
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, s.Exists("out.jpg"))
	assertOnlyFiles(t, s.Root())
}

func TestUploadHonoursCancelledContext(t *testing.T) {
	s := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Upload(ctx, "out.jpg", func(w io.Writer) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assertOnlyFiles(t, s.Root())
}

func TestListImages(t *testing.T) {
	s := newTestStorage(t)
	for _, name := range []string{"b.png", "a.jpg", "notes.txt", ".b.png.1234abcd.tmp"} {
		require.NoError(t, os.WriteFile(s.Path(name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(s.Path("dir.png"), 0o755))

	names, err := s.ListImages()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.png"}, names)
}

func TestHealthCheck(t *testing.T) {
	s := newTestStorage(t)
	assert.Equal(t, "healthy", s.HealthCheck()["image_dir"])

	missing := NewStorageService(filepath.Join(s.Root(), "nope"), zaptest.NewLogger(t))
	assert.Contains(t, missing.HealthCheck()["image_dir"], "unhealthy")
}

func assertOnlyFiles(t *testing.T, dir string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.Name())
	}
	assert.ElementsMatch(t, want, got)
}
