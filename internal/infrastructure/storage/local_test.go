package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	s, err := NewLocalStorage(root)
	require.NoError(t, err)

	path, size, err := s.Save(context.Background(), "Clip.MP4", strings.NewReader("video-bytes"))
	require.NoError(t, err)
	require.Equal(t, int64(len("video-bytes")), size)
	require.Equal(t, ".mp4", filepath.Ext(path))

	data, err := os.ReadFile(filepath.Join(root, path))
	require.NoError(t, err)
	require.Equal(t, "video-bytes", string(data))

	require.NoError(t, s.Delete(context.Background(), path))
	_, err = os.Stat(filepath.Join(root, path))
	require.True(t, os.IsNotExist(err))

	// second delete is a no-op
	require.NoError(t, s.Delete(context.Background(), path))
}

func TestLocalStorage_UniqueNames(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	p1, _, err := s.Save(context.Background(), "a.mp4", strings.NewReader("1"))
	require.NoError(t, err)
	p2, _, err := s.Save(context.Background(), "a.mp4", strings.NewReader("2"))
	require.NoError(t, err)
	require.NotEqual(t, p1, p2)
}
