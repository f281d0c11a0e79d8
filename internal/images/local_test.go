package images

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveOpenDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "bed.png", strings.NewReader("png-bytes")))

	rc, err := s.Open(ctx, "bed.png")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "png-bytes", string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must be renamed away")

	require.NoError(t, s.Delete(ctx, "bed.png"))
	_, err = s.Open(ctx, "bed.png")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Delete(ctx, "bed.png"))
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.Error(t, s.Save(ctx, "../evil.png", strings.NewReader("x")))
	_, err = s.Open(ctx, "../go.mod")
	require.ErrorIs(t, err, ErrNotFound)
}
