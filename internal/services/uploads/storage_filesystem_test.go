package uploads

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStorage_Save(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	t.Run("writes new blob", func(t *testing.T) {
		path, skipped, err := storage.Save(ctx, strings.NewReader("payload"), "test_ver_1.mp3")
		require.NoError(t, err)
		assert.False(t, skipped)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("existing blob is skipped not overwritten", func(t *testing.T) {
		path, skipped, err := storage.Save(ctx, strings.NewReader("different"), "test_ver_1.mp3")
		require.NoError(t, err)
		assert.True(t, skipped)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})
}

func TestFilesystemStorage_Exists(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	exists, err := storage.Exists(ctx, "missing.mp3")
	require.NoError(t, err)
	assert.False(t, exists)

	_, _, err = storage.Save(ctx, strings.NewReader("x"), "present.mp3")
	require.NoError(t, err)

	exists, err = storage.Exists(ctx, "present.mp3")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFilesystemStorage_PathStaysInsideRoot(t *testing.T) {
	root := t.TempDir()
	storage, err := NewFilesystemStorage(root)
	require.NoError(t, err)

	path := storage.Path("../escape.mp3")
	assert.True(t, strings.HasPrefix(path, root))
}
