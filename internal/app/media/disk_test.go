package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDiskStoreSaveUpload(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root, zap.NewNop())
	require.NoError(t, err)

	path, err := store.SaveUpload(context.Background(), []byte("audio-bytes"), "clip.wav")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, filepath.Join(root, "uploads")))
	assert.True(t, strings.HasSuffix(path, ".wav"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), data)
}

func TestDiskStoreSaveResponse(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root, zap.NewNop())
	require.NoError(t, err)

	path, err := store.SaveResponse(context.Background(), []byte{0xff, 0xfb}, ".mp3")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, filepath.Join(root, "responses")))
	assert.True(t, strings.HasSuffix(path, ".mp3"))
}

func TestDiskStoreUnknownExtensionFallsBackToMp3(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root, zap.NewNop())
	require.NoError(t, err)

	path, err := store.SaveUpload(context.Background(), []byte("x"), "weird.exe")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".mp3"))
}

func TestTimestampNamesDoNotCollide(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := timestampName(".mp3")
		assert.False(t, seen[name], "duplicate artifact name %s", name)
		seen[name] = true
	}
}
