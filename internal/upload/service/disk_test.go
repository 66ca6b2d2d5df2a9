package service

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

func TestDiskStoreImage(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskService(dir, "/static/", zap.NewNop())

	url, err := s.StoreImage(context.Background(), strings.NewReader("fake image bytes"), ".png")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	fileName := strings.TrimPrefix(url, "/static/")
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestDiskStoreImageUniqueNames(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskService(dir, "/static", zap.NewNop())

	first, err := s.StoreImage(context.Background(), strings.NewReader("a"), ".jpg")
	require.NoError(t, err)
	second, err := s.StoreImage(context.Background(), strings.NewReader("b"), ".jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
