package fs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bundle/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nunjucks.js")
	content := []byte("(function(){ return 1; })();\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	h := fs.NewHasher()
	got, err := h.ComputeFileHash(path)
	require.NoError(t, err)

	assert.Len(t, got, 16)
	assert.Equal(t, fmt.Sprintf("%016x", xxhash.Sum64(content)), got)

	again, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestHasher_ComputeFileHash_ContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nunjucks.min.js")
	h := fs.NewHasher()

	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))
	first, err := h.ComputeFileHash(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("b"), 0o600))
	second, err := h.ComputeFileHash(path)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.js")

	_, err := fs.NewHasher().ComputeFileHash(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to open file")
}
