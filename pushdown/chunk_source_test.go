package pushdown_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scanforge/colfilter/pushdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalChunkSourceReadChunk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunk.bin")
	require.NoError(t, os.WriteFile(path, []byte("raw chunk bytes"), 0644))

	src := pushdown.NewLocalChunkSource()
	got, err := src.ReadChunk(path)
	require.NoError(t, err)
	assert.Equal(t, "raw chunk bytes", string(got))
}

func TestLocalChunkSourceOpenFileReaderRejectsNonParquet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-parquet.bin")
	require.NoError(t, os.WriteFile(path, []byte("this is not a parquet file"), 0644))

	src := pushdown.NewLocalChunkSource()
	_, err := src.OpenFileReader(path)
	assert.Error(t, err)
}

func TestLocalChunkSourceReadChunkMissingFile(t *testing.T) {
	dir := t.TempDir()
	src := pushdown.NewLocalChunkSource()
	_, err := src.ReadChunk(filepath.Join(dir, "absent.bin"))
	assert.Error(t, err)
}
