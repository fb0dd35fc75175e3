package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/scanforge/colfilter/io/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFSOpenFileWritesAndReads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chunk.bin")

	l := fs.NewLocalFs()
	f, err := l.OpenFile(path)
	require.NoError(t, err)
	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	got, err := l.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestLocalFSCreateDirAndList(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "chunks")

	l := fs.NewLocalFs()
	require.NoError(t, l.CreateDir(sub))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "a.parquet"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.parquet"), []byte("b"), 0644))

	entries, err := l.List(sub)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Path)
	}
	assert.ElementsMatch(t, []string{"a.parquet", "b.parquet"}, names)
}

func TestLocalFSExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.bin")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	l := fs.NewLocalFs()
	present, err := l.Exist(path)
	require.NoError(t, err)
	assert.True(t, present)

	missing, err := l.Exist(filepath.Join(dir, "absent.bin"))
	require.NoError(t, err)
	assert.False(t, missing)
}

func TestLocalFSRenameAndDeleteFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0644))

	l := fs.NewLocalFs()
	require.NoError(t, l.Rename(src, dst))
	got, err := l.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	require.NoError(t, l.DeleteFile(dst))
	_, err = os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}
