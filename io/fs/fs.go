package fs

import "io"

// File is the read/write/seek surface every Fs implementation's OpenFile
// returns. LocalFS satisfies it with a bare *os.File; MemoryFs with its own
// in-memory buffer.
type File interface {
	io.Writer
	io.ReaderAt
	io.Seeker
	io.Reader
	io.Closer
}

// FsType selects the backing store a Factory should construct. Object-store
// access lives entirely in pushdown.MinioChunkSource, which talks to
// minio-go directly instead of going through this generic interface, so
// there is no FsMinio here.
type FsType int8

const (
	FsMemory FsType = iota
	FsLocal
)

// Fs abstracts the backing store pushdown.LocalChunkSource reads chunks
// from: a local filesystem, or an in-memory store for tests.
type Fs interface {
	OpenFile(path string) (File, error)
	Rename(src string, dst string) error
	DeleteFile(path string) error
	CreateDir(path string) error
	List(path string) ([]FileEntry, error)
	ReadFile(path string) ([]byte, error)
	Exist(path string) (bool, error)
}

// FileEntry is a single entry returned by Fs.List.
type FileEntry struct {
	Path string
}
