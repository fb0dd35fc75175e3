package fs

import (
	"fmt"
	"net/url"
)

// BuildFileSystem parses uri and constructs the Fs implementation it names.
// "file://" and unscheme'd paths use the local filesystem; "mem://" uses an
// in-memory store for tests. "s3://" sources are not an Fs at all — build a
// pushdown.MinioChunkSource from the parsed URI instead.
func BuildFileSystem(uri string) (Fs, error) {
	parsedURI, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	switch parsedURI.Scheme {
	case "", "file":
		return NewFsFactory().Create(FsLocal), nil
	case "mem":
		return NewFsFactory().Create(FsMemory), nil
	default:
		return nil, fmt.Errorf("fs: unknown scheme %q", parsedURI.Scheme)
	}
}
