package fs

import (
	"fmt"
	"strings"

	"github.com/scanforge/colfilter/io/fs/file"
)

type MemoryFs struct {
	files map[string]*file.MemoryFile
}

func (m *MemoryFs) OpenFile(path string) (File, error) {
	if f, ok := m.files[path]; ok {
		return f, nil
	}
	f := file.NewMemoryFile(nil)
	m.files[path] = f
	return f, nil
}

func (m *MemoryFs) Rename(path string, path2 string) error {
	if _, ok := m.files[path]; !ok {
		return nil
	}
	m.files[path2] = m.files[path]
	delete(m.files, path)
	return nil
}

func (m *MemoryFs) DeleteFile(path string) error {
	delete(m.files, path)
	return nil
}

func (m *MemoryFs) CreateDir(path string) error {
	return nil
}

func (m *MemoryFs) List(path string) ([]FileEntry, error) {
	prefix := strings.TrimSuffix(path, "/") + "/"
	var entries []FileEntry
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			entries = append(entries, FileEntry{Path: strings.TrimPrefix(name, prefix)})
		}
	}
	return entries, nil
}

func (m *MemoryFs) ReadFile(path string) ([]byte, error) {
	f, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("fs: file not found: %s", path)
	}
	return f.Bytes(), nil
}

func (m *MemoryFs) Exist(path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

func NewMemoryFs() *MemoryFs {
	return &MemoryFs{
		files: make(map[string]*file.MemoryFile),
	}
}
