package fs

// Factory constructs an Fs implementation from an FsType tag.
type Factory struct{}

func (f *Factory) Create(fsType FsType) Fs {
	switch fsType {
	case FsMemory:
		return NewMemoryFs()
	case FsLocal:
		return NewLocalFs()
	default:
		panic("fs: unknown fs type")
	}
}

// NewFsFactory returns a Factory. Object-store chunk sources are built
// directly via pushdown.NewMinioChunkSource since they require a parsed
// URI and speak minio-go natively rather than through this interface.
func NewFsFactory() *Factory {
	return &Factory{}
}
