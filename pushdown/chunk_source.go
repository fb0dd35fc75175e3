package pushdown

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/memory"
	pqfile "github.com/apache/arrow/go/v12/parquet/file"
	"github.com/apache/arrow/go/v12/parquet/pqarrow"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/scanforge/colfilter/common/constant"
	"github.com/scanforge/colfilter/common/errors"
	"github.com/scanforge/colfilter/common/log"
	"github.com/scanforge/colfilter/filter"
	"github.com/scanforge/colfilter/io/fs"
)

// ChunkSource opens the Parquet file backing one data chunk and reads a
// chunk's raw bytes, the two primitives ScanChunk needs regardless of
// whether the chunk lives on local disk or in an object store.
type ChunkSource interface {
	OpenFileReader(path string) (*pqarrow.FileReader, error)
	ReadChunk(path string) ([]byte, error)
}

// LocalChunkSource serves chunks from the local filesystem, via io/fs.Fs.
type LocalChunkSource struct {
	fs fs.Fs
}

// NewLocalChunkSource returns a ChunkSource backed by the local filesystem.
func NewLocalChunkSource() *LocalChunkSource {
	return &LocalChunkSource{fs: fs.NewLocalFs()}
}

func (c *LocalChunkSource) OpenFileReader(path string) (*pqarrow.FileReader, error) {
	return MakeArrowFileReader(c.fs, path)
}

func (c *LocalChunkSource) ReadChunk(path string) ([]byte, error) {
	return c.fs.ReadFile(path)
}

// MinioChunkSource serves chunks from an S3-compatible object store. It
// talks to minio-go directly instead of going through io/fs.Fs, since
// pushdown only ever reads chunks from an object store and never needs the
// write-side of that interface (Rename/DeleteFile/CreateDir).
type MinioChunkSource struct {
	client     *minio.Client
	bucketName string
}

// NewMinioChunkSource builds a MinioChunkSource from a uri shaped like
// s3://accessKey:secretKey@bucket/path?endpoint-override=host:port,
// creating the bucket if it does not already exist.
func NewMinioChunkSource(uri *url.URL) (*MinioChunkSource, error) {
	accessKey := uri.User.Username()
	secretAccessKey, set := uri.User.Password()
	if !set {
		log.Warn("secret access key not set")
	}

	endpoints, ok := uri.Query()[constant.EndpointOverride]
	if !ok || len(endpoints) == 0 {
		return nil, errors.ErrNoEndpoint
	}

	cli, err := minio.New(endpoints[0], &minio.Options{
		BucketLookup: minio.BucketLookupAuto,
		Creds:        credentials.NewStaticV4(accessKey, secretAccessKey, ""),
	})
	if err != nil {
		return nil, err
	}

	bucket := uri.Host
	log.Info("minio chunk source", log.String("endpoint", endpoints[0]), log.String("bucket", bucket))

	exist, err := cli.BucketExists(context.TODO(), bucket)
	if err != nil {
		return nil, err
	}
	if !exist {
		if err := cli.MakeBucket(context.TODO(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioChunkSource{client: cli, bucketName: bucket}, nil
}

func (c *MinioChunkSource) OpenFileReader(path string) (*pqarrow.FileReader, error) {
	obj, err := c.client.GetObject(context.TODO(), c.bucketName, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	parquetReader, err := pqfile.NewParquetReader(obj)
	if err != nil {
		return nil, err
	}
	return pqarrow.NewFileReader(parquetReader, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
}

func (c *MinioChunkSource) ReadChunk(path string) ([]byte, error) {
	obj, err := c.client.GetObject(context.TODO(), c.bucketName, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	stat, err := obj.Stat()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, stat.Size)
	n, err := obj.Read(buf)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if int64(n) != stat.Size {
		return nil, fmt.Errorf("pushdown: failed to read full chunk, expect: %d, actual: %d", stat.Size, n)
	}
	return buf, nil
}

// ScanChunk opens path through src, prunes its row groups against filters,
// and returns a RecordReader over the columns and row groups that survive —
// the single entry point RowGroupsToScan and MakeArrowFileReader/OpenFileReader
// are built to feed.
func ScanChunk(ctx context.Context, src ChunkSource, path string, columns []string, filters map[string]filter.Filter) (array.RecordReader, error) {
	reader, err := src.OpenFileReader(path)
	if err != nil {
		return nil, err
	}
	return MakeRecordReader(ctx, reader, columns, filters)
}
