// Package pushdown evaluates filter.Filter predicates against a Parquet
// file read through Arrow: skipping whole row groups whose column
// statistics prove no row can match, and masking individual rows of a
// decoded column that fails a per-value test.
package pushdown

import (
	"context"
	"fmt"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/memory"
	"github.com/apache/arrow/go/v12/parquet/file"
	"github.com/apache/arrow/go/v12/parquet/metadata"
	"github.com/apache/arrow/go/v12/parquet/pqarrow"
	"github.com/bits-and-blooms/bitset"
	"github.com/google/uuid"
	"github.com/scanforge/colfilter/common/log"
	"github.com/scanforge/colfilter/filter"
	"github.com/scanforge/colfilter/io/fs"
)

// MakeArrowFileReader opens filePath through fsys and wraps it in a
// pqarrow.FileReader, the reader RowGroupsToScan and MakeRecordReader take.
func MakeArrowFileReader(fsys fs.Fs, filePath string) (*pqarrow.FileReader, error) {
	f, err := fsys.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	parquetReader, err := file.NewParquetReader(f)
	if err != nil {
		return nil, err
	}
	return pqarrow.NewFileReader(parquetReader, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
}

// ShouldScanChunk reports whether a column chunk with the given statistics
// might contain a value satisfying f. A false return is a proof that no row
// in the chunk can match; a true return means the chunk must be read to
// find out. Statistics types pruning can't reason about (no min/max, or a
// physical type outside int64/bytes) always answer true.
func ShouldScanChunk(f filter.Filter, stats metadata.TypedStatistics) bool {
	if stats == nil || !stats.HasMinMax() {
		return true
	}
	hasNull := stats.NullCount() > 0

	switch s := stats.(type) {
	case *metadata.Int32Statistics:
		return f.TestInt64Range(int64(s.Min()), int64(s.Max()), hasNull)
	case *metadata.Int64Statistics:
		return f.TestInt64Range(s.Min(), s.Max(), hasNull)
	case *metadata.ByteArrayStatistics:
		return f.TestBytesRange(s.Min(), s.Max(), hasNull)
	case *metadata.FixedLenByteArrayStatistics:
		return f.TestBytesRange(s.Min(), s.Max(), hasNull)
	default:
		return true
	}
}

// RowGroupsToScan returns the indices of the row groups in reader that
// might contain a row satisfying every filter in filters, keyed by column
// name. A row group is dropped only when at least one column's statistics
// prove it cannot match; missing or unusable statistics never cause a drop.
//
// Every call is tagged with a fresh scan ID so the per-row-group pruning
// decisions logged below can be correlated back to one RowGroupsToScan
// invocation in a busy log stream.
func RowGroupsToScan(reader *pqarrow.FileReader, filters map[string]filter.Filter) ([]int, error) {
	scanID := uuid.NewString()
	metaData := reader.ParquetReader().MetaData()
	numRowGroups := reader.ParquetReader().NumRowGroups()

	var groups []int
	for i := 0; i < numRowGroups; i++ {
		rg := metaData.RowGroup(i)
		canSkip := false
		for column, f := range filters {
			columnIndex := metaData.Schema.ColumnIndexByName(column)
			if columnIndex < 0 {
				continue
			}
			columnChunk, err := rg.ColumnChunk(columnIndex)
			if err != nil {
				return nil, err
			}
			stats, err := columnChunk.Statistics()
			if err != nil {
				return nil, err
			}
			if !ShouldScanChunk(f, stats) {
				log.Debug("row group pruned",
					log.String("scan_id", scanID),
					log.String("column", column),
					log.Int("row_group", i))
				canSkip = true
				break
			}
		}
		if !canSkip {
			groups = append(groups, i)
		}
	}
	return groups, nil
}

// MakeRecordReader builds a RecordReader over the row groups and columns
// that survive RowGroupsToScan for the given filters and column selection.
func MakeRecordReader(ctx context.Context, reader *pqarrow.FileReader, columns []string, filters map[string]filter.Filter) (array.RecordReader, error) {
	metaData := reader.ParquetReader().MetaData()

	var columnIndices []int
	for _, c := range columns {
		idx := metaData.Schema.ColumnIndexByName(c)
		if idx >= 0 {
			columnIndices = append(columnIndices, idx)
		}
	}
	for c := range filters {
		idx := metaData.Schema.ColumnIndexByName(c)
		if idx >= 0 {
			columnIndices = append(columnIndices, idx)
		}
	}

	rowGroups, err := RowGroupsToScan(reader, filters)
	if err != nil {
		return nil, err
	}
	return reader.GetRecordReader(ctx, columnIndices, rowGroups)
}

// Apply evaluates f against every value in col and returns a bitset with
// bit i set when row i satisfies f. Null slots are decided by f.TestNull.
func Apply(f filter.Filter, col arrow.Array) (*bitset.BitSet, error) {
	result := bitset.New(uint(col.Len()))

	switch c := col.(type) {
	case *array.Boolean:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestBool(c.Value(i)) }) {
				result.Set(uint(i))
			}
		}
	case *array.Int8:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestInt64(int64(c.Value(i))) }) {
				result.Set(uint(i))
			}
		}
	case *array.Int16:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestInt64(int64(c.Value(i))) }) {
				result.Set(uint(i))
			}
		}
	case *array.Int32:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestInt64(int64(c.Value(i))) }) {
				result.Set(uint(i))
			}
		}
	case *array.Int64:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestInt64(c.Value(i)) }) {
				result.Set(uint(i))
			}
		}
	case *array.Float32:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestFloat(c.Value(i)) }) {
				result.Set(uint(i))
			}
		}
	case *array.Float64:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestDouble(c.Value(i)) }) {
				result.Set(uint(i))
			}
		}
	case *array.String:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestBytes([]byte(c.Value(i))) }) {
				result.Set(uint(i))
			}
		}
	case *array.Binary:
		for i := 0; i < c.Len(); i++ {
			if matchNullable(f, c.IsNull(i), func() bool { return f.TestBytes(c.Value(i)) }) {
				result.Set(uint(i))
			}
		}
	default:
		return nil, fmt.Errorf("pushdown: unsupported array type %T", col)
	}

	return result, nil
}

func matchNullable(f filter.Filter, isNull bool, test func() bool) bool {
	if isNull {
		return f.TestNull()
	}
	return test()
}
