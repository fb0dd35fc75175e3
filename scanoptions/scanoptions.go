// Package scanoptions collects the knobs a scan applies before reading a
// file: which columns to materialize and which predicates to push down per
// column.
package scanoptions

import "github.com/scanforge/colfilter/filter"

// ScanOptions describes one scan request: the columns to read back and, per
// column, the predicate a value must satisfy to remain in the result.
type ScanOptions struct {
	Filters map[string]filter.Filter
	Columns []string
}

// NewScanOptions returns an empty ScanOptions ready for AddFilter/AddColumn
// calls.
func NewScanOptions() *ScanOptions {
	return &ScanOptions{
		Filters: make(map[string]filter.Filter),
	}
}

// AddFilter attaches f as a predicate on column. A second call naming a
// column already present does not overwrite the earlier filter: the two are
// combined into their conjunction via MergeWith, so a caller can build up a
// column's predicate incrementally across several AddFilter calls.
func (o *ScanOptions) AddFilter(column string, f filter.Filter) error {
	existing, ok := o.Filters[column]
	if !ok {
		o.Filters[column] = f
		return nil
	}
	merged, err := existing.MergeWith(f)
	if err != nil {
		return err
	}
	o.Filters[column] = merged
	return nil
}

// AddColumn appends column to the set of columns the scan materializes.
func (o *ScanOptions) AddColumn(column string) {
	o.Columns = append(o.Columns, column)
}
