// Package columnschema maps a column's Arrow type to the filter.Kind
// family that can legally be pushed down against it, so a caller building a
// ScanOptions can validate a predicate against a column before the scan
// ever runs.
package columnschema

import (
	"fmt"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/scanforge/colfilter/filter"
)

// Domain reports which Filter Kinds are legal against a column of a given
// Arrow type. Every concrete Filter kind belongs to exactly one domain
// except the type-agnostic terminals, which are legal everywhere, and
// MultiRange, which is legal in the double, float and bytes domains.
type Domain int8

const (
	DomainBool Domain = iota
	DomainInt64
	DomainDouble
	DomainFloat
	DomainBytes
	DomainUnsupported
)

// DomainOf classifies an Arrow data type into the predicate domain that
// applies to it. Integer widths narrower than 64 bits are folded into
// DomainInt64 since every BigintRange/BigintValues variant tests against an
// int64 value regardless of the column's storage width.
func DomainOf(dt arrow.DataType) Domain {
	switch dt.ID() {
	case arrow.BOOL:
		return DomainBool
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return DomainInt64
	case arrow.FLOAT64:
		return DomainDouble
	case arrow.FLOAT32:
		return DomainFloat
	case arrow.STRING, arrow.BINARY, arrow.LARGE_STRING, arrow.LARGE_BINARY, arrow.FIXED_SIZE_BINARY:
		return DomainBytes
	default:
		return DomainUnsupported
	}
}

// Accepts reports whether a filter of kind k can be evaluated against a
// column whose Arrow type belongs to domain d. Terminal kinds are universal;
// MultiRange matches any double, float or bytes column; every other kind
// must match the column's domain exactly.
func (d Domain) Accepts(k filter.Kind) bool {
	switch k {
	case filter.KindAlwaysTrue, filter.KindAlwaysFalse, filter.KindIsNull, filter.KindIsNotNull:
		return true
	case filter.KindBoolValue:
		return d == DomainBool
	case filter.KindBigintRange, filter.KindBigintValuesUsingBitmask, filter.KindBigintValuesUsingHashTable, filter.KindBigintMultiRange:
		return d == DomainInt64
	case filter.KindDoubleRange:
		return d == DomainDouble
	case filter.KindFloatRange:
		return d == DomainFloat
	case filter.KindBytesRange, filter.KindBytesValues:
		return d == DomainBytes
	case filter.KindMultiRange:
		return d == DomainDouble || d == DomainFloat || d == DomainBytes
	default:
		return false
	}
}

// Schema wraps an *arrow.Schema with column-name lookups so callers can
// validate a ScanOptions filter set before a scan runs instead of
// discovering a domain mismatch mid-read.
type Schema struct {
	schema *arrow.Schema
}

// NewSchema wraps schema for domain lookups.
func NewSchema(schema *arrow.Schema) *Schema {
	return &Schema{schema: schema}
}

// DomainOf returns the predicate domain of the named column.
func (s *Schema) DomainOf(column string) (Domain, error) {
	for _, field := range s.schema.Fields() {
		if field.Name == column {
			return DomainOf(field.Type), nil
		}
	}
	return DomainUnsupported, fmt.Errorf("columnschema: column not found: %s", column)
}

// Validate checks that f's Kind is legal against column's Arrow type.
func (s *Schema) Validate(column string, f filter.Filter) error {
	d, err := s.DomainOf(column)
	if err != nil {
		return err
	}
	if !d.Accepts(f.Kind()) {
		return fmt.Errorf("columnschema: filter kind %s not valid for column %q", f.Kind(), column)
	}
	return nil
}
