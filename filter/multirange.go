package filter

import (
	"math"
	"sort"
)

// BigintMultiRange represents a disjunction of two or more non-overlapping,
// ascending BigintRanges — the canonical form for an integer set whose
// members cluster into gapped contiguous runs.
type BigintMultiRange struct {
	base
	Ranges      []*BigintRange
	lowerBounds []int64
}

// NewBigintMultiRange constructs an ordered, non-overlapping collection of
// at least two integer ranges. Violating either invariant is a
// construction-time programmer error.
func NewBigintMultiRange(ranges []*BigintRange, nullAllowed bool) *BigintMultiRange {
	if len(ranges) < 2 {
		panic(invariantViolation("BigintMultiRange", "must have at least two ranges"))
	}
	lowerBounds := make([]int64, len(ranges))
	for i, r := range ranges {
		if i > 0 && r.Lower < ranges[i-1].Upper {
			panic(invariantViolation("BigintMultiRange", "ranges must be ascending and non-overlapping"))
		}
		lowerBounds[i] = r.Lower
	}
	return &BigintMultiRange{base: newBase(KindBigintMultiRange, nullAllowed), Ranges: ranges, lowerBounds: lowerBounds}
}

func (f *BigintMultiRange) TestInt64(v int64) bool {
	place := sort.Search(len(f.lowerBounds), func(i int) bool { return f.lowerBounds[i] > v })
	if place == 0 {
		return false
	}
	return f.Ranges[place-1].TestInt64(v)
}

func (f *BigintMultiRange) TestInt64Range(min, max int64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	for _, r := range f.Ranges {
		if r.TestInt64Range(min, max, false) {
			return true
		}
	}
	return false
}

func (f *BigintMultiRange) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	ranges := make([]*BigintRange, len(f.Ranges))
	copy(ranges, f.Ranges)
	return &BigintMultiRange{base: newBase(KindBigintMultiRange, nullAllowed), Ranges: ranges, lowerBounds: append([]int64(nil), f.lowerBounds...)}
}

func (f *BigintMultiRange) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *BigintMultiRange) String() string { return toString(f) }

// combineBigintRanges canonicalizes the result of an integer-range merge:
// zero surviving ranges collapse to IsNull/AlwaysFalse, exactly one
// collapses to a plain BigintRange, and two or more become a
// BigintMultiRange.
func combineBigintRanges(ranges []*BigintRange, nullAllowed bool) Filter {
	switch len(ranges) {
	case 0:
		if nullAllowed {
			return NewIsNull()
		}
		return NewAlwaysFalse()
	case 1:
		r := ranges[0]
		return NewBigintRange(r.Lower, r.Upper, nullAllowed)
	default:
		return NewBigintMultiRange(ranges, nullAllowed)
	}
}

// MultiRange is a heterogeneous disjunction of filters over a common
// non-integer domain (bytes or floating point), used where BigintMultiRange
// does not apply.
type MultiRange struct {
	base
	Filters    []Filter
	NanAllowed bool
}

// NewMultiRange constructs a disjunction of the given filters.
func NewMultiRange(filters []Filter, nanAllowed, nullAllowed bool) *MultiRange {
	if len(filters) == 0 {
		panic(invariantViolation("MultiRange", "must have at least one child filter"))
	}
	return &MultiRange{base: newBase(KindMultiRange, nullAllowed), Filters: filters, NanAllowed: nanAllowed}
}

func (f *MultiRange) TestDouble(v float64) bool {
	if math.IsNaN(v) {
		return f.NanAllowed
	}
	for _, child := range f.Filters {
		if child.TestDouble(v) {
			return true
		}
	}
	return false
}

func (f *MultiRange) TestFloat(v float32) bool {
	if math.IsNaN(float64(v)) {
		return f.NanAllowed
	}
	for _, child := range f.Filters {
		if child.TestFloat(v) {
			return true
		}
	}
	return false
}

func (f *MultiRange) TestBytes(v []byte) bool {
	for _, child := range f.Filters {
		if child.TestBytes(v) {
			return true
		}
	}
	return false
}

func (f *MultiRange) TestLength(length int) bool {
	for _, child := range f.Filters {
		if child.TestLength(length) {
			return true
		}
	}
	return false
}

func (f *MultiRange) TestBytesRange(min, max []byte, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	for _, child := range f.Filters {
		if child.TestBytesRange(min, max, false) {
			return true
		}
	}
	return false
}

func (f *MultiRange) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	filters := make([]Filter, len(f.Filters))
	copy(filters, f.Filters)
	return &MultiRange{base: newBase(KindMultiRange, nullAllowed), Filters: filters, NanAllowed: f.NanAllowed}
}

func (f *MultiRange) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *MultiRange) String() string { return toString(f) }
