package filter

import "bytes"

// BytesRange is a lexicographic interval over byte strings with
// independently unbounded and exclusive endpoints. Comparison uses
// bytes.Compare, which already implements the "compare the shared prefix,
// shorter string is lesser" tie-break this package relies on throughout.
type BytesRange struct {
	base
	Lower          []byte
	Upper          []byte
	LowerUnbounded bool
	UpperUnbounded bool
	LowerExclusive bool
	UpperExclusive bool
	SingleValue    bool
}

// NewBytesRange constructs a byte-string interval. SingleValue is a
// fast-path flag equivalent to Lower == Upper with both bounds inclusive;
// the constructor sets it itself whenever both bounds are bounded,
// inclusive and equal, and TestBytes/TestLength then take the equality path.
func NewBytesRange(lower, upper []byte, lowerUnbounded, upperUnbounded, lowerExclusive, upperExclusive, nullAllowed bool) *BytesRange {
	singleValue := !lowerUnbounded && !upperUnbounded && !lowerExclusive && !upperExclusive && bytes.Equal(lower, upper)
	if !lowerUnbounded && !upperUnbounded && bytes.Compare(lower, upper) > 0 {
		panic(invariantViolation("BytesRange", "lower must be <= upper"))
	}
	return &BytesRange{
		base:           newBase(KindBytesRange, nullAllowed),
		Lower:          lower,
		Upper:          upper,
		LowerUnbounded: lowerUnbounded,
		UpperUnbounded: upperUnbounded,
		LowerExclusive: lowerExclusive,
		UpperExclusive: upperExclusive,
		SingleValue:    singleValue,
	}
}

func (f *BytesRange) TestBytes(data []byte) bool {
	if f.SingleValue {
		return bytes.Equal(data, f.Lower)
	}
	if !f.LowerUnbounded {
		cmp := bytes.Compare(data, f.Lower)
		if f.LowerExclusive && cmp <= 0 {
			return false
		}
		if !f.LowerExclusive && cmp < 0 {
			return false
		}
	}
	if !f.UpperUnbounded {
		cmp := bytes.Compare(data, f.Upper)
		if f.UpperExclusive && cmp >= 0 {
			return false
		}
		if !f.UpperExclusive && cmp > 0 {
			return false
		}
	}
	return true
}

func (f *BytesRange) TestLength(length int) bool {
	if f.SingleValue {
		return length == len(f.Lower)
	}
	return true
}

func (f *BytesRange) TestBytesRange(min, max []byte, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min != nil && max != nil && bytes.Equal(min, max) {
		return f.TestBytes(min)
	}
	if f.LowerUnbounded && f.UpperUnbounded {
		return true
	}
	if f.LowerUnbounded {
		return min != nil && bytes.Compare(min, f.Upper) < 0
	}
	if f.UpperUnbounded {
		return max != nil && bytes.Compare(max, f.Lower) > 0
	}
	if min != nil && bytes.Compare(min, f.Upper) > 0 {
		return false
	}
	if max != nil && bytes.Compare(max, f.Lower) < 0 {
		return false
	}
	return true
}

func (f *BytesRange) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	return NewBytesRange(f.Lower, f.Upper, f.LowerUnbounded, f.UpperUnbounded, f.LowerExclusive, f.UpperExclusive, nullAllowed)
}

func (f *BytesRange) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *BytesRange) String() string { return toString(f) }

// BytesValues is an explicit set of byte strings, with Lower/Upper caching
// the set's min and max under bytes.Compare for coarse pruning.
type BytesValues struct {
	base
	members map[string][]byte
	Lower   []byte
	Upper   []byte
}

// NewBytesValues constructs a byte-string membership predicate.
func NewBytesValues(values [][]byte, nullAllowed bool) *BytesValues {
	if len(values) == 0 {
		panic(invariantViolation("BytesValues", "values must be non-empty"))
	}
	members := make(map[string][]byte, len(values))
	lower, upper := values[0], values[0]
	for _, v := range values {
		members[string(v)] = v
		if bytes.Compare(v, lower) < 0 {
			lower = v
		}
		if bytes.Compare(v, upper) > 0 {
			upper = v
		}
	}
	return &BytesValues{base: newBase(KindBytesValues, nullAllowed), members: members, Lower: lower, Upper: upper}
}

func (f *BytesValues) TestBytes(data []byte) bool {
	_, ok := f.members[string(data)]
	return ok
}

func (f *BytesValues) TestBytesRange(min, max []byte, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min != nil && max != nil && bytes.Equal(min, max) {
		return f.TestBytes(min)
	}
	if min != nil && bytes.Compare(min, f.Upper) > 0 {
		return false
	}
	if max != nil && bytes.Compare(max, f.Lower) < 0 {
		return false
	}
	return true
}

func (f *BytesValues) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	return NewBytesValues(f.values(), nullAllowed)
}

func (f *BytesValues) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *BytesValues) String() string { return toString(f) }

// values returns the set's members in no particular order.
func (f *BytesValues) values() [][]byte {
	out := make([][]byte, 0, len(f.members))
	for _, v := range f.members {
		out = append(out, v)
	}
	return out
}
