package filter

// BigintRange is the closed interval [Lower, Upper] of int64.
type BigintRange struct {
	base
	Lower int64
	Upper int64
}

// NewBigintRange constructs a closed integer interval. Lower must not
// exceed Upper; violating this is a construction-time programmer error.
func NewBigintRange(lower, upper int64, nullAllowed bool) *BigintRange {
	if lower > upper {
		panic(invariantViolation("BigintRange", "lower must be <= upper"))
	}
	return &BigintRange{base: newBase(KindBigintRange, nullAllowed), Lower: lower, Upper: upper}
}

func (f *BigintRange) TestInt64(v int64) bool {
	return v >= f.Lower && v <= f.Upper
}

func (f *BigintRange) TestInt64Range(min, max int64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min == max {
		return f.TestInt64(min)
	}
	return !(min > f.Upper || max < f.Lower)
}

func (f *BigintRange) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	return NewBigintRange(f.Lower, f.Upper, nullAllowed)
}

func (f *BigintRange) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *BigintRange) String() string { return toString(f) }
