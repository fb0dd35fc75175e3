package filter

import "math"

// DoubleRange is an interval over float64 with independently unbounded
// and exclusive endpoints, plus an explicit NaN-acceptance flag.
type DoubleRange struct {
	base
	Lower          float64
	Upper          float64
	LowerUnbounded bool
	UpperUnbounded bool
	LowerExclusive bool
	UpperExclusive bool
	NanAllowed     bool
}

// NewDoubleRange constructs a float64 interval. A bound is ignored when
// its corresponding *Unbounded flag is set.
func NewDoubleRange(lower, upper float64, lowerUnbounded, upperUnbounded, lowerExclusive, upperExclusive, nanAllowed, nullAllowed bool) *DoubleRange {
	if !lowerUnbounded && !upperUnbounded && lower > upper {
		panic(invariantViolation("DoubleRange", "lower must be <= upper"))
	}
	return &DoubleRange{
		base:           newBase(KindDoubleRange, nullAllowed),
		Lower:          lower,
		Upper:          upper,
		LowerUnbounded: lowerUnbounded,
		UpperUnbounded: upperUnbounded,
		LowerExclusive: lowerExclusive,
		UpperExclusive: upperExclusive,
		NanAllowed:     nanAllowed,
	}
}

func (f *DoubleRange) TestDouble(v float64) bool {
	if math.IsNaN(v) {
		return f.NanAllowed
	}
	if !f.LowerUnbounded {
		if f.LowerExclusive && v <= f.Lower {
			return false
		}
		if !f.LowerExclusive && v < f.Lower {
			return false
		}
	}
	if !f.UpperUnbounded {
		if f.UpperExclusive && v >= f.Upper {
			return false
		}
		if !f.UpperExclusive && v > f.Upper {
			return false
		}
	}
	return true
}

func (f *DoubleRange) TestInt64Range(int64, int64, bool) bool { return true }

func (f *DoubleRange) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	return NewDoubleRange(f.Lower, f.Upper, f.LowerUnbounded, f.UpperUnbounded, f.LowerExclusive, f.UpperExclusive, f.NanAllowed, nullAllowed)
}

func (f *DoubleRange) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *DoubleRange) String() string { return toString(f) }

// FloatRange is the float32 analogue of DoubleRange.
type FloatRange struct {
	base
	Lower          float32
	Upper          float32
	LowerUnbounded bool
	UpperUnbounded bool
	LowerExclusive bool
	UpperExclusive bool
	NanAllowed     bool
}

// NewFloatRange constructs a float32 interval. A bound is ignored when
// its corresponding *Unbounded flag is set.
func NewFloatRange(lower, upper float32, lowerUnbounded, upperUnbounded, lowerExclusive, upperExclusive, nanAllowed, nullAllowed bool) *FloatRange {
	if !lowerUnbounded && !upperUnbounded && lower > upper {
		panic(invariantViolation("FloatRange", "lower must be <= upper"))
	}
	return &FloatRange{
		base:           newBase(KindFloatRange, nullAllowed),
		Lower:          lower,
		Upper:          upper,
		LowerUnbounded: lowerUnbounded,
		UpperUnbounded: upperUnbounded,
		LowerExclusive: lowerExclusive,
		UpperExclusive: upperExclusive,
		NanAllowed:     nanAllowed,
	}
}

func (f *FloatRange) TestFloat(v float32) bool {
	if math.IsNaN(float64(v)) {
		return f.NanAllowed
	}
	if !f.LowerUnbounded {
		if f.LowerExclusive && v <= f.Lower {
			return false
		}
		if !f.LowerExclusive && v < f.Lower {
			return false
		}
	}
	if !f.UpperUnbounded {
		if f.UpperExclusive && v >= f.Upper {
			return false
		}
		if !f.UpperExclusive && v > f.Upper {
			return false
		}
	}
	return true
}

func (f *FloatRange) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	return NewFloatRange(f.Lower, f.Upper, f.LowerUnbounded, f.UpperUnbounded, f.LowerExclusive, f.UpperExclusive, f.NanAllowed, nullAllowed)
}

func (f *FloatRange) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *FloatRange) String() string { return toString(f) }
