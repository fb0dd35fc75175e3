package filter

// AlwaysTrue accepts every value, including NULL.
type AlwaysTrue struct{ base }

// NewAlwaysTrue returns the identity element of the conjunction algebra.
func NewAlwaysTrue() *AlwaysTrue {
	return &AlwaysTrue{base: newBase(KindAlwaysTrue, true)}
}

func (f *AlwaysTrue) TestBool(bool) bool          { return true }
func (f *AlwaysTrue) TestInt64(int64) bool        { return true }
func (f *AlwaysTrue) TestDouble(float64) bool     { return true }
func (f *AlwaysTrue) TestFloat(float32) bool      { return true }
func (f *AlwaysTrue) TestBytes([]byte) bool       { return true }
func (f *AlwaysTrue) TestLength(int) bool         { return true }
func (f *AlwaysTrue) TestNull() bool              { return true }
func (f *AlwaysTrue) TestInt64Range(_, _ int64, _ bool) bool { return true }
func (f *AlwaysTrue) TestBytesRange(_, _ []byte, _ bool) bool { return true }

func (f *AlwaysTrue) Clone(nullAllowedOverride *bool) Filter {
	return NewAlwaysTrue()
}

func (f *AlwaysTrue) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *AlwaysTrue) String() string { return toString(f) }

// AlwaysFalse rejects every value, including NULL.
type AlwaysFalse struct{ base }

// NewAlwaysFalse returns the absorbing element of the conjunction algebra.
func NewAlwaysFalse() *AlwaysFalse {
	return &AlwaysFalse{base: newBase(KindAlwaysFalse, false)}
}

func (f *AlwaysFalse) TestNull() bool { return false }
func (f *AlwaysFalse) TestInt64Range(_, _ int64, _ bool) bool  { return false }
func (f *AlwaysFalse) TestBytesRange(_, _ []byte, _ bool) bool { return false }

func (f *AlwaysFalse) Clone(nullAllowedOverride *bool) Filter {
	return NewAlwaysFalse()
}

func (f *AlwaysFalse) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *AlwaysFalse) String() string { return toString(f) }

// IsNull accepts only NULL.
type IsNull struct{ base }

// NewIsNull constructs the null-only predicate. null_allowed is implied
// true regardless of any caller-supplied override.
func NewIsNull() *IsNull {
	return &IsNull{base: newBase(KindIsNull, true)}
}

func (f *IsNull) TestNull() bool { return true }
func (f *IsNull) TestInt64Range(_, _ int64, hasNull bool) bool  { return hasNull }
func (f *IsNull) TestBytesRange(_, _ []byte, hasNull bool) bool { return hasNull }

func (f *IsNull) Clone(nullAllowedOverride *bool) Filter {
	return NewIsNull()
}

func (f *IsNull) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *IsNull) String() string { return toString(f) }

// IsNotNull accepts every non-NULL value.
type IsNotNull struct{ base }

// NewIsNotNull constructs the not-null predicate. null_allowed is
// implied false regardless of any caller-supplied override.
func NewIsNotNull() *IsNotNull {
	return &IsNotNull{base: newBase(KindIsNotNull, false)}
}

func (f *IsNotNull) TestBool(bool) bool          { return true }
func (f *IsNotNull) TestInt64(int64) bool        { return true }
func (f *IsNotNull) TestDouble(float64) bool     { return true }
func (f *IsNotNull) TestFloat(float32) bool      { return true }
func (f *IsNotNull) TestBytes([]byte) bool       { return true }
func (f *IsNotNull) TestLength(int) bool         { return true }
func (f *IsNotNull) TestNull() bool              { return false }
func (f *IsNotNull) TestInt64Range(_, _ int64, _ bool) bool  { return true }
func (f *IsNotNull) TestBytesRange(_, _ []byte, _ bool) bool { return true }

func (f *IsNotNull) Clone(nullAllowedOverride *bool) Filter {
	return NewIsNotNull()
}

func (f *IsNotNull) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *IsNotNull) String() string { return toString(f) }
