package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBigintValuesContiguousBecomesRange(t *testing.T) {
	// Scenario 1: contiguous values canonicalize to a plain BigintRange.
	f := NewBigintValues([]int64{1, 2, 3, 4, 5}, false)
	got, ok := f.(*BigintRange)
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.Lower)
	assert.Equal(t, int64(5), got.Upper)
	assert.True(t, f.TestInt64(3))
	assert.False(t, f.TestInt64(6))
	assert.False(t, f.TestNull())
}

func TestNewBigintValuesSparseSmallRangeUsesBitmask(t *testing.T) {
	// Scenario 2: a small dense-enough range picks the bitmask.
	f := NewBigintValues([]int64{1, 100}, false)
	assert.Equal(t, KindBigintValuesUsingBitmask, f.Kind())
	assert.False(t, f.TestInt64(50))
	assert.True(t, f.TestInt64(100))
	assert.True(t, f.TestInt64Range(50, 200, false))
	assert.False(t, f.TestInt64Range(200, 300, false))
}

func TestNewBigintValuesWideSparseRangeUsesHashTable(t *testing.T) {
	// Scenario 3: a hugely sparse range picks the hash table.
	f := NewBigintValues([]int64{1, 1_000_000_000, 2_000_000_000}, false)
	assert.Equal(t, KindBigintValuesUsingHashTable, f.Kind())
	assert.True(t, f.TestInt64(1_000_000_000))
	assert.False(t, f.TestInt64(2))
}

func TestNewBigintValuesEmptySet(t *testing.T) {
	assert.IsType(t, &AlwaysFalse{}, NewBigintValues(nil, false))
	assert.IsType(t, &IsNull{}, NewBigintValues(nil, true))
}

func TestNewBigintValuesSingleton(t *testing.T) {
	f := NewBigintValues([]int64{42}, false)
	got, ok := f.(*BigintRange)
	assert.True(t, ok)
	assert.Equal(t, int64(42), got.Lower)
	assert.Equal(t, int64(42), got.Upper)
}

func TestHashTableProbingTerminates(t *testing.T) {
	values := make([]int64, 0, 5000)
	for i := int64(0); i < 5000; i++ {
		values = append(values, i*1_000_003)
	}
	f := newBigintValuesUsingHashTable(values[0], values[len(values)-1], values, false)
	for _, v := range values {
		assert.True(t, f.TestInt64(v))
	}
	assert.False(t, f.TestInt64(-1))
}

func TestHashTableEmptyMarkerAsMember(t *testing.T) {
	values := []int64{emptyMarker, 1, 2, 3}
	f := newBigintValuesUsingHashTable(emptyMarker, 3, values, false)
	assert.True(t, f.containsEmptyMarker)
	assert.True(t, f.TestInt64(emptyMarker))
	assert.True(t, f.TestInt64(2))
	assert.False(t, f.TestInt64(4))
}

func TestBitmaskMergeWithBigintRange(t *testing.T) {
	bitmaskFilter := NewBigintValues([]int64{1, 3, 5, 100}, false)
	assert.Equal(t, KindBigintValuesUsingBitmask, bitmaskFilter.Kind())
	rangeFilter := NewBigintRange(0, 10, false)
	merged, err := bitmaskFilter.MergeWith(rangeFilter)
	assert.NoError(t, err)
	assert.True(t, merged.TestInt64(1))
	assert.True(t, merged.TestInt64(3))
	assert.True(t, merged.TestInt64(5))
	assert.False(t, merged.TestInt64(100))
}

func TestHashTableMergeWithHashTable(t *testing.T) {
	a := newBigintValuesUsingHashTable(0, 3_000_000_000, []int64{0, 1_000_000_000, 2_000_000_000, 3_000_000_000}, false)
	b := newBigintValuesUsingHashTable(0, 3_000_000_000, []int64{1_000_000_000, 2_000_000_000, 5}, false)
	merged, err := a.MergeWith(b)
	assert.NoError(t, err)
	assert.True(t, merged.TestInt64(1_000_000_000))
	assert.True(t, merged.TestInt64(2_000_000_000))
	assert.False(t, merged.TestInt64(0))
	assert.False(t, merged.TestInt64(5))
}
