package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolValueMerge(t *testing.T) {
	a := NewBoolValue(true, true)
	b := NewBoolValue(true, false)
	merged, err := a.MergeWith(b)
	assert.NoError(t, err)
	got, ok := merged.(*BoolValue)
	assert.True(t, ok)
	assert.True(t, got.Value)
	assert.False(t, got.NullAllowed())

	c := NewBoolValue(false, false)
	merged, err = a.MergeWith(c)
	assert.NoError(t, err)
	assert.IsType(t, &AlwaysFalse{}, merged)
}

func TestAlwaysTrueIsMergeIdentity(t *testing.T) {
	r := NewBigintRange(1, 10, false)
	merged, err := NewAlwaysTrue().MergeWith(r)
	assert.NoError(t, err)
	assert.Equal(t, r.Kind(), merged.Kind())
	assert.Equal(t, r.NullAllowed(), merged.NullAllowed())
	for v := int64(-5); v < 20; v++ {
		assert.Equal(t, r.TestInt64(v), merged.TestInt64(v))
	}
}

func TestAlwaysFalseAbsorbs(t *testing.T) {
	merged, err := NewAlwaysFalse().MergeWith(NewBoolValue(true, true))
	assert.NoError(t, err)
	assert.IsType(t, &AlwaysFalse{}, merged)
}

func TestUnsupportedCombinationNamesBothKinds(t *testing.T) {
	a := NewBoolValue(true, false)
	b := NewBigintRange(0, 10, false)
	_, err := a.MergeWith(b)
	assert.ErrorContains(t, err, "BoolValue")
	assert.ErrorContains(t, err, "BigintRange")
}

func TestMergeSemanticCorrectness(t *testing.T) {
	sets := []Filter{
		NewBigintRange(0, 20, false),
		NewBigintValues([]int64{1, 5, 15, 1000}, false),
		NewBigintValues([]int64{2, 5, 9, 15, 2000}, false),
	}
	for i := range sets {
		for j := range sets {
			if i == j {
				continue
			}
			merged, err := sets[i].MergeWith(sets[j])
			assert.NoError(t, err)
			for v := int64(-5); v < 2005; v++ {
				want := sets[i].TestInt64(v) && sets[j].TestInt64(v)
				assert.Equal(t, want, merged.TestInt64(v), "merging %v and %v at %d", sets[i], sets[j], v)
			}
		}
	}
}

func TestMergeNullSemantics(t *testing.T) {
	a := NewBigintRange(0, 10, true)
	b := NewBigintRange(5, 20, true)
	merged, err := a.MergeWith(b)
	assert.NoError(t, err)
	assert.True(t, merged.NullAllowed())

	c := NewBigintRange(5, 20, false)
	merged, err = a.MergeWith(c)
	assert.NoError(t, err)
	assert.False(t, merged.NullAllowed())
}
