package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlwaysTrueAcceptsEverything(t *testing.T) {
	f := NewAlwaysTrue()
	assert.True(t, f.TestBool(false))
	assert.True(t, f.TestInt64(-1))
	assert.True(t, f.TestNull())
	assert.True(t, f.TestInt64Range(0, 0, false))
}

func TestAlwaysFalseRejectsEverything(t *testing.T) {
	f := NewAlwaysFalse()
	assert.False(t, f.TestNull())
	assert.False(t, f.TestInt64Range(0, 100, true))
}

func TestIsNullOnlyMatchesNull(t *testing.T) {
	f := NewIsNull()
	assert.True(t, f.TestNull())
	assert.False(t, f.TestInt64(1))
	assert.True(t, f.TestInt64Range(0, 10, true))
	assert.False(t, f.TestInt64Range(0, 10, false))
}

func TestIsNotNullMatchesEveryValue(t *testing.T) {
	f := NewIsNotNull()
	assert.False(t, f.TestNull())
	assert.True(t, f.TestInt64(1))
	assert.True(t, f.TestBytes([]byte("x")))
}

func TestCloneOverridesNullAllowed(t *testing.T) {
	r := NewBigintRange(1, 10, true)
	no := false
	clone := r.Clone(&no)
	assert.False(t, clone.NullAllowed())
	assert.True(t, clone.TestInt64(5))
	assert.Equal(t, r.TestInt64(5), clone.TestInt64(5))
}

func TestStringFormat(t *testing.T) {
	f := NewBigintRange(1, 10, true)
	assert.Equal(t, "Filter(BigintRange, deterministic, null allowed)", f.String())
}
