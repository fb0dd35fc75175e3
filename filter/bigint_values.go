package filter

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// emptyMarker is the sentinel marking an unoccupied hash table slot.
// INT64_MIN is exceedingly unlikely to appear in real integer columns,
// and the containsEmptyMarker side flag covers the case where it does.
const emptyMarker = int64(math.MinInt64)

// hashMultiplier is the mixing constant used to spread int64 keys across
// the hash table's linear-probing slots. Any large odd 64-bit multiplier
// with good avalanche behavior is admissible; this is the widely used
// golden-ratio constant.
const hashMultiplier = uint64(0x9E3779B97F4A7C15)

func hashPosition(v int64, capacity int) int {
	return int((uint64(v) * hashMultiplier) & uint64(capacity-1))
}

// BigintValuesUsingBitmask represents a set of int64 values as a dense
// bitmap over [Min, Max]. Chosen by NewBigintValues when the value range
// is small relative to the set size.
type BigintValuesUsingBitmask struct {
	base
	Min, Max int64
	bitmask  *bitset.BitSet
}

func newBigintValuesUsingBitmask(min, max int64, values []int64, nullAllowed bool) *BigintValuesUsingBitmask {
	span := uint64(max) - uint64(min) + 1
	bm := bitset.New(uint(span))
	for _, v := range values {
		bm.Set(uint(uint64(v) - uint64(min)))
	}
	return &BigintValuesUsingBitmask{base: newBase(KindBigintValuesUsingBitmask, nullAllowed), Min: min, Max: max, bitmask: bm}
}

func (f *BigintValuesUsingBitmask) TestInt64(v int64) bool {
	if v < f.Min || v > f.Max {
		return false
	}
	return f.bitmask.Test(uint(uint64(v) - uint64(f.Min)))
}

func (f *BigintValuesUsingBitmask) TestInt64Range(min, max int64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min == max {
		return f.TestInt64(min)
	}
	return !(min > f.Max || max < f.Min)
}

func (f *BigintValuesUsingBitmask) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	return &BigintValuesUsingBitmask{base: newBase(KindBigintValuesUsingBitmask, nullAllowed), Min: f.Min, Max: f.Max, bitmask: f.bitmask.Clone()}
}

func (f *BigintValuesUsingBitmask) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *BigintValuesUsingBitmask) String() string { return toString(f) }

// values returns the sorted set of members, used by the merge algebra to
// enumerate this side's occupied slots.
func (f *BigintValuesUsingBitmask) values() []int64 {
	out := make([]int64, 0, f.bitmask.Count())
	for i, ok := f.bitmask.NextSet(0); ok; i, ok = f.bitmask.NextSet(i + 1) {
		out = append(out, f.Min+int64(i))
	}
	return out
}

// BigintValuesUsingHashTable represents a set of int64 values as an
// open-addressed, linear-probing hash set. Chosen by NewBigintValues when
// the value range is too sparse for a dense bitmap.
type BigintValuesUsingHashTable struct {
	base
	Min, Max            int64
	table               []int64
	containsEmptyMarker bool
}

func newBigintValuesUsingHashTable(min, max int64, values []int64, nullAllowed bool) *BigintValuesUsingHashTable {
	capacity := 1
	if len(values) > 0 {
		capacity = 1 << int(math.Floor(math.Log2(float64(len(values)*3))))
		if capacity < 1 {
			capacity = 1
		}
	}
	table := make([]int64, capacity)
	for i := range table {
		table[i] = emptyMarker
	}
	containsEmptyMarker := false
	for _, v := range values {
		if v == emptyMarker {
			containsEmptyMarker = true
			continue
		}
		pos := hashPosition(v, capacity)
		for i := 0; i < capacity; i++ {
			idx := (pos + i) & (capacity - 1)
			if table[idx] == emptyMarker {
				table[idx] = v
				break
			}
		}
	}
	return &BigintValuesUsingHashTable{
		base:                newBase(KindBigintValuesUsingHashTable, nullAllowed),
		Min:                 min,
		Max:                 max,
		table:               table,
		containsEmptyMarker: containsEmptyMarker,
	}
}

func (f *BigintValuesUsingHashTable) TestInt64(v int64) bool {
	if v == emptyMarker {
		return f.containsEmptyMarker
	}
	if v < f.Min || v > f.Max {
		return false
	}
	capacity := len(f.table)
	pos := hashPosition(v, capacity)
	for i := 0; i < capacity; i++ {
		idx := (pos + i) & (capacity - 1)
		if f.table[idx] == v {
			return true
		}
		if f.table[idx] == emptyMarker {
			return false
		}
	}
	return false
}

func (f *BigintValuesUsingHashTable) TestInt64Range(min, max int64, hasNull bool) bool {
	if hasNull && f.nullAllowed {
		return true
	}
	if min == max {
		return f.TestInt64(min)
	}
	return !(min > f.Max || max < f.Min)
}

func (f *BigintValuesUsingHashTable) Clone(nullAllowedOverride *bool) Filter {
	nullAllowed := f.nullAllowed
	if nullAllowedOverride != nil {
		nullAllowed = *nullAllowedOverride
	}
	table := make([]int64, len(f.table))
	copy(table, f.table)
	return &BigintValuesUsingHashTable{
		base:                newBase(KindBigintValuesUsingHashTable, nullAllowed),
		Min:                 f.Min,
		Max:                 f.Max,
		table:               table,
		containsEmptyMarker: f.containsEmptyMarker,
	}
}

func (f *BigintValuesUsingHashTable) MergeWith(other Filter) (Filter, error) { return Merge(f, other) }

func (f *BigintValuesUsingHashTable) String() string { return toString(f) }

// count returns the number of occupied entries, used by the merge
// algebra to pick the smaller side to enumerate.
func (f *BigintValuesUsingHashTable) count() int {
	n := 0
	for _, v := range f.table {
		if v != emptyMarker {
			n++
		}
	}
	if f.containsEmptyMarker {
		n++
	}
	return n
}

// values returns every member, used by the merge algebra to enumerate
// this side's occupied slots.
func (f *BigintValuesUsingHashTable) values() []int64 {
	out := make([]int64, 0, f.count())
	for _, v := range f.table {
		if v != emptyMarker {
			out = append(out, v)
		}
	}
	if f.containsEmptyMarker {
		out = append(out, emptyMarker)
	}
	return out
}

// NewBigintValues is the canonicalizing factory for integer set
// membership: it picks the smallest-appropriate representation among
// IsNull/AlwaysFalse, BigintRange, BigintValuesUsingBitmask and
// BigintValuesUsingHashTable for the given value set.
func NewBigintValues(values []int64, nullAllowed bool) Filter {
	if len(values) == 0 {
		if nullAllowed {
			return NewIsNull()
		}
		return NewAlwaysFalse()
	}
	if len(values) == 1 {
		return NewBigintRange(values[0], values[0], nullAllowed)
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := uint64(max) - uint64(min)

	if span != math.MaxUint64 && span+1 == uint64(len(values)) {
		return NewBigintRange(min, max, nullAllowed)
	}
	if span < 32*64 || span < uint64(len(values))*4*64 {
		return newBigintValuesUsingBitmask(min, max, values, nullAllowed)
	}
	return newBigintValuesUsingHashTable(min, max, values, nullAllowed)
}
