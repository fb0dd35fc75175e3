package filter

// Merge is the single source of truth for the conjunction algebra: every
// concrete Filter's MergeWith delegates here instead of re-implementing
// its own half of the dispatch, so each (Kind, Kind) combination lives in
// exactly one place.
func Merge(a, b Filter) (Filter, error) {
	if !a.Deterministic() || !b.Deterministic() {
		return nil, ErrNonDeterministicMerge
	}

	// Terminal absorption. AlwaysFalse dominates everything; AlwaysTrue is
	// the identity; IsNull yields IsNull when the other side accepts NULL
	// and AlwaysFalse otherwise; IsNotNull clears the other side's null
	// acceptance without touching its value semantics.
	if _, ok := a.(*AlwaysFalse); ok {
		return NewAlwaysFalse(), nil
	}
	if _, ok := b.(*AlwaysFalse); ok {
		return NewAlwaysFalse(), nil
	}
	if _, ok := a.(*AlwaysTrue); ok {
		return b.Clone(nil), nil
	}
	if _, ok := b.(*AlwaysTrue); ok {
		return a.Clone(nil), nil
	}
	if _, ok := a.(*IsNull); ok {
		if b.TestNull() {
			return NewIsNull(), nil
		}
		return NewAlwaysFalse(), nil
	}
	if _, ok := b.(*IsNull); ok {
		if a.TestNull() {
			return NewIsNull(), nil
		}
		return NewAlwaysFalse(), nil
	}
	if _, ok := a.(*IsNotNull); ok {
		notNull := false
		return b.Clone(&notNull), nil
	}
	if _, ok := b.(*IsNotNull); ok {
		notNull := false
		return a.Clone(&notNull), nil
	}

	nullAllowed := a.NullAllowed() && b.NullAllowed()

	switch av := a.(type) {
	case *BoolValue:
		bv, ok := b.(*BoolValue)
		if !ok {
			return nil, ErrUnsupportedCombination(a.Kind(), b.Kind())
		}
		if av.Value == bv.Value {
			return NewBoolValue(av.Value, nullAllowed), nil
		}
		if nullAllowed {
			return NewIsNull(), nil
		}
		return NewAlwaysFalse(), nil

	case *BigintRange, *BigintValuesUsingBitmask, *BigintValuesUsingHashTable, *BigintMultiRange:
		if !isIntegerFamily(b) {
			return nil, ErrUnsupportedCombination(a.Kind(), b.Kind())
		}
		return mergeIntegerFamily(a, b, nullAllowed)

	case *MultiRange:
		bmr, ok := b.(*MultiRange)
		if !ok {
			// A MultiRange merged against a bare non-integer range (or
			// any other single-valued filter) is undeclared in the
			// source algebra this package is grounded on; document the
			// gap instead of inventing a singleton-wrap generalization.
			return nil, ErrUnsupportedCombination(a.Kind(), b.Kind())
		}
		return mergeMultiRanges(av, bmr, nullAllowed)

	default:
		// BytesRange, BytesValues, DoubleRange, FloatRange: bytes-on-bytes
		// and float-range same-kind merges are both undeclared in the
		// source algebra this package is grounded on.
		return nil, ErrUnsupportedCombination(a.Kind(), b.Kind())
	}
}

func isIntegerFamily(f Filter) bool {
	switch f.(type) {
	case *BigintRange, *BigintValuesUsingBitmask, *BigintValuesUsingHashTable, *BigintMultiRange:
		return true
	default:
		return false
	}
}

// mergeIntegerFamily implements the shared cross-kind (and same-kind)
// helper for the four integer variants: it never enumerates a BigintRange
// (its domain may be unbounded), always enumerates the more structured
// side of a value-set pairing, and re-canonicalizes survivors through
// NewBigintValues.
func mergeIntegerFamily(a, b Filter, nullAllowed bool) (Filter, error) {
	amr, aIsMulti := a.(*BigintMultiRange)
	bmr, bIsMulti := b.(*BigintMultiRange)

	if aIsMulti && bIsMulti {
		var flat []*BigintRange
		for _, r := range amr.Ranges {
			flat = append(flat, mergeRangeWithMultiRange(r, bmr)...)
		}
		return combineBigintRanges(flat, nullAllowed), nil
	}
	if aIsMulti {
		return mergeMultiRangeWithSimple(amr, b, nullAllowed)
	}
	if bIsMulti {
		return mergeMultiRangeWithSimple(bmr, a, nullAllowed)
	}

	ar, aIsRange := a.(*BigintRange)
	br, bIsRange := b.(*BigintRange)
	if aIsRange && bIsRange {
		lower, upper := max64(ar.Lower, br.Lower), min64(ar.Upper, br.Upper)
		if lower > upper {
			if nullAllowed {
				return NewIsNull(), nil
			}
			return NewAlwaysFalse(), nil
		}
		return NewBigintRange(lower, upper, nullAllowed), nil
	}
	if aIsRange {
		vals, _ := valuesAndCount(b)
		return mergeBoundedValues(vals, a, nullAllowed), nil
	}
	if bIsRange {
		vals, _ := valuesAndCount(a)
		return mergeBoundedValues(vals, b, nullAllowed), nil
	}

	// Both sides are value-set variants (bitmask, hash table, or a mix).
	// Enumerate whichever side has fewer occupied entries.
	aVals, aCount := valuesAndCount(a)
	bVals, bCount := valuesAndCount(b)
	if aCount <= bCount {
		return mergeBoundedValues(aVals, b, nullAllowed), nil
	}
	return mergeBoundedValues(bVals, a, nullAllowed), nil
}

// mergeRangeWithMultiRange intersects r against every sub-range of mr,
// keeping only the non-empty intersections. Used both directly (BigintRange
// merged with BigintMultiRange) and recursively, once per left sub-range,
// when merging two BigintMultiRanges — which is how nested results end up
// flattened into a single slice instead of a tree of containers.
func mergeRangeWithMultiRange(r *BigintRange, mr *BigintMultiRange) []*BigintRange {
	var out []*BigintRange
	for _, sub := range mr.Ranges {
		lower, upper := max64(r.Lower, sub.Lower), min64(r.Upper, sub.Upper)
		if lower <= upper {
			out = append(out, &BigintRange{base: newBase(KindBigintRange, false), Lower: lower, Upper: upper})
		}
	}
	return out
}

func mergeMultiRangeWithSimple(mr *BigintMultiRange, other Filter, nullAllowed bool) (Filter, error) {
	if r, ok := other.(*BigintRange); ok {
		return combineBigintRanges(mergeRangeWithMultiRange(r, mr), nullAllowed), nil
	}
	vals, _ := valuesAndCount(other)
	return mergeBoundedValues(vals, mr, nullAllowed), nil
}

func valuesAndCount(f Filter) ([]int64, int) {
	switch v := f.(type) {
	case *BigintValuesUsingBitmask:
		return v.values(), int(v.bitmask.Count())
	case *BigintValuesUsingHashTable:
		return v.values(), v.count()
	default:
		return nil, 0
	}
}

func mergeBoundedValues(values []int64, other Filter, nullAllowed bool) Filter {
	kept := make([]int64, 0, len(values))
	for _, v := range values {
		if other.TestInt64(v) {
			kept = append(kept, v)
		}
	}
	return NewBigintValues(kept, nullAllowed)
}

func mergeMultiRanges(a, b *MultiRange, nullAllowed bool) (Filter, error) {
	var survivors []Filter
	for _, fa := range a.Filters {
		for _, fb := range b.Filters {
			merged, err := Merge(fa, fb)
			if err != nil {
				return nil, err
			}
			switch merged.(type) {
			case *AlwaysFalse, *IsNull:
				continue
			}
			survivors = append(survivors, merged)
		}
	}
	bothNanAllowed := a.NanAllowed && b.NanAllowed

	switch len(survivors) {
	case 0:
		if nullAllowed {
			return NewIsNull(), nil
		}
		return NewAlwaysFalse(), nil
	case 1:
		return survivors[0].Clone(&nullAllowed), nil
	default:
		return NewMultiRange(survivors, bothNanAllowed, nullAllowed), nil
	}
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
