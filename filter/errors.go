package filter

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNonDeterministicMerge is returned by MergeWith when either operand
// is not deterministic; merging such filters would not have a stable
// meaning.
var ErrNonDeterministicMerge = errors.New("filter: cannot merge non-deterministic filter")

// invariantViolation formats a construction-time precondition failure.
// Callers panic with it: violating a Filter constructor's invariants is
// a programmer error, not a value the caller could reasonably recover
// from at runtime.
func invariantViolation(constructor, reason string) string {
	return fmt.Sprintf("filter: %s: %s", constructor, reason)
}

// ErrUnsupportedCombination reports a merge between two Kinds that the
// conjunction algebra does not define (bytes-on-bytes, MultiRange against
// a bare non-integer range, or any other undeclared cross-product).
func ErrUnsupportedCombination(a, b Kind) error {
	return errors.Errorf("filter: unsupported merge combination: %s x %s", a, b)
}
