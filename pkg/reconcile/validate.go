package reconcile

import (
	"github.com/zipo2008/confdocs/pkg/errors"
	"github.com/zipo2008/confdocs/pkg/options"
)

// Validate asserts that the declared set is well defined: all occurrences
// sharing a key must be fully content-equal, type text included. Duplicate
// identical declarations are allowed and collapse to one logical record.
//
// The first conflicting pair aborts the run with an *errors.AmbiguityError.
// An ambiguity is a defect in the declaration source itself, so it is never
// folded into the completeness report — no documentation fix can address it.
func (r *Reconciler) Validate(declared *options.Set[options.Declared]) error {
	for _, key := range declared.Keys() {
		group := declared.Get(key)
		prev := group[0]
		for _, next := range group[1:] {
			if prev.Fields.Equal(next.Fields) {
				// Identical redeclaration, treat as one.
				continue
			}
			if prev.Default != next.Default {
				return errors.NewAmbiguityError(
					errors.AmbiguousDefault,
					key,
					[2]string{prev.Default, next.Default},
					[2]string{prev.Origin, next.Origin},
				)
			}
			// Default values agree, so the description or type text differs.
			return errors.NewAmbiguityError(
				errors.AmbiguousDescription,
				key,
				[2]string{},
				[2]string{prev.Origin, next.Origin},
			)
		}
	}
	return nil
}
