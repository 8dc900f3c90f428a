package reconcile

import (
	"github.com/zipo2008/confdocs/pkg/errors"
)

// Report folds an ordered problem list into a single aggregate error, or nil
// when the list is empty. A caller invoking verification as a gate gets one
// actionable failure covering every outstanding gap, not a cascade of
// individual ones.
func Report(problems []Problem) error {
	if len(problems) == 0 {
		return nil
	}
	lines := make([]string, len(problems))
	for i, p := range problems {
		lines[i] = p.String()
	}
	return errors.NewCompletenessError(lines)
}
