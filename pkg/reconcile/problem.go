package reconcile

import "fmt"

// ProblemKind identifies the category of a completeness problem.
type ProblemKind string

// Problem kinds emitted by the reconciler. These are documentation-level
// gaps; an ambiguous declaration is a hard error instead (see Validate).
const (
	// ProblemNotDocumented means a declared option has no documentation
	// entry at all.
	ProblemNotDocumented ProblemKind = "not_documented"

	// ProblemOutdated means the documentation for a declared option records
	// a stale default value or description.
	ProblemOutdated ProblemKind = "outdated"

	// ProblemOrphaned means the documentation describes an option that no
	// longer exists in the declared set.
	ProblemOrphaned ProblemKind = "orphaned"
)

// Problem is one completeness gap between the declared options and the
// generated documentation. Default and Description carry the expected values
// for ProblemOutdated and are empty otherwise.
type Problem struct {
	Kind        ProblemKind
	Key         string
	Origin      string
	Default     string
	Description string
}

// String renders the problem as a single report line.
func (p Problem) String() string {
	switch p.Kind {
	case ProblemNotDocumented:
		return fmt.Sprintf("Option %s in %s is not documented.", p.Key, p.Origin)
	case ProblemOutdated:
		return fmt.Sprintf("Documentation of %s in %s is outdated. Expected: default=(%s) description=(%s).",
			p.Key, p.Origin, p.Default, p.Description)
	case ProblemOrphaned:
		return fmt.Sprintf("Documented option %s in %s does not exist.", p.Key, p.Origin)
	default:
		return fmt.Sprintf("Unknown problem for option %s.", p.Key)
	}
}
