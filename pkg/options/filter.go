package options

// Filter selects a subset of the declared options, e.g. the declarations
// tagged for one documentation section. Filters are pure predicates passed
// into the declared-set source; they never see documented occurrences.
type Filter func(Declared) bool

// All accepts every declared option.
func All(Declared) bool { return true }

// InSection returns a Filter accepting declarations tagged for the named
// documentation section.
func InSection(section string) Filter {
	return func(d Declared) bool {
		return d.InSection(section)
	}
}
