// Package reconcile implements the completeness check between declared
// configuration options and the generated reference documentation.
//
// The check runs in three stages: Validate asserts the declared set is
// unambiguous, Problems matches declared occurrences against documented
// candidates and collects every gap, and Report folds the gaps into one
// aggregate failure. Verify chains the three.
package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/zipo2008/confdocs/pkg/logging"
	"github.com/zipo2008/confdocs/pkg/options"
)

// Reconciler matches a declared option set against a documented option set
// and reports every discrepancy. It is pure computation over in-memory sets;
// the zero options are usable and all methods are safe for repeated calls
// with independently built inputs.
type Reconciler struct {
	log zerolog.Logger
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithLogger sets the logger used for debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Reconciler) {
		r.log = log
	}
}

// New creates a Reconciler with the given options.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		log: *logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Problems matches every declared occurrence against the documented
// candidates sharing its key and returns the completeness gaps in
// deterministic order: declared-side problems in declared-set insertion
// order, then orphaned documentation entries in documented-set insertion
// order.
//
// The declared set must have passed Validate first. The documented set is
// cloned before matching, so neither input is mutated and repeated calls on
// unchanged inputs yield identical results.
//
// Matching is first-come-first-served per key: declared occurrences under one
// key are already known to be content-identical, so any remaining candidate
// with the right default and description is an equally valid match and a
// combinatorial assignment search would change nothing. Multiplicity is
// handled by consumption: a candidate that matched one declared occurrence is
// dequeued and cannot match a second one.
func (r *Reconciler) Problems(declared *options.Set[options.Declared], documented *options.Set[options.Documented]) []Problem {
	candidates := documented.Clone()
	var problems []Problem

	// Declared side first: every occurrence must find its own unconsumed
	// candidate with matching default and description.
	for _, key := range declared.Keys() {
		for _, d := range declared.Get(key) {
			if len(candidates.Get(key)) == 0 {
				problems = append(problems, Problem{
					Kind:   ProblemNotDocumented,
					Key:    d.Key,
					Origin: d.Origin,
				})
				continue
			}

			want := d.Fields
			if _, found := candidates.Consume(key, func(c options.Documented) bool {
				return want.Matches(c.Fields)
			}); found {
				continue
			}

			problems = append(problems, Problem{
				Kind:        ProblemOutdated,
				Key:         d.Key,
				Origin:      d.Origin,
				Default:     d.Default,
				Description: d.Description,
			})
		}
	}

	// Whatever is left in the queues documents an option that no longer
	// exists.
	for _, key := range candidates.Keys() {
		for _, c := range candidates.Get(key) {
			problems = append(problems, Problem{
				Kind:   ProblemOrphaned,
				Key:    c.Key,
				Origin: c.Origin,
			})
		}
	}

	r.log.Debug().
		Int("declared", declared.Len()).
		Int("documented", documented.Len()).
		Int("problems", len(problems)).
		Msg("Reconciled option sets")

	return problems
}

// Verify runs the full check: ambiguity validation, matching, and report
// aggregation. It returns nil when the documentation is complete, an
// *errors.AmbiguityError when the declared set is internally inconsistent,
// and an *errors.CompletenessError listing every gap otherwise.
func (r *Reconciler) Verify(declared *options.Set[options.Declared], documented *options.Set[options.Documented]) error {
	if err := r.Validate(declared); err != nil {
		return err
	}
	return Report(r.Problems(declared, documented))
}
