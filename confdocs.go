// Package confdocs verifies that generated configuration reference
// documentation is complete and current relative to the declared options.
//
// A verification run builds two read-only snapshots — the declared set from
// declaration manifests and the documented set from generated HTML tables —
// validates that the declared set is unambiguous, reconciles the two by key,
// and either succeeds silently or fails with one aggregate report covering
// every gap.
package confdocs

import (
	"context"
	"fmt"

	"github.com/zipo2008/confdocs/internal/sources/declared"
	"github.com/zipo2008/confdocs/internal/sources/docs"
	"github.com/zipo2008/confdocs/pkg/options"
	"github.com/zipo2008/confdocs/pkg/reconcile"
)

// Verifier runs documentation completeness checks. Implementations are safe
// for repeated and concurrent use: every run builds its own input snapshots
// and shares no mutable state across invocations.
type Verifier interface {
	// VerifyCommon checks the common-section artifact against the declared
	// options tagged for the common section.
	VerifyCommon(ctx context.Context) error

	// VerifyFull checks every reference artifact against all declared
	// options.
	VerifyFull(ctx context.Context) error

	// Verify checks the artifacts whose names satisfy match against the
	// declared options accepted by filter. The other two invocations are
	// shorthands for this one.
	Verify(ctx context.Context, filter options.Filter, match func(name string) bool) error
}

// verifier is the internal implementation of the Verifier interface.
type verifier struct {
	config *config
}

// New creates a new Verifier with the given options.
func New(opts ...Option) (Verifier, error) {
	v := &verifier{
		config: defaultConfig(),
	}

	for _, opt := range opts {
		if err := opt(v.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	if len(v.config.manifestPaths) == 0 {
		return nil, fmt.Errorf("no declaration manifest paths configured")
	}
	if v.config.generatedDir == "" {
		return nil, fmt.Errorf("no generated documentation directory configured")
	}

	return v, nil
}

// VerifyCommon checks the common-section artifact against the declared
// options tagged for the common section.
func (v *verifier) VerifyCommon(ctx context.Context) error {
	file := v.config.commonFile
	return v.Verify(ctx, options.InSection(v.config.commonSection), func(name string) bool {
		return name == file
	})
}

// VerifyFull checks every reference artifact against all declared options.
func (v *verifier) VerifyFull(ctx context.Context) error {
	return v.Verify(ctx, options.All, docs.IsReferenceFile)
}

// Verify builds both option sets and runs the reconciliation. Declared-side
// failures abort immediately; documented-side artifact failures only reduce
// the documented set.
func (v *verifier) Verify(ctx context.Context, filter options.Filter, match func(name string) bool) error {
	log := v.config.logger

	loader := declared.New(
		declared.WithPaths(v.config.manifestPaths...),
		declared.WithLogger(*log),
	)
	declaredSet, err := loader.Load(ctx, filter)
	if err != nil {
		return err
	}

	parser := docs.New(docs.WithLogger(*log))
	documentedSet, err := parser.ParseDir(ctx, v.config.generatedDir, match)
	if err != nil {
		return err
	}

	rec := reconcile.New(reconcile.WithLogger(*log))
	if err := rec.Verify(declaredSet, documentedSet); err != nil {
		return err
	}

	log.Info().
		Int("declared", declaredSet.Len()).
		Int("documented", documentedSet.Len()).
		Msg("Documentation is complete")

	return nil
}
