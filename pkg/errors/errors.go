// Package errors provides custom error types for the confdocs system.
// These errors separate hard declaration defects, which abort a verification
// run immediately, from documentation completeness gaps, which are batched
// into a single aggregate failure.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the confdocs system
var (
	// ErrAmbiguousOption indicates two declarations share a key but disagree
	// on content. This is a defect in the declared source, not a
	// documentation gap.
	ErrAmbiguousOption = errors.New("ambiguous option")

	// ErrIncompleteDocs indicates the generated documentation does not match
	// the declared options.
	ErrIncompleteDocs = errors.New("documentation incomplete")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")
)

// AmbiguityKind classifies which content field caused an ambiguity.
type AmbiguityKind string

// Ambiguity kinds. A default-value conflict is reported in preference to a
// description conflict when both fields differ.
const (
	AmbiguousDefault     AmbiguityKind = "default value"
	AmbiguousDescription AmbiguityKind = "description"
)

// AmbiguityError reports two declarations sharing a key with conflicting
// content. It aborts the whole verification run.
type AmbiguityError struct {
	Kind     AmbiguityKind
	Key      string
	Defaults [2]string // populated for AmbiguousDefault
	Origins  [2]string
}

// Error implements the error interface
func (e *AmbiguityError) Error() string {
	if e.Kind == AmbiguousDefault {
		return fmt.Sprintf("ambiguous option %s due to distinct default values (%s (in %s) vs %s (in %s))",
			e.Key, e.Defaults[0], e.Origins[0], e.Defaults[1], e.Origins[1])
	}
	return fmt.Sprintf("ambiguous option %s due to distinct descriptions (%s vs %s)",
		e.Key, e.Origins[0], e.Origins[1])
}

// Is implements errors.Is support
func (e *AmbiguityError) Is(target error) bool {
	return target == ErrAmbiguousOption
}

// NewAmbiguityError creates a new AmbiguityError
func NewAmbiguityError(kind AmbiguityKind, key string, defaults, origins [2]string) *AmbiguityError {
	return &AmbiguityError{
		Kind:     kind,
		Key:      key,
		Defaults: defaults,
		Origins:  origins,
	}
}

// CompletenessError aggregates every completeness problem found in one
// verification run into a single failure. Problems are pre-rendered lines in
// the deterministic order the reconciler produced them.
type CompletenessError struct {
	Problems []string
}

// Error implements the error interface
func (e *CompletenessError) Error() string {
	var sb strings.Builder
	sb.WriteString("documentation is outdated, please regenerate it")
	sb.WriteString("\n\tProblems:")
	for _, problem := range e.Problems {
		sb.WriteString("\n\t\t")
		sb.WriteString(problem)
	}
	return sb.String()
}

// Is implements errors.Is support
func (e *CompletenessError) Is(target error) bool {
	return target == ErrIncompleteDocs
}

// NewCompletenessError creates a new CompletenessError
func NewCompletenessError(problems []string) *CompletenessError {
	return &CompletenessError{Problems: problems}
}

// ScanError reports a failure while scanning or decoding a declaration
// manifest. Declaration scans must never be silently skipped, since a skipped
// manifest would hide real options.
type ScanError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ScanError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("declaration scan failed for %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("declaration scan failed: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError
func NewScanError(path string, err error) *ScanError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ScanError{Path: path, Message: message, Err: err}
}

// ParseError reports a failure while parsing a documentation artifact. The
// documented-set source treats these as "no records contributed by that
// artifact" rather than aborting the run.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(path string, err error) *ParseError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// Helper functions for error checking

// IsAmbiguity checks if an error is an ambiguous-declaration defect
func IsAmbiguity(err error) bool {
	return errors.Is(err, ErrAmbiguousOption)
}

// IsIncomplete checks if an error is an aggregated completeness failure
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncompleteDocs)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
