// Package options defines the configuration option record model shared by the
// declared and documented inventories, plus the insertion-ordered grouping
// used by the reconciler.
//
// An option occurrence is a flat, fully stringified snapshot: the adapters
// that produce occurrences are responsible for rendering defaults, types and
// descriptions into their final textual form before records enter this
// package. No field is optional; adapters supply empty strings rather than
// omitting values.
package options

import "fmt"

// Fields holds the content of one configuration option occurrence.
// Content equality covers all four fields; the declared and documented
// variants add an origin on top but the origin never takes part in equality
// or matching.
type Fields struct {
	// Key is the stable identifier naming the option. Multiple occurrences
	// may legitimately share a key.
	Key string `yaml:"key"`

	// Default is the already-stringified default value.
	Default string `yaml:"default"`

	// Type is the already-stringified type descriptor.
	Type string `yaml:"type"`

	// Description is the already-formatted description text. It may contain
	// structured markup, which is treated as part of the value.
	Description string `yaml:"description"`
}

// Content returns the shared content fields. Both occurrence variants
// satisfy the Record interface through this method.
func (f Fields) Content() Fields { return f }

// Equal reports whether two occurrences carry identical content across all
// four fields. This is the equality used by ambiguity validation.
func (f Fields) Equal(other Fields) bool {
	return f.Key == other.Key &&
		f.Default == other.Default &&
		f.Type == other.Type &&
		f.Description == other.Description
}

// Matches reports whether a documented rendering is acceptable for this
// declared content. Type wording is allowed to differ between a declaration
// and the generated table, so only the default value and the description
// take part in the match.
func (f Fields) Matches(other Fields) bool {
	return f.Default == other.Default && f.Description == other.Description
}

// String implements fmt.Stringer for debug output.
func (f Fields) String() string {
	return fmt.Sprintf("Option{key=%q, default=%q, type=%q, description=%q}",
		f.Key, f.Default, f.Type, f.Description)
}

// Record is satisfied by both occurrence variants.
type Record interface {
	Content() Fields
}

// Declared is an option occurrence extracted from a declaration manifest.
type Declared struct {
	Fields

	// Origin names the declaring unit, used only in problem and error
	// messages.
	Origin string

	// Sections lists the documentation sections this declaration is tagged
	// for. Empty for options that only appear in the full reference.
	Sections []string
}

// InSection reports whether the declaration is tagged for the named section.
func (d Declared) InSection(section string) bool {
	for _, s := range d.Sections {
		if s == section {
			return true
		}
	}
	return false
}

// Documented is an option occurrence parsed from a generated reference table.
type Documented struct {
	Fields

	// Origin is the base name of the source document, used only in problem
	// messages.
	Origin string
}
