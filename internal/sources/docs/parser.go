// Package docs parses generated HTML reference tables into the documented
// option set for reconciliation.
//
// Each artifact is a generated include file holding one or more tables whose
// body rows carry exactly one option each: key cell, default cell, type cell,
// description cell. The key is the first whitespace-delimited token of the
// key cell, which strips trailing annotation markers; the description keeps
// its inner markup as raw text.
//
// Unlike the declared-set source, a single unreadable or unparsable artifact
// contributes no records instead of failing the run.
package docs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zipo2008/confdocs/pkg/errors"
	"github.com/zipo2008/confdocs/pkg/logging"
	"github.com/zipo2008/confdocs/pkg/options"
)

// CommonSectionFile is the artifact holding the curated common-section table.
const CommonSectionFile = "common_section.html"

// IsReferenceFile reports whether an artifact name belongs to the full
// configuration reference.
func IsReferenceFile(name string) bool {
	return strings.Contains(name, "configuration") && strings.HasSuffix(name, ".html")
}

// IsCommonSectionFile reports whether an artifact name is the common-section
// artifact.
func IsCommonSectionFile(name string) bool {
	return name == CommonSectionFile
}

// Parser reads documentation artifacts into documented option records.
type Parser struct {
	log zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger used when skipping broken artifacts.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New creates a Parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		log: *logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile parses one artifact and returns its records in table order,
// tagged with the file's base name.
func (p *Parser) ParseFile(path string) ([]options.Documented, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewParseError(path, err)
	}
	defer f.Close()

	records, err := Parse(f, filepath.Base(path))
	if err != nil {
		return nil, errors.NewParseError(path, err)
	}
	return records, nil
}

// ParseDir parses every artifact in dir whose base name satisfies match and
// groups the records by key in encounter order. Files are visited in lexical
// order. An artifact that cannot be read or parsed is logged and skipped;
// only an unreadable directory fails the call.
func (p *Parser) ParseDir(ctx context.Context, dir string, match func(name string) bool) (*options.Set[options.Documented], error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	set := options.NewSet[options.Documented]()
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !match(entry.Name()) {
			continue
		}

		records, err := p.ParseFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			p.log.Warn().Err(err).Str("artifact", entry.Name()).
				Msg("Skipping unparsable documentation artifact")
			continue
		}
		for _, rec := range records {
			set.Add(rec)
		}
	}

	p.log.Debug().
		Int("documented", set.Len()).
		Str("dir", dir).
		Msg("Parsed documentation artifacts")

	return set, nil
}
