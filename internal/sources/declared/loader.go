// Package declared loads configuration option declarations from YAML
// manifests and produces the declared option set for reconciliation.
//
// A manifest groups declarations by declaring unit:
//
//	units:
//	  - name: CoreOptions
//	    options:
//	      - key: parallelism.default
//	        default: "1"
//	        type: Integer
//	        description: "<p>Default parallelism for jobs.</p>"
//	        sections: [common]
//
// Any failure while reading or decoding a manifest is a hard error: a broken
// declaration scan cannot be skipped without hiding real options.
package declared

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/zipo2008/confdocs/pkg/errors"
	"github.com/zipo2008/confdocs/pkg/logging"
	"github.com/zipo2008/confdocs/pkg/options"
)

// manifest is the on-disk declaration format.
type manifest struct {
	Units []unit `yaml:"units"`
}

// unit is one declaring unit and its option declarations.
type unit struct {
	Name    string       `yaml:"name"`
	Options []optionDecl `yaml:"options"`
}

// optionDecl is one declared option entry. The content fields arrive already
// stringified and formatted; absent fields decode to empty strings.
type optionDecl struct {
	options.Fields `yaml:",inline"`
	Sections       []string `yaml:"sections"`
}

// Loader reads declaration manifests from a set of paths.
type Loader struct {
	paths []string
	log   zerolog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithPaths adds manifest files or directories to scan. Directories
// contribute every .yaml/.yml entry, in lexical order.
func WithPaths(paths ...string) Option {
	return func(l *Loader) {
		l.paths = append(l.paths, paths...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// New creates a Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		log: *logging.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every configured manifest and returns the declared occurrences
// accepted by filter, grouped by key in encounter order. A nil filter accepts
// everything.
func (l *Loader) Load(ctx context.Context, filter options.Filter) (*options.Set[options.Declared], error) {
	if filter == nil {
		filter = options.All
	}

	set := options.NewSet[options.Declared]()
	for _, path := range l.paths {
		files, err := l.manifestFiles(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := l.loadFile(file, filter, set); err != nil {
				return nil, err
			}
		}
	}

	l.log.Debug().
		Int("declarations", set.Len()).
		Strs("paths", l.paths).
		Msg("Loaded declared options")

	return set, nil
}

// manifestFiles resolves a configured path to the manifest files under it.
func (l *Loader) manifestFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewScanError(path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.NewScanError(path, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	return files, nil
}

// loadFile decodes one manifest and appends its accepted declarations to set.
func (l *Loader) loadFile(path string, filter options.Filter, set *options.Set[options.Declared]) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewScanError(path, err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return errors.NewScanError(path, err)
	}

	for _, u := range m.Units {
		if u.Name == "" {
			return errors.NewScanError(path, fmt.Errorf("unit with empty name"))
		}
		for _, decl := range u.Options {
			if decl.Key == "" {
				return errors.NewScanError(path, fmt.Errorf("option with empty key in unit %s", u.Name))
			}
			d := options.Declared{
				Fields:   decl.Fields,
				Origin:   u.Name,
				Sections: decl.Sections,
			}
			if filter(d) {
				set.Add(d)
			}
		}
	}
	return nil
}
