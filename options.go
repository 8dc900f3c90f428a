package confdocs

import (
	"github.com/rs/zerolog"

	"github.com/zipo2008/confdocs/internal/sources/docs"
	"github.com/zipo2008/confdocs/pkg/logging"
)

// config holds the verifier configuration assembled from options.
type config struct {
	manifestPaths []string
	generatedDir  string
	commonSection string
	commonFile    string
	logger        *zerolog.Logger
}

// defaultConfig returns the baseline configuration.
func defaultConfig() *config {
	return &config{
		commonSection: "common",
		commonFile:    docs.CommonSectionFile,
		logger:        logging.Default(),
	}
}

// Option is a function that configures a Verifier instance.
type Option func(*config) error

// WithManifestPaths configures the declaration manifest files or directories
// to scan. At least one path is required.
func WithManifestPaths(paths ...string) Option {
	return func(c *config) error {
		c.manifestPaths = append(c.manifestPaths, paths...)
		return nil
	}
}

// WithGeneratedDir configures the directory holding the generated
// documentation artifacts.
func WithGeneratedDir(dir string) Option {
	return func(c *config) error {
		c.generatedDir = dir
		return nil
	}
}

// WithCommonSection configures the section tag and artifact file name used by
// VerifyCommon. Defaults are "common" and the standard common-section file.
func WithCommonSection(section, file string) Option {
	return func(c *config) error {
		if section != "" {
			c.commonSection = section
		}
		if file != "" {
			c.commonFile = file
		}
		return nil
	}
}

// WithLogger configures the logger used across the run.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}
