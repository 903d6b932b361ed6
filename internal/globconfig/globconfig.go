// Package globconfig assembles the inputs one enumeration run needs: the
// root directory, the include/exclude spec lists, and the casing/dialect/
// verbosity policy that governs matching.
//
// Grounded on IgorBayerl-ReportGenerator's internal/reportconfig package:
// the same interface-plus-struct-plus-constructor shape
// (IReportConfiguration / ReportConfiguration / NewReportConfiguration),
// narrowed to the fields this domain needs instead of report generation's.
package globconfig

import (
	"fmt"

	"github.com/globkit/fileglob/internal/logging"
	"github.com/globkit/fileglob/internal/wildcard"
)

// IConfiguration describes one enumeration run's configuration.
type IConfiguration interface {
	RootDirectory() string
	IncludeSpecs() []string
	ExcludeSpecs() []string
	Casing() wildcard.Casing
	Dialect() wildcard.Dialect
	VerbosityLevel() logging.VerbosityLevel
	IgnoreFileName() string
	PathFilters() []string
}

// Configuration is the concrete IConfiguration implementation.
type Configuration struct {
	RDirectory   string
	Includes     []string
	Excludes     []string
	CasingMode   wildcard.Casing
	DialectMode  wildcard.Dialect
	VLevel       logging.VerbosityLevel
	IgnoreName   string
	Filters      []string
}

func (c *Configuration) RootDirectory() string                  { return c.RDirectory }
func (c *Configuration) IncludeSpecs() []string                  { return c.Includes }
func (c *Configuration) ExcludeSpecs() []string                  { return c.Excludes }
func (c *Configuration) Casing() wildcard.Casing                 { return c.CasingMode }
func (c *Configuration) Dialect() wildcard.Dialect                { return c.DialectMode }
func (c *Configuration) VerbosityLevel() logging.VerbosityLevel { return c.VLevel }
func (c *Configuration) IgnoreFileName() string                  { return c.IgnoreName }
func (c *Configuration) PathFilters() []string                  { return c.Filters }

// Option mutates a Configuration during construction, mirroring
// reportconfig's functional-options pattern.
type Option func(*Configuration) error

// WithExcludes sets the exclude spec list.
func WithExcludes(excludes []string) Option {
	return func(c *Configuration) error {
		c.Excludes = excludes
		return nil
	}
}

// WithCasing sets the casing policy.
func WithCasing(casing wildcard.Casing) Option {
	return func(c *Configuration) error {
		c.CasingMode = casing
		return nil
	}
}

// WithDialect sets the wildcard dialect.
func WithDialect(dialect wildcard.Dialect) Option {
	return func(c *Configuration) error {
		c.DialectMode = dialect
		return nil
	}
}

// WithVerbosity sets the logging verbosity.
func WithVerbosity(level logging.VerbosityLevel) Option {
	return func(c *Configuration) error {
		c.VLevel = level
		return nil
	}
}

// WithIgnoreFileName overrides the per-directory override file name
// internal/globignore looks for (default ".globignore").
func WithIgnoreFileName(name string) Option {
	return func(c *Configuration) error {
		c.IgnoreName = name
		return nil
	}
}

// WithPathFilters sets the supplementary post-enumeration regex filters
// internal/pathfilter applies.
func WithPathFilters(filters []string) Option {
	return func(c *Configuration) error {
		c.Filters = filters
		return nil
	}
}

// NewConfiguration builds a Configuration from the mandatory root directory
// and include spec list plus any number of options.
func NewConfiguration(rootDirectory string, includeSpecs []string, opts ...Option) (*Configuration, error) {
	if rootDirectory == "" {
		return nil, fmt.Errorf("globconfig: root directory must not be empty")
	}
	if len(includeSpecs) == 0 {
		return nil, fmt.Errorf("globconfig: at least one include spec is required")
	}

	c := &Configuration{
		RDirectory: rootDirectory,
		Includes:   includeSpecs,
		IgnoreName: ".globignore",
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("globconfig: applying option: %w", err)
		}
	}
	return c, nil
}
