// Package enumerate wires the core (internal/globspec) to its external
// collaborators — internal/walker, internal/globignore, internal/pathfilter
// — into the single entry point a CLI or library caller needs: given a
// globconfig.IConfiguration, produce the matched file list.
//
// Grounded on IgorBayerl-ReportGenerator's cmd/main.go run()/resolveAndValidateInputs
// shape: parse configuration, build the matching machinery, drive it, log
// at each stage with the configured *slog.Logger.
package enumerate

import (
	"fmt"
	"strings"

	"log/slog"

	"github.com/globkit/fileglob/internal/filesystem"
	"github.com/globkit/fileglob/internal/globconfig"
	"github.com/globkit/fileglob/internal/globignore"
	"github.com/globkit/fileglob/internal/globspec"
	"github.com/globkit/fileglob/internal/pathfilter"
	"github.com/globkit/fileglob/internal/pathops"
	"github.com/globkit/fileglob/internal/walker"
)

// Run parses cfg's include/exclude spec lists, builds the matcher set
// (optionally augmented by per-directory .globignore overrides and a
// post-enumeration pathfilter pass), walks fsys rooted at cfg.RootDirectory,
// and returns every matched file as a path relative to that root.
func Run(fsys filesystem.Filesystem, isWindowsHost bool, cfg globconfig.IConfiguration, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	sep := byte('/')
	if isWindowsHost {
		sep = '\\'
	}

	root := pathops.RemoveRelativeSegments(cfg.RootDirectory(), sep, isWindowsHost)
	root = strings.TrimRight(root, string(sep))
	casing := cfg.Casing()
	dialect := cfg.Dialect()

	includeSpecs := globspec.Split(strings.Join(cfg.IncludeSpecs(), ";"), sep, isWindowsHost, casing)
	if len(includeSpecs) == 0 {
		return nil, fmt.Errorf("enumerate: no include specifications resolved from %v: %w", cfg.IncludeSpecs(), globspec.ErrEmptySpecRequired)
	}
	excludeSpecs := globspec.Split(strings.Join(cfg.ExcludeSpecs(), ";"), sep, isWindowsHost, casing)

	logger.Debug("resolved specifications",
		"root", root, "includes", len(includeSpecs), "excludes", len(excludeSpecs))

	first := globspec.NewSpecMatcher(includeSpecs[0], root, globspec.Include, dialect, casing, isWindowsHost)
	set, err := globspec.NewMatcherSet(first)
	if err != nil {
		return nil, fmt.Errorf("enumerate: building matcher set: %w", err)
	}
	for _, spec := range includeSpecs[1:] {
		if err := set.AddInclude(globspec.NewSpecMatcher(spec, root, globspec.Include, dialect, casing, isWindowsHost)); err != nil {
			return nil, fmt.Errorf("enumerate: adding include matcher: %w", err)
		}
	}
	for _, spec := range excludeSpecs {
		if err := set.AddExclude(globspec.NewSpecMatcher(spec, root, globspec.Exclude, dialect, casing, isWindowsHost)); err != nil {
			return nil, fmt.Errorf("enumerate: adding exclude matcher: %w", err)
		}
	}

	var dirMatcher walker.DirMatcher = set
	if cfg.IgnoreFileName() != "" {
		provider := globignore.NewProvider(fsys, cfg.IgnoreFileName())
		dirMatcher = globignore.NewMatcher(set, provider, root, sep, isWindowsHost, dialect, casing)
		logger.Debug("per-directory override excludes enabled", "fileName", cfg.IgnoreFileName())
	}

	w := walker.New(fsys, dirMatcher, root, sep)
	files, err := w.Walk()
	if err != nil {
		return nil, fmt.Errorf("enumerate: walking %s: %w", root, err)
	}
	logger.Info("enumeration matched files", "root", root, "count", len(files))

	if filters := cfg.PathFilters(); len(filters) > 0 {
		pf, err := pathfilter.New(filters, true)
		if err != nil {
			return nil, fmt.Errorf("enumerate: building path filters: %w", err)
		}
		before := len(files)
		files = pf.Apply(files)
		logger.Debug("path filters applied", "before", before, "after", len(files))
	}

	return files, nil
}
