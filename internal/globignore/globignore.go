// Package globignore adds optional per-directory override excludes to an
// enumeration: a directory may carry an override file (default name
// ".globignore") whose lines are extra exclude specifications scoped to
// that directory and everything below it.
//
// Grounded on WoozyMasta-pathrules/provider.go's Provider, which lazily
// loads and caches one compiled matcher per directory behind a mutex so a
// deep tree re-reads each rules file at most once per enumeration, and
// resolves a path's decision by walking every ancestor directory from the
// provider root down to the path's own directory, last match wins. This
// package narrows that idea to the "extra excludes" role: it never decides
// inclusion on its own, it only contributes additional globspec.SpecMatcher
// excludes that a MatcherSet-driving DirMatcher consults alongside the
// core matcher set.
package globignore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/globkit/fileglob/internal/filesystem"
	"github.com/globkit/fileglob/internal/globspec"
	"github.com/globkit/fileglob/internal/wildcard"
)

// DefaultFileName is the override file name used when none is configured.
const DefaultFileName = ".globignore"

// Provider lazily loads and caches override files keyed by the directory
// path they were looked up in, exactly as given (or their absence).
type Provider struct {
	fs       filesystem.Filesystem
	fileName string

	mu    sync.Mutex
	cache map[string][]string // directory -> raw pattern lines (nil if no override file)
}

// NewProvider creates a Provider that looks for fileName (DefaultFileName if
// empty) in each directory it is asked about.
func NewProvider(fsys filesystem.Filesystem, fileName string) *Provider {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Provider{fs: fsys, fileName: fileName, cache: make(map[string][]string)}
}

// rawPatterns returns the non-empty, non-comment lines of dir's override
// file, loading and caching them on first request. A missing override file
// caches as (nil, nil), not an error.
func (p *Provider) rawPatterns(dir string, sep byte) ([]string, error) {
	p.mu.Lock()
	if cached, ok := p.cache[dir]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	path := dir + string(sep) + p.fileName
	data, err := p.fs.ReadFile(path)
	if err != nil {
		p.mu.Lock()
		p.cache[dir] = nil
		p.mu.Unlock()
		return nil, nil
	}

	var lines []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	p.mu.Lock()
	p.cache[dir] = lines
	p.mu.Unlock()
	return lines, nil
}

// MatchersFor returns the exclude SpecMatchers contributed by dir's own
// override file (not its ancestors), rooted at dir, for the given dialect
// and casing. Returns nil, nil when dir carries no override file.
func (p *Provider) MatchersFor(dir string, sep byte, isWindowsHost bool, dialect wildcard.Dialect, casing wildcard.Casing) ([]*globspec.SpecMatcher, error) {
	lines, err := p.rawPatterns(dir, sep)
	if err != nil {
		return nil, fmt.Errorf("globignore: loading %s: %w", dir, err)
	}
	if len(lines) == 0 {
		return nil, nil
	}

	specs := globspec.Split(strings.Join(lines, ";"), sep, isWindowsHost, casing)
	matchers := make([]*globspec.SpecMatcher, 0, len(specs))
	for _, spec := range specs {
		matchers = append(matchers, globspec.NewSpecMatcher(spec, dir, globspec.Exclude, dialect, casing, isWindowsHost))
	}
	return matchers, nil
}

// Ancestors returns dir and every ancestor directory of dir down to (and
// including) root, root first. root and dir must already share a separator
// convention; dir not under root returns just dir.
func Ancestors(root, dir string, sep byte) []string {
	if dir == root {
		return []string{root}
	}
	rest := strings.TrimPrefix(dir, root+string(sep))
	if rest == dir {
		return []string{dir}
	}

	out := []string{root}
	cur := root
	for _, seg := range strings.Split(rest, string(sep)) {
		if seg == "" {
			continue
		}
		cur = cur + string(sep) + seg
		out = append(out, cur)
	}
	return out
}
