package globignore

import (
	"github.com/globkit/fileglob/internal/globspec"
	"github.com/globkit/fileglob/internal/wildcard"
)

// Matcher wraps a core globspec.MatcherSet with Provider-supplied override
// excludes, walking every ancestor directory from root down to the
// candidate's own directory (last override file nearest the candidate
// still contributes — there is no override precedence beyond "any ancestor
// excludes it"). It implements the same three-operation DirMatcher contract
// internal/walker consumes.
type Matcher struct {
	base          *globspec.MatcherSet
	provider      *Provider
	root          string
	sep           byte
	isWindowsHost bool
	dialect       wildcard.Dialect
	casing        wildcard.Casing
}

// NewMatcher builds an override-aware matcher over base, rooted at root.
func NewMatcher(base *globspec.MatcherSet, provider *Provider, root string, sep byte, isWindowsHost bool, dialect wildcard.Dialect, casing wildcard.Casing) *Matcher {
	return &Matcher{
		base:          base,
		provider:      provider,
		root:          root,
		sep:           sep,
		isWindowsHost: isWindowsHost,
		dialect:       dialect,
		casing:        casing,
	}
}

// MatchesDirectory reports whether the walker should descend into
// currentDirectory/name: the base matcher set must agree, and no ancestor's
// override file may claim the directory as a pruned subtree.
func (m *Matcher) MatchesDirectory(currentDirectory, name string) bool {
	if !m.base.MatchesDirectory(currentDirectory, name) {
		return false
	}
	for _, anc := range Ancestors(m.root, currentDirectory, m.sep) {
		matchers, err := m.provider.MatchersFor(anc, m.sep, m.isWindowsHost, m.dialect, m.casing)
		if err != nil {
			continue
		}
		for _, exclude := range matchers {
			hit := exclude.IsSubtreeExclude() && exclude.MatchesDirectory(currentDirectory, name, true)
			exclude.DirectoryFinished()
			if hit {
				return false
			}
		}
	}
	return true
}

// MatchesFile reports whether currentDirectory/name is a hit: the base
// matcher set must agree, and no ancestor's override file may exclude it.
func (m *Matcher) MatchesFile(currentDirectory, name string) bool {
	if !m.base.MatchesFile(currentDirectory, name) {
		return false
	}
	for _, anc := range Ancestors(m.root, currentDirectory, m.sep) {
		matchers, err := m.provider.MatchersFor(anc, m.sep, m.isWindowsHost, m.dialect, m.casing)
		if err != nil {
			continue
		}
		for _, exclude := range matchers {
			hit := exclude.MatchesFile(currentDirectory, name)
			exclude.DirectoryFinished()
			if hit {
				return false
			}
		}
	}
	return true
}

// DirectoryFinished fans out to the base matcher set. Override matchers are
// self-resetting (see MatchesDirectory/MatchesFile) since they may be
// reused across sibling directories at different depths.
func (m *Matcher) DirectoryFinished() {
	m.base.DirectoryFinished()
}
