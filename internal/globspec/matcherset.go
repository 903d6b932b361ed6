package globspec

// MatcherSet composes one mandatory include matcher, zero or more additional
// include matchers, and zero or more exclude matchers into a single
// walker-facing matcher with "include-any, exclude-overrides" semantics.
//
// Grounded on spec.md's replacement for a dynamic-dispatch matcher
// interface (§9): rather than a polymorphic Matcher type, MatcherSet simply
// holds two slices of the one concrete *SpecMatcher type and fans out.
type MatcherSet struct {
	includes []*SpecMatcher
	excludes []*SpecMatcher
}

// NewMatcherSet creates a set with a single mandatory include matcher.
func NewMatcherSet(include *SpecMatcher) (*MatcherSet, error) {
	if include == nil {
		return nil, ErrNilMatcher
	}
	return &MatcherSet{includes: []*SpecMatcher{include}}, nil
}

// AddInclude adds another include matcher to the set.
func (s *MatcherSet) AddInclude(m *SpecMatcher) error {
	if m == nil {
		return ErrNilMatcher
	}
	s.includes = append(s.includes, m)
	return nil
}

// AddExclude adds an exclude matcher to the set.
func (s *MatcherSet) AddExclude(m *SpecMatcher) error {
	if m == nil {
		return ErrNilMatcher
	}
	s.excludes = append(s.excludes, m)
	return nil
}

// MatchesDirectory reports whether the walker should descend into
// currentDirectory/name: true iff any include matcher says yes and no
// subtree-exclude matcher claims that directory for itself.
func (s *MatcherSet) MatchesDirectory(currentDirectory, name string) bool {
	matched := false
	for _, inc := range s.includes {
		if inc.MatchesDirectory(currentDirectory, name, false) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, exc := range s.excludes {
		if exc.IsSubtreeExclude() && exc.MatchesDirectory(currentDirectory, name, true) {
			return false
		}
	}
	return true
}

// MatchesFile reports whether currentDirectory/name is a hit: true iff any
// include matcher matches and no exclude matcher matches.
func (s *MatcherSet) MatchesFile(currentDirectory, name string) bool {
	matched := false
	for _, inc := range s.includes {
		if inc.MatchesFile(currentDirectory, name) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	for _, exc := range s.excludes {
		if exc.MatchesFile(currentDirectory, name) {
			return false
		}
	}
	return true
}

// DirectoryFinished fans out to every contained matcher.
func (s *MatcherSet) DirectoryFinished() {
	for _, inc := range s.includes {
		inc.DirectoryFinished()
	}
	for _, exc := range s.excludes {
		exc.DirectoryFinished()
	}
}
