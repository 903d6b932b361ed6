package globspec

import "errors"

// Sentinel errors for globspec construction. The matching hot path never
// returns an error (spec.md §7): only construction-time misuse does.
var (
	// ErrNilMatcher is returned when a MatcherSet is asked to add a nil matcher.
	ErrNilMatcher = errors.New("globspec: matcher must not be nil")
	// ErrEmptySpecRequired is returned where a non-empty spec is required.
	ErrEmptySpecRequired = errors.New("globspec: specification must not be empty")
)
