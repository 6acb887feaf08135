package matcher

import (
	"strings"

	"github.com/hukkinj1/dotvanity/pkg/types"
)

// Matcher evaluates candidate addresses against a fixed set of criteria.
// It is immutable after construction and safe for concurrent use.
type Matcher struct {
	criteria types.Criteria
}

// New creates a matcher for the given criteria.
func New(criteria types.Criteria) *Matcher {
	return &Matcher{criteria: criteria}
}

// Match reports whether addr satisfies every configured predicate.
// Predicates run in ascending cost order so the hot loop rejects as early as
// possible: prefix and suffix first, then substring search, then the
// full-string character counts.
func (m *Matcher) Match(addr string) bool {
	if !strings.HasPrefix(addr, m.criteria.StartsWith) {
		return false
	}
	if !strings.HasSuffix(addr, m.criteria.EndsWith) {
		return false
	}
	if m.criteria.Contains != "" && !strings.Contains(addr, m.criteria.Contains) {
		return false
	}
	if m.criteria.MinLetters > 0 || m.criteria.MinDigits > 0 {
		letters, digits := classify(addr)
		if letters < m.criteria.MinLetters {
			return false
		}
		if digits < m.criteria.MinDigits {
			return false
		}
	}
	return true
}

// classify counts letter and digit characters in a single pass. SS58
// addresses are plain ASCII, so byte-level classification is exact.
func classify(addr string) (letters, digits int) {
	for i := 0; i < len(addr); i++ {
		c := addr[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
			letters++
		case c >= '0' && c <= '9':
			digits++
		}
	}
	return letters, digits
}
