package matcher

import (
	"strings"
	"testing"

	"github.com/hukkinj1/dotvanity/pkg/types"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		addr     string
		criteria types.Criteria
		expected bool
	}{
		{
			name:     "empty criteria matches anything",
			addr:     "11Tvp5FaD2Vf69BS5tgGJio8KBPd6PUSvrn9nyDTCLWnQWw",
			criteria: types.Criteria{},
			expected: true,
		},
		{
			name:     "prefix match",
			addr:     "11Tvp5FaD2Vf69BS5tgGJio8KBPd6PUSvrn9nyDTCLWnQWw",
			criteria: types.Criteria{StartsWith: "11"},
			expected: true,
		},
		{
			name:     "prefix mismatch",
			addr:     "11Tvp5FaD2Vf69BS5tgGJio8KBPd6PUSvrn9nyDTCLWnQWw",
			criteria: types.Criteria{StartsWith: "22"},
			expected: false,
		},
		{
			name:     "suffix match",
			addr:     "11Tvp5FaD2Vf69BS5tgGJio8KBPd6PUSvrn9nyDTCLWnQWw",
			criteria: types.Criteria{EndsWith: "QWw"},
			expected: true,
		},
		{
			name:     "suffix mismatch",
			addr:     "11Tvp5FaD2Vf69BS5tgGJio8KBPd6PUSvrn9nyDTCLWnQWw",
			criteria: types.Criteria{EndsWith: "abc"},
			expected: false,
		},
		{
			name:     "substring match",
			addr:     "1R6DVtPBh5ZfNHPFoHT4GVUuLwzcbZaVvD4EFXXXXXZMBc3",
			criteria: types.Criteria{Contains: "XXXXX"},
			expected: true,
		},
		{
			name:     "substring mismatch",
			addr:     "11Tvp5FaD2Vf69BS5tgGJio8KBPd6PUSvrn9nyDTCLWnQWw",
			criteria: types.Criteria{Contains: "XXXXX"},
			expected: false,
		},
		{
			name:     "all predicates together",
			addr:     "1R6DVtPBh5ZfNHPFoHT4GVUuLwzcbZaVvD4EFXXXXXZMBc3",
			criteria: types.Criteria{StartsWith: "1R", EndsWith: "c3", Contains: "XXXXX", MinLetters: 10, MinDigits: 3},
			expected: true,
		},
		{
			name:     "one predicate failing rejects",
			addr:     "1R6DVtPBh5ZfNHPFoHT4GVUuLwzcbZaVvD4EFXXXXXZMBc3",
			criteria: types.Criteria{StartsWith: "1R", Contains: "YYY"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.criteria)
			if got := m.Match(tt.addr); got != tt.expected {
				t.Errorf("Match(%q) = %v, want %v", tt.addr, got, tt.expected)
			}
		})
	}
}

func TestMatchLetterDigitThresholds(t *testing.T) {
	addr := "1abcDE23"
	letters := 5
	digits := 3

	tests := []struct {
		name     string
		criteria types.Criteria
		expected bool
	}{
		{"letters at threshold", types.Criteria{MinLetters: letters}, true},
		{"letters above threshold", types.Criteria{MinLetters: letters + 1}, false},
		{"digits at threshold", types.Criteria{MinDigits: digits}, true},
		{"digits above threshold", types.Criteria{MinDigits: digits + 1}, false},
		{"both at threshold", types.Criteria{MinLetters: letters, MinDigits: digits}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.criteria)
			if got := m.Match(addr); got != tt.expected {
				t.Errorf("Match(%q) = %v, want %v", addr, got, tt.expected)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	addr := strings.Repeat("a", 4) + strings.Repeat("7", 6)
	letters, digits := classify(addr)
	if letters != 4 || digits != 6 {
		t.Errorf("classify() = (%d, %d), want (4, 6)", letters, digits)
	}
}
