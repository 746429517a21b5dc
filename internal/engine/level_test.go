package engine

import (
	"testing"

	"resumescope/internal/types"
)

func TestLevelForPages(t *testing.T) {
	tests := []struct {
		name     string
		pages    int
		expected types.CandidateLevel
	}{
		{name: "one page", pages: 1, expected: types.LevelFresher},
		{name: "two pages", pages: 2, expected: types.LevelIntermediate},
		{name: "three pages", pages: 3, expected: types.LevelExperienced},
		{name: "many pages", pages: 10, expected: types.LevelExperienced},
		{name: "zero pages", pages: 0, expected: types.LevelUnknown},
		{name: "negative pages", pages: -1, expected: types.LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevelForPages(tt.pages); got != tt.expected {
				t.Errorf("LevelForPages(%d) = %q, expected %q", tt.pages, got, tt.expected)
			}
		})
	}
}
