package engine

import (
	"testing"

	"resumescope/internal/catalog"
	"resumescope/internal/types"
)

func TestClassify(t *testing.T) {
	fc := NewFieldClassifier(catalog.New())

	tests := []struct {
		name     string
		skills   []string
		expected types.Field
	}{
		{
			name:     "data science keyword",
			skills:   []string{"tensorflow"},
			expected: types.FieldDataScience,
		},
		{
			name:     "web keyword",
			skills:   []string{"react"},
			expected: types.FieldWeb,
		},
		{
			name:     "android keyword",
			skills:   []string{"kotlin"},
			expected: types.FieldAndroid,
		},
		{
			name:     "ios keyword",
			skills:   []string{"xcode"},
			expected: types.FieldIOS,
		},
		{
			name:     "uiux keyword",
			skills:   []string{"figma"},
			expected: types.FieldUIUX,
		},
		{
			name:     "no match",
			skills:   []string{"cooking", "gardening"},
			expected: types.FieldOther,
		},
		{
			name:     "empty skills",
			skills:   nil,
			expected: types.FieldOther,
		},
		{
			name:     "precedence: data science beats android",
			skills:   []string{"kotlin", "python"},
			expected: types.FieldDataScience,
		},
		{
			name:     "precedence: web beats uiux",
			skills:   []string{"figma", "javascript"},
			expected: types.FieldWeb,
		},
		{
			name:     "flask appears in two fields, first wins",
			skills:   []string{"flask"},
			expected: types.FieldDataScience,
		},
		{
			name:     "case insensitive",
			skills:   []string{"TensorFlow"},
			expected: types.FieldDataScience,
		},
		{
			name:     "whitespace trimmed",
			skills:   []string{"  swift  "},
			expected: types.FieldIOS,
		},
		{
			name:     "no substring matching on skills",
			skills:   []string{"javascripting"},
			expected: types.FieldOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fc.Classify(tt.skills); got != tt.expected {
				t.Errorf("Classify(%v) = %q, expected %q", tt.skills, got, tt.expected)
			}
		})
	}
}

func BenchmarkClassify(b *testing.B) {
	fc := NewFieldClassifier(catalog.New())
	skills := []string{"communication", "teamwork", "leadership", "figma", "python"}

	for b.Loop() {
		fc.Classify(skills)
	}
}
