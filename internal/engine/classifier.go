package engine

import (
	"strings"

	"resumescope/internal/catalog"
	"resumescope/internal/types"
)

// fieldRule pairs a field with its indicator keyword set.
type fieldRule struct {
	field    types.Field
	keywords map[string]struct{}
}

// FieldClassifier assigns a professional field from a candidate's skill
// list. Rules are checked in a fixed precedence order and the first field
// with any matching skill wins, so classification is deterministic even
// when a skill set spans several fields.
type FieldClassifier struct {
	rules []fieldRule
}

// NewFieldClassifier builds the classifier from the catalog taxonomy.
func NewFieldClassifier(cat *catalog.Catalog) *FieldClassifier {
	precedence := cat.FieldPrecedence()
	rules := make([]fieldRule, 0, len(precedence))

	for _, field := range precedence {
		keywords := make(map[string]struct{})
		for _, kw := range cat.KeywordsFor(field) {
			keywords[kw] = struct{}{}
		}
		rules = append(rules, fieldRule{field: field, keywords: keywords})
	}

	return &FieldClassifier{rules: rules}
}

// Classify returns the first field whose keyword set intersects the skills,
// or FieldOther when nothing matches. Skills are compared case-insensitively
// with surrounding whitespace ignored.
func (fc *FieldClassifier) Classify(skills []string) types.Field {
	for _, rule := range fc.rules {
		for _, skill := range skills {
			normalized := strings.ToLower(strings.TrimSpace(skill))
			if _, ok := rule.keywords[normalized]; ok {
				return rule.field
			}
		}
	}
	return types.FieldOther
}
