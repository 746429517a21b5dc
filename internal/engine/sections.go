package engine

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"resumescope/internal/catalog"
	"resumescope/internal/types"
)

// pointsPerSection is the score awarded for each section present.
const pointsPerSection = 20

// Matcher decides whether a keyword occurs in resume text. Both inputs are
// already lower-cased by the scanner.
type Matcher interface {
	Matches(text, keyword string) bool
}

// SubstringMatcher reports plain substring containment. This is the default
// strategy and intentionally loose: "objectively" satisfies "objective".
type SubstringMatcher struct{}

func (SubstringMatcher) Matches(text, keyword string) bool {
	return strings.Contains(text, keyword)
}

// WordMatcher requires the keyword to appear on word boundaries, so
// "objectively" no longer satisfies "objective".
type WordMatcher struct {
	cache sync.Map // keyword -> *regexp.Regexp
}

func (m *WordMatcher) Matches(text, keyword string) bool {
	return m.pattern(keyword).MatchString(text)
}

func (m *WordMatcher) pattern(keyword string) *regexp.Regexp {
	if cached, ok := m.cache.Load(keyword); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
	m.cache.Store(keyword, re)
	return re
}

// RegexMatcher treats each keyword as a regular expression. Invalid patterns
// never match.
type RegexMatcher struct {
	cache sync.Map // keyword -> *regexp.Regexp (nil for invalid patterns)
}

func (m *RegexMatcher) Matches(text, keyword string) bool {
	re := m.pattern(keyword)
	if re == nil {
		return false
	}
	return re.MatchString(text)
}

func (m *RegexMatcher) pattern(keyword string) *regexp.Regexp {
	if cached, ok := m.cache.Load(keyword); ok {
		re, _ := cached.(*regexp.Regexp)
		return re
	}
	re, err := regexp.Compile(keyword)
	if err != nil {
		m.cache.Store(keyword, (*regexp.Regexp)(nil))
		return nil
	}
	m.cache.Store(keyword, re)
	return re
}

// NewMatcher returns the matching strategy for a config name. The empty
// string selects the substring default.
func NewMatcher(name string) (Matcher, error) {
	switch name {
	case "", "substring":
		return SubstringMatcher{}, nil
	case "word":
		return &WordMatcher{}, nil
	case "regex":
		return &RegexMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown matcher strategy: %s", name)
	}
}

// SectionScanner scores resume text by section completeness.
type SectionScanner struct {
	cat     *catalog.Catalog
	matcher Matcher
}

// NewSectionScanner creates a scanner using the given matching strategy.
func NewSectionScanner(cat *catalog.Catalog, matcher Matcher) *SectionScanner {
	return &SectionScanner{cat: cat, matcher: matcher}
}

// Scan lower-cases the text once and checks every tracked section. A section
// counts as present when any of its keywords matches, contributing a fixed
// number of points. Returns the total score and the per-section breakdown.
func (s *SectionScanner) Scan(text string) (int, map[types.Section]bool) {
	lowered := strings.ToLower(text)

	score := 0
	breakdown := make(map[types.Section]bool, len(types.Sections))

	for _, section := range types.Sections {
		present := false
		for _, keyword := range s.cat.SectionKeywords(section) {
			if s.matcher.Matches(lowered, keyword) {
				present = true
				break
			}
		}
		breakdown[section] = present
		if present {
			score += pointsPerSection
		}
	}

	return score, breakdown
}
