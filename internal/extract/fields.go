package extract

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"resumescope/internal/engine"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?[0-9][0-9()\-\s.]{7,}[0-9]`)
)

// vocabEntry is a skill keyword with its precompiled boundary pattern.
type vocabEntry struct {
	keyword string
	pattern *regexp.Regexp
}

// HeuristicFieldExtractor derives a structured record from a resume: page
// count from the document, email and phone by regex, name from the leading
// lines, skills by matching a keyword vocabulary against the full text.
type HeuristicFieldExtractor struct {
	text  engine.TextExtractor
	vocab []vocabEntry

	// countPages is swappable for tests
	countPages func(path string) (int, error)
}

// NewHeuristicFieldExtractor creates a field extractor over the given text
// extractor and skills vocabulary. Vocabulary order is preserved in the
// extracted skill lists.
func NewHeuristicFieldExtractor(text engine.TextExtractor, vocabulary []string) *HeuristicFieldExtractor {
	vocab := make([]vocabEntry, 0, len(vocabulary))
	seen := make(map[string]bool, len(vocabulary))

	for _, kw := range vocabulary {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		vocab = append(vocab, vocabEntry{
			keyword: kw,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
		})
	}

	return &HeuristicFieldExtractor{text: text, vocab: vocab, countPages: pageCount}
}

// ExtractFields reads the document and assembles the best-effort record.
// Contact fields that cannot be found stay nil; an unreadable or empty
// document is a parsing error.
func (e *HeuristicFieldExtractor) ExtractFields(ctx context.Context, path string) (*types.ResumeFields, error) {
	pages, err := e.countPages(path)
	if err != nil {
		return nil, err
	}

	text, err := e.text.ExtractText(ctx, path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewParsingError(errors.ErrCodeNoResumeData,
			"document contains no extractable text", nil).
			WithContext("path", path)
	}

	record := &types.ResumeFields{
		Skills:    e.matchSkills(text),
		PageCount: pages,
	}

	if email := emailPattern.FindString(text); email != "" {
		record.Email = &email
	}
	if phone := findPhone(text); phone != "" {
		record.MobileNumber = &phone
	}
	if name := findName(text); name != "" {
		record.Name = &name
	}

	return record, nil
}

// matchSkills returns every vocabulary keyword present in the text, in
// vocabulary order.
func (e *HeuristicFieldExtractor) matchSkills(text string) []string {
	lowered := strings.ToLower(text)

	var skills []string
	for _, entry := range e.vocab {
		if entry.pattern.MatchString(lowered) {
			skills = append(skills, entry.keyword)
		}
	}
	return skills
}

// findPhone returns the first phone-like token, skipping matches that are
// too digit-sparse to be a number (date ranges, section numbering).
func findPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, 5) {
		digits := 0
		for _, r := range candidate {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		// 9..15 digits; year ranges like "2019 - 2021" carry only 8
		if digits >= 9 && digits <= 15 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}

// findName scans the leading lines for something name-shaped: two to four
// capitalized-ish words with no digits and no email.
func findName(text string) string {
	lines := strings.Split(text, "\n")
	checked := 0

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		checked++
		if checked > 5 {
			break
		}

		if strings.ContainsAny(line, "@0123456789") || len(line) > 60 {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}

		plausible := true
		for _, w := range words {
			for _, r := range w {
				if !unicode.IsLetter(r) && r != '.' && r != '-' && r != '\'' {
					plausible = false
					break
				}
			}
			if !plausible {
				break
			}
		}
		if plausible {
			return line
		}
	}
	return ""
}
