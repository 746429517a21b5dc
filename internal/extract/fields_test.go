package extract

import (
	"context"
	"fmt"
	"testing"

	"resumescope/internal/errors"
)

type staticTextExtractor struct {
	text string
	err  error
}

func (s *staticTextExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

func newTestExtractor(text string, vocab []string) *HeuristicFieldExtractor {
	e := NewHeuristicFieldExtractor(&staticTextExtractor{text: text}, vocab)
	e.countPages = func(string) (int, error) { return 2, nil }
	return e
}

func TestExtractFields(t *testing.T) {
	vocab := []string{"python", "tensorflow", "react", "figma"}

	tests := []struct {
		name           string
		text           string
		expectedName   string
		expectedEmail  string
		expectedPhone  string
		expectedSkills []string
	}{
		{
			name: "full resume header",
			text: "Jane Doe\nSenior Engineer\njane.doe@example.com | +1 (555) 010-2345\n" +
				"Skills: Python, TensorFlow and React",
			expectedName:   "Jane Doe",
			expectedEmail:  "jane.doe@example.com",
			expectedPhone:  "+1 (555) 010-2345",
			expectedSkills: []string{"python", "tensorflow", "react"},
		},
		{
			name:           "no contact details",
			text:           "worked on figma prototypes for three years",
			expectedSkills: []string{"figma"},
		},
		{
			name:          "name skipped when line has digits",
			text:          "Jane Doe 42\nreach me: jane@example.com",
			expectedEmail: "jane@example.com",
		},
		{
			name:         "hyphenated name",
			text:         "Mary-Anne O'Brien\nProduct Designer",
			expectedName: "Mary-Anne O'Brien",
		},
		{
			name:           "skills matched on word boundaries",
			text:           "experienced in pythonic thinking and reactive design",
			expectedSkills: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestExtractor(tt.text, vocab)
			record, err := e.ExtractFields(context.Background(), "resume.pdf")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.expectedName == "" {
				if record.Name != nil {
					t.Errorf("expected nil name, got %q", *record.Name)
				}
			} else if record.Name == nil || *record.Name != tt.expectedName {
				t.Errorf("expected name %q, got %v", tt.expectedName, record.Name)
			}

			if tt.expectedEmail == "" {
				if record.Email != nil {
					t.Errorf("expected nil email, got %q", *record.Email)
				}
			} else if record.Email == nil || *record.Email != tt.expectedEmail {
				t.Errorf("expected email %q, got %v", tt.expectedEmail, record.Email)
			}

			if tt.expectedPhone == "" {
				if record.MobileNumber != nil {
					t.Errorf("expected nil phone, got %q", *record.MobileNumber)
				}
			} else if record.MobileNumber == nil || *record.MobileNumber != tt.expectedPhone {
				t.Errorf("expected phone %q, got %v", tt.expectedPhone, record.MobileNumber)
			}

			if len(record.Skills) != len(tt.expectedSkills) {
				t.Fatalf("expected skills %v, got %v", tt.expectedSkills, record.Skills)
			}
			for i, skill := range tt.expectedSkills {
				if record.Skills[i] != skill {
					t.Errorf("skills[%d]: expected %q, got %q", i, skill, record.Skills[i])
				}
			}

			if record.PageCount != 2 {
				t.Errorf("expected page count 2, got %d", record.PageCount)
			}
		})
	}
}

func TestExtractFieldsEmptyText(t *testing.T) {
	e := newTestExtractor("   \n\t  ", nil)

	_, err := e.ExtractFields(context.Background(), "resume.pdf")
	if err == nil {
		t.Fatal("expected error for empty document text")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Type != errors.ErrorTypeParsing {
		t.Errorf("expected parsing error, got %q", appErr.Type)
	}
	if appErr.Code != errors.ErrCodeNoResumeData {
		t.Errorf("expected code %q, got %q", errors.ErrCodeNoResumeData, appErr.Code)
	}
}

func TestExtractFieldsTextFailure(t *testing.T) {
	e := NewHeuristicFieldExtractor(&staticTextExtractor{err: fmt.Errorf("broken stream")}, nil)
	e.countPages = func(string) (int, error) { return 1, nil }

	if _, err := e.ExtractFields(context.Background(), "resume.pdf"); err == nil {
		t.Fatal("expected text extraction error to propagate")
	}
}

func TestExtractFieldsPageCountFailure(t *testing.T) {
	e := NewHeuristicFieldExtractor(&staticTextExtractor{text: "content"}, nil)
	e.countPages = func(string) (int, error) {
		return 0, errors.NewExtractionError(errors.ErrCodeExtractionFailed, "bad document", nil)
	}

	if _, err := e.ExtractFields(context.Background(), "resume.pdf"); err == nil {
		t.Fatal("expected page count error to propagate")
	}
}

func TestVocabularyDeduplication(t *testing.T) {
	e := newTestExtractor("python python python", []string{"Python", "python", " PYTHON "})
	record, err := e.ExtractFields(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(record.Skills) != 1 || record.Skills[0] != "python" {
		t.Errorf("expected single deduplicated skill, got %v", record.Skills)
	}
}

func TestFindPhoneRejectsSparseDigits(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "date range rejected", text: "2019 - 2021", expected: ""},
		{name: "plain number", text: "call 5550102345 now", expected: "5550102345"},
		{name: "international", text: "+44 20 7946 0958", expected: "+44 20 7946 0958"},
		{name: "too long", text: "12345678901234567890", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findPhone(tt.text); got != tt.expected {
				t.Errorf("findPhone(%q) = %q, expected %q", tt.text, got, tt.expected)
			}
		})
	}
}
