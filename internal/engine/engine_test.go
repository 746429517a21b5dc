package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"resumescope/internal/catalog"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

type stubFieldExtractor struct {
	record *types.ResumeFields
	err    error
	calls  int
}

func (s *stubFieldExtractor) ExtractFields(_ context.Context, _ string) (*types.ResumeFields, error) {
	s.calls++
	return s.record, s.err
}

type stubTextExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubTextExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

func strPtr(s string) *string { return &s }

func newTestEngine(t *testing.T, fields FieldExtractor, text TextExtractor) *Engine {
	t.Helper()
	e, err := New(catalog.New(), fields, text, Options{}, nil)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}
	return e
}

func TestEvaluate(t *testing.T) {
	fields := &stubFieldExtractor{
		record: &types.ResumeFields{
			Name:         strPtr("Jane Doe"),
			Email:        strPtr("jane@example.com"),
			MobileNumber: strPtr("+1 555 0100"),
			Skills:       []string{"python", "tensorflow"},
			PageCount:    2,
		},
	}
	text := &stubTextExtractor{
		text: "Objective\nProjects\nAchievements\nskilled in python",
	}

	e := newTestEngine(t, fields, text)
	result, err := e.Evaluate(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PredictedField != types.FieldDataScience {
		t.Errorf("expected Data Science, got %q", result.PredictedField)
	}
	if result.CandidateLevel != types.LevelIntermediate {
		t.Errorf("expected Intermediate, got %q", result.CandidateLevel)
	}
	if result.ResumeScore != 60 {
		t.Errorf("expected score 60, got %d", result.ResumeScore)
	}
	if len(result.RecommendedCourses) != 5 {
		t.Errorf("expected 5 recommended courses, got %d", len(result.RecommendedCourses))
	}
	if len(result.RecommendedSkills) == 0 {
		t.Error("expected recommended skills for a classified field")
	}
	if result.ResumeVideo == nil || result.InterviewVideo == nil {
		t.Error("expected both video recommendations")
	}
	if result.Name == nil || *result.Name != "Jane Doe" {
		t.Error("expected name to pass through")
	}
	if result.Timestamp.IsZero() || time.Since(result.Timestamp) > time.Minute {
		t.Errorf("expected a fresh timestamp, got %v", result.Timestamp)
	}
}

func TestEvaluateFieldExtractionFailureShortCircuits(t *testing.T) {
	fields := &stubFieldExtractor{err: fmt.Errorf("document is encrypted")}
	text := &stubTextExtractor{text: "Objective"}

	e := newTestEngine(t, fields, text)
	_, err := e.Evaluate(context.Background(), "resume.pdf")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !errors.IsAnalysisError(err) {
		t.Errorf("expected an analysis error, got %T: %v", err, err)
	}
	if text.calls != 0 {
		t.Errorf("expected text extractor to be skipped, called %d times", text.calls)
	}

	appErr := err.(*errors.AppError)
	if appErr.Code != errors.ErrCodeAnalysisFailed {
		t.Errorf("expected code %q, got %q", errors.ErrCodeAnalysisFailed, appErr.Code)
	}
	if appErr.Unwrap() == nil {
		t.Error("expected the extractor cause to be wrapped")
	}
}

func TestEvaluateNilRecord(t *testing.T) {
	fields := &stubFieldExtractor{record: nil}
	text := &stubTextExtractor{}

	e := newTestEngine(t, fields, text)
	_, err := e.Evaluate(context.Background(), "resume.pdf")
	if err == nil {
		t.Fatal("expected error but got none")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeNoResumeData {
		t.Errorf("expected code %q, got %q", errors.ErrCodeNoResumeData, appErr.Code)
	}
	if text.calls != 0 {
		t.Errorf("expected text extractor to be skipped, called %d times", text.calls)
	}
}

func TestEvaluateTextExtractionFailure(t *testing.T) {
	fields := &stubFieldExtractor{record: &types.ResumeFields{PageCount: 1}}
	text := &stubTextExtractor{err: fmt.Errorf("corrupt xref table")}

	e := newTestEngine(t, fields, text)
	_, err := e.Evaluate(context.Background(), "resume.pdf")
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !errors.IsAnalysisError(err) {
		t.Errorf("expected an analysis error, got %T: %v", err, err)
	}
	if fields.calls != 1 {
		t.Errorf("expected one field extraction call, got %d", fields.calls)
	}
}

func TestEvaluateUnmatchedResume(t *testing.T) {
	// No recognizable skills, no sections, unusable page count. Still a
	// valid result, not an error.
	fields := &stubFieldExtractor{
		record: &types.ResumeFields{Skills: nil, PageCount: 0},
	}
	text := &stubTextExtractor{text: "plain unstructured text"}

	e := newTestEngine(t, fields, text)
	result, err := e.Evaluate(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.PredictedField != types.FieldOther {
		t.Errorf("expected Other, got %q", result.PredictedField)
	}
	if result.CandidateLevel != types.LevelUnknown {
		t.Errorf("expected Unknown, got %q", result.CandidateLevel)
	}
	if result.ResumeScore != 0 {
		t.Errorf("expected score 0, got %d", result.ResumeScore)
	}
	if result.RecommendedCourses != nil {
		t.Errorf("expected no courses for Other, got %d", len(result.RecommendedCourses))
	}
	if result.Skills == nil || len(result.Skills) != 0 {
		t.Errorf("expected empty non-nil skills, got %v", result.Skills)
	}
	if result.Name != nil {
		t.Errorf("expected nil name, got %q", *result.Name)
	}
	// Video picks do not depend on classification
	if result.ResumeVideo == nil || result.InterviewVideo == nil {
		t.Error("expected video recommendations even for unmatched resumes")
	}
}

func TestNewInvalidMatcher(t *testing.T) {
	_, err := New(catalog.New(), &stubFieldExtractor{}, &stubTextExtractor{}, Options{Matcher: "fuzzy"}, nil)
	if err == nil {
		t.Fatal("expected error for invalid matcher option")
	}
}
