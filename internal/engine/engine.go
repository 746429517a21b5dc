// Package engine implements resume evaluation: field classification from
// skills, section completeness scoring, seniority from page count, and
// randomized course/video recommendations.
package engine

import (
	"context"
	"fmt"
	"time"

	"resumescope/internal/catalog"
	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// TextExtractor produces the plain text of a resume document.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// FieldExtractor produces the structured record (contact details, skills,
// page count) of a resume document.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, path string) (*types.ResumeFields, error)
}

// Options controls evaluation behavior.
type Options struct {
	// Matcher selects the section keyword strategy: substring (default),
	// word, or regex.
	Matcher string
	// MaxCourses caps the course sample size; below 1 selects the default.
	MaxCourses int
}

// Engine orchestrates one resume evaluation end to end.
type Engine struct {
	fields     FieldExtractor
	text       TextExtractor
	classifier *FieldClassifier
	scanner    *SectionScanner
	sampler    *Sampler
	catalog    *catalog.Catalog
	logger     *errors.Logger
}

// New creates an evaluation engine over the given catalog and extractors.
func New(cat *catalog.Catalog, fields FieldExtractor, text TextExtractor, opts Options, logger *errors.Logger) (*Engine, error) {
	matcher, err := NewMatcher(opts.Matcher)
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"invalid section matcher configuration", err)
	}

	return &Engine{
		fields:     fields,
		text:       text,
		classifier: NewFieldClassifier(cat),
		scanner:    NewSectionScanner(cat, matcher),
		sampler:    NewSampler(cat, opts.MaxCourses),
		catalog:    cat,
		logger:     logger,
	}, nil
}

// Evaluate analyzes the resume document at path and assembles the full
// result. Field extraction runs first; when it fails or yields no record,
// evaluation stops before any text extraction is attempted. Extractor
// failures surface as analysis errors carrying the cause, so callers can
// distinguish them from unexpected internal failures.
func (e *Engine) Evaluate(ctx context.Context, path string) (*types.AnalysisResult, error) {
	record, err := e.fields.ExtractFields(ctx, path)
	if err != nil {
		return nil, errors.NewAnalysisError(errors.ErrCodeAnalysisFailed,
			fmt.Sprintf("resume field extraction failed: %v", err), err)
	}
	if record == nil {
		return nil, errors.NewAnalysisError(errors.ErrCodeNoResumeData,
			"extraction produced no data", nil)
	}

	text, err := e.text.ExtractText(ctx, path)
	if err != nil {
		return nil, errors.NewAnalysisError(errors.ErrCodeAnalysisFailed,
			fmt.Sprintf("resume text extraction failed: %v", err), err)
	}

	score, breakdown := e.scanner.Scan(text)
	field := e.classifier.Classify(record.Skills)
	level := LevelForPages(record.PageCount)

	skills := record.Skills
	if skills == nil {
		skills = []string{}
	}

	result := &types.AnalysisResult{
		Name:               record.Name,
		Email:              record.Email,
		MobileNumber:       record.MobileNumber,
		Skills:             skills,
		PageCount:          record.PageCount,
		CandidateLevel:     level,
		PredictedField:     field,
		RecommendedSkills:  e.catalog.RecommendedSkills(field),
		RecommendedCourses: e.sampler.Courses(field),
		ResumeScore:        score,
		ScoreBreakdown:     breakdown,
		ResumeVideo:        e.sampler.ResumeVideo(),
		InterviewVideo:     e.sampler.InterviewVideo(),
		Timestamp:          time.Now().UTC(),
	}

	if e.logger != nil {
		e.logger.Debug("Resume evaluation completed",
			"predicted_field", field,
			"candidate_level", level,
			"resume_score", score,
			"skills", len(skills),
			"pages", record.PageCount)
	}

	return result, nil
}
