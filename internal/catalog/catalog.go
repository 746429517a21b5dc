// Package catalog holds the static evaluation data: the field and section
// keyword taxonomy, per-field recommended skills, the course catalog, and the
// tip-video pools. The taxonomy is compiled in and immutable; courses and
// videos have built-in defaults that an optional JSON file can replace.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"resumescope/internal/errors"
	"resumescope/internal/types"
)

// Catalog is the shared recommendation data for the evaluation engine.
// All accessors are safe for concurrent use; loaded data is replaced
// atomically under the lock and never mutated in place, so callers may
// read returned slices but must not modify them.
type Catalog struct {
	mu              sync.RWMutex
	courses         map[types.Field][]types.CourseEntry
	resumeVideos    []types.VideoEntry
	interviewVideos []types.VideoEntry
	source          string
	loadedAt        time.Time
	reloads         int
}

// Stats is a point-in-time summary of the catalog, exposed on /health.
type Stats struct {
	Source          string    `json:"source"`
	LoadedAt        time.Time `json:"loaded_at"`
	Reloads         int       `json:"reloads"`
	CourseFields    int       `json:"course_fields"`
	TotalCourses    int       `json:"total_courses"`
	ResumeVideos    int       `json:"resume_videos"`
	InterviewVideos int       `json:"interview_videos"`
}

// overrideFile is the on-disk JSON shape for catalog overrides. Absent
// sections keep their built-in defaults.
type overrideFile struct {
	Courses         map[string][]types.CourseEntry `json:"courses"`
	ResumeVideos    []types.VideoEntry             `json:"resume_videos"`
	InterviewVideos []types.VideoEntry             `json:"interview_videos"`
}

// New returns a catalog populated with the built-in data.
func New() *Catalog {
	return &Catalog{
		courses:         defaultCourses,
		resumeVideos:    defaultResumeVideos,
		interviewVideos: defaultInterviewVideos,
		source:          "builtin",
		loadedAt:        time.Now().UTC(),
	}
}

// LoadFromFile replaces the course and video data with the contents of the
// given JSON file. The built-in data stays active when loading fails, so a
// bad reload never leaves the catalog empty.
func (c *Catalog) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewConfigError(errors.ErrCodeCatalogLoad,
			fmt.Sprintf("failed to read catalog file %s", path), err)
	}

	var override overrideFile
	if err := json.Unmarshal(data, &override); err != nil {
		return errors.NewConfigError(errors.ErrCodeCatalogLoad,
			fmt.Sprintf("failed to parse catalog file %s", path), err)
	}

	courses, err := resolveCourseOverride(override.Courses)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if courses != nil {
		c.courses = courses
	}
	if override.ResumeVideos != nil {
		c.resumeVideos = override.ResumeVideos
	}
	if override.InterviewVideos != nil {
		c.interviewVideos = override.InterviewVideos
	}
	c.source = path
	c.loadedAt = time.Now().UTC()
	c.reloads++

	return nil
}

// resolveCourseOverride validates field names against the known taxonomy and
// converts the string-keyed JSON map into the typed course map. Returns nil
// when the override carries no courses section.
func resolveCourseOverride(raw map[string][]types.CourseEntry) (map[types.Field][]types.CourseEntry, error) {
	if raw == nil {
		return nil, nil
	}

	courses := make(map[types.Field][]types.CourseEntry, len(raw))
	for name, entries := range raw {
		field := types.Field(name)
		if _, known := fieldKeywords[field]; !known {
			return nil, errors.NewConfigError(errors.ErrCodeCatalogLoad,
				fmt.Sprintf("catalog file references unknown field %q", name), nil)
		}
		courses[field] = entries
	}
	return courses, nil
}

// FieldPrecedence returns the fields in classification order.
func (c *Catalog) FieldPrecedence() []types.Field {
	return fieldPrecedence
}

// KeywordsFor returns the indicator keywords for a field.
func (c *Catalog) KeywordsFor(field types.Field) []string {
	return fieldKeywords[field]
}

// SectionKeywords returns the detection keywords for a section.
func (c *Catalog) SectionKeywords(section types.Section) []string {
	return sectionKeywords[section]
}

// AllKeywords returns every taxonomy keyword across all fields, used as the
// skills vocabulary by the field extractor.
func (c *Catalog) AllKeywords() []string {
	var all []string
	for _, field := range fieldPrecedence {
		all = append(all, fieldKeywords[field]...)
	}
	return all
}

// RecommendedSkills returns the skill suggestions for a field. Nil for
// FieldOther, which carries no recommendations.
func (c *Catalog) RecommendedSkills(field types.Field) []string {
	return recommendedSkills[field]
}

// CoursesFor returns the course list for a field. Nil for FieldOther.
// Callers must not modify the returned slice; the sampler copies it.
func (c *Catalog) CoursesFor(field types.Field) []types.CourseEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.courses[field]
}

// ResumeVideos returns the resume-tips video pool.
func (c *Catalog) ResumeVideos() []types.VideoEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resumeVideos
}

// InterviewVideos returns the interview-tips video pool.
func (c *Catalog) InterviewVideos() []types.VideoEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.interviewVideos
}

// Stats summarizes the catalog for health reporting.
func (c *Catalog) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, entries := range c.courses {
		total += len(entries)
	}

	return Stats{
		Source:          c.source,
		LoadedAt:        c.loadedAt,
		Reloads:         c.reloads,
		CourseFields:    len(c.courses),
		TotalCourses:    total,
		ResumeVideos:    len(c.resumeVideos),
		InterviewVideos: len(c.interviewVideos),
	}
}
