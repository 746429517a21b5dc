package types

import "time"

// Field is the professional field a candidate is classified into.
type Field string

const (
	FieldDataScience Field = "Data Science"
	FieldWeb         Field = "Web Development"
	FieldAndroid     Field = "Android Development"
	FieldIOS         Field = "IOS Development"
	FieldUIUX        Field = "UI-UX Development"
	FieldOther       Field = "Other"
)

// Section is a resume section tracked for completeness scoring.
type Section string

const (
	SectionObjective    Section = "objective"
	SectionDeclaration  Section = "declaration"
	SectionHobbies      Section = "hobbies"
	SectionAchievements Section = "achievements"
	SectionProjects     Section = "projects"
)

// Sections lists all tracked sections in a stable order.
var Sections = []Section{
	SectionObjective,
	SectionDeclaration,
	SectionHobbies,
	SectionAchievements,
	SectionProjects,
}

// CandidateLevel is the seniority tier derived from document page count.
type CandidateLevel string

const (
	LevelFresher      CandidateLevel = "Fresher"
	LevelIntermediate CandidateLevel = "Intermediate"
	LevelExperienced  CandidateLevel = "Experienced"
	LevelUnknown      CandidateLevel = "Unknown"
)

// CourseEntry is a single course recommendation from the catalog.
type CourseEntry struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// VideoEntry is a single tip-video recommendation.
type VideoEntry struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// ResumeFields is the best-effort structured record produced by the
// field extractor. Contact fields are nil when not found, never "".
type ResumeFields struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	MobileNumber *string  `json:"mobile_number"`
	Skills       []string `json:"skills"`
	PageCount    int      `json:"no_of_pages"`
}

// AnalysisResult is the full output of one resume evaluation.
// It is assembled once per request and never persisted.
type AnalysisResult struct {
	Name               *string          `json:"name"`
	Email              *string          `json:"email"`
	MobileNumber       *string          `json:"mobile_number"`
	Skills             []string         `json:"skills"`
	PageCount          int              `json:"no_of_pages"`
	CandidateLevel     CandidateLevel   `json:"candidate_level"`
	PredictedField     Field            `json:"predicted_field"`
	RecommendedSkills  []string         `json:"recommended_skills"`
	RecommendedCourses []CourseEntry    `json:"recommended_courses"`
	ResumeScore        int              `json:"resume_score"`
	ScoreBreakdown     map[Section]bool `json:"score_breakdown"`
	ResumeVideo        *VideoEntry      `json:"resume_video_rec"`
	InterviewVideo     *VideoEntry      `json:"interview_video_rec"`
	Timestamp          time.Time        `json:"timestamp"`
}
