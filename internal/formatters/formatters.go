package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumescope/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult, *types.AnalysisResult:
		return "AnalysisResult"
	default:
		return "any"
	}
}

func toAnalysisResult(data any) (*types.AnalysisResult, error) {
	switch v := data.(type) {
	case types.AnalysisResult:
		return &v, nil
	case *types.AnalysisResult:
		return v, nil
	default:
		return nil, fmt.Errorf("expected AnalysisResult, got %T", data)
	}
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return "(not found)"
	}
	return *s
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, err := toAnalysisResult(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Name:   %s\n", orUnknown(result.Name)))
	output.WriteString(fmt.Sprintf("Email:  %s\n", orUnknown(result.Email)))
	output.WriteString(fmt.Sprintf("Mobile: %s\n", orUnknown(result.MobileNumber)))
	output.WriteString(fmt.Sprintf("Pages:  %d\n\n", result.PageCount))

	output.WriteString(fmt.Sprintf("Candidate Level: %s\n", result.CandidateLevel))
	output.WriteString(fmt.Sprintf("Predicted Field: %s\n", result.PredictedField))
	output.WriteString(fmt.Sprintf("Resume Score:    %d/100\n\n", result.ResumeScore))

	output.WriteString("=== SECTION BREAKDOWN ===\n")
	for _, section := range types.Sections {
		mark := "missing"
		if result.ScoreBreakdown[section] {
			mark = "present"
		}
		output.WriteString(fmt.Sprintf("  %-12s %s\n", section, mark))
	}
	output.WriteString("\n")

	if len(result.Skills) > 0 {
		output.WriteString("=== DETECTED SKILLS ===\n")
		for _, skill := range result.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.RecommendedSkills) > 0 {
		output.WriteString("=== RECOMMENDED SKILLS ===\n")
		for _, skill := range result.RecommendedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.RecommendedCourses) > 0 {
		output.WriteString("=== RECOMMENDED COURSES ===\n")
		for i, course := range result.RecommendedCourses {
			output.WriteString(fmt.Sprintf("%d. %s\n   %s\n", i+1, course.Name, course.Link))
		}
		output.WriteString("\n")
	}

	if result.ResumeVideo != nil {
		output.WriteString("Resume tips video:    ")
		output.WriteString(result.ResumeVideo.Link)
		output.WriteString("\n")
	}
	if result.InterviewVideo != nil {
		output.WriteString("Interview tips video: ")
		output.WriteString(result.InterviewVideo.Link)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, err := toAnalysisResult(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Name:** %s\n\n", orUnknown(result.Name)))
	output.WriteString(fmt.Sprintf("**Email:** %s\n\n", orUnknown(result.Email)))
	output.WriteString(fmt.Sprintf("**Mobile:** %s\n\n", orUnknown(result.MobileNumber)))
	output.WriteString(fmt.Sprintf("**Pages:** %d\n\n", result.PageCount))
	output.WriteString(fmt.Sprintf("**Candidate Level:** %s\n\n", result.CandidateLevel))
	output.WriteString(fmt.Sprintf("**Predicted Field:** %s\n\n", result.PredictedField))
	output.WriteString(fmt.Sprintf("**Resume Score:** %d/100\n\n", result.ResumeScore))

	output.WriteString("## Section Breakdown\n\n")
	for _, section := range types.Sections {
		mark := "missing"
		if result.ScoreBreakdown[section] {
			mark = "present"
		}
		output.WriteString(fmt.Sprintf("- **%s:** %s\n", section, mark))
	}
	output.WriteString("\n")

	if len(result.Skills) > 0 {
		output.WriteString("## Detected Skills\n\n")
		for _, skill := range result.Skills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.RecommendedSkills) > 0 {
		output.WriteString("## Recommended Skills\n\n")
		for _, skill := range result.RecommendedSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.RecommendedCourses) > 0 {
		output.WriteString("## Recommended Courses\n\n")
		for i, course := range result.RecommendedCourses {
			output.WriteString(fmt.Sprintf("%d. [%s](%s)\n", i+1, course.Name, course.Link))
		}
		output.WriteString("\n")
	}

	if result.ResumeVideo != nil {
		output.WriteString(fmt.Sprintf("**Resume tips:** [%s](%s)\n\n", result.ResumeVideo.Title, result.ResumeVideo.Link))
	}
	if result.InterviewVideo != nil {
		output.WriteString(fmt.Sprintf("**Interview tips:** [%s](%s)\n", result.InterviewVideo.Title, result.InterviewVideo.Link))
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
