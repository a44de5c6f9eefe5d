// Package validation checks user-supplied reading inputs before they reach
// the engines. The engines themselves stay permissive; everything a user can
// type wrong is caught here.
package validation

import (
	"fmt"
	"strings"
	"time"
)

// IssueType classifies a detected input problem.
type IssueType string

const (
	IssueInvalidDate     IssueType = "invalid_date"
	IssueInvalidTime     IssueType = "invalid_time"
	IssueInvalidLocation IssueType = "invalid_location"
	IssueInvalidTimezone IssueType = "invalid_timezone"
	IssueEmptyQuestion   IssueType = "empty_question"
	IssueQuestionTooLong IssueType = "question_too_long"
)

// Issue is one detected input problem.
type Issue struct {
	Type        IssueType
	Field       string
	Description string
}

// Result collects all issues found by a validation pass.
type Result struct {
	Issues []Issue
}

func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues.
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, issue := range r.Issues {
		report += fmt.Sprintf("- %s\n", issue.Description)
	}
	return report
}

// MaxQuestionLength caps free-form questions for tarot and I Ching readings.
const MaxQuestionLength = 500

// Validator validates reading inputs.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// BirthInput is the raw birth data as collected from the user, before the
// chart defaults are applied. Nil means the field was omitted.
type BirthInput struct {
	Year      int
	Month     int
	Day       *int
	Hour      *int
	Minute    *int
	Latitude  *float64
	Longitude *float64
	Timezone  *float64
}

// ValidateBirthData checks a birth input for out-of-range fields. Omitted
// fields are fine; the chart applies defaults for them.
func (v *Validator) ValidateBirthData(in BirthInput) Result {
	result := Result{Issues: []Issue{}}

	if in.Month < 1 || in.Month > 12 {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidDate,
			Field:       "month",
			Description: fmt.Sprintf("month %d is out of range (1-12)", in.Month),
		})
	}

	if in.Day != nil {
		maxDay := 31
		if in.Month >= 1 && in.Month <= 12 {
			maxDay = daysInMonth(in.Year, in.Month)
		}
		if *in.Day < 1 || *in.Day > maxDay {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidDate,
				Field:       "day",
				Description: fmt.Sprintf("day %d is out of range for %d-%02d (1-%d)", *in.Day, in.Year, in.Month, maxDay),
			})
		}
	}

	if in.Hour != nil && (*in.Hour < 0 || *in.Hour > 23) {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidTime,
			Field:       "hour",
			Description: fmt.Sprintf("hour %d is out of range (0-23)", *in.Hour),
		})
	}
	if in.Minute != nil && (*in.Minute < 0 || *in.Minute > 59) {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidTime,
			Field:       "minute",
			Description: fmt.Sprintf("minute %d is out of range (0-59)", *in.Minute),
		})
	}

	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90) {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidLocation,
			Field:       "latitude",
			Description: fmt.Sprintf("latitude %g is out of range (-90 to 90)", *in.Latitude),
		})
	}
	if in.Longitude != nil && (*in.Longitude < -180 || *in.Longitude > 180) {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidLocation,
			Field:       "longitude",
			Description: fmt.Sprintf("longitude %g is out of range (-180 to 180)", *in.Longitude),
		})
	}
	if in.Timezone != nil && (*in.Timezone < -12 || *in.Timezone > 14) {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueInvalidTimezone,
			Field:       "timezone",
			Description: fmt.Sprintf("UTC offset %g is out of range (-12 to 14)", *in.Timezone),
		})
	}

	return result
}

// ValidateQuestion checks a free-form reading question.
func (v *Validator) ValidateQuestion(question string) Result {
	result := Result{Issues: []Issue{}}

	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueEmptyQuestion,
			Field:       "question",
			Description: "question must not be empty",
		})
	}
	if len(question) > MaxQuestionLength {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueQuestionTooLong,
			Field:       "question",
			Description: fmt.Sprintf("question is %d characters, the limit is %d", len(question), MaxQuestionLength),
		})
	}

	return result
}

func daysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
