package validation

import (
	"strings"
	"testing"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestValidateBirthData_Valid(t *testing.T) {
	v := New()

	result := v.ValidateBirthData(BirthInput{
		Year: 1990, Month: 3, Day: intp(25),
		Hour: intp(14), Minute: intp(30),
		Latitude: floatp(40.7128), Longitude: floatp(-74.006), Timezone: floatp(-5),
	})
	if result.HasIssues() {
		t.Errorf("valid input flagged: %s", result.FormatReport())
	}
}

func TestValidateBirthData_OmittedFieldsAllowed(t *testing.T) {
	v := New()

	// Year and month alone are a legal minimal input.
	result := v.ValidateBirthData(BirthInput{Year: 2000, Month: 6})
	if result.HasIssues() {
		t.Errorf("minimal input flagged: %s", result.FormatReport())
	}
}

func TestValidateBirthData_OutOfRange(t *testing.T) {
	v := New()

	cases := []struct {
		name string
		in   BirthInput
		typ  IssueType
	}{
		{"month zero", BirthInput{Year: 1990, Month: 0}, IssueInvalidDate},
		{"month thirteen", BirthInput{Year: 1990, Month: 13}, IssueInvalidDate},
		{"day zero", BirthInput{Year: 1990, Month: 3, Day: intp(0)}, IssueInvalidDate},
		{"day 32", BirthInput{Year: 1990, Month: 3, Day: intp(32)}, IssueInvalidDate},
		{"feb 30", BirthInput{Year: 1990, Month: 2, Day: intp(30)}, IssueInvalidDate},
		{"feb 29 non-leap", BirthInput{Year: 1990, Month: 2, Day: intp(29)}, IssueInvalidDate},
		{"hour 24", BirthInput{Year: 1990, Month: 3, Hour: intp(24)}, IssueInvalidTime},
		{"negative minute", BirthInput{Year: 1990, Month: 3, Minute: intp(-1)}, IssueInvalidTime},
		{"latitude 91", BirthInput{Year: 1990, Month: 3, Latitude: floatp(91)}, IssueInvalidLocation},
		{"longitude -181", BirthInput{Year: 1990, Month: 3, Longitude: floatp(-181)}, IssueInvalidLocation},
		{"timezone 15", BirthInput{Year: 1990, Month: 3, Timezone: floatp(15)}, IssueInvalidTimezone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := v.ValidateBirthData(tc.in)
			if !result.HasIssues() {
				t.Fatalf("expected issue for %s", tc.name)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Type == tc.typ {
					found = true
				}
			}
			if !found {
				t.Errorf("expected issue type %s, got %+v", tc.typ, result.Issues)
			}
		})
	}
}

func TestValidateBirthData_LeapDay(t *testing.T) {
	v := New()

	if result := v.ValidateBirthData(BirthInput{Year: 2000, Month: 2, Day: intp(29)}); result.HasIssues() {
		t.Errorf("Feb 29 2000 flagged: %s", result.FormatReport())
	}
}

func TestValidateQuestion(t *testing.T) {
	v := New()

	if result := v.ValidateQuestion("What should I focus on?"); result.HasIssues() {
		t.Errorf("valid question flagged: %s", result.FormatReport())
	}
	if result := v.ValidateQuestion(""); !result.HasIssues() {
		t.Error("empty question not flagged")
	}
	if result := v.ValidateQuestion("   \t  "); !result.HasIssues() {
		t.Error("whitespace-only question not flagged")
	}
	if result := v.ValidateQuestion(strings.Repeat("a", MaxQuestionLength+1)); !result.HasIssues() {
		t.Error("overlong question not flagged")
	}
}

func TestFormatReport(t *testing.T) {
	v := New()

	clean := v.ValidateQuestion("fine")
	if report := clean.FormatReport(); report != "No problems detected." {
		t.Errorf("clean report = %q", report)
	}

	bad := v.ValidateQuestion("")
	report := bad.FormatReport()
	if !strings.Contains(report, "question must not be empty") {
		t.Errorf("report missing issue description: %q", report)
	}
}
