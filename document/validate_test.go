package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestValidateResumeValid(t *testing.T) {
	result := ValidateResume(payload(t, `{
		"basics": {"name": "John Doe", "email": "john@example.com"},
		"work": [{"company": "Tech Corp", "position": "Engineer"}]
	}`))

	require.True(t, result.Valid(), "errors: %v", result.Errors)
	require.NotNil(t, result.Resume)
	assert.Equal(t, "John Doe", result.Resume.Basics.Name)
	assert.Equal(t, "john@example.com", result.Resume.Basics.Email)
	assert.Equal(t, "Tech Corp", result.Resume.Work[0].Company)
}

func TestValidateResumeMinimalNormalizesSections(t *testing.T) {
	result := ValidateResume(payload(t, `{
		"basics": {"name": "Jane Smith", "email": "jane@example.com"}
	}`))

	require.True(t, result.Valid(), "errors: %v", result.Errors)
	r := result.Resume
	// List-typed sections echo back empty, never absent
	assert.NotNil(t, r.Work)
	assert.NotNil(t, r.Education)
	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.Projects)
	assert.NotNil(t, r.Certifications)
	assert.NotNil(t, r.Awards)
	assert.NotNil(t, r.Languages)
	assert.NotNil(t, r.Basics.Profiles)
	assert.Empty(t, r.Work)
	assert.Empty(t, r.Education)
}

func TestValidateResumeMissingBasics(t *testing.T) {
	result := ValidateResume(payload(t, `{"work": []}`))

	require.False(t, result.Valid())
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Path, "basics")
}

func TestValidateResumeMissingEmail(t *testing.T) {
	result := ValidateResume(payload(t, `{
		"basics": {"name": "John Doe"},
		"work": []
	}`))

	require.False(t, result.Valid())
	found := false
	for _, e := range result.Errors {
		if e.Path == "basics.email" {
			found = true
			assert.Contains(t, e.Message, "email")
		}
	}
	assert.True(t, found, "expected an error at basics.email, got %v", result.Errors)
}

func TestValidateResumeWrongTypeForWork(t *testing.T) {
	result := ValidateResume(payload(t, `{
		"basics": {"name": "John Doe", "email": "john@example.com"},
		"work": "not an array"
	}`))

	require.False(t, result.Valid())
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "invalid type")
	assert.Contains(t, result.Errors[0].Message, "expected array")
	assert.Equal(t, "work", result.Errors[0].Path)
}

func TestValidateResumeWorkMissingPosition(t *testing.T) {
	result := ValidateResume(payload(t, `{
		"basics": {"name": "John Doe", "email": "john@example.com"},
		"work": [{"company": "Tech Corp"}]
	}`))

	require.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "work[0].position", result.Errors[0].Path)
	assert.Contains(t, result.Errors[0].Message, "position")
}

func TestValidateResumeEmptyWorkIsValid(t *testing.T) {
	result := ValidateResume(payload(t, `{
		"basics": {"name": "John Doe", "email": "john@example.com"},
		"work": []
	}`))

	require.True(t, result.Valid(), "errors: %v", result.Errors)
	assert.Empty(t, result.Resume.Work)
}

func TestValidateResumeProfileRequiresURL(t *testing.T) {
	result := ValidateResume(payload(t, `{
		"basics": {
			"name": "John Doe",
			"email": "john@example.com",
			"profiles": [{"network": "GitHub"}]
		}
	}`))

	require.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "basics.profiles[0].url", result.Errors[0].Path)
}

func TestValidateResumeTopLevelNotObject(t *testing.T) {
	result := ValidateResume("just a string")

	require.False(t, result.Valid())
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "", result.Errors[0].Path)
	assert.Contains(t, result.Errors[0].Message, "expected object")
}

func TestValidateResumeFullFixture(t *testing.T) {
	result := ValidateResume(payload(t, `{
		"basics": {
			"name": "Jane Smith",
			"email": "jane.smith@example.com",
			"phone": "+1-555-987-6543",
			"location": "Seattle, WA",
			"summary": "Platform engineer with a decade of distributed systems work",
			"profiles": [{"network": "GitHub", "url": "https://github.com/janesmith"}]
		},
		"work": [
			{
				"company": "Tech Innovations Inc.",
				"position": "Staff Engineer",
				"startDate": "2020-03",
				"endDate": "Present",
				"highlights": ["Led migration to event-driven architecture"]
			},
			{"company": "Cloudline", "position": "Senior Engineer"}
		],
		"education": [{"institution": "University of Washington", "degree": "B.S.", "fieldOfStudy": "Computer Science"}],
		"skills": [
			{"name": "Languages", "keywords": ["Go", "Rust"]},
			{"name": "Infrastructure", "keywords": ["Kubernetes"]},
			{"name": "Databases", "keywords": ["PostgreSQL"]}
		],
		"publications": "3 peer-reviewed publications on stream processing",
		"sectionOrder": ["experience", "education", "skills"]
	}`))

	require.True(t, result.Valid(), "errors: %v", result.Errors)
	r := result.Resume
	assert.Equal(t, "Jane Smith", r.Basics.Name)
	assert.Len(t, r.Work, 2)
	assert.Len(t, r.Skills, 3)
	require.NotNil(t, r.SectionOrder)
	assert.Equal(t, []string{"experience", "education", "skills"}, *r.SectionOrder)
}

func TestSectionOrderEmptyVsAbsent(t *testing.T) {
	absent := ValidateResume(payload(t, `{
		"basics": {"name": "John Doe", "email": "john@example.com"}
	}`))
	require.True(t, absent.Valid(), "errors: %v", absent.Errors)
	assert.Nil(t, absent.Resume.SectionOrder)
	data, err := json.Marshal(absent.Resume)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sectionOrder")

	// An explicit empty list hides every section and must survive the
	// round trip into the rendered payload
	empty := ValidateResume(payload(t, `{
		"basics": {"name": "John Doe", "email": "john@example.com"},
		"sectionOrder": []
	}`))
	require.True(t, empty.Valid(), "errors: %v", empty.Errors)
	require.NotNil(t, empty.Resume.SectionOrder)
	assert.Empty(t, *empty.Resume.SectionOrder)
	data, err = json.Marshal(empty.Resume)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sectionOrder":[]`)
}

func TestValidateCoverLetterValid(t *testing.T) {
	result := ValidateCoverLetter(payload(t, `{
		"sender": {"name": "Jane Doe", "email": "jane@example.com"},
		"recipient": {"company": "Tech Corp"},
		"opening": "I am writing to apply for the position.",
		"body": ["First paragraph.", "Second paragraph."],
		"closing": "Thank you for your consideration."
	}`))

	require.True(t, result.Valid(), "errors: %v", result.Errors)
	require.NotNil(t, result.CoverLetter)
	assert.Equal(t, "Tech Corp", result.CoverLetter.Recipient.Company)
	assert.Len(t, result.CoverLetter.Body, 2)
}

func TestValidateCoverLetterMissingEmail(t *testing.T) {
	result := ValidateCoverLetter(payload(t, `{
		"sender": {"name": "Jane Doe"},
		"recipient": {"company": "Tech Corp"},
		"opening": "Opening.",
		"body": [],
		"closing": "Closing."
	}`))

	require.False(t, result.Valid())
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "sender.email", result.Errors[0].Path)
}

func TestValidateCoverLetterMissingRecipient(t *testing.T) {
	result := ValidateCoverLetter(payload(t, `{
		"sender": {"name": "Jane Doe", "email": "jane@example.com"},
		"opening": "Opening.",
		"body": ["Body."],
		"closing": "Closing."
	}`))

	require.False(t, result.Valid())
	assert.Equal(t, "recipient", result.Errors[0].Path)
}

func TestBracketPath(t *testing.T) {
	assert.Equal(t, "work[].position", bracketPath("work.position"))
	assert.Equal(t, "work", bracketPath("work"))
	assert.Equal(t, "basics.profiles[].url", bracketPath("basics.profiles.url"))
	assert.Equal(t, "", bracketPath(""))
}
