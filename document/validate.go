package document

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Validation result status discriminators
const (
	StatusValid   = "valid"
	StatusInvalid = "invalid"
)

// ValidationError is a single validation error with location information
type ValidationError struct {
	// Path to the error location (e.g., "basics.email", "work[0].company").
	// Empty when no location could be determined.
	Path string `json:"path"`
	// Human-readable error message
	Message string `json:"message"`
}

// NewValidationError creates a new validation error
func NewValidationError(path, message string) ValidationError {
	return ValidationError{Path: path, Message: message}
}

// ValidationResult is the outcome of validating an untyped payload. Exactly
// one of the document fields is set when Status is "valid"; Errors is set
// when Status is "invalid". Never both.
type ValidationResult struct {
	Status      string            `json:"status"`
	Resume      *Resume           `json:"resume,omitempty"`
	CoverLetter *CoverLetter      `json:"cover_letter,omitempty"`
	Errors      []ValidationError `json:"errors,omitempty"`
}

// Valid reports whether the result carries a validated document
func (r ValidationResult) Valid() bool {
	return r.Status == StatusValid
}

// Invalid builds an invalid result from one or more errors
func Invalid(errs ...ValidationError) ValidationResult {
	return ValidationResult{Status: StatusInvalid, Errors: errs}
}

// ValidateResume decodes an untyped payload into a Resume or reports
// path-annotated validation errors. Paths are exact breadcrumbs carried
// through the decode and the required-field walk, not heuristics inferred
// from error text.
func ValidateResume(raw any) ValidationResult {
	data, err := json.Marshal(raw)
	if err != nil {
		return Invalid(NewValidationError("", fmt.Sprintf("payload is not serializable: %v", err)))
	}

	var resume Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return Invalid(decodeErrors(err)...)
	}

	var errs []ValidationError
	if !hasKey(raw, "basics") {
		errs = append(errs, NewValidationError("basics", "missing required field: basics"))
	} else {
		if resume.Basics.Name == "" {
			errs = append(errs, NewValidationError("basics.name", "missing required field: name"))
		}
		if resume.Basics.Email == "" {
			errs = append(errs, NewValidationError("basics.email", "missing required field: email"))
		}
		for i, p := range resume.Basics.Profiles {
			if p.Network == "" {
				errs = append(errs, NewValidationError(fmt.Sprintf("basics.profiles[%d].network", i), "missing required field: network"))
			}
			if p.URL == "" {
				errs = append(errs, NewValidationError(fmt.Sprintf("basics.profiles[%d].url", i), "missing required field: url"))
			}
		}
	}
	for i, w := range resume.Work {
		if w.Company == "" {
			errs = append(errs, NewValidationError(fmt.Sprintf("work[%d].company", i), "missing required field: company"))
		}
		if w.Position == "" {
			errs = append(errs, NewValidationError(fmt.Sprintf("work[%d].position", i), "missing required field: position"))
		}
	}
	for i, e := range resume.Education {
		if e.Institution == "" {
			errs = append(errs, NewValidationError(fmt.Sprintf("education[%d].institution", i), "missing required field: institution"))
		}
	}
	for i, s := range resume.Skills {
		if s.Name == "" {
			errs = append(errs, NewValidationError(fmt.Sprintf("skills[%d].name", i), "missing required field: name"))
		}
	}
	for i, p := range resume.Projects {
		if p.Name == "" {
			errs = append(errs, NewValidationError(fmt.Sprintf("projects[%d].name", i), "missing required field: name"))
		}
	}
	for i, c := range resume.Certifications {
		if c.Name == "" {
			errs = append(errs, NewValidationError(fmt.Sprintf("certifications[%d].name", i), "missing required field: name"))
		}
	}
	for i, a := range resume.Awards {
		if a.Title == "" {
			errs = append(errs, NewValidationError(fmt.Sprintf("awards[%d].title", i), "missing required field: title"))
		}
	}
	for i, l := range resume.Languages {
		if l.Language == "" {
			errs = append(errs, NewValidationError(fmt.Sprintf("languages[%d].language", i), "missing required field: language"))
		}
	}
	if len(errs) > 0 {
		return Invalid(errs...)
	}

	resume.normalize()
	return ValidationResult{Status: StatusValid, Resume: &resume}
}

// ValidateCoverLetter decodes an untyped payload into a CoverLetter or
// reports path-annotated validation errors.
func ValidateCoverLetter(raw any) ValidationResult {
	data, err := json.Marshal(raw)
	if err != nil {
		return Invalid(NewValidationError("", fmt.Sprintf("payload is not serializable: %v", err)))
	}

	var letter CoverLetter
	if err := json.Unmarshal(data, &letter); err != nil {
		return Invalid(decodeErrors(err)...)
	}

	var errs []ValidationError
	if !hasKey(raw, "sender") {
		errs = append(errs, NewValidationError("sender", "missing required field: sender"))
	} else {
		if letter.Sender.Name == "" {
			errs = append(errs, NewValidationError("sender.name", "missing required field: name"))
		}
		if letter.Sender.Email == "" {
			errs = append(errs, NewValidationError("sender.email", "missing required field: email"))
		}
	}
	if !hasKey(raw, "recipient") {
		errs = append(errs, NewValidationError("recipient", "missing required field: recipient"))
	} else if letter.Recipient.Company == "" {
		errs = append(errs, NewValidationError("recipient.company", "missing required field: company"))
	}
	if letter.Opening == "" {
		errs = append(errs, NewValidationError("opening", "missing required field: opening"))
	}
	if !hasKey(raw, "body") {
		errs = append(errs, NewValidationError("body", "missing required field: body"))
	}
	if letter.Closing == "" {
		errs = append(errs, NewValidationError("closing", "missing required field: closing"))
	}
	if len(errs) > 0 {
		return Invalid(errs...)
	}

	letter.normalize()
	return ValidationResult{Status: StatusValid, CoverLetter: &letter}
}

// hasKey reports whether an untyped payload is an object carrying the key.
// Non-object payloads are handled by the decoder, which reports the type
// mismatch before presence checks run.
func hasKey(raw any, key string) bool {
	m, ok := raw.(map[string]any)
	if !ok {
		return true
	}
	_, present := m[key]
	return present
}

// listFields are the document fields decoded into slices; their breadcrumb
// segments render with a [] marker since element indexes are not available
// from the decoder.
var listFields = map[string]bool{
	"work":           true,
	"education":      true,
	"skills":         true,
	"projects":       true,
	"certifications": true,
	"awards":         true,
	"languages":      true,
	"profiles":       true,
	"highlights":     true,
	"keywords":       true,
	"body":           true,
	"sectionOrder":   true,
}

// decodeErrors converts a JSON decode failure into validation errors with
// the most precise path the decoder can provide.
func decodeErrors(err error) []ValidationError {
	var typeErr *json.UnmarshalTypeError
	if ok := asTypeError(err, &typeErr); ok {
		return []ValidationError{NewValidationError(
			bracketPath(typeErr.Field),
			fmt.Sprintf("invalid type: expected %s, found %s", kindName(typeErr.Type), typeErr.Value),
		)}
	}
	return []ValidationError{NewValidationError("", err.Error())}
}

func asTypeError(err error, target **json.UnmarshalTypeError) bool {
	te, ok := err.(*json.UnmarshalTypeError)
	if !ok {
		return false
	}
	*target = te
	return true
}

// bracketPath rewrites a decoder field breadcrumb ("work.position") into the
// documented path grammar ("work[].position").
func bracketPath(field string) string {
	if field == "" {
		return ""
	}
	segments := strings.Split(field, ".")
	for i, seg := range segments {
		if listFields[seg] && i < len(segments)-1 {
			segments[i] = seg + "[]"
		}
	}
	return strings.Join(segments, ".")
}

// kindName names the JSON kind the decoder expected for a Go type
func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Pointer:
		return kindName(t.Elem())
	default:
		return t.Kind().String()
	}
}
