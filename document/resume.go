// Package document defines the document types accepted by docgen-mcp and
// validates untyped payloads against them.
//
// The types are the single source of truth: they drive JSON Schema
// generation (via the schema package), validation, and transformation to
// Typst markup. Fields without omitempty are required.
package document

// Resume is a complete resume/CV document
type Resume struct {
	// Basic personal information
	Basics Basics `json:"basics" jsonschema:"description=Basic personal and contact information"`

	// Work experience entries
	Work []WorkExperience `json:"work,omitempty"`

	// Educational background
	Education []Education `json:"education,omitempty"`

	// Skills and competencies
	Skills []Skill `json:"skills,omitempty"`

	// Projects
	Projects []Project `json:"projects,omitempty"`

	// Professional certifications
	Certifications []Certification `json:"certifications,omitempty"`

	// Awards and honors
	Awards []Award `json:"awards,omitempty"`

	// Languages spoken
	Languages []Language `json:"languages,omitempty"`

	// Publications summary (free-form text)
	Publications string `json:"publications,omitempty" jsonschema:"description=Free-form text describing publications and venues"`

	// Custom section ordering. Sections omitted from the list are hidden.
	// A pointer keeps an explicit empty list (hide everything) distinct
	// from an absent one (default order).
	SectionOrder *[]string `json:"sectionOrder,omitempty" jsonschema:"description=Custom section ordering. Valid sections: education\\, experience\\, projects\\, certifications\\, awards\\, publications\\, skills\\, languages. If not specified\\, uses default order."`
}

// Basics is the basic personal and contact information block
type Basics struct {
	// Full name
	Name string `json:"name"`

	// Email address
	Email string `json:"email" jsonschema:"format=email"`

	// Phone number
	Phone string `json:"phone,omitempty"`

	// Location (city, state/country)
	Location string `json:"location,omitempty"`

	// Professional summary or objective
	Summary string `json:"summary,omitempty"`

	// Online profiles and links
	Profiles []Profile `json:"profiles,omitempty"`
}

// Profile is an online profile or link (e.g., LinkedIn, GitHub)
type Profile struct {
	// Network or platform name (e.g., "LinkedIn", "GitHub")
	Network string `json:"network"`

	// URL to the profile
	URL string `json:"url" jsonschema:"format=uri"`
}

// WorkExperience is a single work history entry
type WorkExperience struct {
	// Company or organization name
	Company string `json:"company"`

	// Job title or position
	Position string `json:"position"`

	// Location (city, state/country)
	Location string `json:"location,omitempty"`

	// Start date in YYYY-MM-DD or YYYY-MM format
	StartDate string `json:"startDate,omitempty" jsonschema:"description=Start date in YYYY-MM-DD or YYYY-MM format"`

	// End date in YYYY-MM-DD or YYYY-MM format, or "Present"
	EndDate string `json:"endDate,omitempty" jsonschema:"description=End date in YYYY-MM-DD or YYYY-MM format\\, or 'Present' for current positions"`

	// Key achievements and responsibilities
	Highlights []string `json:"highlights,omitempty"`
}

// Education is an education entry
type Education struct {
	// Institution name
	Institution string `json:"institution"`

	// Degree or certificate type
	Degree string `json:"degree,omitempty"`

	// Field of study or major
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`

	// Location (city, state/country)
	Location string `json:"location,omitempty"`

	// Start date in YYYY-MM-DD or YYYY-MM format
	StartDate string `json:"startDate,omitempty"`

	// End date or expected graduation
	EndDate string `json:"endDate,omitempty" jsonschema:"description=End date in YYYY-MM-DD or YYYY-MM format\\, or 'Expected YYYY' for ongoing"`

	// GPA or grade
	GPA string `json:"gpa,omitempty"`

	// Notable achievements, honors, or coursework
	Highlights []string `json:"highlights,omitempty"`
}

// Skill is a skill category with related keywords
type Skill struct {
	// Skill category name (e.g., "Programming Languages", "Frameworks")
	Name string `json:"name"`

	// List of specific skills in this category
	Keywords []string `json:"keywords,omitempty"`
}

// Project is a project entry
type Project struct {
	// Project name
	Name string `json:"name"`

	// Project description or summary
	Description string `json:"description,omitempty"`

	// URL to the project
	URL string `json:"url,omitempty" jsonschema:"format=uri"`

	// Start date
	StartDate string `json:"startDate,omitempty"`

	// End date
	EndDate string `json:"endDate,omitempty"`

	// Technologies or keywords used
	Keywords []string `json:"keywords,omitempty"`

	// Key achievements or highlights
	Highlights []string `json:"highlights,omitempty"`
}

// Certification is a professional certification or license
type Certification struct {
	// Certification name
	Name string `json:"name"`

	// Issuing organization
	Issuer string `json:"issuer,omitempty"`

	// Date obtained in YYYY-MM-DD or YYYY-MM format
	Date string `json:"date,omitempty"`

	// URL to verify or view the certification
	URL string `json:"url,omitempty" jsonschema:"format=uri"`
}

// Award is an award, honor, or recognition
type Award struct {
	// Award title
	Title string `json:"title"`

	// Awarding organization or entity
	Awarder string `json:"awarder,omitempty"`

	// Date received in YYYY-MM-DD or YYYY-MM format
	Date string `json:"date,omitempty"`

	// Brief description of the award
	Summary string `json:"summary,omitempty"`
}

// Language is a language and proficiency level
type Language struct {
	// Language name (e.g., "English", "Spanish", "Mandarin")
	Language string `json:"language"`

	// Proficiency level: Native, Fluent, Professional, Intermediate, Basic
	Fluency string `json:"fluency,omitempty" jsonschema:"description=Proficiency level: Native\\, Fluent\\, Professional\\, Intermediate\\, Basic"`
}

// normalize guarantees that list-typed sections are empty, never nil, so a
// validated Resume always echoes its sections back as lists.
func (r *Resume) normalize() {
	if r.Work == nil {
		r.Work = []WorkExperience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Awards == nil {
		r.Awards = []Award{}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	if r.Basics.Profiles == nil {
		r.Basics.Profiles = []Profile{}
	}
}
