package document

// CoverLetter is a professional cover letter document
type CoverLetter struct {
	// Sender's contact information
	Sender ContactInfo `json:"sender"`

	// Recipient's information
	Recipient Recipient `json:"recipient"`

	// Date of the letter. If not provided, the current date is used.
	Date string `json:"date,omitempty" jsonschema:"description=Date in YYYY-MM-DD format. If not provided\\, current date will be used."`

	// Opening paragraph expressing interest in the position and company
	Opening string `json:"opening" jsonschema:"description=Opening paragraph expressing interest in the position and company. Should be 2-4 sentences."`

	// Body paragraphs demonstrating qualifications and fit
	Body []string `json:"body" jsonschema:"description=Body paragraphs (typically 2-3) that demonstrate qualifications\\, relevant experience\\, and cultural fit."`

	// Closing paragraph with a call to action
	Closing string `json:"closing" jsonschema:"description=Closing paragraph expressing enthusiasm and call to action. Should be 2-3 sentences."`

	// Signature line such as "Sincerely". Defaults to "Sincerely".
	Signature string `json:"signature,omitempty"`
}

// ContactInfo is the sender's contact information
type ContactInfo struct {
	// Full name
	Name string `json:"name"`

	// Email address
	Email string `json:"email" jsonschema:"format=email"`

	// Phone number
	Phone string `json:"phone,omitempty"`

	// Full address (street, city, state, zip)
	Address string `json:"address,omitempty"`

	// LinkedIn profile URL
	LinkedIn string `json:"linkedin,omitempty" jsonschema:"format=uri"`
}

// Recipient is the hiring manager or company being addressed
type Recipient struct {
	// Hiring manager's name. If unknown, use "Hiring Manager" or omit.
	Name string `json:"name,omitempty"`

	// Hiring manager's title (e.g., "Senior Engineering Manager")
	Title string `json:"title,omitempty"`

	// Company name
	Company string `json:"company"`

	// Company address (street, city, state, zip)
	Address string `json:"address,omitempty"`
}

func (c *CoverLetter) normalize() {
	if c.Body == nil {
		c.Body = []string{}
	}
}
