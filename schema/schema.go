// Package schema derives JSON Schemas from the document types by
// reflection. The schemas are published documentation for MCP clients;
// validation in the document package is independent and authoritative.
package schema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/docfoundry/docgen-mcp/document"
	"github.com/docfoundry/docgen-mcp/errors"
)

// Resource URIs for the published schemas
const (
	ResumeURI      = "docgen://schemas/resume"
	CoverLetterURI = "docgen://schemas/cover-letter"
)

// MIMEType is the media type served for schema resources
const MIMEType = "application/schema+json"

// ForResume returns the JSON Schema for resume documents
func ForResume() (*jsonschema.Schema, error) {
	return reflect(&document.Resume{})
}

// ForCoverLetter returns the JSON Schema for cover letter documents
func ForCoverLetter() (*jsonschema.Schema, error) {
	return reflect(&document.CoverLetter{})
}

// ResumeJSON returns the resume schema rendered as indented JSON
func ResumeJSON() (string, error) {
	s, err := ForResume()
	if err != nil {
		return "", err
	}
	return render(s)
}

// CoverLetterJSON returns the cover letter schema rendered as indented JSON
func CoverLetterJSON() (string, error) {
	s, err := ForCoverLetter()
	if err != nil {
		return "", err
	}
	return render(s)
}

func reflect(doc any) (*jsonschema.Schema, error) {
	r := jsonschema.Reflector{
		// Inline definitions so clients see one self-contained document
		DoNotReference: true,
	}
	s := r.Reflect(doc)
	if s == nil {
		return nil, errors.New("schema reflection returned nil")
	}
	return s, nil
}

func render(s *jsonschema.Schema) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize schema")
	}
	return string(data), nil
}
