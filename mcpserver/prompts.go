package mcpserver

import (
	"context"
	_ "embed"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docfoundry/docgen-mcp/schema"
)

//go:embed prompts/resume-best-practices.md
var resumeBestPractices string

//go:embed prompts/cover-letter-best-practices.md
var coverLetterBestPractices string

//go:embed prompts/document-type-guide.md
var documentTypeGuide string

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("resume-best-practices",
		mcp.WithPromptDescription("Guidance for writing effective resume content, with the resume data schema"),
	), func(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := renderPrompt(resumeBestPractices, schema.ResumeJSON, schema.ResumeURI)
		if err != nil {
			return nil, err
		}
		return promptResult("Best practices for writing effective resumes", text), nil
	})

	s.mcp.AddPrompt(mcp.NewPrompt("cover-letter-best-practices",
		mcp.WithPromptDescription("Guidance for writing effective cover letters, with the cover letter data schema"),
	), func(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text, err := renderPrompt(coverLetterBestPractices, schema.CoverLetterJSON, schema.CoverLetterURI)
		if err != nil {
			return nil, err
		}
		return promptResult("Best practices for writing effective cover letters", text), nil
	})

	s.mcp.AddPrompt(mcp.NewPrompt("document-type-guide",
		mcp.WithPromptDescription("How to choose between a resume and a cover letter, and the workflow for each"),
	), func(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		text := strings.NewReplacer(
			"{{RESUME_SCHEMA_URI}}", schema.ResumeURI,
			"{{COVER_LETTER_SCHEMA_URI}}", schema.CoverLetterURI,
		).Replace(documentTypeGuide)
		return promptResult("Guide to choosing and producing document types", text), nil
	})
}

// renderPrompt fills the schema placeholders in a prompt template
func renderPrompt(template string, schemaJSON func() (string, error), uri string) (string, error) {
	rendered, err := schemaJSON()
	if err != nil {
		return "", err
	}
	return strings.NewReplacer(
		"{{SCHEMA_JSON}}", rendered,
		"{{SCHEMA_URI}}", uri,
	).Replace(template), nil
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}
