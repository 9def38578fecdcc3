package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docfoundry/docgen-mcp/document"
	"github.com/docfoundry/docgen-mcp/generate"
	"github.com/docfoundry/docgen-mcp/schema"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("get_resume_schema",
		mcp.WithDescription("Get the JSON schema for resume data. Call this first to learn the expected structure before validating or generating."),
	), s.handleGetResumeSchema)

	s.mcp.AddTool(mcp.NewTool("get_resume_best_practices",
		mcp.WithDescription("Get guidance on writing strong resume content: highlights, ordering, section structure, and formatting conventions."),
	), s.handleResumeBestPractices)

	s.mcp.AddTool(mcp.NewTool("validate_resume",
		mcp.WithDescription("Validate resume data against the schema without generating a PDF. Returns exact field paths for every problem found."),
		mcp.WithObject("resume",
			mcp.Required(),
			mcp.Description("The resume data to validate"),
		),
	), s.handleValidateResume)

	s.mcp.AddTool(mcp.NewTool("generate_resume",
		mcp.WithDescription("Validate resume data and generate a typeset PDF. Returns a file path or a download link depending on how the server runs."),
		mcp.WithObject("resume",
			mcp.Required(),
			mcp.Description("The resume data to generate from"),
		),
		mcp.WithString("filename",
			mcp.Description("Optional output filename; derived from basics.name when omitted"),
		),
	), s.handleGenerateResume)

	s.mcp.AddTool(mcp.NewTool("get_cover_letter_schema",
		mcp.WithDescription("Get the JSON schema for cover letter data. Call this first to learn the expected structure before validating or generating."),
	), s.handleGetCoverLetterSchema)

	s.mcp.AddTool(mcp.NewTool("validate_cover_letter",
		mcp.WithDescription("Validate cover letter data against the schema without generating a PDF. Returns exact field paths for every problem found."),
		mcp.WithObject("cover_letter",
			mcp.Required(),
			mcp.Description("The cover letter data to validate"),
		),
	), s.handleValidateCoverLetter)

	s.mcp.AddTool(mcp.NewTool("generate_cover_letter",
		mcp.WithDescription("Validate cover letter data and generate a typeset PDF. Returns a file path or a download link depending on how the server runs."),
		mcp.WithObject("cover_letter",
			mcp.Required(),
			mcp.Description("The cover letter data to generate from"),
		),
		mcp.WithString("filename",
			mcp.Description("Optional output filename; derived from sender.name when omitted"),
		),
	), s.handleGenerateCoverLetter)
}

func (s *Server) handleGetResumeSchema(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := schema.ForResume()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to build resume schema: %v", err)), nil
	}
	return structuredResult(doc)
}

func (s *Server) handleGetCoverLetterSchema(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := schema.ForCoverLetter()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to build cover letter schema: %v", err)), nil
	}
	return structuredResult(doc)
}

func (s *Server) handleResumeBestPractices(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := renderPrompt(resumeBestPractices, schema.ResumeJSON, schema.ResumeURI)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to render best practices: %v", err)), nil
	}
	return structuredResult(map[string]string{
		"description":    "Best practices for writing effective resumes",
		"best_practices": text,
	})
}

func (s *Server) handleValidateResume(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, verr := wrapperPayload(request.GetArguments(), "resume", "filename")
	if verr != nil {
		return structuredResult(document.Invalid(*verr))
	}
	return structuredResult(document.ValidateResume(payload))
}

func (s *Server) handleValidateCoverLetter(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, verr := wrapperPayload(request.GetArguments(), "cover_letter", "filename")
	if verr != nil {
		return structuredResult(document.Invalid(*verr))
	}
	return structuredResult(document.ValidateCoverLetter(payload))
}

func (s *Server) handleGenerateResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, verr := wrapperPayload(request.GetArguments(), "resume", "filename")
	if verr != nil {
		return structuredResult(generationRejected(*verr))
	}
	filename := request.GetString("filename", "")
	return structuredResult(s.generator.GenerateResume(ctx, payload, filename))
}

func (s *Server) handleGenerateCoverLetter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload, verr := wrapperPayload(request.GetArguments(), "cover_letter", "filename")
	if verr != nil {
		return structuredResult(generationRejected(*verr))
	}
	filename := request.GetString("filename", "")
	return structuredResult(s.generator.GenerateCoverLetter(ctx, payload, filename))
}

// generationRejected reports a malformed argument wrapper in the
// generation result shape, keeping the generate tools' output a single
// union regardless of where the request failed.
func generationRejected(verr document.ValidationError) generate.GenerationResult {
	return generate.GenerationResult{
		Status:           generate.StatusError,
		Message:          "Validation failed",
		ValidationErrors: []document.ValidationError{verr},
	}
}

// wrapperPayload pulls the document payload out of the tool arguments.
// Unknown argument keys are rejected so a misspelled wrapper key cannot
// silently validate or generate an empty document.
func wrapperPayload(args map[string]any, docKey string, extraKeys ...string) (any, *document.ValidationError) {
	allowed := map[string]bool{docKey: true}
	for _, k := range extraKeys {
		allowed[k] = true
	}
	for k := range args {
		if !allowed[k] {
			e := document.NewValidationError("",
				fmt.Sprintf("unknown argument %q: expected an object with a %q field", k, docKey))
			return nil, &e
		}
	}
	payload, ok := args[docKey]
	if !ok {
		e := document.NewValidationError("",
			fmt.Sprintf("missing required argument %q", docKey))
		return nil, &e
	}
	return payload, nil
}

// structuredResult returns v as structured tool output with a JSON text
// fallback for clients that only read content blocks.
func structuredResult(v any) (*mcp.CallToolResult, error) {
	fallback, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result: %v", err)), nil
	}
	return mcp.NewToolResultStructured(v, string(fallback)), nil
}
