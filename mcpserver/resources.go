package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/docfoundry/docgen-mcp/schema"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(mcp.NewResource(
		schema.ResumeURI,
		"Resume JSON Schema",
		mcp.WithResourceDescription("JSON Schema describing the resume data format"),
		mcp.WithMIMEType(schema.MIMEType),
	), schemaResourceHandler(schema.ResumeURI, schema.ResumeJSON))

	s.mcp.AddResource(mcp.NewResource(
		schema.CoverLetterURI,
		"Cover Letter JSON Schema",
		mcp.WithResourceDescription("JSON Schema describing the cover letter data format"),
		mcp.WithMIMEType(schema.MIMEType),
	), schemaResourceHandler(schema.CoverLetterURI, schema.CoverLetterJSON))
}

func schemaResourceHandler(uri string, render func() (string, error)) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := render()
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: schema.MIMEType,
				Text:     text,
			},
		}, nil
	}
}
