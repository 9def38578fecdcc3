// Package mcpserver assembles the MCP surface: document tools, schema
// resources, and writing-guidance prompts, served over stdio or
// streamable HTTP.
package mcpserver

import (
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/docfoundry/docgen-mcp/generate"
	"github.com/docfoundry/docgen-mcp/version"
)

const serverName = "docgen-mcp"

const instructions = `Document generation server for resumes and cover letters.

Workflow: fetch the schema for the document type (get_resume_schema or
get_cover_letter_schema), draft the payload, check it with validate_resume
or validate_cover_letter, then call generate_resume or generate_cover_letter
to produce a typeset PDF. Validation errors carry exact field paths like
work[0].position. The best-practices prompts give writing guidance for
each document type.`

// Server wraps the MCP protocol server around the generation pipeline
type Server struct {
	generator *generate.Generator
	mcp       *server.MCPServer
}

// New builds the MCP server and registers all tools, resources, and
// prompts against the given generator.
func New(generator *generate.Generator) *Server {
	s := &Server{
		generator: generator,
		mcp: server.NewMCPServer(
			serverName,
			version.Get().Version,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(false, true),
			server.WithPromptCapabilities(true),
			server.WithInstructions(instructions),
		),
	}

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// HTTPHandler returns the streamable HTTP transport for mounting under
// /mcp on an HTTP router.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp,
		server.WithEndpointPath("/mcp"),
	)
}
