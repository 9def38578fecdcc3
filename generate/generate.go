// Package generate orchestrates the document pipeline: validate the
// payload, render it to Typst source, compile to PDF, and deliver the
// result either as a file on disk or as a short-lived download link.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docfoundry/docgen-mcp/document"
	"github.com/docfoundry/docgen-mcp/logger"
	"github.com/docfoundry/docgen-mcp/storage"
	"github.com/docfoundry/docgen-mcp/typeset"
)

// Generation result status discriminators
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// GenerationResult is the outcome of one generation request. On success
// exactly one of FilePath and DownloadURL is set, matching the delivery
// mode. On error, Message explains the failure and ValidationErrors is
// set when validation was the stage that failed.
type GenerationResult struct {
	Status           string                     `json:"status"`
	FilePath         string                     `json:"file_path,omitempty"`
	DownloadURL      string                     `json:"download_url,omitempty"`
	Message          string                     `json:"message,omitempty"`
	ValidationErrors []document.ValidationError `json:"validation_errors,omitempty"`
}

// Options configures a Generator
type Options struct {
	// TypstBinary names the compiler executable; empty means "typst"
	TypstBinary string
	// FontDir, when set, restricts font resolution to one directory
	FontDir string
	// CompileTimeout bounds a single compilation run
	CompileTimeout time.Duration
	// OutputDir receives PDFs in local delivery mode; empty means the
	// current directory
	OutputDir string
	// Store switches delivery to download links when non-nil
	Store *storage.ArtifactStore
	// BaseURL prefixes download links, e.g. "http://localhost:3000"
	BaseURL string
}

// DefaultCompileTimeout bounds compilation when Options leaves it unset
const DefaultCompileTimeout = 30 * time.Second

// Generator runs the generation pipeline. The compiler adapter is built
// fresh per compilation so each run pins its own creation timestamp.
type Generator struct {
	opts        Options
	newCompiler func() typeset.Compiler
}

// NewGenerator builds a Generator from options
func NewGenerator(opts Options) *Generator {
	if opts.CompileTimeout <= 0 {
		opts.CompileTimeout = DefaultCompileTimeout
	}
	g := &Generator{opts: opts}
	g.newCompiler = func() typeset.Compiler {
		return typeset.NewCLICompiler(opts.TypstBinary, opts.FontDir)
	}
	return g
}

// GenerateResume validates the payload and produces a resume PDF. The
// optional filename overrides the one derived from basics.name.
func (g *Generator) GenerateResume(ctx context.Context, raw any, filename string) GenerationResult {
	result := document.ValidateResume(raw)
	if !result.Valid() {
		return validationFailure(result.Errors)
	}

	source, err := typeset.TransformResume(result.Resume)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to render resume to Typst: %v", err))
	}

	if filename == "" {
		filename = deriveFilename(result.Resume.Basics.Name, resumeSuffix)
	}
	return g.compileAndDeliver(ctx, source, filename, "Resume")
}

// GenerateCoverLetter validates the payload and produces a cover letter
// PDF. The optional filename overrides the one derived from sender.name.
func (g *Generator) GenerateCoverLetter(ctx context.Context, raw any, filename string) GenerationResult {
	result := document.ValidateCoverLetter(raw)
	if !result.Valid() {
		return validationFailure(result.Errors)
	}

	source, err := typeset.TransformCoverLetter(result.CoverLetter)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to render cover letter to Typst: %v", err))
	}

	if filename == "" {
		filename = deriveFilename(result.CoverLetter.Sender.Name, coverLetterSuffix)
	}
	return g.compileAndDeliver(ctx, source, filename, "Cover letter")
}

func (g *Generator) compileAndDeliver(ctx context.Context, source, filename, kind string) GenerationResult {
	ctx, cancel := context.WithTimeout(ctx, g.opts.CompileTimeout)
	defer cancel()

	compiler := g.newCompiler()
	pdf, diags, err := compiler.Compile(ctx, source)
	if err != nil {
		return errorResult(fmt.Sprintf("Typst compilation failed: %v", err))
	}
	if typeset.HasErrors(diags) {
		return errorResult("Typst compilation failed:\n" + typeset.FormatDiagnostics(diags))
	}
	for _, d := range diags {
		logger.Warnw("typst warning", "message", d.Message)
	}

	if g.opts.Store != nil {
		return g.deliverLink(pdf, filename, kind)
	}
	return g.deliverFile(pdf, filename, kind)
}

func (g *Generator) deliverLink(pdf []byte, filename, kind string) GenerationResult {
	id := g.opts.Store.Store(pdf, filename)
	url := strings.TrimSuffix(g.opts.BaseURL, "/") + "/files/" + id.String()
	logger.Infow("document generated", "kind", kind, "filename", filename, "bytes", len(pdf), "id", id)
	return GenerationResult{
		Status:      StatusSuccess,
		DownloadURL: url,
		Message: fmt.Sprintf("%s generated successfully. Download it within %s from %s",
			kind, ttlPhrase(g.opts.Store.TTL()), url),
	}
}

func (g *Generator) deliverFile(pdf []byte, filename, kind string) GenerationResult {
	path := filepath.Join(g.opts.OutputDir, filename)
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return errorResult(fmt.Sprintf("Failed to write PDF to '%s': %v", path, err))
	}
	logger.Infow("document generated", "kind", kind, "path", path, "bytes", len(pdf))
	return GenerationResult{
		Status:   StatusSuccess,
		FilePath: path,
		Message:  fmt.Sprintf("%s generated successfully at %s", kind, path),
	}
}

func validationFailure(errs []document.ValidationError) GenerationResult {
	return GenerationResult{
		Status:           StatusError,
		Message:          "Validation failed",
		ValidationErrors: errs,
	}
}

func errorResult(message string) GenerationResult {
	return GenerationResult{Status: StatusError, Message: message}
}

// ttlPhrase renders a TTL for user-facing messages
func ttlPhrase(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	m := int(d / time.Minute)
	if m == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}
