package typeset

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/docfoundry/docgen-mcp/errors"
	"github.com/docfoundry/docgen-mcp/logger"
)

// DefaultBinary is the Typst executable looked up on PATH when the
// configuration does not name one.
const DefaultBinary = "typst"

// CLICompiler runs the Typst CLI as a subprocess, feeding source on stdin
// and reading the PDF from stdout. Compilation is rootless: the source has
// no working directory, so file reads inside templates fail rather than
// reach the host filesystem.
type CLICompiler struct {
	binary    string
	fontDir   string
	timestamp time.Time
}

// NewCLICompiler builds a compiler around the given binary. fontDir, when
// non-empty, restricts font resolution to that directory for reproducible
// output across hosts. The creation timestamp is pinned at construction so
// retries within one generation embed the same metadata.
func NewCLICompiler(binary, fontDir string) *CLICompiler {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CLICompiler{
		binary:    binary,
		fontDir:   fontDir,
		timestamp: time.Now().UTC(),
	}
}

// Available reports whether the binary can be resolved on PATH
func (c *CLICompiler) Available() bool {
	_, err := exec.LookPath(c.binary)
	return err == nil
}

// Compile runs `typst compile - -` with source on stdin. The returned
// error covers invocation faults only; source problems come back as
// diagnostics with a nil PDF.
func (c *CLICompiler) Compile(ctx context.Context, source string) ([]byte, []Diagnostic, error) {
	args := []string{
		"compile",
		"--format", "pdf",
		"--creation-timestamp", strconv.FormatInt(c.timestamp.Unix(), 10),
	}
	if c.fontDir != "" {
		args = append(args, "--font-path", c.fontDir, "--ignore-system-fonts")
	}
	args = append(args, "-", "-")

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdin = strings.NewReader(source)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	diags := parseDiagnostics(stderr.String())

	if ctx.Err() != nil {
		return nil, diags, errors.Wrap(ctx.Err(), "typst compilation did not finish")
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, nil, errors.Wrapf(runErr, "failed to invoke %s", c.binary)
		}
		if len(diags) == 0 {
			diags = []Diagnostic{{Severity: SeverityError, Message: strings.TrimSpace(stderr.String())}}
		}
		logger.Debugw("typst compile failed", "diagnostics", len(diags), "duration", time.Since(start))
		return nil, diags, nil
	}

	logger.Debugw("typst compile finished",
		"bytes", stdout.Len(),
		"warnings", len(diags),
		"duration", time.Since(start))
	return stdout.Bytes(), diags, nil
}

// parseDiagnostics splits Typst stderr into per-diagnostic messages.
// Headline lines start with "error:" or "warning:"; indented lines that
// follow (source snippets, hints) belong to the preceding headline.
func parseDiagnostics(stderr string) []Diagnostic {
	var diags []Diagnostic
	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "error: "):
			diags = append(diags, Diagnostic{Severity: SeverityError, Message: strings.TrimPrefix(line, "error: ")})
		case strings.HasPrefix(line, "warning: "):
			diags = append(diags, Diagnostic{Severity: SeverityWarning, Message: strings.TrimPrefix(line, "warning: ")})
		default:
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || len(diags) == 0 {
				continue
			}
			last := &diags[len(diags)-1]
			last.Message += "\n" + trimmed
		}
	}
	return diags
}
