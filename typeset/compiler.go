package typeset

import (
	"context"
	"strings"
)

// Diagnostic severities reported by the compiler
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Diagnostic is a single compiler message with its severity
type Diagnostic struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Compiler turns Typst source into PDF bytes. A non-nil error means the
// compiler could not run at all (missing binary, cancelled context); a
// failed compilation returns a nil PDF with error-severity diagnostics.
type Compiler interface {
	Compile(ctx context.Context, source string) ([]byte, []Diagnostic, error)
}

// HasErrors reports whether any diagnostic is error severity
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FormatDiagnostics renders diagnostics one per line, severity first
func FormatDiagnostics(diags []Diagnostic) string {
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, d.Severity+": "+d.Message)
	}
	return strings.Join(lines, "\n")
}
