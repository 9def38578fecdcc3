// Package typeset turns validated documents into Typst source and runs
// the Typst CLI to produce PDF bytes. Templates are embedded in the
// binary; the document payload travels into the source as a raw JSON
// block decoded at render time, so template code never needs
// per-document escaping.
package typeset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/docfoundry/docgen-mcp/document"
	"github.com/docfoundry/docgen-mcp/errors"
)

//go:embed templates/resume.typ
var resumeTemplate string

//go:embed templates/cover-letter.typ
var coverLetterTemplate string

// rawFence delimits the embedded JSON payload. Five backticks keep any
// backtick runs inside document strings from terminating the block early.
const rawFence = "`````"

// TransformResume renders a validated resume into a complete Typst source
// document ready for compilation.
func TransformResume(r *document.Resume) (string, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize resume")
	}
	return assemble(resumeTemplate, payload, "resume"), nil
}

// TransformCoverLetter renders a validated cover letter into a complete
// Typst source document ready for compilation.
func TransformCoverLetter(l *document.CoverLetter) (string, error) {
	payload, err := json.Marshal(l)
	if err != nil {
		return "", errors.Wrap(err, "failed to serialize cover letter")
	}
	return assemble(coverLetterTemplate, payload, "letter"), nil
}

// assemble appends the payload block and the entry call to the template.
// The entry function (#resume or #letter) is defined by the template
// itself; the generated tail only feeds it the decoded payload.
func assemble(template string, payload []byte, entry string) string {
	var b strings.Builder
	b.WriteString(template)
	b.WriteString("\n")
	fmt.Fprintf(&b, "#let doc-json = %sjson\n%s\n%s.text\n", rawFence, payload, rawFence)
	b.WriteString("#let doc-data = json(bytes(doc-json))\n")
	fmt.Fprintf(&b, "#%s(doc-data)\n", entry)
	return b.String()
}
