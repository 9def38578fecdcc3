package generate

import (
	"strings"
)

// Document-type filename suffixes
const (
	resumeSuffix      = "-resume.pdf"
	coverLetterSuffix = "-cover-letter.pdf"
)

// deriveFilename builds a download filename from a person's name and a
// document suffix. The name is lowercased, spaces become hyphens, and
// anything outside ASCII letters, digits and hyphens is dropped, so the
// result is safe in URLs and Content-Disposition headers.
func deriveFilename(name, suffix string) string {
	sanitized := sanitizeName(name)
	if sanitized == "" {
		sanitized = "document"
	}
	return sanitized + suffix
}

func sanitizeName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	lowered = strings.ReplaceAll(lowered, " ", "-")

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}
