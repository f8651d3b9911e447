package card

import "strings"

// NormalizeText splits raw rules text into its non-empty lines.
// Carriage returns and line feeds are separate delimiters, so "\r\n"
// produces an empty segment that is dropped like any other.
// The result is never nil.
func NormalizeText(raw string) []string {
	lines := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	if lines == nil {
		return []string{}
	}
	return lines
}
