package common

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/malek0x1/starlake/common/safe"
)

//nolint:gochecknoglobals
var (
	// nonASCIIPattern matches maximal runs of non-ASCII characters.
	nonASCIIPattern = regexp.MustCompile(`[^\x00-\x7F]+`)

	// illegalIdentifierPattern matches every character that may not
	// appear in a sanitized identifier.
	illegalIdentifierPattern = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
)

// KeepASCIIOnly replaces every run of non-ASCII characters with a
// single underscore.
func KeepASCIIOnly(text string) string {
	return nonASCIIPattern.ReplaceAllString(text, "_")
}

// SanitizeID normalizes an identifier for use in orchestrator object
// names such as DAG, task, and dataset IDs. Dollar signs map to "S",
// any other character outside [a-zA-Z0-9-_] maps to an underscore,
// and non-ASCII runs collapse to a single underscore last.
func SanitizeID(id string) string {
	replaced := strings.ReplaceAll(id, "$", "S")

	return KeepASCIIOnly(illegalIdentifierPattern.ReplaceAllString(replaced, "_"))
}

// RemoveAccents strips combining diacritical marks, so "café" becomes
// "cafe". Characters without a decomposed form pass through unchanged.
func RemoveAccents(word string) (string, error) {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	result, _, err := transform.String(chain, word)
	if err != nil {
		return "", err
	}

	return result, nil
}

// Sanitizer rewrites identifiers using a caller-supplied pattern of
// illegal characters. The pattern is compiled once through the shared
// regex cache, so constructing equivalent sanitizers stays cheap.
type Sanitizer struct {
	pattern     *regexp.Regexp
	replacement string
	fallback    string
}

// NewSanitizer compiles pattern and returns a Sanitizer replacing each
// match with replacement.
func NewSanitizer(pattern, replacement string) (*Sanitizer, error) {
	return NewSanitizerWithFallback(pattern, replacement, "")
}

// NewSanitizerWithFallback is NewSanitizer with a fallback identifier,
// returned whenever sanitization leaves no letters or digits behind.
func NewSanitizerWithFallback(pattern, replacement, fallback string) (*Sanitizer, error) {
	re, err := safe.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Sanitizer{pattern: re, replacement: replacement, fallback: fallback}, nil
}

// Sanitize applies the configured pattern and then collapses any
// remaining non-ASCII runs. When the result retains no letters or
// digits and a fallback is configured, the fallback is returned.
func (sanitizer *Sanitizer) Sanitize(id string) string {
	sanitized := KeepASCIIOnly(sanitizer.pattern.ReplaceAllString(id, sanitizer.replacement))

	if sanitizer.fallback != "" && !strings.ContainsFunc(sanitized, isAlphanumeric) {
		return sanitizer.fallback
	}

	return sanitized
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
