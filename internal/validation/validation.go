package validation

import (
	"regexp"
	"strconv"
	"strings"
)

// BaseNamePattern defines a single DNS label: letters, digits and inner hyphens.
var BaseNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// SuffixPattern defines a dot-prefixed suffix of one or more labels.
var SuffixPattern = regexp.MustCompile(`^(\.[a-z0-9]([a-z0-9-]*[a-z0-9])?)+$`)

// MaxLabelLength is the DNS limit for a single label.
const MaxLabelLength = 63

// NormalizeBaseName trims whitespace, lowercases and strips one trailing dot
// so that cache lookups are not split by cosmetic differences.
func NormalizeBaseName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, ".")
}

// ValidateBaseName checks a normalised base name.
func ValidateBaseName(name string) (bool, string) {
	if name == "" {
		return false, "search_text is required"
	}
	if len(name) > MaxLabelLength {
		return false, "search_text must be at most " + strconv.Itoa(MaxLabelLength) + " characters"
	}
	if !BaseNamePattern.MatchString(name) {
		return false, "search_text may only contain letters, digits and inner hyphens"
	}
	return true, ""
}

// ValidateSuffix checks a normalised suffix such as ".co.in".
func ValidateSuffix(suffix string) bool {
	return SuffixPattern.MatchString(suffix)
}

// ValidateDomain checks a fully qualified candidate domain like "google.co.in".
func ValidateDomain(domain string) bool {
	dot := strings.IndexByte(domain, '.')
	if dot <= 0 || len(domain) > 253 {
		return false
	}
	base := domain[:dot]
	return len(base) <= MaxLabelLength && BaseNamePattern.MatchString(base) && ValidateSuffix(domain[dot:])
}
