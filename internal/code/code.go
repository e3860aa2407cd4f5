package code

import (
	"regexp"
	"strings"
)

var reCode = regexp.MustCompile(`^[0-9]{1,8}(\.[0-9]{1,4})?$`)

// IsValid reports whether s is a well-formed account code: digits, optionally
// followed by a dotted numeric suffix for sub-leaves (e.g. "2103.01").
func IsValid(s string) bool {
	return reCode.MatchString(s)
}

// Normalize trims surrounding whitespace. Codes are otherwise stored verbatim
// because the hierarchy is defined by their literal characters.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}
