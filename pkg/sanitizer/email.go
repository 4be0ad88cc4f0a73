package sanitizer

import (
	"regexp"
	"strings"
)

var dotRegex = regexp.MustCompile(`\.{2,}`)

// NormalizeEmail trims whitespace, lowercases, and collapses consecutive dots
// in the local part. Invalid shapes are returned as-is so that validation can
// reject them with a precise message instead of a mangled value.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	local := dotRegex.ReplaceAllString(parts[0], ".")
	local = strings.Trim(local, ".")

	return local + "@" + parts[1]
}

// MaskEmail hides the local part except its first character. Used in log
// output where the full address would be unnecessary PII.
func MaskEmail(email string) string {
	parts := strings.Split(strings.TrimSpace(email), "@")
	if len(parts) != 2 || parts[0] == "" {
		return email
	}
	if len(parts[0]) == 1 {
		return "*@" + parts[1]
	}
	return string(parts[0][0]) + strings.Repeat("*", len(parts[0])-1) + "@" + parts[1]
}
