package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var codeRegex = regexp.MustCompile(`^[A-Z]{2,4}[0-9]{2,4}$`)

// NormalizeCourseCode uppercases a course/prerequisite code and validates its
// format (2-4 letters followed by 2-4 digits, e.g. CS101).
func NormalizeCourseCode(value string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	if !codeRegex.MatchString(normalized) {
		return "", fmt.Errorf("invalid course code. Use 2-4 letters followed by 2-4 digits (e.g. CS101)")
	}
	return normalized, nil
}
