package errors

import (
	"strings"
	"unicode"
)

// maxCourseIDLength bounds identifiers accepted from the CLI and HTTP API.
const maxCourseIDLength = 128

// ValidateCourseID checks a course identifier supplied by a user, for
// example a URL path parameter or a CLI argument.
//
// The rules are conservative:
//   - No empty IDs
//   - No control characters or null bytes
//   - No slashes (IDs appear in URL paths)
//   - Maximum length of 128 characters
func ValidateCourseID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCourseID, "course id cannot be empty")
	}
	if len(id) > maxCourseIDLength {
		return New(ErrCodeInvalidCourseID, "course id too long (max %d characters)", maxCourseIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCourseID, "course id contains invalid control characters")
		}
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidCourseID, "course id cannot contain slashes")
	}
	return nil
}
