package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxStationNameLength bounds station name parameters, in runes.
const MaxStationNameLength = 100

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateStationName checks that a station name parameter is safe to look
// up. It does not check that the station exists.
func ValidateStationName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("station name cannot be empty")
	}

	if !utf8.ValidString(name) {
		return errors.New("station name is not valid UTF-8")
	}

	if utf8.RuneCountInString(name) > MaxStationNameLength {
		return errors.New("station name too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("station name contains invalid characters")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.New("station name contains control characters")
		}
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}

// ValidateRouteParams validates both endpoints of a route query and returns
// field errors keyed by parameter name. An empty map means both are valid.
func ValidateRouteParams(from, to string) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateStationName(from); err != nil {
		fieldErrors["from"] = append(fieldErrors["from"], err.Error())
	}

	if err := ValidateStationName(to); err != nil {
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
	}

	return fieldErrors
}
