package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// ISO 3166-1 alpha-3
	countryCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

	// Climate TRACE identifiers are lower-case kebab-case
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// Bounds of the emissions inventory years accepted by the pipeline.
const (
	MinYear = 2015
	MaxYear = 2100
)

// MaxPromptFieldLength caps user-supplied text forwarded to the model.
const MaxPromptFieldLength = 2000

// ValidateCountryCode validates an upper-case ISO alpha-3 code
func ValidateCountryCode(code string) error {
	if code == "" {
		return errors.New("country code cannot be empty")
	}

	if !countryCodePattern.MatchString(code) {
		return fmt.Errorf("invalid country code %q (expected 3 upper-case letters)", code)
	}

	return nil
}

// ValidateCountryCodes validates every code and reports the first failure
func ValidateCountryCodes(codes []string) error {
	for _, code := range codes {
		if err := ValidateCountryCode(code); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSlug validates a sector or subsector identifier
func ValidateSlug(s string) error {
	if s == "" {
		return errors.New("identifier cannot be empty")
	}

	if len(s) > 100 {
		return errors.New("identifier too long (max 100 characters)")
	}

	if !slugPattern.MatchString(s) {
		return fmt.Errorf("invalid identifier %q", s)
	}

	return nil
}

// ValidateYear validates an inventory year. Zero means "not set" and is allowed.
func ValidateYear(year int) error {
	if year == 0 {
		return nil
	}

	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
	}

	return nil
}

// ValidateBatchSize validates the number of countries per API request
func ValidateBatchSize(n int) error {
	if n < 1 {
		return errors.New("batch size must be at least 1")
	}

	if n > 500 {
		return errors.New("batch size too large (max 500)")
	}

	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// SanitizePromptField sanitizes text that will be interpolated into a
// prompt and truncates it to MaxPromptFieldLength runes.
func SanitizePromptField(input string) string {
	sanitized := SanitizeInput(input)
	runes := []rune(sanitized)
	if len(runes) > MaxPromptFieldLength {
		sanitized = string(runes[:MaxPromptFieldLength])
	}
	return sanitized
}

// ParseList splits a comma separated flag value into trimmed, non-empty items
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeCountryCodes upper-cases and trims codes, dropping empty entries
func NormalizeCountryCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			out = append(out, c)
		}
	}
	return out
}
