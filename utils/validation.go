package utils

import (
	"regexp"
	"strings"
)

var (
	nonDigits     = regexp.MustCompile(`\D`)
	pincodeFormat = regexp.MustCompile(`^\d{6}$`)
)

// NormalizePincode strips everything that is not a digit and truncates the
// rest to six characters.
func NormalizePincode(input string) string {
	cleaned := nonDigits.ReplaceAllString(strings.TrimSpace(input), "")
	if len(cleaned) > 6 {
		cleaned = cleaned[:6]
	}
	return cleaned
}

// ValidatePincode reports whether a normalized pincode is exactly six digits.
func ValidatePincode(pincode string) bool {
	return pincodeFormat.MatchString(pincode)
}
