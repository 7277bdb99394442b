package utils

import (
	"strings"
	"unicode"
)

// NormalizePhone strips every non-digit character from a phone number,
// so "+1-987-654-3210" becomes "19876543210".
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone reports whether a phone number carries 10 to 15 digits
// after normalization.
func ValidPhone(phone string) bool {
	digits := NormalizePhone(phone)
	return len(digits) >= 10 && len(digits) <= 15
}
