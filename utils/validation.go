// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var staffPhoneRegex = regexp.MustCompile(`^\d{9}$`)

// ValidateStaffPhone checks that a staff phone number is exactly 9 digits
func ValidateStaffPhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	return staffPhoneRegex.MatchString(cleaned)
}
