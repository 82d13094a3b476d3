package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	intlPhonePattern  = regexp.MustCompile(`^\+233\d{9}$`)
	localPhonePattern = regexp.MustCompile(`^0\d{9}$`)
)

// ValidatePhoneNumber checks a Ghana phone number. Valid formats are
// +233XXXXXXXXX (13 characters) and 0XXXXXXXXX (10 characters).
func ValidatePhoneNumber(number string) error {
	clean := strings.NewReplacer(" ", "", "-", "").Replace(number)

	switch {
	case strings.HasPrefix(clean, "+233"):
		if !intlPhonePattern.MatchString(clean) {
			return errors.New("invalid phone number")
		}
		return nil
	case strings.HasPrefix(clean, "0"):
		if !localPhonePattern.MatchString(clean) {
			return errors.New("invalid phone number")
		}
		return nil
	default:
		return errors.New("valid phone numbers must start with +233 or 0 (Ghana)")
	}
}
