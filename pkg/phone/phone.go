// Package phone normalizes candidate phone numbers to E.164 before they are handed to a provider.
package phone

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultCountryCode is prepended to national numbers without a country code
const DefaultCountryCode = "+91"

var (
	nonDigits = regexp.MustCompile(`\D`)
	e164      = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// knownCodes are checked in order, the first match wins
var knownCodes = []string{"+91", "+1", "+44", "+61", "+86", "+81", "+49", "+33", "+39", "+34"}

var (
	ErrInvalidFormat = errors.New("invalid phone number format, must be in E.164 format (e.g., +91XXXXXXXXXX)")
	ErrInvalidLength = errors.New("phone number too short or too long")
)

// Format converts a phone number to E.164 form. Numbers already starting with "+" are returned as is,
// everything else is reduced to digits and a country code is added by a fixed set of rules.
func Format(phone, defaultCountryCode string) string {
	if phone == "" {
		return ""
	}
	if defaultCountryCode == "" {
		defaultCountryCode = DefaultCountryCode
	}
	if strings.HasPrefix(phone, "+") {
		return phone
	}

	digits := nonDigits.ReplaceAllString(phone, "")
	switch {
	case strings.HasPrefix(digits, "91") && len(digits) == 12:
		return "+" + digits
	case strings.HasPrefix(digits, "0") && len(digits) == 11:
		return defaultCountryCode + digits[1:]
	case len(digits) == 10:
		return defaultCountryCode + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits // north american number with trunk prefix
	case len(digits) == 12:
		return "+" + digits
	default:
		return defaultCountryCode + digits
	}
}

// Validation is the result of Validate
type Validation struct {
	Valid     bool   `json:"isValid"`
	Formatted string `json:"formatted"`
	Err       error  `json:"-"`
}

// Validate formats the number with the given default country code and checks it is a plausible E.164 number
func Validate(phone, defaultCountryCode string) Validation {
	formatted := Format(phone, defaultCountryCode)
	if !e164.MatchString(formatted) {
		return Validation{Formatted: formatted, Err: ErrInvalidFormat}
	}
	if n := len(formatted) - 1; n < 7 || n > 15 {
		return Validation{Formatted: formatted, Err: ErrInvalidLength}
	}
	return Validation{Valid: true, Formatted: formatted}
}

// CountryCode returns the country code of a formatted number, DefaultCountryCode if unknown
func CountryCode(phone string) string {
	for _, code := range knownCodes {
		if strings.HasPrefix(phone, code) {
			return code
		}
	}
	return DefaultCountryCode
}

// FormatForDisplay renders Indian and North American numbers in their usual grouping
func FormatForDisplay(phone string) string {
	formatted := Format(phone, DefaultCountryCode)

	if rest, ok := strings.CutPrefix(formatted, "+91"); ok && len(rest) == 10 {
		return "+91 " + rest[:5] + " " + rest[5:]
	}
	if rest, ok := strings.CutPrefix(formatted, "+1"); ok && len(rest) == 10 {
		return "+1 (" + rest[:3] + ") " + rest[3:6] + "-" + rest[6:]
	}
	return formatted
}
