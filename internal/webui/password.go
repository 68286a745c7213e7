// ABOUTME: Password strength heuristic for the signup form
// ABOUTME: Length gate first, then character-class mix

package webui

import "unicode"

// Strength labels for signup password feedback.
const (
	StrengthWeak   = "weak"
	StrengthMedium = "medium"
	StrengthStrong = "strong"
)

// PasswordStrength rates a candidate password. Empty input rates as ""
// so the form shows no meter before the user types. Anything under 8
// characters is weak regardless of mix; at 8 or more, a lower/upper/
// digit mix is strong and anything else is medium.
func PasswordStrength(password string) string {
	if password == "" {
		return ""
	}
	if len(password) < 8 {
		return StrengthWeak
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if hasLower && hasUpper && hasDigit {
		return StrengthStrong
	}
	return StrengthMedium
}
