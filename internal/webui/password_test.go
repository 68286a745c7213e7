// ABOUTME: Tests for the password strength heuristic
// ABOUTME: Table-driven over length and character-class combinations

package webui

import "testing"

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"empty", "", ""},
		{"short", "abc", StrengthWeak},
		{"seven chars all classes", "Abc1234", StrengthWeak},
		{"long lowercase only", "abcdefgh", StrengthMedium},
		{"long no digit", "Abcdefgh", StrengthMedium},
		{"long no upper", "abcdefg1", StrengthMedium},
		{"all three classes", "Abcdefg1", StrengthStrong},
		{"symbols do not demote", "Abcdef1!", StrengthStrong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PasswordStrength(tt.password); got != tt.want {
				t.Errorf("PasswordStrength(%q) = %q, want %q", tt.password, got, tt.want)
			}
		})
	}
}
