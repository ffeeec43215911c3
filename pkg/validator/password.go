package validator

import (
	"fmt"
	"unicode/utf8"
)

// StrengthLabel names a password strength category.
type StrengthLabel string

const (
	LabelVeryWeak StrengthLabel = "Very Weak"
	LabelWeak     StrengthLabel = "Weak"
	LabelFair     StrengthLabel = "Fair"
	// LabelGood is part of the label set but the scoring table never produces it:
	// score 3 is Fair and score 4 is Strong.
	LabelGood       StrengthLabel = "Good"
	LabelStrong     StrengthLabel = "Strong"
	LabelVeryStrong StrengthLabel = "Very Strong"
)

const (
	MsgPasswordRequired = "Password is required"
	MsgPasswordWeak     = "Password is too weak"
	MsgPasswordTooLong  = "Password must be no more than %d characters"
)

// Requirement is one line of the password checklist.
type Requirement struct {
	Met   bool   `json:"met"`
	Label string `json:"label"`
}

// PasswordStrength is the full breakdown of a password evaluation.
// Score always equals the number of met requirements.
type PasswordStrength struct {
	Score        int           `json:"score"`
	Label        StrengthLabel `json:"label"`
	Requirements []Requirement `json:"requirements"`
}

// AllMet reports whether every requirement is satisfied.
func (s PasswordStrength) AllMet() bool {
	for _, r := range s.Requirements {
		if !r.Met {
			return false
		}
	}
	return len(s.Requirements) > 0
}

// EvaluatePassword scores p against the default minimum length.
func EvaluatePassword(p string) PasswordStrength {
	return EvaluatePasswordWith(p, MinPasswordLength)
}

// EvaluatePasswordWith scores p with an explicit minimum length.
// The five criteria are: length, an ASCII upper-case letter, an ASCII
// lower-case letter, an ASCII digit, and any other character.
func EvaluatePasswordWith(p string, minLength int) PasswordStrength {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	reqs := []Requirement{
		{Met: utf8.RuneCountInString(p) >= minLength, Label: fmt.Sprintf("At least %d characters", minLength)},
		{Met: hasUpper, Label: "One uppercase letter"},
		{Met: hasLower, Label: "One lowercase letter"},
		{Met: hasDigit, Label: "One number"},
		{Met: hasSymbol, Label: "One special character"},
	}

	score := 0
	for _, r := range reqs {
		if r.Met {
			score++
		}
	}

	return PasswordStrength{
		Score:        score,
		Label:        StrengthLabelFor(score),
		Requirements: reqs,
	}
}

// StrengthLabelFor maps a score to its label. It is non-decreasing in score.
func StrengthLabelFor(score int) StrengthLabel {
	switch {
	case score <= 1:
		return LabelVeryWeak
	case score == 2:
		return LabelWeak
	case score == 3:
		return LabelFair
	case score == 4:
		return LabelStrong
	default:
		return LabelVeryStrong
	}
}

// IsPasswordStrong applies the default MinPasswordScore policy.
func IsPasswordStrong(p string) bool {
	return IsPasswordStrongEnough(p, MinPasswordScore)
}

func IsPasswordStrongEnough(p string, minScore int) bool {
	return EvaluatePassword(p).Score >= minScore
}

// ValidatePassword checks presence, maximum length and the default strength policy.
func ValidatePassword(p string) Result {
	return ValidatePasswordWith(p, MinPasswordLength, MinPasswordScore)
}

func ValidatePasswordWith(p string, minLength, minScore int) Result {
	return ValidatePasswordWithMax(p, minLength, MaxPasswordLength, minScore)
}

// ValidatePasswordWithMax is ValidatePasswordWith with a caller supplied
// maximum length in runes. A non-positive maxLength falls back to MaxPasswordLength.
func ValidatePasswordWithMax(p string, minLength, maxLength, minScore int) Result {
	if maxLength <= 0 {
		maxLength = MaxPasswordLength
	}
	if p == "" {
		return fail(MsgPasswordRequired)
	}
	if utf8.RuneCountInString(p) > maxLength {
		return fail(fmt.Sprintf(MsgPasswordTooLong, maxLength))
	}
	if EvaluatePasswordWith(p, minLength).Score < minScore {
		return fail(MsgPasswordWeak)
	}
	return ok()
}

// Password is the Rule form of ValidatePasswordWith using the default minimum length.
func Password(field, value string, minScore int) Rule {
	return FromResult(field, "password_weak", ValidatePasswordWith(value, MinPasswordLength, minScore))
}
