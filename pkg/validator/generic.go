package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lengths are counted in characters (runes), not bytes.

func ValidateRequired(field, value string) Result {
	if strings.TrimSpace(value) == "" {
		return fail(fmt.Sprintf("%s is required", field))
	}
	return ok()
}

func ValidateMinLength(field, value string, min int) Result {
	if utf8.RuneCountInString(value) < min {
		return fail(fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	return ok()
}

func ValidateMaxLength(field, value string, max int) Result {
	if utf8.RuneCountInString(value) > max {
		return fail(fmt.Sprintf("%s must be no more than %d characters", field, max))
	}
	return ok()
}

// ValidateMatch checks that value equals other, e.g. a password confirmation.
func ValidateMatch(field, value, other string) Result {
	if value != other {
		return fail(fmt.Sprintf("%s does not match", field))
	}
	return ok()
}

// ValidateFieldLength enforces the maximum length configured for a known
// field key. Unknown keys have no limit.
func ValidateFieldLength(field, value string) Result {
	max, known := MaxFieldLength(field)
	if !known {
		return ok()
	}
	return ValidateMaxLength(FieldLabel(field), value, max)
}

// Rule forms. label is the human-readable name used in the message.

func Required(field, label, value string) Rule {
	return FromResult(field, "required", ValidateRequired(label, value))
}

func MinLen(field, label, value string, min int) Rule {
	return FromResult(field, "min_length", ValidateMinLength(label, value, min))
}

func MaxLen(field, label, value string, max int) Rule {
	return FromResult(field, "max_length", ValidateMaxLength(label, value, max))
}

func Matches(field, label, value, other string) Rule {
	return FromResult(field, "mismatch", ValidateMatch(label, value, other))
}

func FieldLength(field, value string) Rule {
	return FromResult(field, "max_length", ValidateFieldLength(field, value))
}
