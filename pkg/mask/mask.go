package mask

import (
	"strings"
	"unicode/utf8"

	"github.com/myaccounts/portalkit/pkg/validator"
)

const (
	// Char is the masking character.
	Char = "*"

	emailMask = "***"
	phoneMask = "****"

	// nationalNumberLength is the number of trailing digits treated as the
	// national number by PhoneWithCountryCode.
	nationalNumberLength = 10
	maxPartialMask       = 8
)

// Email reveals the first two characters of the local part (one when the
// local part has at most two characters) and the full domain.
// Input that is not a valid address is returned unchanged.
func Email(email string) string {
	return maskEmail(email, func(local string) int {
		if len(local) <= 2 {
			return 1
		}
		return 2
	})
}

// EmailMinimal reveals exactly one character of the local part.
func EmailMinimal(email string) string {
	return maskEmail(email, func(string) int { return 1 })
}

func maskEmail(email string, visible func(local string) int) string {
	trimmed := strings.TrimSpace(email)
	if !validator.IsEmailShape(trimmed) {
		return email
	}
	at := strings.LastIndexByte(trimmed, '@')
	local, domain := trimmed[:at], trimmed[at+1:]

	// The shape check guarantees an ASCII, non-empty local part.
	n := min(visible(local), len(local))
	return local[:n] + emailMask + "@" + domain
}

// digitsOf keeps ASCII digits only.
func digitsOf(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// Phone returns four mask characters followed by the last four digits, or
// a bare "****" when the value has fewer than four digits.
func Phone(phone string) string {
	digits := digitsOf(phone)
	if len(digits) < 4 {
		return phoneMask
	}
	return phoneMask + digits[len(digits)-4:]
}

// PhoneWithCountryCode also shows the country code, taken as the digits in
// front of a ten-digit national number: "+44 ****0123" for 447700900123.
// Numbers of ten digits or fewer are masked as by Phone.
func PhoneWithCountryCode(phone string) string {
	digits := digitsOf(phone)
	if len(digits) <= nationalNumberLength {
		return Phone(phone)
	}
	cc := digits[:len(digits)-nationalNumberLength]
	return "+" + cc + " " + phoneMask + digits[len(digits)-4:]
}

// PhonePartial shows the first two and last two digits with one mask
// character per hidden digit, at most eight. Values with fewer than five
// digits return "****".
func PhonePartial(phone string) string {
	digits := digitsOf(phone)
	if len(digits) < 5 {
		return phoneMask
	}
	hidden := min(len(digits)-4, maxPartialMask)
	return digits[:2] + strings.Repeat(Char, hidden) + digits[len(digits)-2:]
}

// Token shortens a secret for logs: "[empty]" for "", the first character
// for tokens of up to eight characters, otherwise the first four, each
// followed by "...".
func Token(token string) string {
	n := utf8.RuneCountInString(token)
	switch {
	case n == 0:
		return "[empty]"
	case n <= 8:
		return string([]rune(token)[:1]) + "..."
	default:
		return string([]rune(token)[:4]) + "..."
	}
}
