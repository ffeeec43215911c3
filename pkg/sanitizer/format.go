package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeEmail returns the canonical form used to store and compare
// addresses: NFKC-normalised, trimmed, lower-cased. Full-width characters
// typed on CJK keyboards fold to ASCII. Invalid addresses are normalised the
// same way; validate separately.
func NormalizeEmail(email string) string {
	return Apply(email,
		norm.NFKC.String,
		strings.TrimSpace,
		strings.ToLower,
	)
}

// NormalizePhone keeps digits only, preserving a leading '+' when present.
func NormalizePhone(phone string) string {
	phone = norm.NFKC.String(strings.TrimSpace(phone))

	var sb strings.Builder
	sb.Grow(len(phone))
	if strings.HasPrefix(phone, "+") {
		sb.WriteByte('+')
	}
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	if sb.Len() == 1 && strings.HasPrefix(sb.String(), "+") {
		return ""
	}
	return sb.String()
}

// ExtractEmailDomain returns the lower-cased domain of email, or "".
func ExtractEmailDomain(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndexByte(email, '@')
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}
