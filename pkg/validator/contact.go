package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	// Practical rather than RFC 5322 complete: what users actually type into sign-up forms.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	// E.164: optional +, no leading zero, 2-15 digits.
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

const (
	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Please enter a valid email address"
	MsgPhoneRequired = "Phone number is required"
	MsgPhoneInvalid  = "Please enter a valid phone number"
	MsgOTPRequired   = "Verification code is required"
	MsgOTPInvalid    = "Please enter the 6-digit verification code"

	msgOTPInvalidLength = "Please enter the %d-digit verification code"
)

// IsEmailShape reports whether s, trimmed, looks like local@domain.tld.
func IsEmailShape(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

func ValidateEmail(s string) Result {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fail(MsgEmailRequired)
	}
	if !emailRegex.MatchString(trimmed) {
		return fail(MsgEmailInvalid)
	}
	return ok()
}

// stripSpace removes every whitespace rune, not only the edges:
// "+1 555 010 9999" is a valid phone entry.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IsPhoneShape reports whether s, with all whitespace removed, is an E.164-like number.
func IsPhoneShape(s string) bool {
	return phoneRegex.MatchString(stripSpace(s))
}

func ValidatePhone(s string) Result {
	cleaned := stripSpace(s)
	if cleaned == "" {
		return fail(MsgPhoneRequired)
	}
	if !phoneRegex.MatchString(cleaned) {
		return fail(MsgPhoneInvalid)
	}
	return ok()
}

// IsOTP reports whether s is exactly OTPLength ASCII digits. No trimming.
func IsOTP(s string) bool {
	return IsOTPWith(s, OTPLength)
}

// IsOTPWith reports whether s is exactly digits ASCII digits.
func IsOTPWith(s string, digits int) bool {
	if digits < 1 || len(s) != digits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func ValidateOTP(s string) Result {
	return ValidateOTPWith(s, OTPLength)
}

// ValidateOTPWith checks a code of a non-default length.
func ValidateOTPWith(s string, digits int) Result {
	if s == "" {
		return fail(MsgOTPRequired)
	}
	if !IsOTPWith(s, digits) {
		if digits == OTPLength {
			return fail(MsgOTPInvalid)
		}
		return fail(fmt.Sprintf(msgOTPInvalidLength, digits))
	}
	return ok()
}

// Email is the Rule form of ValidateEmail.
func Email(field, value string) Rule {
	return FromResult(field, "email_invalid", ValidateEmail(value))
}

// Phone is the Rule form of ValidatePhone.
func Phone(field, value string) Rule {
	return FromResult(field, "phone_invalid", ValidatePhone(value))
}

// OTP is the Rule form of ValidateOTP.
func OTP(field, value string) Rule {
	return FromResult(field, "otp_invalid", ValidateOTP(value))
}
