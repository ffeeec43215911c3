package securerand

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Alphabets for Token. None of them depend on locale.
const (
	// AlphabetUnambiguous drops I, O, l, o, 0 and 1 so codes survive being read aloud or retyped.
	AlphabetUnambiguous = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"
	// AlphabetUnambiguousUpper is the upper-case half of AlphabetUnambiguous plus digits.
	AlphabetUnambiguousUpper = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// AlphabetPassword extends AlphabetUnambiguous with symbols accepted by the password policy.
	AlphabetPassword = AlphabetUnambiguous + "!@#$%^&*-_=+?"
	AlphabetDigits   = "0123456789"
	AlphabetHex      = "0123456789ABCDEF"
)

const maxAlphabetSize = 256

// Reader is the entropy source used by every function in this package.
var Reader io.Reader = rand.Reader

// Bytes returns n bytes read from Reader.
func Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: byte count %d is negative", ErrInvalidArgument, n)
	}
	src := Reader
	if src == nil {
		return nil, ErrRandomnessUnavailable
	}
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, errors.Join(ErrRandomnessUnavailable, err)
	}
	return buf, nil
}

// Token returns n symbols of alphabet, one per random byte.
func Token(n int, alphabet string) (string, error) {
	symbols := []rune(alphabet)
	if len(symbols) == 0 || len(symbols) > maxAlphabetSize {
		return "", fmt.Errorf("%w: alphabet must have 1-%d symbols, got %d", ErrInvalidArgument, maxAlphabetSize, len(symbols))
	}
	if !utf8.ValidString(alphabet) {
		return "", fmt.Errorf("%w: alphabet is not valid UTF-8", ErrInvalidArgument)
	}

	raw, err := Bytes(n)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(n)
	for _, b := range raw {
		sb.WriteRune(symbols[int(b)%len(symbols)])
	}
	return sb.String(), nil
}

// Password returns a random password of length n drawn from AlphabetPassword.
// It does not guarantee every character class is present; callers that need
// a policy-conforming password should check it and retry.
func Password(n int) (string, error) {
	return Token(n, AlphabetPassword)
}

// OTP returns a numeric one-time code with the given number of digits.
func OTP(digits int) (string, error) {
	if digits < 1 {
		return "", fmt.Errorf("%w: otp needs at least one digit", ErrInvalidArgument)
	}
	return Token(digits, AlphabetDigits)
}

// NewID returns a random (version 4) UUID drawn from Reader.
func NewID() (uuid.UUID, error) {
	src := Reader
	if src == nil {
		return uuid.Nil, ErrRandomnessUnavailable
	}
	id, err := uuid.NewRandomFromReader(src)
	if err != nil {
		return uuid.Nil, errors.Join(ErrRandomnessUnavailable, err)
	}
	return id, nil
}

// RecoveryCodes creates count backup codes, each a 16-character upper-case
// hexadecimal string carrying 64 bits of entropy.
func RecoveryCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: recovery code count must be greater than 0", ErrInvalidArgument)
	}

	codes := make([]string, count)
	for i := range count {
		b, err := Bytes(8)
		if err != nil {
			return nil, err
		}
		codes[i] = fmt.Sprintf("%X", b)
	}
	return codes, nil
}

// InviteCode returns an organization invite code in the form XXXX-XXXX.
func InviteCode() (string, error) {
	code, err := Token(8, AlphabetUnambiguousUpper)
	if err != nil {
		return "", err
	}
	return code[:4] + "-" + code[4:], nil
}
