package mask_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/myaccounts/portalkit/pkg/mask"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"john.doe@example.com", "jo***@example.com"},
		{"jo@example.com", "j***@example.com"},
		{"j@example.com", "j***@example.com"},
		{"abc@sub.example.co.uk", "ab***@sub.example.co.uk"},
		{"  john@example.com ", "jo***@example.com"},
		{"not-an-email", "not-an-email"},
		{"", ""},
		{"john@localhost", "john@localhost"},
		{"<script>@x", "<script>@x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mask.Email(tt.in))
		})
	}
}

func TestEmailMinimal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "j***@example.com", mask.EmailMinimal("john.doe@example.com"))
	assert.Equal(t, "j***@example.com", mask.EmailMinimal("jo@example.com"))
	assert.Equal(t, "a***@b.co", mask.EmailMinimal("a@b.co"))
	assert.Equal(t, "broken@", mask.EmailMinimal("broken@"))
}

// The two variants reveal different amounts for long local parts and the
// same amount for short ones.
func TestEmailVariantsDiffer(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, mask.Email("john@example.com"), mask.EmailMinimal("john@example.com"))
	assert.Equal(t, mask.Email("jo@example.com"), mask.EmailMinimal("jo@example.com"))
}

func TestPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"+1 (415) 555-0123", "****0123"},
		{"4155550123", "****0123"},
		{"1234", "****1234"},
		{"123", "****"},
		{"", "****"},
		{"call me", "****"},
		{"+44 7700 900123", "****0123"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mask.Phone(tt.in))
		})
	}
}

func TestPhone_Properties(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"1", "12", "123", "1-2", "+9", "abc"} {
		assert.Equal(t, "****", mask.Phone(in), in)
	}
	for _, in := range []string{"1234", "98765", "+1 415 555 0199", "00-11-22-33-44"} {
		got := mask.Phone(in)
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, in)
		assert.True(t, strings.HasPrefix(got, "****"), in)
		assert.True(t, strings.HasSuffix(got, digits[len(digits)-4:]), in)
		assert.Len(t, got, 8, in)
	}
}

func TestPhoneWithCountryCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+44 ****0123", mask.PhoneWithCountryCode("+44 7700 900123"))
	assert.Equal(t, "+1 ****0123", mask.PhoneWithCountryCode("+1 415 555 0123"))
	assert.Equal(t, "+49 ****5678", mask.PhoneWithCountryCode("+49 30 12345678"))
	assert.Equal(t, "****0123", mask.PhoneWithCountryCode("4155550123"))
	assert.Equal(t, "****", mask.PhoneWithCountryCode("12"))
}

func TestPhonePartial(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "41******23", mask.PhonePartial("4155550123"))
	assert.Equal(t, "14*******23", mask.PhonePartial("+1 415 555 0123"))
	assert.Equal(t, "12********45", mask.PhonePartial("123456789012345"), "mask capped at 8")
	assert.Equal(t, "12*45", mask.PhonePartial("12345"))
	assert.Equal(t, "****", mask.PhonePartial("1234"))
	assert.Equal(t, "****", mask.PhonePartial(""))
}

func TestToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[empty]", mask.Token(""))
	assert.Equal(t, "s...", mask.Token("secret"))
	assert.Equal(t, "sk_l...", mask.Token("sk_live_abc123xyz"))
	assert.Equal(t, "ключ...", mask.Token("ключ-секрет"))
}
