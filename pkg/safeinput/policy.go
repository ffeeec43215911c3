package safeinput

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	playground "github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/myaccounts/portalkit/pkg/sanitizer"
	"github.com/myaccounts/portalkit/pkg/validator"
)

// DefaultTemporaryPasswordLength is the length of passwords issued by
// IssueTemporaryPassword under DefaultPolicy.
const DefaultTemporaryPasswordLength = 16

// Policy is the full set of limits a Kit enforces.
type Policy struct {
	MinPasswordLength int `validate:"min=1,max=128"`
	// MinPasswordScore is the lowest strength score (0-5) ValidatePassword accepts.
	MinPasswordScore int      `validate:"min=0,max=5"`
	OTPLength        int      `validate:"min=4,max=10"`
	MaxFileSize      int64    `validate:"gt=0"`
	AllowedFileTypes []string `validate:"min=1,dive,required"`
	// MaxFieldLengths maps form field keys to their maximum length in characters.
	MaxFieldLengths map[string]int `validate:"dive,keys,required,endkeys,gt=0"`
	// BrandDomains are the hosts (and their subdomains) whose http URLs are upgraded to https.
	BrandDomains []string `validate:"min=1,dive,fqdn"`
	// TemporaryPasswordLength stays within bcrypt's 72 byte input limit.
	TemporaryPasswordLength int `validate:"gtefield=MinPasswordLength,min=5,max=72"`
	BcryptCost              int `validate:"min=4,max=31"`
}

// DefaultPolicy returns the portal's fixed limits.
func DefaultPolicy() Policy {
	return Policy{
		MinPasswordLength:       validator.MinPasswordLength,
		MinPasswordScore:        validator.MinPasswordScore,
		OTPLength:               validator.OTPLength,
		MaxFileSize:             validator.MaxFileSize,
		AllowedFileTypes:        validator.AllowedFileTypes(),
		MaxFieldLengths:         validator.MaxFieldLengths(),
		BrandDomains:            slices.Clone(sanitizer.DefaultBrandDomains),
		TemporaryPasswordLength: DefaultTemporaryPasswordLength,
		BcryptCost:              bcrypt.DefaultCost,
	}
}

var (
	validate     *playground.Validate
	validateOnce sync.Once
)

func structValidator() *playground.Validate {
	validateOnce.Do(func() {
		validate = playground.New(playground.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks every bound of the policy. The returned error matches
// ErrInvalidPolicy and wraps a validator.ValidationErrors naming each bad field.
func (p Policy) Validate() error {
	err := structValidator().Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalidPolicy, err)
	}

	verrs := make(validator.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		verrs.Add(validator.ValidationError{
			Field:   fe.Field(),
			Message: describeFieldError(fe),
			Code:    fe.Tag(),
		})
	}
	return errors.Join(ErrInvalidPolicy, verrs)
}

func describeFieldError(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s must not be empty", fe.Namespace())
	case "fqdn":
		return fmt.Sprintf("%s must be a domain name, got %q", fe.Namespace(), fe.Value())
	case "gtefield":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "min", "max", "gt":
		return fmt.Sprintf("%s must satisfy %s=%s, got %v", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}
}

// clone returns a deep copy so a Kit never shares slices or maps with its caller.
func (p Policy) clone() Policy {
	p.AllowedFileTypes = slices.Clone(p.AllowedFileTypes)
	p.MaxFieldLengths = maps.Clone(p.MaxFieldLengths)
	p.BrandDomains = slices.Clone(p.BrandDomains)
	return p
}
