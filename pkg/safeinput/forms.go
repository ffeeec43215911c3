package safeinput

import (
	"github.com/myaccounts/portalkit/pkg/logger"
	"github.com/myaccounts/portalkit/pkg/validator"
)

// Field keys used by the form validators in addition to the validator.Field* keys.
const (
	FieldPasswordConfirmation = "password_confirmation"
	FieldWebsite              = "website"
	FieldTerms                = "terms"
)

const (
	MsgPasswordMismatch = "Passwords do not match"
	MsgTermsRequired    = "You must accept the terms of service"
	MsgWebsiteInvalid   = "Please enter a valid website URL"
)

// SignUpForm is the account registration form.
type SignUpForm struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	// Organization is optional.
	Organization string `json:"organization"`
	AcceptTerms  bool   `json:"accept_terms"`
}

// SignInForm is the login form. Only presence and shape are checked: the
// strength policy is not revealed to someone guessing passwords.
type SignInForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileForm is the account settings form. Phone, Organization,
// Description and Website are optional.
type ProfileForm struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
	Website      string `json:"website"`
}

// ValidateSignUp returns validator.ValidationErrors for every failing field, or nil.
func (k *Kit) ValidateSignUp(f SignUpForm) error {
	return k.apply("sign_up",
		validator.Required(validator.FieldName, validator.FieldLabel(validator.FieldName), f.Name),
		k.fieldLength(validator.FieldName, f.Name),
		validator.FromResult(validator.FieldEmail, "email_invalid", k.ValidateEmail(f.Email)),
		k.fieldLength(validator.FieldEmail, f.Email),
		validator.FromResult(validator.FieldPassword, "password_invalid", k.ValidatePassword(f.Password)),
		validator.Rule{
			Check: func() bool { return f.Password == f.PasswordConfirmation },
			Error: validator.ValidationError{
				Field:   FieldPasswordConfirmation,
				Message: MsgPasswordMismatch,
				Code:    "mismatch",
			},
		},
		k.fieldLength(validator.FieldOrganization, f.Organization),
		validator.Rule{
			Check: func() bool { return f.AcceptTerms },
			Error: validator.ValidationError{
				Field:   FieldTerms,
				Message: MsgTermsRequired,
				Code:    "terms_required",
			},
		},
	)
}

// ValidateSignIn returns validator.ValidationErrors for every failing field, or nil.
func (k *Kit) ValidateSignIn(f SignInForm) error {
	return k.apply("sign_in",
		validator.FromResult(validator.FieldEmail, "email_invalid", k.ValidateEmail(f.Email)),
		k.fieldLength(validator.FieldEmail, f.Email),
		validator.FromResult(validator.FieldPassword, "required", validator.ValidateRequired(validator.FieldLabel(validator.FieldPassword), f.Password)),
		k.fieldLength(validator.FieldPassword, f.Password),
	)
}

// ValidateProfile returns validator.ValidationErrors for every failing field, or nil.
func (k *Kit) ValidateProfile(f ProfileForm) error {
	rules := []validator.Rule{
		validator.Required(validator.FieldName, validator.FieldLabel(validator.FieldName), f.Name),
		k.fieldLength(validator.FieldName, f.Name),
		validator.FromResult(validator.FieldEmail, "email_invalid", k.ValidateEmail(f.Email)),
		k.fieldLength(validator.FieldEmail, f.Email),
		k.fieldLength(validator.FieldOrganization, f.Organization),
		k.fieldLength(validator.FieldDescription, f.Description),
	}
	if f.Phone != "" {
		rules = append(rules,
			validator.FromResult(validator.FieldPhone, "phone_invalid", k.ValidatePhone(f.Phone)),
			k.fieldLength(validator.FieldPhone, f.Phone),
		)
	}
	if f.Website != "" {
		rules = append(rules,
			validator.Rule{
				Check: func() bool { return k.IsAbsoluteURL(f.Website) && k.SanitizeURL(f.Website) != "" },
				Error: validator.ValidationError{
					Field:   FieldWebsite,
					Message: MsgWebsiteInvalid,
					Code:    "url_invalid",
				},
			},
			k.fieldLengthAs(FieldWebsite, validator.FieldURL, f.Website),
		)
	}
	return k.apply("profile", rules...)
}

func (k *Kit) apply(form string, rules ...validator.Rule) error {
	err := validator.Apply(rules...)
	if err != nil {
		errs := validator.ExtractValidationErrors(err)
		k.log.DebugContext(k.ctx, "form rejected",
			"form", form,
			"fields", errs.Fields(),
		)
		for _, e := range errs {
			k.log.DebugContext(k.ctx, "rule failed",
				"form", form,
				logger.Field(e.Field),
				logger.Rule(e.Code),
			)
		}
	}
	return err
}

func (k *Kit) fieldLength(field, value string) validator.Rule {
	return k.fieldLengthAs(field, field, value)
}

// fieldLengthAs reports under field using the limit configured for limitKey.
func (k *Kit) fieldLengthAs(field, limitKey, value string) validator.Rule {
	res := validator.Result{Valid: true}
	if max, ok := k.policy.MaxFieldLengths[limitKey]; ok {
		res = validator.ValidateMaxLength(validator.FieldLabel(limitKey), value, max)
	}
	return validator.FromResult(field, "max_length", res)
}
