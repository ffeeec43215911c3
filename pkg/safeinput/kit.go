package safeinput

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/myaccounts/portalkit/pkg/logger"
	"github.com/myaccounts/portalkit/pkg/mask"
	"github.com/myaccounts/portalkit/pkg/sanitizer"
	"github.com/myaccounts/portalkit/pkg/securerand"
	"github.com/myaccounts/portalkit/pkg/validator"
)

// Kit applies a Policy. Create it with New.
type Kit struct {
	policy Policy
	urls   sanitizer.URLSanitizer
	log    *slog.Logger
	// ctx is passed to every log call so context extractors see request values.
	ctx context.Context
}

// Option configures a Kit.
type Option func(*Kit)

// WithLogger sets the logger used for rejection records. Nil is ignored.
// The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(k *Kit) {
		if l != nil {
			k.log = l
		}
	}
}

// New validates policy and returns a Kit bound to a private copy of it.
func New(policy Policy, opts ...Option) (*Kit, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	k := &Kit{
		policy: policy.clone(),
		log:    logger.Discard(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.urls = sanitizer.NewURLSanitizer(k.policy.BrandDomains...)
	k.log = k.log.With(logger.Component("safeinput"))

	return k, nil
}

// WithContext returns a Kit that logs with ctx. The receiver is not modified,
// so a shared Kit can be scoped per request or per command run.
func (k *Kit) WithContext(ctx context.Context) *Kit {
	if ctx == nil {
		ctx = context.Background()
	}
	scoped := *k
	scoped.ctx = ctx
	return &scoped
}

// Policy returns a copy of the policy in effect.
func (k *Kit) Policy() Policy {
	return k.policy.clone()
}

func (k *Kit) rejected(res validator.Result, field string, value slog.Attr) validator.Result {
	if !res.Valid {
		k.log.DebugContext(k.ctx, "value rejected", logger.Field(field), logger.Reason(res.Error), value)
	}
	return res
}

// Validators

func (k *Kit) ValidateEmail(email string) validator.Result {
	return k.rejected(validator.ValidateEmail(email), validator.FieldEmail, logger.Email(email))
}

func (k *Kit) ValidatePhone(phone string) validator.Result {
	return k.rejected(validator.ValidatePhone(phone), validator.FieldPhone, logger.Phone(phone))
}

// ValidateOTP checks a code of the policy's OTPLength.
func (k *Kit) ValidateOTP(code string) validator.Result {
	return k.rejected(validator.ValidateOTPWith(code, k.policy.OTPLength), validator.FieldOTP, slog.Int("length", len(code)))
}

// EvaluatePassword scores p against the policy's minimum length.
func (k *Kit) EvaluatePassword(p string) validator.PasswordStrength {
	return validator.EvaluatePasswordWith(p, k.policy.MinPasswordLength)
}

func (k *Kit) IsPasswordStrong(p string) bool {
	return k.EvaluatePassword(p).Score >= k.policy.MinPasswordScore
}

// ValidatePassword checks presence, the maximum length and the policy's strength threshold.
// The maximum comes from MaxFieldLengths[validator.FieldPassword] when set.
func (k *Kit) ValidatePassword(p string) validator.Result {
	res := validator.ValidatePasswordWithMax(
		p,
		k.policy.MinPasswordLength,
		k.policy.MaxFieldLengths[validator.FieldPassword],
		k.policy.MinPasswordScore,
	)
	if !res.Valid {
		k.log.DebugContext(k.ctx, "value rejected",
			logger.Field(validator.FieldPassword),
			logger.Reason(res.Error),
			slog.Int("score", k.EvaluatePassword(p).Score),
		)
	}
	return res
}

// ValidateFile checks f against the policy's allow-list and size limit.
func (k *Kit) ValidateFile(f validator.FileInfo) validator.Result {
	return k.rejected(
		validator.ValidateFileWith(f, k.policy.AllowedFileTypes, k.policy.MaxFileSize),
		"file",
		slog.Group("file", slog.String("type", f.MIMEType), slog.Int64("size", f.Size)),
	)
}

// ValidateUpload sniffs the content type from r and validates the result.
// The error is non-nil only when r cannot be read.
func (k *Kit) ValidateUpload(name string, r io.Reader, size int64) (validator.FileInfo, validator.Result, error) {
	info, err := validator.DetectFile(name, r, size)
	if err != nil {
		return validator.FileInfo{}, validator.Result{}, err
	}
	return info, k.ValidateFile(info), nil
}

func (k *Kit) ValidateRequired(field, value string) validator.Result {
	return validator.ValidateRequired(field, value)
}

func (k *Kit) ValidateMinLength(field, value string, min int) validator.Result {
	return validator.ValidateMinLength(field, value, min)
}

func (k *Kit) ValidateMaxLength(field, value string, max int) validator.Result {
	return validator.ValidateMaxLength(field, value, max)
}

func (k *Kit) ValidateMatch(field, value, other string) validator.Result {
	return validator.ValidateMatch(field, value, other)
}

// ValidateFieldLength enforces the policy's maximum length for a field key.
// Keys missing from Policy.MaxFieldLengths are unlimited.
func (k *Kit) ValidateFieldLength(field, value string) validator.Result {
	max, ok := k.policy.MaxFieldLengths[field]
	if !ok {
		return validator.Result{Valid: true}
	}
	return validator.ValidateMaxLength(validator.FieldLabel(field), value, max)
}

// Sanitizers

// SanitizeURL applies the URL policy with the policy's brand domains.
func (k *Kit) SanitizeURL(raw string) string {
	out := k.urls.Sanitize(raw)
	if out == "" && raw != "" {
		k.log.DebugContext(k.ctx, "url rejected", logger.URL(raw))
	}
	return out
}

func (k *Kit) IsAbsoluteURL(raw string) bool {
	return sanitizer.IsAbsoluteURL(raw)
}

func (k *Kit) ResolveRelative(base, rel string) string {
	return sanitizer.ResolveRelative(base, rel)
}

func (k *Kit) CleanInput(s string) string {
	return sanitizer.CleanInput(s)
}

func (k *Kit) StripTags(s string) string {
	return sanitizer.StripTags(s)
}

func (k *Kit) NormalizeEmail(email string) string {
	return sanitizer.NormalizeEmail(email)
}

func (k *Kit) NormalizePhone(phone string) string {
	return sanitizer.NormalizePhone(phone)
}

// Maskers

func (k *Kit) MaskEmail(email string) string {
	return mask.Email(email)
}

func (k *Kit) MaskEmailMinimal(email string) string {
	return mask.EmailMinimal(email)
}

func (k *Kit) MaskPhone(phone string) string {
	return mask.Phone(phone)
}

func (k *Kit) MaskPhoneWithCountryCode(phone string) string {
	return mask.PhoneWithCountryCode(phone)
}

func (k *Kit) MaskPhonePartial(phone string) string {
	return mask.PhonePartial(phone)
}

func (k *Kit) MaskToken(token string) string {
	return mask.Token(token)
}

// Secure random

// GenerateToken returns n symbols from alphabet. An empty alphabet selects
// securerand.AlphabetUnambiguous.
func (k *Kit) GenerateToken(n int, alphabet string) (string, error) {
	if alphabet == "" {
		alphabet = securerand.AlphabetUnambiguous
	}
	return k.withRandomness(securerand.Token(n, alphabet))
}

// GenerateOTP returns a numeric code of the policy's OTPLength.
func (k *Kit) GenerateOTP() (string, error) {
	return k.withRandomness(securerand.OTP(k.policy.OTPLength))
}

func (k *Kit) NewID() (uuid.UUID, error) {
	id, err := securerand.NewID()
	if err != nil {
		k.logRandomnessFailure(err)
	}
	return id, err
}

func (k *Kit) withRandomness(s string, err error) (string, error) {
	if err != nil {
		k.logRandomnessFailure(err)
		return "", err
	}
	return s, nil
}

func (k *Kit) logRandomnessFailure(err error) {
	if errors.Is(err, securerand.ErrRandomnessUnavailable) {
		k.log.ErrorContext(k.ctx, "secure random source failed", logger.Error(err))
	}
}
