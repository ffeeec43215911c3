// Package safeinput bundles the portal's validators, sanitizers, maskers and
// secure random helpers behind one configured value.
//
// A Policy holds every tunable limit. DefaultPolicy returns the portal's
// fixed values; callers that need other limits copy it, change fields and
// pass it to New, which validates the policy before use.
//
//	kit, err := safeinput.New(safeinput.DefaultPolicy(), safeinput.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	if res := kit.ValidateEmail(form.Email); !res.Valid {
//	    // render res.Error next to the field
//	}
//	next := kit.SanitizeURL(r.URL.Query().Get("next"))
//
// Rejections are logged at debug level with masked values. WithContext
// returns a Kit that logs with a request context so the logger's context
// extractors can add request-scoped attributes:
//
//	kit.WithContext(r.Context()).ValidatePhone(form.Phone)
//
// # Forms
//
// ValidateSignUp, ValidateSignIn and ValidateProfile check whole forms and
// return validator.ValidationErrors listing every failing field, or nil.
//
// # Credentials
//
// IssueTemporaryPassword, IssueInviteCode and IssueRecoveryCodes draw from
// package securerand. Failures of the randomness source are returned as
// errors matching securerand.ErrRandomnessUnavailable; nothing falls back to
// a weaker generator.
//
// Kit is safe for concurrent use. It starts no goroutines.
package safeinput
