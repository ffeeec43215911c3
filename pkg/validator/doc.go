// Package validator checks untrusted form input for the account portal:
// e-mail and phone shape, one-time codes, password strength, file uploads and
// generic length/match constraints.
//
// Field validators return a Result value. A failed Result always carries a
// human-readable Error that can be rendered next to the form field; a valid
// Result always carries an empty Error. Validation failures are values, never
// errors or panics.
//
//	res := validator.ValidateEmail(form.Email)
//	if !res.Valid {
//	    // render res.Error
//	}
//
// Password strength is reported as a full breakdown so the UI can render a
// checklist:
//
//	s := validator.EvaluatePassword("Abc12345!")
//	// s.Score == 5, s.Label == validator.LabelVeryStrong
//
// # Form-level aggregation
//
// Several results can be collected into one error with Rule and Apply. Every
// Result-returning validator has a Rule counterpart (Email, Phone, Password,
// Required, MinLen, MaxLen, Matches, FieldLength), and FromResult adapts any
// other Result:
//
//	err := validator.Apply(
//	    validator.Email("email", form.Email),
//	    validator.Password("password", form.Password, validator.MinPasswordScore),
//	    validator.Matches("password_confirmation", "Password confirmation", form.Confirm, form.Password),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("email") ...
//	}
//
// # Policy constants
//
// MinPasswordLength, MinPasswordScore, OTPLength, MaxFileSize,
// AllowedFileTypes and the per-field maximum lengths are fixed policy values.
// Callers that need a different policy pass explicit values to the *With
// variants.
//
// All functions are pure and safe for concurrent use. Whitespace trimming is
// applied only for the purpose of the check; no validator changes the value
// it was given.
package validator
