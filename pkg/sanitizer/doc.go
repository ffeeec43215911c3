// Package sanitizer makes untrusted strings safe to use in sensitive
// contexts: URLs bound to href/src attributes, free-text fields and contact
// values that are about to be stored or compared.
//
// # URLs
//
// SanitizeURL is the gate for every value that may end up in a navigable or
// embeddable attribute. It returns either the empty string (reject: do not
// render, do not navigate) or a value that is safe to bind:
//
//	href := sanitizer.SanitizeURL(app.HomepageURL)
//	if href == "" {
//	    // suppress the link
//	}
//
// Relative references starting with '/' or '.' ("/settings", "./logo.png")
// pass through unchanged. Anything else must parse as an absolute URL using
// http or https; bare words, javascript:,
// data:, vbscript: and every other scheme are rejected. Plain-http URLs on
// the portal's own domain family are upgraded to https. A URLSanitizer with
// a custom brand domain list covers other deployments.
//
// # Free text
//
// CleanInput drops NUL bytes and control characters, trims and caps the
// length. StripTags removes all markup using a bluemonday strict policy.
//
// # Contact values
//
// NormalizeEmail and NormalizePhone return cleaned values for storage and
// comparison. They are not validators; pair them with package validator.
//
// # Error handling
//
// Nothing in this package returns an error or panics. Rejection is the empty
// string; everything else falls back to a safe result.
package sanitizer
