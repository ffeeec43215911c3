package sanitizer

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultBrandDomains is the portal's production domain family. Hosts equal
// to one of them, or below one of them, are never served over plain http.
var DefaultBrandDomains = []string{"myaccounts.app"}

// schemeRegex matches a leading URI scheme: a letter, then letters, digits, '+', '-' or '.', then ':'.
var schemeRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z\d+\-.]*:`)

// URLSanitizer applies the URL policy for a given brand domain family.
// The zero value uses no brand domains and therefore never upgrades.
type URLSanitizer struct {
	BrandDomains []string
}

// NewURLSanitizer returns a sanitizer upgrading http to https for domains.
// With no arguments it uses DefaultBrandDomains.
func NewURLSanitizer(domains ...string) URLSanitizer {
	if len(domains) == 0 {
		domains = DefaultBrandDomains
	}
	normalized := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.Trim(strings.ToLower(strings.TrimSpace(d)), ".")
		if d != "" {
			normalized = append(normalized, d)
		}
	}
	return URLSanitizer{BrandDomains: normalized}
}

var defaultURLSanitizer = NewURLSanitizer()

// SanitizeURL sanitizes raw with DefaultBrandDomains.
func SanitizeURL(raw string) string {
	return defaultURLSanitizer.Sanitize(raw)
}

// Sanitize returns "" when raw must not be bound to a navigable attribute,
// raw unchanged when it starts with '/' or '.', and the canonical URL string
// of an absolute http(s) URL otherwise. The canonical form has a lower case
// scheme and host.
func (s URLSanitizer) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, ".") {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		// Either a scheme the parser could not interpret (" javascript:", "java\nscript:")
		// or a bare word that is not a URL at all. Relative references must start with / or .
		return ""
	}

	switch strings.ToLower(u.Scheme) {
	case "https":
		u.Scheme = "https"
	case "http":
		u.Scheme = "http"
		if s.isBrandHost(u.Hostname()) {
			u.Scheme = "https"
		}
	default:
		return ""
	}

	if u.Host == "" || u.Opaque != "" {
		return ""
	}
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

func (s URLSanitizer) isBrandHost(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return false
	}
	for _, d := range s.BrandDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// IsAbsoluteURL reports whether raw starts with a URI scheme.
func IsAbsoluteURL(raw string) bool {
	return schemeRegex.MatchString(raw)
}

// ResolveRelative resolves rel against base. It returns rel unchanged when
// either side fails to parse.
func ResolveRelative(base, rel string) string {
	b, err := url.Parse(base)
	if err != nil {
		return rel
	}
	r, err := url.Parse(rel)
	if err != nil {
		return rel
	}
	return b.ResolveReference(r).String()
}
