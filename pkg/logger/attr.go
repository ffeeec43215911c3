package logger

import (
	"log/slog"
	"net/url"

	"github.com/myaccounts/portalkit/pkg/mask"
)

// Error records err under "error". A nil error yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the emitting component under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field key under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Reason records why a value was rejected under "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Email records a masked address under "email". Values that do not look
// like an address are shortened instead, since the masker returns them as-is.
func Email(email string) slog.Attr {
	masked := mask.EmailMinimal(email)
	if masked == email {
		masked = mask.Token(email)
	}
	return slog.String("email", masked)
}

// Phone records a masked phone number under "phone".
func Phone(phone string) slog.Attr {
	return slog.String("phone", mask.Phone(phone))
}

// Secret records a shortened secret under key.
func Secret(key, value string) slog.Attr {
	return slog.String(key, mask.Token(value))
}

// URL records only the scheme and host of raw under "url": paths and
// queries of rejected URLs can carry payloads or tokens. Unparsable input is
// recorded as a shortened secret.
func URL(raw string) slog.Attr {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return slog.String("url", mask.Token(raw))
	}
	if u.Host == "" {
		return slog.String("url", u.Scheme+":")
	}
	return slog.String("url", u.Scheme+"://"+u.Host)
}

// Rule records the code of a failed validation rule under "rule".
func Rule(code string) slog.Attr {
	return slog.String("rule", code)
}
