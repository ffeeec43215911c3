package environment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ErrUnknownEnvironment is returned by Parse for unrecognized names.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Normalize maps aliases to canonical names. Unrecognized values are
// lowercased and returned as-is.
func Normalize(s string) Environment {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "dev", "development", "local":
		return Development
	case "stage", "staging":
		return Staging
	case "prod", "production":
		return Production
	default:
		return Environment(v)
	}
}

// Parse is like Normalize but rejects anything that is not one of the three
// canonical environments.
func Parse(s string) (Environment, error) {
	env := Normalize(s)
	if !env.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, s)
	}
	return env, nil
}

func (e Environment) Valid() bool {
	switch e {
	case Development, Staging, Production:
		return true
	}
	return false
}

func (e Environment) IsProduction() bool  { return Normalize(string(e)) == Production }
func (e Environment) IsStaging() bool     { return Normalize(string(e)) == Staging }
func (e Environment) IsDevelopment() bool { return Normalize(string(e)) == Development }

func (e Environment) String() string { return string(e) }

type contextKey struct{}

// WithContext adds environment to context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// LoggerExtractor returns a context extractor that logs the environment under "env".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
