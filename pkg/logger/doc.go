// Package logger builds the *slog.Logger used by the portal kit and its
// tools, and defines the attribute helpers that keep key names consistent.
//
// New takes functional options for format (json or text), level, output,
// static attributes and context extractors. Records pass through a
// LogHandlerDecorator that pulls request-scoped values out of the context at
// logging time.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "accountsctl"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	ctx = environment.WithContext(ctx, environment.Production)
//	log.DebugContext(ctx, "url rejected", logger.URL(raw), logger.Field("avatar"))
//
// WithEnvironment registers the environment extractor, so "env" is taken from
// the context of each record rather than fixed when the logger is built.
//
// # Sensitive values
//
// Contact values and secrets never reach a log record in clear text. Use
// Email, Phone and Secret, which mask through package mask, and URL, which
// keeps only scheme and host.
package logger
