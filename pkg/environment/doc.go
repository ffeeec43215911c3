// Package environment names the deployment environment a process runs in
// and carries it through context.Context.
//
// Environment has three canonical values: Development, Staging and
// Production. Parse and Normalize accept the common short aliases ("dev",
// "stage", "prod"). The value can be attached to a context with WithContext
// and read back with FromContext; LoggerExtractor turns it into a slog
// attribute for logger.WithContextExtractors.
//
//	env, err := environment.Parse(cfg.Env)
//	if err != nil {
//	    return err
//	}
//	ctx = environment.WithContext(ctx, env)
//	if env.IsProduction() {
//	    // stricter defaults
//	}
//
// Missing context values yield the zero Environment ("").
package environment
