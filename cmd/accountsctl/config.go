package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/myaccounts/portalkit/pkg/config"
	"github.com/myaccounts/portalkit/pkg/environment"
	"github.com/myaccounts/portalkit/pkg/logger"
	"github.com/myaccounts/portalkit/pkg/safeinput"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env              string   `env:"APP_ENV" envDefault:"development" validate:"oneof=development dev local staging stage production prod"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat        string   `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	BrandDomains     []string `env:"BRAND_DOMAINS" envSeparator:"," envDefault:"myaccounts.app" validate:"min=1,dive,fqdn"`
	MinPasswordScore int      `env:"MIN_PASSWORD_SCORE" envDefault:"3" validate:"min=0,max=5"`
}

// Policy returns the default policy with the configured overrides.
func (c Config) Policy() safeinput.Policy {
	p := safeinput.DefaultPolicy()
	p.BrandDomains = c.BrandDomains
	p.MinPasswordScore = c.MinPasswordScore
	return p
}

// NewLogger builds the configured logger writing to w. Commands pass stderr
// so output on stdout stays machine-readable.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(c.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithEnvironment(environment.Normalize(c.Env), "accountsctl"),
		logger.WithContextValue("run_id", runIDKey{}),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
	), nil
}

// app is everything a command needs.
type app struct {
	cfg    Config
	logger *slog.Logger
	kit    *safeinput.Kit
}

// loadApp reads envFiles into the process environment, then loads the
// configuration and installs the configured logger as the slog default.
func loadApp(envFiles ...string) (*app, error) {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetAsDefault(log)

	kit, err := safeinput.New(cfg.Policy(), safeinput.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create kit: %w", err)
	}

	return &app{cfg: cfg, logger: log, kit: kit}, nil
}

type runIDKey struct{}

// runContext tags ctx with the configured environment and a fresh run id,
// both of which the logger attaches to every record.
func (a *app) runContext(ctx context.Context) (context.Context, error) {
	ctx = environment.WithContext(ctx, environment.Normalize(a.cfg.Env))
	id, err := a.kit.NewID()
	if err != nil {
		return nil, fmt.Errorf("failed to create run id: %w", err)
	}
	return context.WithValue(ctx, runIDKey{}, id.String()), nil
}
