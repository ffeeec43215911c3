// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files,
// github.com/caarlos0/env/v11 for struct parsing and
// github.com/go-playground/validator/v10 for `validate` tags. Each
// configuration type is parsed and validated once; later calls for the same
// type return the cached copy.
//
// # Usage
//
//	type Config struct {
//	    Env          string   `env:"APP_ENV" envDefault:"development" validate:"oneof=development staging production"`
//	    BrandDomains []string `env:"BRAND_DOMAINS" envSeparator:"," validate:"dive,fqdn"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load reads ./.env on first use if it exists. LoadEnv loads explicit files
// and drops the cache so the next Load sees them; values already present in
// the process environment win over file values. Reset drops the cache, which
// tests use after changing the environment.
package config
