// Package config loads typed application configuration from environment
// variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: a .env
// file loads once per process if present, then struct fields parse from the
// environment via `env:` tags with `envDefault:` fallbacks. Each config
// type caches after its first successful parse, so components sharing a
// config struct always observe the same values.
//
//	type Config struct {
//		Addr string `env:"LIVE_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
