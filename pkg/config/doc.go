// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (for .env files) and
// github.com/caarlos0/env/v11 (for struct tag parsing). Every configuration
// type is parsed once and cached for the lifetime of the process; tests that
// change the environment call ResetCache.
//
//	type Settings struct {
//		RulesFile string `env:"RULES_FILE,required"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var s Settings
//	config.MustLoad(&s)
//
// Errors wrap the sentinel values in errors.go with errors.Join so callers
// can match them with errors.Is.
package config
