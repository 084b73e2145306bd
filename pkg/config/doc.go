// Package config loads typed configuration from the process environment.
//
// It wraps github.com/joho/godotenv, which reads optional .env files into the
// environment, and github.com/caarlos0/env/v11, which parses the environment
// into a struct using `env` and `envDefault` field tags.
//
// # Usage
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FIELDCHECK_")); err != nil {
//	    log.Fatal(err)
//	}
//
// Without WithEnvFiles, Load reads ./.env when it exists. Values already set in
// the environment always win over values from files.
//
// # Error Handling
//
// Failures wrap ErrParsingConfig or ErrLoadingEnvFile and can be matched with
// errors.Is.
package config
