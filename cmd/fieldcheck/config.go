package main

// Config is read from FIELDCHECK_* environment variables and an optional .env file.
type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Output    string `env:"OUTPUT" envDefault:"text"`
}

const envPrefix = "FIELDCHECK_"
