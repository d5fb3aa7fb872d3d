package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var errParsingEnv = errors.New("prxz: parse environment")

// envConfig holds the defaults the flags fall back to.
type envConfig struct {
	Locale     string `env:"PRXZ_LOCALE" envDefault:"ru"`
	RulesFile  string `env:"PRXZ_RULES_FILE"`
	Decimals   string `env:"PRXZ_DECIMALS" envDefault:"2"`
	Currency   string `env:"PRXZ_CURRENCY" envDefault:"RUB"`
	DateFormat string `env:"PRXZ_DATE_FORMAT" envDefault:"dd.mm.yyyy"`
	LogLevel   string `env:"PRXZ_LOG_LEVEL" envDefault:"warn"`
	TimeOffset string `env:"PRXZ_TIME_OFFSET"`
}

// loadEnvConfig reads the PRXZ_* variables. A nil environ reads the process
// environment after loading an optional .env file from the working directory.
func loadEnvConfig(environ map[string]string) (envConfig, error) {
	var cfg envConfig

	opts := env.Options{}
	if environ == nil {
		// the .env file is optional
		_ = godotenv.Load()
	} else {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return envConfig{}, errors.Join(errParsingEnv, err)
	}
	return cfg, nil
}

func (c envConfig) timeOffset() (*time.Duration, error) {
	if c.TimeOffset == "" {
		return nil, nil
	}
	offset, err := time.ParseDuration(c.TimeOffset)
	if err != nil {
		return nil, fmt.Errorf("PRXZ_TIME_OFFSET: %w", err)
	}
	return &offset, nil
}
