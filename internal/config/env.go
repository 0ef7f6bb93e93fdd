package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-wide defaults taken from the environment. Command-line
// flags override them.
type Env struct {
	DBPath  string `env:"PATIENCE_DB"`
	FPS     int    `env:"PATIENCE_FPS" envDefault:"30"`
	Seed    int64  `env:"PATIENCE_SEED"`
	LogFile string `env:"PATIENCE_LOG"`
	Config  string `env:"PATIENCE_CONFIG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
