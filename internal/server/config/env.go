package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
