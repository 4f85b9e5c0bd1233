package config

import (
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Config holds runtime settings for the gophauth CLI.
type Config struct {
	APIURL         string        `env:"GAUTH_API_URL"`
	DatabasePath   string        `env:"GAUTH_DB_PATH"`
	RequestTimeout time.Duration `env:"GAUTH_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"GAUTH_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = common.DefaultAPIURL
	c.DatabasePath = "session.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then JSON, env and flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
