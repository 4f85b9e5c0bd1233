// Package config handles configuration for the reference auth server,
// including defaults, JSON overlay, environment and command-line flags.
package config

import "time"

// Config holds runtime settings for the auth server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty means in-memory storage.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: lifetime of issued tokens.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr            string        `env:"GAUTH_SERVER_ADDR"`
	DatabaseDSN           string        `env:"GAUTH_SERVER_DSN"`
	SecretKey             string        `env:"GAUTH_SERVER_SECRET"`
	TokenValidityDuration time.Duration `env:"GAUTH_SERVER_TOKEN_TTL"`
	LogLevel              string        `env:"GAUTH_SERVER_LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":5000"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 60 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
