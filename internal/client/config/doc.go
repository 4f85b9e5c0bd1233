// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Environment variables prefixed GAUTH_ (see parseEnv).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones.
//
// Supported flags
//
//	-a string   base URL of the auth API
//	-d string   path of the local session database
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	GAUTH_API_URL, GAUTH_DB_PATH, GAUTH_REQUEST_TIMEOUT (e.g. "10s"), GAUTH_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:5000/api/auth",
//	  "db_path": "session.db",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
package config
