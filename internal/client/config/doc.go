// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. STOREFRONT_* environment variables, with an optional .env file in the
//     working directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-e string   base URL of the backend document service
//	-p string   project id
//	-k string   API key
//	-d string   database id
//	-t int      request timeout (seconds)
//	-debug      verbose logging and development commands
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "endpoint": "https://api.example.com",
//	  "project_id": "storefront-dev",
//	  "request_timeout": "15s"
//	}
//
// Primary API
//
//   - type Config                     — the resolved runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
