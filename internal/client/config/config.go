package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - Endpoint: base URL of the backend document service (without /v1).
//   - ProjectID, APIKey: request credentials sent on every call.
//   - DatabaseID plus the collection ids locate the catalog and profile data.
//   - RequestTimeout: per-request HTTP timeout.
//   - Debug: enables verbose logging and the seed command.
type Config struct {
	Endpoint             string
	ProjectID            string
	APIKey               string
	DatabaseID           string
	UsersCollection      string
	CategoriesCollection string
	MenuCollection       string
	RequestTimeout       time.Duration
	Debug                bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Endpoint = "http://127.0.0.1:8080"
	c.DatabaseID = "storefront"
	c.UsersCollection = "users"
	c.CategoriesCollection = "categories"
	c.MenuCollection = "menu"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if present)
// and command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
