package config

import (
	"errors"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// envConfig is a DTO used exclusively for environment decoding. All fields
// are optional; unset variables leave the running Config untouched.
type envConfig struct {
	Endpoint             string        `env:"STOREFRONT_ENDPOINT"`
	ProjectID            string        `env:"STOREFRONT_PROJECT_ID"`
	APIKey               string        `env:"STOREFRONT_API_KEY"`
	DatabaseID           string        `env:"STOREFRONT_DATABASE_ID"`
	UsersCollection      string        `env:"STOREFRONT_USERS_COLLECTION"`
	CategoriesCollection string        `env:"STOREFRONT_CATEGORIES_COLLECTION"`
	MenuCollection       string        `env:"STOREFRONT_MENU_COLLECTION"`
	RequestTimeout       time.Duration `env:"STOREFRONT_REQUEST_TIMEOUT"`
	Debug                bool          `env:"STOREFRONT_DEBUG"`
}

// parseEnv overlays Config with values from STOREFRONT_* environment
// variables. A .env file in the working directory is loaded first when
// present; already-exported variables win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := envdecode.Decode(&ec); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return
		}
		panic(err)
	}

	if ec.Endpoint != "" {
		cfg.Endpoint = ec.Endpoint
	}
	if ec.ProjectID != "" {
		cfg.ProjectID = ec.ProjectID
	}
	if ec.APIKey != "" {
		cfg.APIKey = ec.APIKey
	}
	if ec.DatabaseID != "" {
		cfg.DatabaseID = ec.DatabaseID
	}
	if ec.UsersCollection != "" {
		cfg.UsersCollection = ec.UsersCollection
	}
	if ec.CategoriesCollection != "" {
		cfg.CategoriesCollection = ec.CategoriesCollection
	}
	if ec.MenuCollection != "" {
		cfg.MenuCollection = ec.MenuCollection
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.Debug {
		cfg.Debug = true
	}
}
