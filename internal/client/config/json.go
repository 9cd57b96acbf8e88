package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/foodcourt/internal/flagx"
	"github.com/dmitrijs2005/foodcourt/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the request timeout either as a string
// like "15s" or as integer nanoseconds. After parsing, values are copied into
// the runtime Config (which uses time.Duration).
type JsonConfig struct {
	Endpoint             string         `json:"endpoint"`
	ProjectID            string         `json:"project_id"`
	APIKey               string         `json:"api_key"`
	DatabaseID           string         `json:"database_id"`
	UsersCollection      string         `json:"users_collection"`
	CategoriesCollection string         `json:"categories_collection"`
	MenuCollection       string         `json:"menu_collection"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	Debug                bool           `json:"debug"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Fields omitted from the JSON leave the running Config untouched. The
// function panics on read or unmarshal errors (caller should recover if
// desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Endpoint != "" {
		cfg.Endpoint = jc.Endpoint
	}
	if jc.ProjectID != "" {
		cfg.ProjectID = jc.ProjectID
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.DatabaseID != "" {
		cfg.DatabaseID = jc.DatabaseID
	}
	if jc.UsersCollection != "" {
		cfg.UsersCollection = jc.UsersCollection
	}
	if jc.CategoriesCollection != "" {
		cfg.CategoriesCollection = jc.CategoriesCollection
	}
	if jc.MenuCollection != "" {
		cfg.MenuCollection = jc.MenuCollection
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.Debug {
		cfg.Debug = true
	}
}
