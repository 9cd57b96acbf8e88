package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.Endpoint)
	assert.Equal(t, "storefront", c.DatabaseID)
	assert.Equal(t, "users", c.UsersCollection)
	assert.Equal(t, "categories", c.CategoriesCollection)
	assert.Equal(t, "menu", c.MenuCollection)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.False(t, c.Debug)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
