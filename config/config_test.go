package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")

	assert.Equal(t, 3000, cfg.Web.Port)
	assert.Equal(t, "beckn_agriculture", cfg.Database.Name)
	assert.Equal(t, "https://bpp-client.kenpath.ai", cfg.Relay.CallbackURL)
	assert.Equal(t, 1000, cfg.Relay.DelayMs)
	assert.Equal(t, "kenpath-agriculture-bpp", cfg.Bpp.ID)
	assert.Equal(t, "agristack:oan", cfg.Bpp.Domain)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("AGRIBPP_RELAY_DELAY_MS", "250")
	t.Setenv("AGRIBPP_BPP_ID", "test-bpp")

	cfg := LoadConfig("")

	assert.Equal(t, 8080, cfg.Web.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Passwd)
	assert.Equal(t, 250, cfg.Relay.DelayMs)
	assert.Equal(t, "test-bpp", cfg.Bpp.ID)
}

func TestLoadConfigYamlFile(t *testing.T) {
	yml := `
web:
  host: 127.0.0.1
  port: 4000
relay:
  callback_url: https://gateway.example.com
  delay_ms: 500
`
	cfile := filepath.Join(t.TempDir(), "agribpp.yml")
	require.NoError(t, os.WriteFile(cfile, []byte(yml), 0o644))

	cfg := LoadConfig(cfile)

	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 4000, cfg.Web.Port)
	assert.Equal(t, "https://gateway.example.com", cfg.Relay.CallbackURL)
	assert.Equal(t, 500, cfg.Relay.DelayMs)
}

func TestLoadConfigPartialYamlKeepsDefaults(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "agribpp.yml")
	require.NoError(t, os.WriteFile(cfile, []byte("web:\n  port: 4000\n"), 0o644))

	cfg := LoadConfig(cfile)

	assert.Equal(t, 4000, cfg.Web.Port)

	// everything the file does not name keeps its default
	assert.Equal(t, "beckn_agriculture", cfg.Database.Name)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "https://bpp-client.kenpath.ai", cfg.Relay.CallbackURL)
	assert.Equal(t, 1000, cfg.Relay.DelayMs)
	assert.Equal(t, "kenpath-agriculture-bpp", cfg.Bpp.ID)
}
