package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "elysium.yaml")
	content := `
dev: true
server:
  addr: "127.0.0.1:8080"
database:
  driver: postgres
  url: postgres://localhost/elysium
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("ELYSIUM_LOG_FORMAT", "json")
	t.Setenv("ELYSIUM_DATABASE_URL", "postgres://db/override")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Dev)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "public", cfg.Server.PublicDir)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://db/override", cfg.Database.URL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "elysium.toml"), []byte("[server]\naddr = \":9000\"\n"), 0o644))
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid driver", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("ELYSIUM_DATABASE_DRIVER", "mysql")

		_, err := Load("")
		var ve *ValidationError
		require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
		assert.Equal(t, "database.driver", ve.Field)
		assert.Equal(t, "oneof", ve.Tag)
	})
}

func TestValidateListenAddr(t *testing.T) {
	tests := []struct {
		addr  string
		valid bool
	}{
		{":3000", true},
		{"localhost:8080", true},
		{"0.0.0.0:0", true},
		{"3000", false},
		{":http", false},
		{":70000", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			cfg := Default()
			cfg.Server.Addr = tt.addr
			err := Validate(cfg)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])
	assert.Equal(t, "Elysium Configuration", doc["title"])
	assert.Contains(t, string(data), "public_dir")
}
