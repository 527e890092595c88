package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = BackendSQLite
	cfg.Storage.File = "expenses.db"
	cfg.Submit.DelayMS = 50

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, got.Storage.Backend)
	assert.Equal(t, "expenses.db", got.Storage.File)
	assert.Equal(t, 50, got.Submit.DelayMS)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, "expenses.json", cfg.Storage.File)
	assert.Equal(t, 500, cfg.Submit.DelayMS)
	assert.Equal(t, 500*time.Millisecond, cfg.SubmitDelay())
	assert.True(t, cfg.Git.AutoCommit)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		wantIn string
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "unknown storage backend"},
		{"empty file", func(c *Config) { c.Storage.File = "" }, "must not be empty"},
		{"negative delay", func(c *Config) { c.Submit.DelayMS = -1 }, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestResolveDir(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvDir, "/from/env")
		assert.Equal(t, "/from/flag", ResolveDir("/from/flag", "."))
	})

	t.Run("env over fallback", func(t *testing.T) {
		t.Setenv(EnvDir, "/from/env")
		assert.Equal(t, "/from/env", ResolveDir("", "."))
	})

	t.Run("fallback", func(t *testing.T) {
		t.Setenv(EnvDir, "")
		assert.Equal(t, ".", ResolveDir("", "."))
	})
}
