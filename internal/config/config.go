package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside a spendbook data directory.
const FileName = "spendbook.yaml"

// EnvDir is the environment variable that overrides the data directory.
const EnvDir = "SPENDBOOK_DIR"

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config represents the top-level spendbook.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Submit  SubmitConfig  `yaml:"submit"`
	Git     GitConfig     `yaml:"git"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	File    string `yaml:"file"`    // relative to the data directory
}

// SubmitConfig controls the deferred-submission delay for create/update.
type SubmitConfig struct {
	DelayMS int `yaml:"delay_ms"`
}

// GitConfig controls git history of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// SubmitDelay returns the configured delay as a duration.
func (c *Config) SubmitDelay() time.Duration {
	return time.Duration(c.Submit.DelayMS) * time.Millisecond
}

// Validate checks the configuration for values no backend can serve.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", c.Storage.Backend, BackendJSON, BackendSQLite)
	}
	if c.Storage.File == "" {
		return fmt.Errorf("storage file must not be empty")
	}
	if c.Submit.DelayMS < 0 {
		return fmt.Errorf("submit delay must not be negative")
	}
	return nil
}

// Load reads a spendbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			File:    "expenses.json",
		},
		Submit: SubmitConfig{
			DelayMS: 500,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Spendbook",
			AuthorEmail: "spendbook@localhost",
		},
	}
}

// ResolveDir picks the data directory: an explicit flag value wins, then
// SPENDBOOK_DIR (a .env file in the working directory is honored), then the
// fallback. The directory is not required to exist yet.
func ResolveDir(flagDir, fallback string) string {
	if flagDir != "" {
		return flagDir
	}
	_ = godotenv.Load() // missing .env is fine
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	return fallback
}
