// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is populated from PAGEMIND_* environment variables (bare names
// work too). Defaults make the binary runnable with no environment set.
type Config struct {
	Port          int    `envconfig:"PORT" default:"3000"`
	DataDir       string `envconfig:"DATA_DIR" default:"data"`
	KnowledgeDir  string `envconfig:"KNOWLEDGE_DIR"`
	DashboardDir  string `envconfig:"DASHBOARD_DIR" default:"dashboard"`
	JWTSecret     string `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin"`
	OpenRouterURL string `envconfig:"OPENROUTER_URL" default:"https://openrouter.ai/api/v1"`
	GraphAPIURL   string `envconfig:"GRAPH_API_URL" default:"https://graph.facebook.com/v18.0"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env when present, then the environment. KnowledgeDir
// defaults to a subdirectory of DataDir.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("PAGEMIND", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	if cfg.KnowledgeDir == "" {
		cfg.KnowledgeDir = filepath.Join(cfg.DataDir, "knowledge")
	}

	return cfg, nil
}

// PagesFile is the pages collection path under the data directory.
func (c Config) PagesFile() string {
	return filepath.Join(c.DataDir, "pages.json")
}

// SettingsFile is the global configuration path under the data directory.
func (c Config) SettingsFile() string {
	return filepath.Join(c.DataDir, "config.json")
}
