package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"pagemind/internal/entities"
)

// DefaultModel is used when neither a page nor the global configuration
// names a model.
const DefaultModel = "openai/gpt-4o-mini"

// SettingsRepository persists the global configuration as one JSON
// file. A missing or corrupt file yields the default record.
type SettingsRepository struct {
	path string
	log  *logrus.Logger
	mu   sync.Mutex
}

func NewSettingsRepository(path string, log *logrus.Logger) *SettingsRepository {
	return &SettingsRepository{path: path, log: log}
}

// LoadGlobal returns the global configuration, or the default record
// when the backing file is missing or unreadable.
func (r *SettingsRepository) LoadGlobal() entities.GlobalConfig {
	r.mu.Lock()
	defer r.mu.Unlock()

	def := entities.GlobalConfig{DefaultAIModel: DefaultModel}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.WithError(err).Warn("Failed to read settings file")
		}
		return def
	}

	var cfg entities.GlobalConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		r.log.WithError(err).Warn("Settings file is corrupt, using defaults")
		return def
	}
	if cfg.DefaultAIModel == "" {
		cfg.DefaultAIModel = DefaultModel
	}
	return cfg
}

// SaveGlobal overwrites the global configuration.
func (r *SettingsRepository) SaveGlobal(cfg entities.GlobalConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
