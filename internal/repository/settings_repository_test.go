package repository

import (
	"os"
	"path/filepath"
	"testing"

	"pagemind/internal/entities"
)

func TestLoadGlobalMissingFile(t *testing.T) {
	repo := NewSettingsRepository(filepath.Join(t.TempDir(), "config.json"), testLogger())

	global := repo.LoadGlobal()
	if global.DefaultAIModel != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, global.DefaultAIModel)
	}
	if global.OpenRouterKey != "" {
		t.Errorf("expected empty key, got %q", global.OpenRouterKey)
	}
}

func TestLoadGlobalCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("]["), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	repo := NewSettingsRepository(path, testLogger())
	if got := repo.LoadGlobal().DefaultAIModel; got != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, got)
	}
}

func TestGlobalRoundtrip(t *testing.T) {
	repo := NewSettingsRepository(filepath.Join(t.TempDir(), "config.json"), testLogger())

	saved := entities.GlobalConfig{DefaultAIModel: "anthropic/claude-3-haiku", OpenRouterKey: "sk-or-v1-abc"}
	if err := repo.SaveGlobal(saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := repo.LoadGlobal()
	if got.DefaultAIModel != saved.DefaultAIModel {
		t.Errorf("expected model %q, got %q", saved.DefaultAIModel, got.DefaultAIModel)
	}
	if got.OpenRouterKey != saved.OpenRouterKey {
		t.Errorf("expected key %q, got %q", saved.OpenRouterKey, got.OpenRouterKey)
	}
}

func TestLoadGlobalBackfillsModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"openrouterKey":"sk-or-v1-abc"}`), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	repo := NewSettingsRepository(path, testLogger())
	global := repo.LoadGlobal()
	if global.DefaultAIModel != DefaultModel {
		t.Errorf("expected backfilled model %q, got %q", DefaultModel, global.DefaultAIModel)
	}
	if global.OpenRouterKey != "sk-or-v1-abc" {
		t.Errorf("expected stored key to survive, got %q", global.OpenRouterKey)
	}
}
