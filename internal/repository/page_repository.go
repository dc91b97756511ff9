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

// PageRepository persists the page collection as one JSON file. Reads
// fail soft: a missing or corrupt file yields an empty collection so a
// fresh deployment starts clean.
type PageRepository struct {
	path string
	log  *logrus.Logger
	mu   sync.Mutex
}

func NewPageRepository(path string, log *logrus.Logger) *PageRepository {
	return &PageRepository{path: path, log: log}
}

// LoadPages returns all configured pages.
func (r *PageRepository) LoadPages() []entities.PageConfig {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// SavePages overwrites the whole collection.
func (r *PageRepository) SavePages(pages []entities.PageConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(pages)
}

// Find returns the page with the given id.
func (r *PageRepository) Find(id string) (entities.PageConfig, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.load() {
		if p.ID == id {
			return p, true
		}
	}
	return entities.PageConfig{}, false
}

// Insert appends a new page record.
func (r *PageRepository) Insert(page entities.PageConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(append(r.load(), page))
}

// Update replaces the record matching page.ID. Returns false when no
// such record exists.
func (r *PageRepository) Update(page entities.PageConfig) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pages := r.load()
	for i := range pages {
		if pages[i].ID == page.ID {
			pages[i] = page
			return true, r.save(pages)
		}
	}
	return false, nil
}

// Delete removes the record with the given id. Returns false when no
// such record exists.
func (r *PageRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pages := r.load()
	for i := range pages {
		if pages[i].ID == id {
			pages = append(pages[:i], pages[i+1:]...)
			return true, r.save(pages)
		}
	}
	return false, nil
}

func (r *PageRepository) load() []entities.PageConfig {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.WithError(err).Warn("Failed to read pages file")
		}
		return []entities.PageConfig{}
	}

	var pages []entities.PageConfig
	if err := json.Unmarshal(data, &pages); err != nil {
		r.log.WithError(err).Warn("Pages file is corrupt, treating as empty")
		return []entities.PageConfig{}
	}
	return pages
}

func (r *PageRepository) save(pages []entities.PageConfig) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pages: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write pages file: %w", err)
	}
	return nil
}
