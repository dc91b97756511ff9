package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"pagemind/internal/entities"
)

const knowledgeExt = ".md"

var nameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// SanitizeName strips every character outside [A-Za-z0-9-_] from a
// document name. Path separators and dots never survive, so a crafted
// name cannot escape the knowledge directory.
func SanitizeName(name string) string {
	return nameSanitizer.ReplaceAllString(name, "")
}

// KnowledgeRepository stores knowledge documents as Markdown files in a
// single directory. A missing directory reads as an empty store.
type KnowledgeRepository struct {
	dir string
	log *logrus.Logger
	mu  sync.Mutex
}

func NewKnowledgeRepository(dir string, log *logrus.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{dir: dir, log: log}
}

// ListDocuments returns every stored document in directory order.
func (r *KnowledgeRepository) ListDocuments() []entities.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.WithError(err).Warn("Failed to read knowledge directory")
		}
		return []entities.Document{}
	}

	docs := make([]entities.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			r.log.WithError(err).WithField("file", entry.Name()).Warn("Skipping unreadable knowledge file")
			continue
		}
		docs = append(docs, entities.Document{
			Name:    strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Content: string(content),
		})
	}
	return docs
}

// Put creates or overwrites a document under the sanitized name and
// returns the stored record.
func (r *KnowledgeRepository) Put(name, content string) (entities.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clean := SanitizeName(name)
	if clean == "" {
		return entities.Document{}, fmt.Errorf("invalid document name %q", name)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return entities.Document{}, fmt.Errorf("create knowledge directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, clean+knowledgeExt), []byte(content), 0o644); err != nil {
		return entities.Document{}, fmt.Errorf("write document: %w", err)
	}

	return entities.Document{Name: clean, Content: content}, nil
}

// Delete removes the document with the sanitized name.
func (r *KnowledgeRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clean := SanitizeName(name)
	if clean == "" {
		return fmt.Errorf("invalid document name %q", name)
	}

	if err := os.Remove(filepath.Join(r.dir, clean+knowledgeExt)); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
