package repository

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"pagemind/internal/entities"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestLoadPagesMissingFile(t *testing.T) {
	repo := NewPageRepository(filepath.Join(t.TempDir(), "pages.json"), testLogger())

	pages := repo.LoadPages()
	if len(pages) != 0 {
		t.Errorf("expected no pages for missing file, got %d", len(pages))
	}
}

func TestLoadPagesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	repo := NewPageRepository(path, testLogger())
	pages := repo.LoadPages()
	if len(pages) != 0 {
		t.Errorf("expected no pages for corrupt file, got %d", len(pages))
	}
}

func TestPageRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "pages.json")
	repo := NewPageRepository(path, testLogger())

	page := entities.PageConfig{
		ID:              "123",
		Name:            "Support",
		VerifyToken:     "verify-1",
		PageAccessToken: "EAAGtoken",
		Enabled:         true,
	}
	if err := repo.Insert(page); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	found, ok := repo.Find("123")
	if !ok {
		t.Fatal("expected to find inserted page")
	}
	if found.Name != "Support" || found.PageAccessToken != "EAAGtoken" {
		t.Errorf("unexpected page contents: %+v", found)
	}

	found.Name = "Support EU"
	ok, err := repo.Update(found)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !ok {
		t.Fatal("expected update to find the page")
	}

	found, _ = repo.Find("123")
	if found.Name != "Support EU" {
		t.Errorf("expected updated name, got %q", found.Name)
	}

	ok, err = repo.Delete("123")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !ok {
		t.Fatal("expected delete to find the page")
	}
	if _, ok := repo.Find("123"); ok {
		t.Error("expected page to be gone after delete")
	}
}

func TestUpdateUnknownPage(t *testing.T) {
	repo := NewPageRepository(filepath.Join(t.TempDir(), "pages.json"), testLogger())

	ok, err := repo.Update(entities.PageConfig{ID: "missing"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if ok {
		t.Error("expected update of unknown page to report not found")
	}
}

func TestDeleteUnknownPage(t *testing.T) {
	repo := NewPageRepository(filepath.Join(t.TempDir(), "pages.json"), testLogger())

	ok, err := repo.Delete("missing")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if ok {
		t.Error("expected delete of unknown page to report not found")
	}
}

func TestSavePagesCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "pages.json")
	repo := NewPageRepository(path, testLogger())

	if err := repo.SavePages([]entities.PageConfig{{ID: "1"}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}
