package waste

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	return path
}

func TestLoadValidCatalog(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name": "Joghurtbecher", "types": ["Plastik"], "difficulty": 1, "image_url": "https://example.com/a.jpg"},
		{"name": "Verbundkarton", "types": ["Plastik", "Papier"], "difficulty": 3, "image_url": ""}
	]`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c) != 2 {
		t.Fatalf("expected 2 items, got %d", len(c))
	}
	if c[0].Name != "Joghurtbecher" || c[0].Difficulty != 1 {
		t.Errorf("unexpected first item: %+v", c[0])
	}
	if len(c[1].Types) != 2 || c[1].Types[0] != TypePlastik || c[1].Types[1] != TypePapier {
		t.Errorf("unexpected types: %v", c[1].Types)
	}
}

func TestLoadRejectsUnknownType(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name": "Dose", "types": ["Metall"], "difficulty": 1, "image_url": ""}
	]`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected schema error for unknown type")
	}
}

func TestLoadRejectsOutOfRangeDifficulty(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name": "Dose", "types": ["Plastik"], "difficulty": 4, "image_url": ""}
	]`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected schema error for difficulty 4")
	}
}

func TestLoadRejectsEmptyTypes(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name": "Dose", "types": [], "difficulty": 1, "image_url": ""}
	]`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected schema error for empty types")
	}
}

func TestLoadRequiresStarterItem(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"name": "Schwer", "types": ["Giftig"], "difficulty": 3, "image_url": ""}
	]`)

	_, err := Load(path)
	if !errors.Is(err, ErrNoStarterItems) {
		t.Fatalf("expected ErrNoStarterItems, got %v", err)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `[{`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
