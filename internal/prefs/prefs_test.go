package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if got.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want %q", got.Theme, "Nightfox")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got := Load(path)
	if got.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want %q", got.Theme, "Kanagawa")
	}
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = not quoted"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	got := Load(path)
	if got.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want default after corrupt file", got.Theme)
	}
}

func TestLoad_BlankThemeFallsBackToDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"  \"\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	got := Load(path)
	if got.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want default for blank theme", got.Theme)
	}
}
