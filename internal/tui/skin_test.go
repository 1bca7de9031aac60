package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSkinDefault(t *testing.T) {
	t.Parallel()

	skin, err := LoadSkin("default", t.TempDir())
	if err != nil {
		t.Fatalf("default skin errored: %v", err)
	}
	if skin.Name != "default" {
		t.Fatalf("skin name = %q", skin.Name)
	}
}

func TestLoadSkinFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	body := "name = \"night\"\naccent = \"201\"\nbar = \"53\"\n"
	if err := os.WriteFile(filepath.Join(dir, "skins", "night.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	skin, err := LoadSkin("night", dir)
	if err != nil {
		t.Fatalf("loading skin: %v", err)
	}
	if skin.Name != "night" || string(skin.Accent) != "201" || string(skin.Bar) != "53" {
		t.Fatalf("skin = %+v", skin)
	}
	// Unspecified fields keep the built-in colors.
	if skin.Text != DefaultSkin().Text {
		t.Fatalf("text color = %q, want default", skin.Text)
	}
}

func TestLoadSkinMissingFallsBack(t *testing.T) {
	t.Parallel()

	skin, err := LoadSkin("nope", t.TempDir())
	if err == nil {
		t.Fatal("missing skin should report why it fell back")
	}
	if skin == nil || skin.Name != "default" {
		t.Fatalf("fallback skin = %+v, want the default", skin)
	}
}
