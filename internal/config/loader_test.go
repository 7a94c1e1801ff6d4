package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := LoadFreecell("")
	if err != nil {
		t.Fatalf("LoadFreecell() failed: %v", err)
	}

	if !cfg.Display.UnicodeSuits {
		t.Error("default config should enable unicode suits")
	}
	if !cfg.Gameplay.Timer {
		t.Error("default config should enable the timer")
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	content := []byte("display:\n  unicode_suits: false\ngameplay:\n  timer: false\n  auto_finish: true\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFreecell(path)
	if err != nil {
		t.Fatalf("LoadFreecell(%s) failed: %v", path, err)
	}

	if cfg.Display.UnicodeSuits {
		t.Error("custom config should disable unicode suits")
	}
	if cfg.Gameplay.Timer {
		t.Error("custom config should disable the timer")
	}
	if !cfg.Gameplay.AutoFinish {
		t.Error("custom config should enable auto-finish")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadFreecell("/nonexistent/path.yaml")
	if err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	cfg, err := LoadFreecell("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultFreecellConfig() {
		t.Errorf("embedded defaults %+v diverge from DefaultFreecellConfig()", cfg)
	}
}
