package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Workers != defaultWorkers {
		t.Fatalf("unexpected default workers: %d", cfg.Workers)
	}
	if _, ok := cfg.CardTypes["cardbacks"]; !ok {
		t.Fatal("default config missing cardbacks card type")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if len(cfg.Locales) == 0 {
		t.Fatal("expected default locales")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
workers = 2
locales = ["enUS", "esES"]

[paths]
input_dir = "` + filepath.Join(dir, "in") + `"
output_dir = "` + filepath.Join(dir, "out") + `"

[card_types.cards]
frame_re = '_\d{4}'
anim_folder = "animation"
outputs = ["original", "medium"]
unity_folder = "Cards"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Workers != 2 {
		t.Fatalf("unexpected workers: %d", cfg.Workers)
	}
	if len(cfg.Locales) != 2 || cfg.Locales[1] != "esES" {
		t.Fatalf("unexpected locales: %v", cfg.Locales)
	}
	if cfg.CardTypes["cards"].FrameSplit != `_\d{4}` {
		t.Fatalf("unexpected frame split: %q", cfg.CardTypes["cards"].FrameSplit)
	}
}

func TestLoadRejectsBadLocale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`locales = ["not a locale"]`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected locale validation error")
	}
}

func TestLoadRejectsBadFrameSplit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[card_types.cards]
frame_re = '['
outputs = ["original"]
unity_folder = "Cards"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected frame_re validation error")
	}
}

func TestBackgroundsEnvOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv(EnvBackgroundsDir, override)

	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Paths.BackgroundsDir != override {
		t.Fatalf("backgrounds override not applied: %q", cfg.Paths.BackgroundsDir)
	}

	bg, err := cfg.BackgroundPath("cardbacks")
	if err != nil {
		t.Fatalf("background path: %v", err)
	}
	if bg != filepath.Join(override, "cardback_bg.png") {
		t.Fatalf("unexpected background path: %q", bg)
	}
}

func TestSampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(SampleConfig()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if !strings.Contains(SampleConfig(), "card_types.cardbacks") {
		t.Fatal("sample config missing cardbacks section")
	}
}
