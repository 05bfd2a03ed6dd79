package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCLI(t, []string{"config", "init", "--path", target}, env.configPath)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// Refuses to clobber without --overwrite.
	if _, err := runCLI(t, []string{"config", "init", "--path", target}, env.configPath); err == nil {
		t.Fatal("expected error when target already exists")
	}
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "input_dir")
	requireContains(t, out, env.inputDir)
	requireContains(t, out, "# locale enUS = American English")
}

func TestScanEmptyInput(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"scan"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "No cards found")
}

func TestScanDiscoversCards(t *testing.T) {
	env := setupCLITestEnv(t)

	cardDir := filepath.Join(env.inputDir, "Cards", "enUS")
	if err := os.MkdirAll(cardDir, 0o755); err != nil {
		t.Fatalf("create card dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cardDir, "fireball.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write card: %v", err)
	}

	out, err := runCLI(t, []string{"scan", "cards"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "fireball")
	requireContains(t, out, "1 cards discovered")
}

func TestHistoryEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, err := runCLI(t, []string{"history"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No recorded runs")
}

func TestUnknownTypeRejected(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, err := runCLI(t, []string{"scan", "tokens"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown card type")
	}
}
