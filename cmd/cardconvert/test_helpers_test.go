package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anaik-zam/CardConvert/internal/config"
)

type cliTestEnv struct {
	configPath string
	inputDir   string
	outputDir  string
}

func setupCLITestEnv(t *testing.T) cliTestEnv {
	t.Helper()
	root := t.TempDir()

	env := cliTestEnv{
		configPath: filepath.Join(root, "config.toml"),
		inputDir:   filepath.Join(root, "input"),
		outputDir:  filepath.Join(root, "output"),
	}
	content := fmt.Sprintf(`[paths]
input_dir = %q
output_dir = %q
log_dir = %q
backgrounds_dir = %q
`,
		env.inputDir, env.outputDir,
		filepath.Join(root, "logs"), filepath.Join(root, "backgrounds"),
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	if err := os.MkdirAll(env.inputDir, 0o755); err != nil {
		t.Fatalf("create input dir: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, configPath)

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func requireContains(t *testing.T, output, needle string) {
	t.Helper()
	if !strings.Contains(output, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, output)
	}
}
