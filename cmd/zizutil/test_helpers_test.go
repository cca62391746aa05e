package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	home       string
	configPath string
	dataDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"ZIZUTIL_LOG_LEVEL", "ZIZUTIL_LOG_FORMAT", "ZIZUTIL_LOG_FILE", "ZIZUTIL_BACKUP", "ZIZUTIL_LOCK", "ZIZUTIL_TYPE_SET_ONLY", "ZIZUTIL_MENU_START", "ZIZUTIL_MENU_ROMAN"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	return &cliTestEnv{
		home:       home,
		configPath: filepath.Join(base, "zizutil.toml"),
		dataDir:    filepath.Join(base, "data"),
	}
}

func (e *cliTestEnv) writeSettings(t *testing.T, content string) {
	t.Helper()
	writeTestFile(t, e.configPath, content)
}

func writeTestFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
