package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const cliDefaults = `{"volume": 10, "theme": "dark"}`

func TestConfigEnsureReportsStates(t *testing.T) {
	env := setupCLITestEnv(t)
	defaults := writeTestFile(t, filepath.Join(env.dataDir, "defaults.json"), cliDefaults)
	args := []string{"config", "ensure", "--defaults", defaults, "--dir", filepath.Join(env.dataDir, "app"), "--name", "settings.json"}
	target := filepath.Join(env.dataDir, "app", "settings.json")

	out, _, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("config ensure: %v", err)
	}
	requireContains(t, out, target+": no-file")

	out, _, err = runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("config ensure: %v", err)
	}
	requireContains(t, out, target+": valid")

	writeTestFile(t, target, `{"volume": "loud", "theme": "dark"}`)
	out, _, err = runCLI(t, append(args, "--backup"), env.configPath)
	if err != nil {
		t.Fatalf("config ensure: %v", err)
	}
	requireContains(t, out, target+": type-mismatch")
	if _, err := os.Stat(target + ".bak"); err != nil {
		t.Fatalf("expected backup file: %v", err)
	}
}

func TestConfigEnsureUsesSettingsDefaults(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeSettings(t, "[reconcile]\ntype_set_only = true\n")
	defaults := writeTestFile(t, filepath.Join(env.dataDir, "defaults.json"), `{"a": "x"}`)
	target := writeTestFile(t, filepath.Join(env.dataDir, "app", "settings.json"), `{"b": "y"}`)

	args := []string{"config", "ensure", "--defaults", defaults, "--dir", filepath.Dir(target), "--name", "settings.json"}
	out, _, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("config ensure: %v", err)
	}
	requireContains(t, out, ": valid")

	out, _, err = runCLI(t, append(args, "--type-set-only=false"), env.configPath)
	if err != nil {
		t.Fatalf("config ensure: %v", err)
	}
	requireContains(t, out, ": key-mismatch")
}

func TestConfigEnsureRejectsBadDefaults(t *testing.T) {
	env := setupCLITestEnv(t)
	defaults := writeTestFile(t, filepath.Join(env.dataDir, "defaults.json"), `[1, 2]`)

	_, _, err := runCLI(t, []string{"config", "ensure", "--defaults", defaults, "--dir", env.dataDir, "--name", "x.json"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for non-object defaults")
	}
	requireContains(t, err.Error(), "parse")
}

func TestConfigPersistCreatesDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	defaults := writeTestFile(t, filepath.Join(env.dataDir, "defaults.json"), cliDefaults)
	current := writeTestFile(t, filepath.Join(env.dataDir, "current.json"), `{"volume": 3, "theme": "light"}`)
	dir := filepath.Join(env.dataDir, "fresh", "app")

	out, _, err := runCLI(t, []string{"config", "persist", "--defaults", defaults, "--current", current, "--dir", dir, "--name", "settings.json"}, env.configPath)
	if err != nil {
		t.Fatalf("config persist: %v", err)
	}
	requireContains(t, out, "Wrote "+filepath.Join(dir, "settings.json"))

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		t.Fatalf("read persisted file: %v", err)
	}
	requireContains(t, string(data), `"volume": 3`)
}

func TestConfigShow(t *testing.T) {
	env := setupCLITestEnv(t)
	defaults := writeTestFile(t, filepath.Join(env.dataDir, "defaults.json"), cliDefaults)
	args := []string{"config", "show", "--defaults", defaults, "--dir", filepath.Join(env.dataDir, "app"), "--name", "settings.json"}

	out, _, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "(no-file)")
	requireContains(t, out, "volume")
	requireContains(t, out, "int")
	requireContains(t, out, "dark")

	out, _, err = runCLI(t, append(args, "--json"), env.configPath)
	if err != nil {
		t.Fatalf("config show --json: %v", err)
	}
	if strings.Index(out, "volume") > strings.Index(out, "theme") {
		t.Fatalf("expected key order preserved in json output: %s", out)
	}
}

func TestConfigCheck(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.MkdirAll(env.dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"config", "check", "--dir", env.dataDir}, env.configPath)
	if err != nil {
		t.Fatalf("config check: %v", err)
	}
	requireContains(t, out, "read/write ok")

	if _, _, err := runCLI(t, []string{"config", "check", "--dir", filepath.Join(env.dataDir, "missing")}, env.configPath); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestConfigInit(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample settings")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when settings already exist")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "init"}, "")
	if err != nil {
		t.Fatalf("config init default path: %v", err)
	}
	requireContains(t, out, filepath.Join(env.home, ".config", "zizutil", "config.toml"))
}

func TestLogLevelFlagAcceptsWarning(t *testing.T) {
	env := setupCLITestEnv(t)
	defaults := writeTestFile(t, filepath.Join(env.dataDir, "defaults.json"), cliDefaults)

	args := []string{"--log-level", "WARNING", "--log-format", "JSON", "config", "ensure", "--defaults", defaults, "--dir", env.dataDir, "--name", "s.json"}
	if _, _, err := runCLI(t, args, env.configPath); err != nil {
		t.Fatalf("expected WARNING to be accepted: %v", err)
	}
}

func TestInvalidSettingsFailCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeSettings(t, "[logging]\nlevel = \"loud\"\n")
	defaults := writeTestFile(t, filepath.Join(env.dataDir, "defaults.json"), cliDefaults)

	_, _, err := runCLI(t, []string{"config", "ensure", "--defaults", defaults, "--dir", env.dataDir, "--name", "s.json"}, env.configPath)
	if err == nil {
		t.Fatal("expected settings validation error")
	}
	requireContains(t, err.Error(), "logging.level")

	if _, _, err := runCLI(t, []string{"roman", "4"}, env.configPath); err != nil {
		t.Fatalf("roman should not load settings: %v", err)
	}
}
