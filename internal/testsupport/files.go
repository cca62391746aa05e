// Package testsupport holds helpers shared by package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"zizutil/internal/jsonconfig"
)

// NewLocation returns a config location inside a fresh temp directory. The
// directory itself is not created so callers can exercise first-run paths.
func NewLocation(t testing.TB, name string) jsonconfig.Location {
	t.Helper()
	return jsonconfig.Location{Dir: filepath.Join(t.TempDir(), "conf"), Name: name}
}

// WriteFile writes data to path, creating parent directories.
func WriteFile(t testing.TB, path string, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the raw contents of path.
func ReadFile(t testing.TB, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// ReadJSON decodes path into a generic map.
func ReadJSON(t testing.TB, path string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(ReadFile(t, path), &out); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return out
}

// MustDecode parses a JSON object literal into a Document.
func MustDecode(t testing.TB, data string) *jsonconfig.Document {
	t.Helper()
	doc, err := jsonconfig.Decode([]byte(data))
	if err != nil {
		t.Fatalf("decode document: %v", err)
	}
	return doc
}
