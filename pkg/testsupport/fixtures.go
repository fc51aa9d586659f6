package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a fixture file, failing the test when it is missing.
func LoadFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("load fixture %s: %v", path, err)
	}
	return data
}

// WriteTree writes files (slash-separated name to content) below dir,
// creating parent directories, and returns dir.
func WriteTree(tb testing.TB, dir string, files map[string]string) string {
	tb.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		tb.Fatalf("mkdir %s: %v", dir, err)
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			tb.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			tb.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}
