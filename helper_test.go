package stockman

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFiles creates a temp directory holding the given files and
// returns its path.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("cannot write fixture %q: %v", name, err)
		}
	}
	return dir
}

// R is a helper for tests to create a record from consts.
func R(name string, quantity int64, price float64, category string) Record {
	return Record{Name: name, Quantity: quantity, Price: P(price), Category: category}
}
