package stockman

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoCSVFiles reports that a directory holds no readable CSV file.
var ErrNoCSVFiles = errors.New("no valid CSV files found")

// ErrNotDirectory reports that the consolidation path exists but is
// not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Consolidate merges every CSV file of 'dir' (non-recursive) into a
// single Table.
//
// Files are visited in lexical filename order, and rows keep their
// in-file order, so the table order is file-then-row. A file that
// cannot be opened or whose header lacks one of the four required
// columns is skipped with a warning, like the per-row skip policy; the
// consolidation only fails when the directory is missing
// (fs.ErrNotExist), is not a directory (ErrNotDirectory), or yields no
// readable CSV file at all (ErrNoCSVFiles).
func Consolidate(dir string) (*Table, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot consolidate %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot consolidate %q: %w", dir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %q: %w", dir, err)
	}

	t := &Table{}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		records, skipped, err := consolidateFile(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Printf("warning: skipping %s: %v", e.Name(), err)
			continue
		}
		t.records = append(t.records, records...)
		t.files = append(t.files, e.Name())
		t.skipped += skipped
	}
	if len(t.files) == 0 {
		return nil, fmt.Errorf("%q: %w", dir, ErrNoCSVFiles)
	}
	return t, nil
}

func consolidateFile(path string) ([]Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return DecodeRecords(f, filepath.Base(path))
}
