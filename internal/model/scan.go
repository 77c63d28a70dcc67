package model

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scan lists *.gguf files directly under dir as sorted absolute paths.
func Scan(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".gguf") {
			continue
		}
		models = append(models, filepath.Join(abs, e.Name()))
	}
	sort.Strings(models)
	return models, nil
}

// Siblings returns the other GGUF files next to a missing model path.
// A missing parent directory yields no siblings and no error.
func Siblings(path string) []string {
	found, err := Scan(filepath.Dir(path))
	if err != nil {
		return nil
	}
	self, _ := filepath.Abs(path)
	out := found[:0]
	for _, p := range found {
		if p != self {
			out = append(out, p)
		}
	}
	return out
}
