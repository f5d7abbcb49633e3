package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Report is a single radiology report identified by filename.
// The text is immutable once read.
type Report struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// Read loads a report from disk.
func Read(path string) (Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("report: %w", err)
	}
	return Report{
		Filename: filepath.Base(path),
		Text:     string(data),
	}, nil
}

// List returns the paths of all .txt reports in a folder, sorted by name.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
