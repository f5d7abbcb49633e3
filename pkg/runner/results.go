package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"radeval/pkg/report"
)

// Result is the record kept for one report in a batch run. On an
// inference failure the failure text takes the place of the diagnosis
// and the error marker is set; the record is persisted either way.
type Result struct {
	Filename          string          `json:"filename"`
	ExtractedSections report.Sections `json:"extracted_sections"`
	Diagnosis         string          `json:"ai_diagnosis"`
	ProcessingTime    float64         `json:"processing_time"`
	Error             string          `json:"error,omitempty"`
}

const artifactTimeFormat = "20060102_150405"

// SaveResults writes the accumulated results of a run to a timestamped
// artifact in dir and returns its path. The batch is flushed once, at
// the end of the run.
func SaveResults(dir string, results []Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("runner: %w", err)
	}

	name := fmt.Sprintf("batch_results_%s.json", time.Now().Format(artifactTimeFormat))
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("runner: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return "", fmt.Errorf("runner: %w", err)
	}
	return path, nil
}

// LoadResults reads a batch artifact back for evaluation or analysis.
func LoadResults(path string) ([]Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	defer file.Close()

	var results []Result
	if err := json.NewDecoder(file).Decode(&results); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	return results, nil
}

// DiscoverBatchFiles lists batch artifacts in dir, sorted by name. The
// timestamped naming makes the last entry the most recent run.
func DiscoverBatchFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "batch_results_*.json"))
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	return matches, nil
}
