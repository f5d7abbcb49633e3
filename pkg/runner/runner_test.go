package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"radeval/pkg/model"
	"radeval/pkg/prompt"
)

func writeReport(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestRunProcessesReportsInOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeReport(t, dir, "a.txt", "FINDINGS: Joint effusion.\nCONCLUSION: Likely septic arthritis.")
	b := writeReport(t, dir, "b.txt", "FINDINGS: Normal study.")

	r := New(model.Mock{ResponseText: "1. Assessment 2. Differential"}, prompt.V1Current, model.GenerateOptions{})
	results := r.Run(context.Background(), []string{a, b})

	require.Len(t, results, 2)
	require.Equal(t, "a.txt", results[0].Filename)
	require.Equal(t, "b.txt", results[1].Filename)
	require.Equal(t, "Joint effusion.", results[0].ExtractedSections.Findings)
	require.Equal(t, "1. Assessment 2. Differential", results[0].Diagnosis)
	require.Empty(t, results[0].Error)
	require.GreaterOrEqual(t, results[0].ProcessingTime, 0.0)
}

func TestRunSkipsUnreadableReport(t *testing.T) {
	dir := t.TempDir()
	good := writeReport(t, dir, "good.txt", "FINDINGS: Effusion.")
	missing := filepath.Join(dir, "missing.txt")

	var failed []string
	r := New(model.Mock{ResponseText: "ok"}, prompt.V1Current, model.GenerateOptions{})
	r.OnError = func(filename string, err error) {
		failed = append(failed, filename)
	}

	results := r.Run(context.Background(), []string{missing, good})

	require.Len(t, results, 1)
	require.Equal(t, "good.txt", results[0].Filename)
	require.Len(t, failed, 1)
}

func TestRunRecordsInferenceFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "fail.txt", "FINDINGS: Effusion.")

	infErr := &model.InferenceError{Kind: model.FailureConnection}
	r := New(model.Mock{Err: infErr}, prompt.V1Current, model.GenerateOptions{})
	results := r.Run(context.Background(), []string{path})

	require.Len(t, results, 1)
	require.Equal(t, "Cannot connect to Ollama", results[0].Diagnosis)
	require.NotEmpty(t, results[0].Error)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "a.txt", "FINDINGS: Effusion.")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(model.Mock{ResponseText: "ok"}, prompt.V1Current, model.GenerateOptions{})
	results := r.Run(ctx, []string{path})
	require.Empty(t, results)
}

func TestSaveAndLoadResults(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Filename: "a.txt", Diagnosis: "1. Assessment", ProcessingTime: 1.25},
	}

	path, err := SaveResults(dir, results)
	require.NoError(t, err)
	require.Contains(t, filepath.Base(path), "batch_results_")

	loaded, err := LoadResults(path)
	require.NoError(t, err)
	require.Equal(t, results, loaded)

	files, err := DiscoverBatchFiles(dir)
	require.NoError(t, err)
	require.Equal(t, []string{path}, files)
}

func TestNewAssignsRunID(t *testing.T) {
	r := New(model.Mock{}, prompt.V1Current, model.GenerateOptions{})
	require.NotEmpty(t, r.RunID)
}
