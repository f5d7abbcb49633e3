package truth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeStoreFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ground_truth.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "ground truth")
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := writeStoreFile(t, "{not valid")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadOrEmptyMissingFile(t *testing.T) {
	store, err := LoadOrEmpty(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Empty(t, store.Cases())
}

func TestAnnotatedFiltersUnreviewedCases(t *testing.T) {
	path := writeStoreFile(t, `[
		{"filename": "a.txt", "annotated": true},
		{"filename": "b.txt", "annotated": false},
		{"filename": "c.txt", "annotated": true}
	]`)

	store, err := Load(path)
	require.NoError(t, err)

	annotated := store.Annotated()
	require.Len(t, annotated, 2)
	require.Equal(t, "a.txt", annotated[0].Filename)
	require.Equal(t, "c.txt", annotated[1].Filename)
}

func TestLookupLastDuplicateWins(t *testing.T) {
	path := writeStoreFile(t, `[
		{"filename": "a.txt", "annotated": true, "ground_truth": {"primary_diagnosis": "old"}},
		{"filename": "a.txt", "annotated": true, "ground_truth": {"primary_diagnosis": "new"}}
	]`)

	store, err := Load(path)
	require.NoError(t, err)

	byName := store.AnnotatedByFilename()
	require.Len(t, byName, 1)
	require.Equal(t, "new", byName["a.txt"].GroundTruth.PrimaryDiagnosis)
}

func TestPutReplacesExistingEntry(t *testing.T) {
	store := &Store{Path: filepath.Join(t.TempDir(), "gt.json")}
	store.Put(Case{Filename: "a.txt", GroundTruth: Annotation{PrimaryDiagnosis: "first"}})
	store.Put(Case{Filename: "b.txt"})
	store.Put(Case{Filename: "a.txt", GroundTruth: Annotation{PrimaryDiagnosis: "second"}, Annotated: true})

	cases := store.Cases()
	require.Len(t, cases, 2)
	require.Equal(t, "b.txt", cases[0].Filename)
	require.Equal(t, "second", cases[1].GroundTruth.PrimaryDiagnosis)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gt.json")
	store := &Store{Path: path}
	store.Put(Case{
		Filename:  "a.txt",
		Annotated: true,
		GroundTruth: Annotation{
			PrimaryDiagnosis:      "Septic arthritis",
			DifferentialDiagnoses: []string{"Septic arthritis", "JIA flare"},
		},
	})
	require.NoError(t, store.Save())

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, store.Cases(), loaded.Cases())
}
