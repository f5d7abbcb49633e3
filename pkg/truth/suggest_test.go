package truth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"radeval/pkg/report"
	"radeval/pkg/runner"
)

const suggestDiagnosisText = `1. CLINICAL ASSESSMENT
Joint effusion with surrounding soft tissue swelling.

2. DIFFERENTIAL DIAGNOSIS
Consider septic arthritis, JIA and osteomyelitis in this child.

3. CLINICAL CORRELATION
Findings correlate with infection.

4. RECOMMENDATIONS
Obtain MRI and blood cultures; rheumatology referral if cultures negative.`

func TestSuggestDraftsUnannotatedCase(t *testing.T) {
	store := &Store{}
	results := []runner.Result{
		{
			Filename: "a.txt",
			ExtractedSections: report.Sections{
				ClinicalDetails: "14 month old with swelling",
			},
			Diagnosis: suggestDiagnosisText,
		},
	}

	suggestions := store.Suggest(results)
	require.Len(t, suggestions, 1)

	draft := suggestions[0]
	require.Equal(t, "a.txt", draft.Filename)
	require.False(t, draft.Annotated)
	require.True(t, draft.AutoSuggested)
	require.Equal(t, "pediatric", draft.PatientInfo.AgeCategory)
	require.Equal(t, "14 month old with swelling", draft.PatientInfo.ClinicalHistory)
	require.Contains(t, draft.GroundTruth.DifferentialDiagnoses, "Septic Arthritis")
	require.Contains(t, draft.GroundTruth.DifferentialDiagnoses, "Jia")
	require.Contains(t, draft.GroundTruth.AppropriateRecommendations, "Blood cultures")
	require.Contains(t, draft.GroundTruth.AppropriateRecommendations, "Rheumatology referral")
	require.Equal(t, reviewPlaceholder, draft.GroundTruth.PrimaryDiagnosis)
}

func TestSuggestSkipsAnnotatedFilenames(t *testing.T) {
	store := &Store{cases: []Case{{Filename: "a.txt", Annotated: true}}}
	suggestions := store.Suggest([]runner.Result{
		{Filename: "a.txt", Diagnosis: suggestDiagnosisText},
		{Filename: "b.txt", Diagnosis: suggestDiagnosisText},
	})

	require.Len(t, suggestions, 1)
	require.Equal(t, "b.txt", suggestions[0].Filename)
}

func TestSuggestWithoutDifferentialSection(t *testing.T) {
	store := &Store{}
	suggestions := store.Suggest([]runner.Result{
		{Filename: "a.txt", Diagnosis: "No structured output at all."},
	})

	require.Len(t, suggestions, 1)
	require.Empty(t, suggestions[0].GroundTruth.DifferentialDiagnoses)
	require.Empty(t, suggestions[0].GroundTruth.AppropriateRecommendations)
}
