package eval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"radeval/pkg/runner"
	"radeval/pkg/truth"
)

func storeWith(t *testing.T, cases ...truth.Case) *truth.Store {
	t.Helper()
	store := &truth.Store{}
	for _, c := range cases {
		store.Put(c)
	}
	return store
}

func annotatedCase(filename string, differentials ...string) truth.Case {
	return truth.Case{
		Filename:  filename,
		Annotated: true,
		GroundTruth: truth.Annotation{
			PrimaryDiagnosis:      "Septic arthritis",
			DifferentialDiagnoses: differentials,
		},
	}
}

func TestCheckSectionCompletenessCanonicalPhrases(t *testing.T) {
	text := "CLINICAL ASSESSMENT: effusion. DIFFERENTIAL DIAGNOSIS: JIA. CLINICAL CORRELATION: fits history. RECOMMENDATIONS: MRI."
	flags := CheckSectionCompleteness(text)

	for _, section := range SectionOrder {
		require.True(t, flags[section], section)
	}
}

// A numbered list satisfies each section through its ordinal marker, and
// the markers are checked independently of which section the numeral
// belongs to. A stray "2." anywhere satisfies the differential flag.
// That looseness is part of the scoring contract.
func TestSectionChecksShareOrdinalMarkers(t *testing.T) {
	flags := CheckSectionCompleteness("The effusion measures 2.3 cm.")

	require.False(t, flags[SectionClinicalAssessment])
	require.True(t, flags[SectionDifferentialDiagnosis])
	require.False(t, flags[SectionClinicalCorrelation])
	require.False(t, flags[SectionRecommendations])
}

func TestCompletenessScoreIsQuarterMultiple(t *testing.T) {
	store := storeWith(t, annotatedCase("a.txt"))
	evaluator := New(store)

	for _, text := range []string{"", "1.", "1. x 2. y", "1. a 2. b 3. c", "1. a 2. b 3. c 4. d"} {
		evaluation, ok := evaluator.EvaluateCase("a.txt", text)
		require.True(t, ok)
		score := evaluation.CompletenessScore
		require.GreaterOrEqual(t, score, 0.0)
		require.LessOrEqual(t, score, 1.0)
		require.Zero(t, int(score*100)%25)
	}
}

func TestDetectInappropriateDoubleCountsOverlaps(t *testing.T) {
	found := DetectInappropriateDiagnoses("Findings suggest degenerative disc disease.")

	// "degenerative" also matches inside "degenerative disc disease";
	// both occurrences are recorded.
	require.Equal(t, []string{"degenerative", "degenerative disc disease"}, found)
}

func TestDetectInappropriateIsNegationBlind(t *testing.T) {
	found := DetectInappropriateDiagnoses("No osteoarthritis is seen.")
	require.Equal(t, []string{"osteoarthritis"}, found)
}

func TestDetectInappropriateCleanResponse(t *testing.T) {
	require.Empty(t, DetectInappropriateDiagnoses("Likely septic arthritis in this child."))
}

func TestCoverageEmptyExpectedListIsZero(t *testing.T) {
	coverage := CheckDifferentialCoverage("anything", nil)
	require.Zero(t, coverage.CoverageRate)
	require.Zero(t, coverage.TotalExpected)
}

func TestCoverageIgnoresShortTerms(t *testing.T) {
	// "JIA" is three characters, so it alone cannot mark the diagnosis
	// mentioned.
	coverage := CheckDifferentialCoverage("jia is possible", []string{"JIA"})
	require.Zero(t, coverage.CoverageRate)
	require.Equal(t, []string{"JIA"}, coverage.Missed)
}

func TestCoverageRateBounds(t *testing.T) {
	coverage := CheckDifferentialCoverage("septic arthritis noted", []string{"Septic arthritis", "Osteomyelitis"})
	require.Equal(t, 0.5, coverage.CoverageRate)
	require.Equal(t, []string{"Septic arthritis"}, coverage.Mentioned)
	require.Equal(t, []string{"Osteomyelitis"}, coverage.Missed)
}

// End-to-end behavior on the documented example: both differentials are
// matched through their long terms, and the negated "no osteoarthritis"
// still lands in the inappropriate list.
func TestEvaluateCaseExample(t *testing.T) {
	store := storeWith(t, annotatedCase("case.txt", "Septic arthritis", "Juvenile Idiopathic Arthritis (JIA)"))
	evaluator := New(store)

	response := "1. Assessment... 2. Differential diagnosis: JIA vs septic arthritis... no osteoarthritis findings"
	evaluation, ok := evaluator.EvaluateCase("case.txt", response)
	require.True(t, ok)

	require.Equal(t, 1.0, evaluation.DifferentialCoverage.CoverageRate)
	require.Empty(t, evaluation.DifferentialCoverage.Missed)
	require.Equal(t, []string{"osteoarthritis"}, evaluation.InappropriateDiagnoses)
	require.Equal(t, 0.0, evaluation.PediatricAppropriateness)
}

func TestEvaluateCaseWithoutGroundTruth(t *testing.T) {
	evaluator := New(storeWith(t))
	_, ok := evaluator.EvaluateCase("unknown.txt", "1. Assessment")
	require.False(t, ok)
}

func TestEvaluateBatchExcludesUnmatchedCases(t *testing.T) {
	store := storeWith(t,
		annotatedCase("a.txt", "Septic arthritis"),
		truth.Case{Filename: "b.txt", Annotated: false},
	)
	evaluator := New(store)

	results := []runner.Result{
		{Filename: "a.txt", Diagnosis: "1. septic arthritis likely 2. 3. 4.", ProcessingTime: 2.0},
		{Filename: "b.txt", Diagnosis: "unannotated, must be dropped"},
		{Filename: "c.txt", Diagnosis: "no ground truth at all"},
		{Filename: "d.txt", Diagnosis: ""},
	}

	summary, err := evaluator.EvaluateBatch(results)
	require.NoError(t, err)
	require.Equal(t, 1, summary.TotalCasesEvaluated)
	require.Equal(t, "a.txt", summary.Evaluations[0].Filename)
	require.Equal(t, 2.0, summary.Evaluations[0].ProcessingTime)
}

func TestEvaluateBatchAggregates(t *testing.T) {
	store := storeWith(t,
		annotatedCase("a.txt", "Septic arthritis"),
		annotatedCase("b.txt", "Osteomyelitis"),
	)
	evaluator := New(store)

	results := []runner.Result{
		{Filename: "a.txt", Diagnosis: "1. a 2. septic arthritis 3. c 4. d", ProcessingTime: 1.0},
		{Filename: "b.txt", Diagnosis: "degenerative changes with degenerative disc disease", ProcessingTime: 3.0},
	}

	summary, err := evaluator.EvaluateBatch(results)
	require.NoError(t, err)

	require.Equal(t, 2, summary.TotalCasesEvaluated)
	require.Equal(t, 0.5, summary.AverageCompletenessScore)
	require.Equal(t, 0.5, summary.AverageCoverage)
	require.Equal(t, 0.5, summary.AppropriatenessRate)
	require.Equal(t, 1, summary.CasesWithInappropriate)
	require.Equal(t, 50.0, summary.SectionPresencePercentage[SectionClinicalAssessment])
	require.Equal(t, map[string]int{
		"degenerative":              1,
		"degenerative disc disease": 1,
	}, summary.InappropriateFrequency)
}

func TestEvaluateBatchNoJoinableCases(t *testing.T) {
	evaluator := New(storeWith(t))
	_, err := evaluator.EvaluateBatch([]runner.Result{{Filename: "x.txt", Diagnosis: "text"}})
	require.Error(t, err)
}

func TestSaveAndLoadSummary(t *testing.T) {
	dir := t.TempDir()
	summary := BatchSummary{
		TotalCasesEvaluated:      1,
		AverageCompletenessScore: 0.75,
		InappropriateFrequency:   map[string]int{"osteoarthritis": 1},
	}

	path, err := SaveSummary(dir, summary)
	require.NoError(t, err)

	loaded, err := LoadSummary(path)
	require.NoError(t, err)
	require.Equal(t, summary.TotalCasesEvaluated, loaded.TotalCasesEvaluated)
	require.Equal(t, summary.InappropriateFrequency, loaded.InappropriateFrequency)
}
