package eval

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"radeval/pkg/runner"
	"radeval/pkg/truth"
)

// Adult conditions that should never appear in a pediatric report.
// Detection is a plain case-insensitive substring scan: overlapping
// phrases are each counted ("degenerative disc disease" also matches
// "degenerative"), and negations ("no osteoarthritis") still count.
var adultOnlyConditions = []string{
	"osteoarthritis", "degenerative", "rotator cuff",
	"degenerative disc disease", "age-related",
	"wear and tear", "arthropathy",
}

// Each required section is satisfied by its canonical phrase or by its
// ordinal marker. The markers are checked independently of which section
// the numeral introduces, so any "2." anywhere satisfies the
// differential flag. That looseness is intentional behavior of the
// scoring heuristic, kept as-is.
var sectionChecks = map[string][2]string{
	SectionClinicalAssessment:    {"clinical assessment", "1."},
	SectionDifferentialDiagnosis: {"differential diagnosis", "2."},
	SectionClinicalCorrelation:   {"clinical correlation", "3."},
	SectionRecommendations:       {"recommendation", "4."},
}

// Evaluator scores model output against the annotated ground truth.
type Evaluator struct {
	truth map[string]truth.Case
}

// New builds an evaluator over the store's annotated cases.
func New(store *truth.Store) *Evaluator {
	return &Evaluator{truth: store.AnnotatedByFilename()}
}

// EvaluateCase scores one response. The second return value is false
// when the filename has no annotated ground truth; such cases are
// excluded from evaluation by design.
func (e *Evaluator) EvaluateCase(filename, diagnosis string) (CaseEvaluation, bool) {
	gt, ok := e.truth[filename]
	if !ok {
		return CaseEvaluation{}, false
	}

	completeness := CheckSectionCompleteness(diagnosis)
	inappropriate := DetectInappropriateDiagnoses(diagnosis)
	coverage := CheckDifferentialCoverage(diagnosis, gt.GroundTruth.DifferentialDiagnoses)

	present := 0
	for _, flag := range completeness {
		if flag {
			present++
		}
	}

	appropriateness := 1.0
	if len(inappropriate) > 0 {
		appropriateness = 0.0
	}

	return CaseEvaluation{
		Filename:                 filename,
		SectionCompleteness:      completeness,
		CompletenessScore:        float64(present) / float64(len(completeness)),
		DifferentialCoverage:     coverage,
		InappropriateDiagnoses:   inappropriate,
		PediatricAppropriateness: appropriateness,
		GroundTruthInfo: GroundTruthInfo{
			PrimaryDiagnosis:      gt.GroundTruth.PrimaryDiagnosis,
			ExpectedDifferentials: gt.GroundTruth.DifferentialDiagnoses,
		},
	}, true
}

// EvaluateBatch scores every joinable result and aggregates. Results
// without a filename or diagnosis text, and results without annotated
// ground truth, are silently excluded.
func (e *Evaluator) EvaluateBatch(results []runner.Result) (BatchSummary, error) {
	var evaluations []CaseEvaluation
	for _, result := range results {
		if result.Filename == "" || result.Diagnosis == "" {
			continue
		}
		evaluation, ok := e.EvaluateCase(result.Filename, result.Diagnosis)
		if !ok {
			continue
		}
		evaluation.ProcessingTime = result.ProcessingTime
		evaluations = append(evaluations, evaluation)
	}

	total := len(evaluations)
	if total == 0 {
		return BatchSummary{}, errors.New("eval: no cases to evaluate")
	}

	var sumCompleteness, sumCoverage, sumAppropriateness float64
	sectionPresence := make(map[string]int, len(SectionOrder))
	frequency := make(map[string]int)
	casesWithInappropriate := 0

	for _, evaluation := range evaluations {
		sumCompleteness += evaluation.CompletenessScore
		sumCoverage += evaluation.DifferentialCoverage.CoverageRate
		sumAppropriateness += evaluation.PediatricAppropriateness
		if len(evaluation.InappropriateDiagnoses) > 0 {
			casesWithInappropriate++
		}
		for section, flag := range evaluation.SectionCompleteness {
			if flag {
				sectionPresence[section]++
			}
		}
		for _, diagnosis := range evaluation.InappropriateDiagnoses {
			frequency[diagnosis]++
		}
	}

	percentages := make(map[string]float64, len(SectionOrder))
	for _, section := range SectionOrder {
		percentages[section] = float64(sectionPresence[section]) / float64(total) * 100
	}

	return BatchSummary{
		TotalCasesEvaluated:       total,
		AverageCompletenessScore:  round3(sumCompleteness / float64(total)),
		AverageCoverage:           round3(sumCoverage / float64(total)),
		AppropriatenessRate:       round3(sumAppropriateness / float64(total)),
		CasesWithInappropriate:    casesWithInappropriate,
		SectionPresencePercentage: percentages,
		InappropriateFrequency:    frequency,
		Evaluations:               evaluations,
	}, nil
}

// CheckSectionCompleteness flags each required section present in the
// response.
func CheckSectionCompleteness(diagnosis string) map[string]bool {
	lower := strings.ToLower(diagnosis)
	out := make(map[string]bool, len(SectionOrder))
	for _, section := range SectionOrder {
		check := sectionChecks[section]
		out[section] = strings.Contains(lower, check[0]) || strings.Contains(lower, check[1])
	}
	return out
}

// DetectInappropriateDiagnoses returns every adult-only phrase found in
// the response, in configuration order.
func DetectInappropriateDiagnoses(diagnosis string) []string {
	lower := strings.ToLower(diagnosis)
	found := []string{}
	for _, condition := range adultOnlyConditions {
		if strings.Contains(lower, condition) {
			found = append(found, condition)
		}
	}
	return found
}

// CheckDifferentialCoverage marks each expected diagnosis mentioned when
// any of its terms longer than three characters appears in the response.
func CheckDifferentialCoverage(diagnosis string, expected []string) Coverage {
	lower := strings.ToLower(diagnosis)

	mentioned := []string{}
	missed := []string{}
	for _, dx := range expected {
		if anyTermMentioned(lower, dx) {
			mentioned = append(mentioned, dx)
		} else {
			missed = append(missed, dx)
		}
	}

	rate := 0.0
	if len(expected) > 0 {
		rate = float64(len(mentioned)) / float64(len(expected))
	}

	return Coverage{
		Mentioned:     mentioned,
		Missed:        missed,
		CoverageRate:  rate,
		TotalExpected: len(expected),
	}
}

func anyTermMentioned(lowerDiagnosis, expected string) bool {
	for _, term := range strings.Fields(strings.ToLower(expected)) {
		if len(term) > 3 && strings.Contains(lowerDiagnosis, term) {
			return true
		}
	}
	return false
}

// SaveSummary writes an evaluation artifact next to the batch results
// and returns its path.
func SaveSummary(dir string, summary BatchSummary) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("eval: %w", err)
	}

	name := fmt.Sprintf("evaluation_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("eval: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return "", fmt.Errorf("eval: %w", err)
	}
	return path, nil
}

// LoadSummary reads a persisted evaluation artifact.
func LoadSummary(path string) (BatchSummary, error) {
	file, err := os.Open(path)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("eval: %w", err)
	}
	defer file.Close()

	var summary BatchSummary
	if err := json.NewDecoder(file).Decode(&summary); err != nil {
		return BatchSummary{}, fmt.Errorf("eval: %w", err)
	}
	return summary, nil
}

func round3(value float64) float64 {
	return math.Round(value*1000) / 1000
}
