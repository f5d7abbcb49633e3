package eval

// Required sections of a structured diagnostic response, in report
// order. The names are also the JSON keys of the completeness map.
const (
	SectionClinicalAssessment    = "clinical_assessment"
	SectionDifferentialDiagnosis = "differential_diagnosis"
	SectionClinicalCorrelation   = "clinical_correlation"
	SectionRecommendations       = "recommendations"
)

// SectionOrder fixes iteration order for presentation and aggregation.
var SectionOrder = []string{
	SectionClinicalAssessment,
	SectionDifferentialDiagnosis,
	SectionClinicalCorrelation,
	SectionRecommendations,
}

// Coverage records which expected differential diagnoses the response
// mentioned.
type Coverage struct {
	Mentioned     []string `json:"mentioned"`
	Missed        []string `json:"missed"`
	CoverageRate  float64  `json:"coverage_rate"`
	TotalExpected int      `json:"total_expected"`
}

// GroundTruthInfo carries the reference content alongside a case
// evaluation for downstream reporting.
type GroundTruthInfo struct {
	PrimaryDiagnosis      string   `json:"primary_diagnosis"`
	ExpectedDifferentials []string `json:"expected_differentials"`
}

// CaseEvaluation is the scored outcome for one report.
type CaseEvaluation struct {
	Filename                 string          `json:"filename"`
	SectionCompleteness      map[string]bool `json:"section_completeness"`
	CompletenessScore        float64         `json:"completeness_score"`
	DifferentialCoverage     Coverage        `json:"differential_coverage"`
	InappropriateDiagnoses   []string        `json:"inappropriate_diagnoses_found"`
	PediatricAppropriateness float64         `json:"pediatric_appropriateness"`
	GroundTruthInfo          GroundTruthInfo `json:"ground_truth_info"`
	ProcessingTime           float64         `json:"processing_time"`
}

// BatchSummary aggregates case evaluations for one batch artifact. It is
// derived, read-only, and persisted verbatim for table generation.
type BatchSummary struct {
	TotalCasesEvaluated       int                `json:"total_cases_evaluated"`
	AverageCompletenessScore  float64            `json:"average_completeness_score"`
	AverageCoverage           float64            `json:"average_differential_coverage"`
	AppropriatenessRate       float64            `json:"pediatric_appropriateness_rate"`
	CasesWithInappropriate    int                `json:"cases_with_inappropriate_diagnoses"`
	SectionPresencePercentage map[string]float64 `json:"section_presence_percentage"`
	InappropriateFrequency    map[string]int     `json:"inappropriate_diagnoses_frequency"`
	Evaluations               []CaseEvaluation   `json:"individual_evaluations"`
}
