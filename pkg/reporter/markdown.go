package reporter

import (
	"fmt"
	"io"
	"strings"

	"radeval/pkg/eval"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(summary eval.BatchSummary) error {
	var sb strings.Builder

	sb.WriteString("## Diagnostic System Evaluation Metrics\n\n")
	sb.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&sb, "| Total Cases Evaluated | %d |\n", summary.TotalCasesEvaluated)
	fmt.Fprintf(&sb, "| Average Completeness Score | %.1f%% |\n", summary.AverageCompletenessScore*100)
	fmt.Fprintf(&sb, "| Average Differential Coverage | %.1f%% |\n", summary.AverageCoverage*100)
	fmt.Fprintf(&sb, "| Pediatric Appropriateness Rate | %.1f%% |\n", summary.AppropriatenessRate*100)
	fmt.Fprintf(&sb, "| Cases with Inappropriate Diagnoses | %d |\n", summary.CasesWithInappropriate)

	sb.WriteString("\n### Section Presence\n\n")
	sb.WriteString("| Section | Presence Rate |\n|---------|---------------|\n")
	for _, section := range eval.SectionOrder {
		fmt.Fprintf(&sb, "| %s | %.1f%% |\n", sectionTitle(section), summary.SectionPresencePercentage[section])
	}

	if len(summary.InappropriateFrequency) > 0 {
		sb.WriteString("\n### Inappropriate Diagnoses Detected\n\n")
		sb.WriteString("| Diagnosis | Frequency |\n|-----------|-----------|\n")
		for _, diagnosis := range sortedKeys(summary.InappropriateFrequency) {
			fmt.Fprintf(&sb, "| %s | %d |\n", sectionTitle(strings.ReplaceAll(diagnosis, " ", "_")), summary.InappropriateFrequency[diagnosis])
		}
	}

	sb.WriteString("\n### Individual Cases\n\n")
	sb.WriteString("| File | Completeness | Coverage | Inappropriate | Time (s) |\n|---|---|---|---|---|\n")
	for _, evaluation := range summary.Evaluations {
		fmt.Fprintf(&sb, "| %s | %.1f%% | %.1f%% (%d/%d) | %s | %.1f |\n",
			evaluation.Filename,
			evaluation.CompletenessScore*100,
			evaluation.DifferentialCoverage.CoverageRate*100,
			len(evaluation.DifferentialCoverage.Mentioned),
			evaluation.DifferentialCoverage.TotalExpected,
			strings.Join(evaluation.InappropriateDiagnoses, ", "),
			evaluation.ProcessingTime,
		)
	}

	_, err := io.WriteString(r.Writer, sb.String())
	return err
}
