package reporter

import (
	"fmt"
	"io"
	"strings"

	"radeval/pkg/eval"
)

// LaTeXReporter emits a paper-ready metrics table.
type LaTeXReporter struct {
	Writer io.Writer
}

func (r LaTeXReporter) Report(summary eval.BatchSummary) error {
	var sb strings.Builder

	sb.WriteString("\\begin{table}[h]\n")
	sb.WriteString("\\centering\n")
	sb.WriteString("\\caption{Diagnostic System Evaluation Metrics}\n")
	sb.WriteString("\\label{tab:evaluation}\n")
	sb.WriteString("\\begin{tabular}{lc}\n")
	sb.WriteString("\\hline\n")
	sb.WriteString("\\textbf{Metric} & \\textbf{Value} \\\\\n")
	sb.WriteString("\\hline\n")

	fmt.Fprintf(&sb, "Total Cases Evaluated & %d \\\\\n", summary.TotalCasesEvaluated)
	fmt.Fprintf(&sb, "Average Completeness Score & %.1f\\%% \\\\\n", summary.AverageCompletenessScore*100)
	fmt.Fprintf(&sb, "Average Differential Coverage & %.1f\\%% \\\\\n", summary.AverageCoverage*100)
	fmt.Fprintf(&sb, "Pediatric Appropriateness Rate & %.1f\\%% \\\\\n", summary.AppropriatenessRate*100)
	fmt.Fprintf(&sb, "Cases with Inappropriate Diagnoses & %d \\\\\n", summary.CasesWithInappropriate)
	for _, section := range eval.SectionOrder {
		fmt.Fprintf(&sb, "%s Presence & %.1f\\%% \\\\\n", sectionTitle(section), summary.SectionPresencePercentage[section])
	}

	sb.WriteString("\\hline\n")
	sb.WriteString("\\end{tabular}\n")
	sb.WriteString("\\end{table}\n")

	_, err := io.WriteString(r.Writer, sb.String())
	return err
}
