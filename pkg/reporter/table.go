package reporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"radeval/pkg/eval"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(summary eval.BatchSummary) error {
	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Metric", "Value"})
	table.Append([]string{"Total cases evaluated", fmt.Sprintf("%d", summary.TotalCasesEvaluated)})
	table.Append([]string{"Average completeness", fmt.Sprintf("%.1f%%", summary.AverageCompletenessScore*100)})
	table.Append([]string{"Average differential coverage", fmt.Sprintf("%.1f%%", summary.AverageCoverage*100)})
	table.Append([]string{"Pediatric appropriateness rate", fmt.Sprintf("%.1f%%", summary.AppropriatenessRate*100)})
	table.Append([]string{"Cases with inappropriate diagnoses", fmt.Sprintf("%d", summary.CasesWithInappropriate)})
	table.Render()

	sections := tablewriter.NewWriter(r.Writer)
	sections.Header([]string{"Section", "Presence"})
	for _, section := range eval.SectionOrder {
		sections.Append([]string{sectionTitle(section), fmt.Sprintf("%.1f%%", summary.SectionPresencePercentage[section])})
	}
	sections.Render()

	if len(summary.InappropriateFrequency) > 0 {
		flagged := tablewriter.NewWriter(r.Writer)
		flagged.Header([]string{"Inappropriate Diagnosis", "Cases"})
		for _, diagnosis := range sortedKeys(summary.InappropriateFrequency) {
			flagged.Append([]string{diagnosis, fmt.Sprintf("%d", summary.InappropriateFrequency[diagnosis])})
		}
		flagged.Render()
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
