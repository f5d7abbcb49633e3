package reporter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"radeval/pkg/eval"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(summary eval.BatchSummary) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{"filename", "completeness_score", "coverage_rate", "mentioned", "missed", "inappropriate", "pediatric_appropriateness", "processing_time"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, evaluation := range summary.Evaluations {
		record := []string{
			evaluation.Filename,
			strconv.FormatFloat(evaluation.CompletenessScore, 'f', 3, 64),
			strconv.FormatFloat(evaluation.DifferentialCoverage.CoverageRate, 'f', 3, 64),
			strings.Join(evaluation.DifferentialCoverage.Mentioned, "; "),
			strings.Join(evaluation.DifferentialCoverage.Missed, "; "),
			strings.Join(evaluation.InappropriateDiagnoses, "; "),
			strconv.FormatFloat(evaluation.PediatricAppropriateness, 'f', 1, 64),
			strconv.FormatFloat(evaluation.ProcessingTime, 'f', 2, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
