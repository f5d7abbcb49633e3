package reporter

import (
	"encoding/json"
	"io"

	"radeval/pkg/eval"
)

type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(summary eval.BatchSummary) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(summary)
}
