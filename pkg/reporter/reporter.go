package reporter

import (
	"fmt"
	"io"
	"strings"

	"radeval/pkg/eval"
)

// Reporter renders an evaluation summary.
type Reporter interface {
	Report(summary eval.BatchSummary) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatLaTeX    = "latex"
)

// New builds a reporter for the named format.
func New(format string, writer io.Writer) (Reporter, error) {
	switch format {
	case FormatJSON:
		return JSONReporter{Writer: writer, Pretty: true}, nil
	case FormatTable:
		return TableReporter{Writer: writer}, nil
	case FormatMarkdown:
		return MarkdownReporter{Writer: writer}, nil
	case FormatCSV:
		return CSVReporter{Writer: writer}, nil
	case FormatLaTeX:
		return LaTeXReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("reporter: unknown format %q", format)
	}
}

func sectionTitle(section string) string {
	words := strings.Split(section, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
