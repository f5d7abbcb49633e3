package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"radeval/pkg/analyze"
	"radeval/pkg/runner"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		resultsFolder string
		csvPath       string
		topDiagnoses  int
	)

	cmd := &cobra.Command{
		Use:   "analyze [batch files...]",
		Short: "Report processing-time and output statistics across batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			resultsDir := resolveString(resultsFolder, appConfig.ResultsFolder)
			if resultsDir == "" {
				resultsDir = "results"
			}

			analyses, err := collectAnalyses(args, resultsDir)
			if err != nil {
				return err
			}
			if len(analyses) == 0 {
				return errors.New("no batch results found; run a batch first")
			}

			logger.Info("analyzed batches", zap.Int("batches", len(analyses)))

			out := cmd.OutOrStdout()
			table := tablewriter.NewWriter(out)
			table.Header([]string{"Batch", "Reports", "Mean Time", "Median Time", "Stdev", "Reports/Min", "Mean Chars"})
			for _, a := range analyses {
				table.Append([]string{
					a.Filename,
					fmt.Sprintf("%d", a.TotalReports),
					fmt.Sprintf("%.2fs", a.ProcessingTimes.Mean),
					fmt.Sprintf("%.2fs", a.ProcessingTimes.Median),
					fmt.Sprintf("%.2fs", a.ProcessingTimes.Stdev),
					fmt.Sprintf("%.2f", a.ProcessingTimes.Throughput()),
					fmt.Sprintf("%.0f", a.OutputLengths.MeanChars),
				})
			}
			table.Render()

			for _, a := range analyses {
				diagnoses := a.SortedDiagnoses()
				if topDiagnoses > 0 && len(diagnoses) > topDiagnoses {
					diagnoses = diagnoses[:topDiagnoses]
				}
				if len(diagnoses) == 0 {
					continue
				}
				fmt.Fprintf(out, "\nDiagnosis mentions in %s:\n", a.Filename)
				freq := tablewriter.NewWriter(out)
				freq.Header([]string{"Diagnosis", "Mentions"})
				for _, d := range diagnoses {
					freq.Append([]string{d.Diagnosis, fmt.Sprintf("%d", d.Count)})
				}
				freq.Render()
			}

			if csvPath != "" {
				file, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("cannot create csv file: %w", err)
				}
				defer file.Close()
				if err := analyze.WriteCSV(file, analyses); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nSummary exported to %s\n", csvPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsFolder, "results", "", "folder of batch artifacts")
	cmd.Flags().StringVar(&csvPath, "csv", "", "export the per-batch summary as CSV")
	cmd.Flags().IntVar(&topDiagnoses, "top", 10, "show the top N diagnoses per batch")

	return cmd
}

func collectAnalyses(files []string, dir string) ([]analyze.BatchAnalysis, error) {
	if len(files) == 0 {
		return analyze.AnalyzeAll(dir)
	}

	analyses := make([]analyze.BatchAnalysis, 0, len(files))
	for _, file := range files {
		results, err := runner.LoadResults(file)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analyze.Analyze(filepath.Base(file), results))
	}
	return analyses, nil
}
