package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"radeval/pkg/eval"
	"radeval/pkg/reporter"
	"radeval/pkg/runner"
	"radeval/pkg/truth"
)

func newEvaluateCommand() *cobra.Command {
	var (
		resultsFile   string
		resultsFolder string
		groundTruth   string
		format        string
		outputPath    string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a batch of results against the ground truth annotations",
		RunE: func(cmd *cobra.Command, args []string) error {
			resultsDir := resolveString(resultsFolder, appConfig.ResultsFolder)
			if resultsDir == "" {
				resultsDir = "results"
			}

			path, err := resolveBatchFile(resultsFile, resultsDir)
			if err != nil {
				return err
			}

			truthPath := resolveString(groundTruth, appConfig.GroundTruth)
			if truthPath == "" {
				truthPath = "ground_truth.json"
			}
			store, err := truth.Load(truthPath)
			if err != nil {
				return err
			}

			results, err := runner.LoadResults(path)
			if err != nil {
				return err
			}

			logger.Info("evaluating batch",
				zap.String("results", path),
				zap.String("ground_truth", truthPath),
				zap.Int("cases", len(results)),
				zap.Int("annotated", len(store.Annotated())),
			)

			summary, err := eval.New(store).EvaluateBatch(results)
			if err != nil {
				return err
			}

			summaryPath, err := eval.SaveSummary(resultsDir, summary)
			if err != nil {
				return err
			}
			logger.Info("evaluation saved", zap.String("artifact", summaryPath))

			writer, closeWriter, err := outputWriter(cmd, outputPath)
			if err != nil {
				return err
			}
			defer closeWriter()

			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = reporter.FormatTable
			}
			rep, err := reporter.New(formatResolved, writer)
			if err != nil {
				return err
			}
			return rep.Report(summary)
		},
	}

	cmd.Flags().StringVar(&resultsFile, "results-file", "", "batch results file (defaults to the latest)")
	cmd.Flags().StringVar(&resultsFolder, "results", "", "folder of batch artifacts")
	cmd.Flags().StringVar(&groundTruth, "ground-truth", "", "ground truth annotations file")
	cmd.Flags().StringVar(&format, "format", "", "output format (json, table, markdown, csv, latex)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file")

	return cmd
}

func resolveBatchFile(file, dir string) (string, error) {
	if file != "" {
		return file, nil
	}
	files, err := runner.DiscoverBatchFiles(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", errors.New("no batch results found; run a batch first")
	}
	return files[len(files)-1], nil
}

func outputWriter(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create output file: %w", err)
	}
	return file, func() { file.Close() }, nil
}
