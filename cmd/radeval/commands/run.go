package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"radeval/pkg/model"
	"radeval/pkg/prompt"
	"radeval/pkg/report"
	"radeval/pkg/runner"
)

func newRunCommand() *cobra.Command {
	var (
		reportsFolder  string
		reportFile     string
		resultsFolder  string
		provider       string
		modelName      string
		baseURL        string
		mockResponse   string
		promptVersion  string
		temperature    float64
		maxTokens      int
		timeoutSeconds int
		maxReports     int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process reports through the model and store batch results",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectReportPaths(
				resolveString(reportFile, ""),
				resolveString(reportsFolder, appConfig.ReportsFolder),
				maxReports,
			)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return errors.New("no reports to process")
			}

			versionResolved := prompt.Version(resolveString(promptVersion, appConfig.PromptVersion))
			if versionResolved == "" {
				versionResolved = prompt.V1Current
			}

			evalModel, err := buildModel(
				resolveString(provider, appConfig.Provider),
				resolveString(modelName, appConfig.Model.Name),
				resolveString(baseURL, appConfig.Model.BaseURL),
				resolveString(mockResponse, appConfig.Model.MockResponse),
				resolveInt(timeoutSeconds, appConfig.Model.TimeoutSeconds, 300),
			)
			if err != nil {
				return err
			}

			opts := model.GenerateOptions{
				Temperature: float32(resolveFloat(temperature, appConfig.Model.Temperature, 0.1)),
				MaxTokens:   resolveInt(maxTokens, appConfig.Model.MaxTokens, 0),
			}

			r := runner.New(evalModel, versionResolved, opts)
			logger.Info("starting batch run",
				zap.String("run_id", r.RunID),
				zap.String("model", evalModel.Name()),
				zap.String("prompt_version", string(versionResolved)),
				zap.Int("reports", len(paths)),
			)

			progress := newProgressBar(progressWriter(cmd), len(paths))
			r.Progress = func(index, total int, filename string) {
				progress.Update(index, filename)
			}
			r.OnError = func(filename string, err error) {
				logger.Warn("report failed", zap.String("filename", filename), zap.Error(err))
			}

			start := time.Now()
			results := r.Run(cmd.Context(), paths)

			resultsDir := resolveString(resultsFolder, appConfig.ResultsFolder)
			if resultsDir == "" {
				resultsDir = "results"
			}
			path, err := runner.SaveResults(resultsDir, results)
			if err != nil {
				return err
			}

			logger.Info("batch run complete",
				zap.String("run_id", r.RunID),
				zap.Int("processed", len(results)),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("artifact", path),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d reports. Results saved to %s\n", len(results), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&reportsFolder, "reports", "", "folder of .txt reports")
	cmd.Flags().StringVar(&reportFile, "file", "", "single report file")
	cmd.Flags().StringVar(&resultsFolder, "results", "", "folder for batch artifacts")
	cmd.Flags().StringVar(&provider, "provider", "", "model provider (ollama, mock)")
	cmd.Flags().StringVar(&modelName, "model", "", "model name")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "inference endpoint base URL")
	cmd.Flags().StringVar(&mockResponse, "mock-response", "", "fixed mock response")
	cmd.Flags().StringVar(&promptVersion, "prompt-version", "", "prompt template version")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "sampling temperature")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "maximum response tokens")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "per-call timeout in seconds")
	cmd.Flags().IntVar(&maxReports, "limit", 0, "process at most this many reports")

	return cmd
}

func collectReportPaths(file, folder string, limit int) ([]string, error) {
	if file != "" {
		return []string{file}, nil
	}
	if folder == "" {
		return nil, errors.New("either --file or --reports is required")
	}
	paths, err := report.List(folder)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(paths) > limit {
		paths = paths[:limit]
	}
	return paths, nil
}

func buildModel(provider, name, baseURL, mockResponse string, timeoutSeconds int) (model.Model, error) {
	switch provider {
	case "", "ollama":
		ollama := model.NewOllama(baseURL, name)
		ollama.Timeout = time.Duration(timeoutSeconds) * time.Second
		return ollama, nil
	case "mock":
		return model.Mock{NameValue: name, ResponseText: mockResponse}, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
