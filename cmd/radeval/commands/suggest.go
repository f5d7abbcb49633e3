package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"radeval/pkg/runner"
	"radeval/pkg/truth"
)

func newSuggestCommand() *cobra.Command {
	var (
		resultsFile   string
		resultsFolder string
		groundTruth   string
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Draft ground-truth annotations from a batch for human review",
		RunE: func(cmd *cobra.Command, args []string) error {
			resultsDir := resolveString(resultsFolder, appConfig.ResultsFolder)
			if resultsDir == "" {
				resultsDir = "results"
			}

			path, err := resolveBatchFile(resultsFile, resultsDir)
			if err != nil {
				return err
			}
			results, err := runner.LoadResults(path)
			if err != nil {
				return err
			}

			truthPath := resolveString(groundTruth, appConfig.GroundTruth)
			if truthPath == "" {
				truthPath = "ground_truth.json"
			}
			store, err := truth.LoadOrEmpty(truthPath)
			if err != nil {
				return err
			}

			suggestions := store.Suggest(results)
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No new cases to suggest; all filenames are already annotated.")
				return nil
			}

			for _, c := range suggestions {
				store.Put(c)
			}
			if err := store.Save(); err != nil {
				return err
			}

			logger.Info("suggestions drafted",
				zap.String("results", path),
				zap.String("ground_truth", truthPath),
				zap.Int("drafted", len(suggestions)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Drafted %d cases in %s. Review and set annotated=true before evaluating.\n",
				len(suggestions), truthPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&resultsFile, "results-file", "", "batch results file (defaults to the latest)")
	cmd.Flags().StringVar(&resultsFolder, "results", "", "folder of batch artifacts")
	cmd.Flags().StringVar(&groundTruth, "ground-truth", "", "ground truth annotations file")

	return cmd
}
