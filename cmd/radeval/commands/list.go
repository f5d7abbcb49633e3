package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"radeval/pkg/prompt"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available components",
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := prompt.Versions()
			names := make([]string, 0, len(versions))
			for _, v := range versions {
				names = append(names, string(v))
			}
			writeList("Prompt Versions", names)
			writeList("Providers", []string{"ollama", "mock"})
			writeList("Formats", []string{"table", "json", "markdown", "csv", "latex"})
			return nil
		},
	}
	return cmd
}

func writeList(title string, items []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{title})
	for _, item := range items {
		table.Append([]string{item})
	}
	table.Render()
}
