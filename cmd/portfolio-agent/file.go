// cmd/portfolio-agent/file.go
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ani-2003-HD/portfolio-agent/internal/analysis"
)

func fileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>",
		Short: "Analyze a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]

			analyzer := analysis.NewAnalyzer()
			fa, ok := analyzer.AnalyzeFile(path)
			if !ok {
				return fmt.Errorf("no handler for file: %s", path)
			}

			out, err := json.MarshalIndent(fa, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting output: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
