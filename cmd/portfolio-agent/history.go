// cmd/portfolio-agent/history.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ani-2003-HD/portfolio-agent/internal/store"
)

func historyCmd() *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history [project]",
		Short: "List recorded analysis runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path, err := resolveStorePath(cfg)
			if err != nil {
				return err
			}

			s, err := store.NewStore(path)
			if err != nil {
				return fmt.Errorf("opening history store: %w", err)
			}
			defer s.Close()

			if len(args) == 1 {
				return printLatest(s, args[0])
			}
			return printRuns(s, limitFlag)
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 20, "max runs to list")

	return cmd
}

func printLatest(s *store.Store, project string) error {
	run, err := s.LatestRun(project)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("no recorded runs for project: %s", project)
	}
	printRun(*run)
	return nil
}

func printRuns(s *store.Store, limit int) error {
	runs, err := s.ListRuns(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}
	for _, run := range runs {
		printRun(run)
	}
	return nil
}

func printRun(run store.Run) {
	fmt.Printf("%s  %s  files=%d lines=%d complexity=%d/10  [%s]\n",
		run.CreatedAt.Format("2006-01-02 15:04"), run.Project,
		run.FilesAnalyzed, run.TotalLines, run.ComplexityScore,
		strings.Join(run.Technologies, ", "))
}
