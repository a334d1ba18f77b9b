// cmd/portfolio-agent/analyze.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Ani-2003-HD/portfolio-agent/internal/analysis"
	"github.com/Ani-2003-HD/portfolio-agent/internal/config"
	"github.com/Ani-2003-HD/portfolio-agent/internal/contextpack"
	"github.com/Ani-2003-HD/portfolio-agent/internal/output"
	"github.com/Ani-2003-HD/portfolio-agent/internal/store"
)

func analyzeCmd() *cobra.Command {
	var (
		outputFlag  string
		contextFlag bool
		saveFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a project directory",
		Long: `Walk a project directory, analyze its descriptor and source files, and
print an aggregated report of technologies, complexity and file details.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			analyzer := analysis.NewAnalyzer(
				analysis.WithExcludeDirs(cfg.Scan.ExtraExcludeDirs...),
			)

			start := time.Now()
			report, err := analyzer.AnalyzeProject(root)
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("resolving project root: %w", err)
			}

			result := &output.Result{
				ProjectName: filepath.Base(abs),
				Root:        abs,
				Report:      report,
				DurationMs:  time.Since(start).Milliseconds(),
			}

			if contextFlag {
				pack, err := contextpack.Collect(root)
				if err != nil {
					return fmt.Errorf("collecting context: %w", err)
				}
				result.Context = pack
			}

			if saveFlag || cfg.Store.Enabled {
				if err := saveRun(cfg, result); err != nil {
					return err
				}
			}

			format := outputFlag
			if format == "" {
				format = cfg.Output.Format
			}
			return printResult(result, format)
		},
	}

	cmd.Flags().StringVar(&outputFlag, "output", "", "output format: json, markdown")
	cmd.Flags().BoolVar(&contextFlag, "context", false, "include raw file excerpts for description generation")
	cmd.Flags().BoolVar(&saveFlag, "save", false, "record this run in the history store")

	return cmd
}

// saveRun persists the analysis in the history store.
func saveRun(cfg *config.Config, result *output.Result) error {
	path, err := resolveStorePath(cfg)
	if err != nil {
		return err
	}

	s, err := store.NewStore(path)
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	defer s.Close()

	_, err = s.SaveRun(store.Run{
		Project:         result.ProjectName,
		Root:            result.Root,
		FilesAnalyzed:   result.Report.FilesAnalyzed,
		TotalLines:      result.Report.TotalLines,
		ComplexityScore: result.Report.ComplexityScore,
		Technologies:    result.Report.Technologies,
	})
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// printResult formats the result and writes it to stdout. Markdown is
// rendered with glamour when stdout is a terminal.
func printResult(result *output.Result, format string) error {
	var formatter output.Formatter
	switch format {
	case "json":
		formatter = output.NewJSONFormatter()
	default:
		formatter = output.NewMarkdownFormatter()
	}

	out, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if format != "json" && term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := renderMarkdown(string(out))
		if err == nil {
			fmt.Print(rendered)
			return nil
		}
		// Fall back to raw markdown on renderer failure.
	}

	fmt.Print(string(out))
	return nil
}

// renderMarkdown processes markdown into styled terminal output.
func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("creating glamour renderer: %w", err)
	}
	return r.Render(md)
}
