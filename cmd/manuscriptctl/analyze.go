package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/byte-squad-abac/manuscript/internal/chunker"
	"github.com/byte-squad-abac/manuscript/internal/dictstore"
	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/layout"
	"github.com/byte-squad-abac/manuscript/internal/pipeline"
	"github.com/byte-squad-abac/manuscript/internal/spellcheck"
)

func analyzeCmd() *cobra.Command {
	var chunkTokens int
	var overlap int
	var mode string
	var checks string
	var asJSON bool
	var dictPath string
	var dictURL string
	var dictKey string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a manuscript and print the findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			fileType := strings.TrimPrefix(filepath.Ext(path), ".")

			log := slog.New(slog.NewTextHandler(io.Discard, nil))
			if asJSON {
				// Keep stdout clean for the report.
				log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			}

			var source dictstore.Source
			var closeSource func() error
			switch {
			case dictURL != "":
				source = dictstore.NewHTTPSource(dictURL, dictKey)
			case dictPath != "":
				sq, err := dictstore.OpenSQLite(dictPath)
				if err != nil {
					return fmt.Errorf("open dictionary: %w", err)
				}
				source = sq
				closeSource = sq.Close
			default:
				source = dictstore.Builtin()
			}
			if closeSource != nil {
				defer closeSource()
			}

			engine := spellcheck.New(source, spellcheck.DefaultOptions(), log)
			proc := pipeline.NewProcessor(engine, layout.New(log), log)

			doc, err := proc.Process(data, fileType, chunker.Options{
				MaxTokens: chunkTokens,
				Overlap:   overlap,
				Mode:      chunker.Mode(mode),
			})
			if err != nil {
				return err
			}

			var spelling, layoutIssues []document.CheckResult
			runSpelling := checks == "all" || checks == "spelling"
			runLayout := checks == "all" || checks == "layout"
			if runSpelling {
				spelling = engine.Check(cmd.Context(), doc.Content)
			}
			if runLayout {
				layoutIssues = layout.New(log).Analyze(doc)
			}

			report := pipeline.BuildReport(doc, spelling, layoutIssues, engine.Degraded())

			if asJSON {
				b, err := sonic.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			printReport(cmd.OutOrStdout(), path, report)
			return nil
		},
	}

	cmd.Flags().IntVar(&chunkTokens, "chunk-tokens", 500, "token budget per chunk")
	cmd.Flags().IntVar(&overlap, "overlap", 50, "overlap between adjacent chunks, in tokens")
	cmd.Flags().StringVar(&mode, "mode", "token", "chunking mode: token|sentence|paragraph")
	cmd.Flags().StringVar(&checks, "checks", "all", "which analyzers to run: all|spelling|layout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full report as JSON")
	cmd.Flags().StringVar(&dictPath, "dict", "", "path to a sqlite dictionary file")
	cmd.Flags().StringVar(&dictURL, "dict-url", "", "base URL of a hosted dictionary store")
	cmd.Flags().StringVar(&dictKey, "dict-key", "", "API key for the hosted dictionary store")
	return cmd
}

func printReport(w io.Writer, path string, report *pipeline.AnalysisReport) {
	fmt.Fprintf(w, "%s: %d pages, %d words, %d chunks (%d tokens)\n",
		path, report.Metadata.Pages, report.Metadata.Words, report.ChunkCount, report.TotalTokens)
	if report.DictionaryDegraded {
		fmt.Fprintln(w, "note: dictionary unavailable, using builtin word list; results may be less accurate")
	}
	fmt.Fprintf(w, "findings: %d errors, %d warnings, %d suggestions\n",
		report.Summary.Errors, report.Summary.Warnings, report.Summary.Suggestions)

	printResults(w, "spelling", report.Spelling)
	printResults(w, "layout", report.Layout)
}

func printResults(w io.Writer, label string, results []document.CheckResult) {
	if len(results) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", label)
	for _, r := range results {
		loc := ""
		if r.PageNumber > 0 {
			loc = fmt.Sprintf(" (page %d", r.PageNumber)
			if r.LineNumber > 0 {
				loc += fmt.Sprintf(", line %d", r.LineNumber)
			}
			loc += ")"
		}
		fmt.Fprintf(w, "  [%s] %s%s\n", r.Severity, r.Issue, loc)
		if r.Suggestion != "" {
			fmt.Fprintf(w, "      suggestion: %s\n", r.Suggestion)
		}
	}
}
