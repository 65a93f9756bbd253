package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/khulnasoft-bot/code-translator/core"
	"github.com/khulnasoft-bot/code-translator/db"
	"github.com/khulnasoft-bot/code-translator/internal/config"
	"github.com/khulnasoft-bot/code-translator/transform"
)

func newTranslateCmd(cfg *config.Config, translator *transform.Transformer) *cobra.Command {
	var (
		from, to  string
		outPath   string
		showDiff  bool
		jsonOut   bool
		noHistory bool
		rootDir   string
		includes  []string
		excludes  []string
	)

	cmd := &cobra.Command{
		Use:   "translate [file]",
		Short: "Translate a file, stdin, or a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to == "" {
				return fmt.Errorf("--to is required")
			}
			if rootDir != "" {
				return runBatch(cmd, cfg, translator, rootDir, includes, excludes, from, to)
			}

			code, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			source := from
			if source == "" {
				path := ""
				if len(args) == 1 {
					path = args[0]
				}
				source = inferLanguage(translator, path, code)
			}

			result := translator.Transform(code, source, to)
			recordHistory(cmd, cfg, result, firstArg(args), noHistory)

			switch {
			case jsonOut:
				return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
			case showDiff:
				return writeDiff(cmd.OutOrStdout(), code, result.Code, firstArg(args))
			case outPath != "":
				if err := os.WriteFile(outPath, []byte(result.Code), 0o644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			default:
				fmt.Fprintln(cmd.OutOrStdout(), result.Code)
			}
			reportDiagnostics(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "Source language (inferred when omitted)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "Target language (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write output to a file instead of stdout")
	cmd.Flags().BoolVarP(&showDiff, "diff", "D", false, "Show a unified diff instead of the output")
	cmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "Output the full result as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Skip recording this run in history")
	cmd.Flags().StringVar(&rootDir, "root", "", "Translate every matching file under this directory")
	cmd.Flags().StringSliceVar(&includes, "include", nil, "Include file patterns (doublestar glob)")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "Exclude file patterns (doublestar glob)")
	return cmd
}

// runBatch walks rootDir, translating every file the include/exclude globs
// select. Each output lands next to its input with the target extension.
func runBatch(cmd *cobra.Command, cfg *config.Config, translator *transform.Transformer,
	rootDir string, includes, excludes []string, from, to string,
) error {
	dstLang, ok := translator.Registry().Lookup(to)
	if !ok {
		return fmt.Errorf("unknown target language %q", to)
	}

	translated := 0
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return err
		}
		if !matchGlobs(rel, includes, true) || matchGlobs(rel, excludes, false) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > cfg.MaxFileBytes {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: larger than %d bytes\n", rel, cfg.MaxFileBytes)
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		source := from
		if source == "" {
			source = inferLanguage(translator, path, string(data))
		}

		result := translator.Transform(string(data), source, to)
		outPath := strings.TrimSuffix(path, filepath.Ext(path)) + dstLang.Extension()
		if err := os.WriteFile(outPath, []byte(result.Code), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d lines changed, %d warnings)\n",
			rel, filepath.Base(outPath), result.Stats.LinesTransformed, len(result.Warnings))
		translated++
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "translated %d file(s)\n", translated)
	return nil
}

// matchGlobs applies doublestar patterns; empty include lists match all.
func matchGlobs(rel string, patterns []string, emptyMeans bool) bool {
	if len(patterns) == 0 {
		return emptyMeans
	}
	rel = filepath.ToSlash(rel)
	for _, p := range patterns {
		if ok, err := doublestar.PathMatch(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func writeDiff(w io.Writer, before, after, path string) error {
	if path == "" {
		path = "stdin"
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (translated)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Errorf("failed to build diff: %w", err)
	}
	_, err = io.WriteString(w, text)
	return err
}

func recordHistory(cmd *cobra.Command, cfg *config.Config, result *core.Result, path string, skip bool) {
	if skip || !cfg.HistoryEnabled {
		return
	}
	gdb, err := db.Connect(cfg.DatabaseURL, cfg.Debug)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "history disabled: %v\n", err)
		return
	}
	if _, err := db.Record(gdb, result, path); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "history disabled: %v\n", err)
	}
}

func reportDiagnostics(cmd *cobra.Command, result *core.Result) {
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", e)
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

// inferLanguage resolves the source language from the file extension first,
// falling back to content detection.
func inferLanguage(translator *transform.Transformer, path, code string) string {
	if path != "" {
		if lang, ok := translator.Registry().ByExtension(filepath.Ext(path)); ok {
			return lang.ID
		}
	}
	return translator.DetectLanguage(code)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func printNodes(cmd *cobra.Command, nodes []*core.Node, depth int) {
	for _, n := range nodes {
		name := ""
		if n.Name != "" {
			name = " " + n.Name
		}
		span := fmt.Sprintf("%d", n.StartLine)
		if n.EndLine > n.StartLine {
			span = fmt.Sprintf("%d-%d", n.StartLine, n.EndLine)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s%s [%s]\n",
			strings.Repeat("  ", depth), n.Type, name, span)
		printNodes(cmd, n.Children, depth+1)
	}
}
