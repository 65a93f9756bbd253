package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khulnasoft-bot/code-translator/internal/config"
	"github.com/khulnasoft-bot/code-translator/transform"
)

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	translator := transform.New()

	root := &cobra.Command{
		Use:   "code-translator",
		Short: "Rule-based source-to-source code translator",
		Long: "code-translator rewrites recognizable constructs between languages\n" +
			"using per-line rule substitution. Output is best-effort syntax, not\n" +
			"verified semantics; read the warnings.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newTranslateCmd(cfg, translator),
		newDetectCmd(translator),
		newSummaryCmd(translator),
		newLanguagesCmd(translator),
		newHistoryCmd(cfg),
	)
	return root
}

func newDetectCmd(translator *transform.Transformer) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Guess the language of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			lang := translator.DetectLanguage(code)
			report := translator.DetectMixed(code)
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"language": lang,
					"mixed":    report,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "language: %s\n", lang)
			if report.Detected {
				fmt.Fprintf(cmd.OutOrStdout(), "mixed syntax detected (candidates: %s, confidence %.2f)\n",
					strings.Join(report.Candidates, ", "), report.Confidence)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newSummaryCmd(translator *transform.Transformer) *cobra.Command {
	var language string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "summary [file]",
		Short: "Print the best-effort structural outline of a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if language == "" && len(args) == 1 {
				language = inferLanguage(translator, args[0], code)
			}
			nodes := translator.StructuralSummary(code, language)
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(nodes)
			}
			printNodes(cmd, nodes, 0)
			return nil
		},
	}
	cmd.Flags().StringVarP(&language, "lang", "l", "", "Language of the input (inferred when omitted)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func newLanguagesCmd(translator *transform.Transformer) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, lang := range translator.Registry().All() {
				aliases := ""
				if len(lang.Aliases) > 0 {
					aliases = " (" + strings.Join(lang.Aliases, ", ") + ")"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s%s  %s\n",
					lang.ID, aliases, strings.Join(lang.Extensions, " "))
			}
			return nil
		},
	}
}
