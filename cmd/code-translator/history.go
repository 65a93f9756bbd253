package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khulnasoft-bot/code-translator/db"
	"github.com/khulnasoft-bot/code-translator/internal/config"
)

func newHistoryCmd(cfg *config.Config) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := db.Connect(cfg.DatabaseURL, cfg.Debug)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			rows, err := db.Recent(gdb, limit)
			if err != nil {
				return err
			}
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no translations recorded")
				return nil
			}
			for _, row := range rows {
				path := row.InputPath
				if path == "" {
					path = "(stdin)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s -> %s  %s  %d lines changed\n",
					row.ID, row.CreatedAt.Format("2006-01-02 15:04"),
					row.SourceLanguage, row.TargetLanguage, path, row.LinesTransformed)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum rows to show")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
