package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"rigforge/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	runList := func(cmd *cobra.Command, args []string) error {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return err
		}

		store, err := history.Open(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if jsonOut {
			payload := make([]historyPayload, 0, len(records))
			for _, rec := range records {
				payload = append(payload, historyPayload{
					ID:        rec.ID,
					RunID:     rec.RunID,
					Path:      rec.ProjectPath,
					Prefix:    rec.Prefix,
					Entries:   rec.Entries,
					Warnings:  rec.Warnings,
					CreatedAt: rec.CreatedAt.Format(time.RFC3339),
				})
			}
			return writeJSON(cmd, payload)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No generation runs recorded")
			return nil
		}
		rows := make([][]string, 0, len(records))
		for _, rec := range records {
			rows = append(rows, []string{
				strconv.FormatInt(rec.ID, 10),
				rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				rec.Prefix,
				strconv.Itoa(rec.Entries),
				strconv.Itoa(rec.Warnings),
				rec.ProjectPath,
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"ID", "When", "Prefix", "Entries", "Warnings", "Project"},
			rows, 0, 3, 4,
		))
		return nil
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously generated projects",
		RunE:  runList,
	}

	historyCmd.PersistentFlags().IntVar(&limit, "limit", 20, "Maximum runs to show (0 shows all)")
	historyCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON output")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show previously generated projects",
		RunE:  runList,
	}
	historyCmd.AddCommand(listCmd)
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d recorded runs\n", removed)
			return nil
		},
	}
}

type historyPayload struct {
	ID        int64  `json:"id"`
	RunID     string `json:"run_id"`
	Path      string `json:"path"`
	Prefix    string `json:"prefix"`
	Entries   int    `json:"entries"`
	Warnings  int    `json:"warnings"`
	CreatedAt string `json:"created_at"`
}
