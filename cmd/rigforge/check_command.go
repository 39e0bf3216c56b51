package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"rigforge/internal/mapping"
	"rigforge/internal/textutil"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var rulesPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a mapping rules file and report bad lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lines, source, err := resolveRules(cfg, rulesPath)
			if err != nil {
				return err
			}

			// The prefix doesn't affect validation; any placeholder works.
			_, report := mapping.ExpandAll(lines, "check")
			total := ruleLineCount(lines)

			if jsonOut {
				payload := checkPayload{Source: source, Rules: total, Valid: len(report) == 0}
				for _, lineErr := range report {
					payload.Failures = append(payload.Failures, skippedRule{Line: lineErr.Line, Error: lineErr.Err.Error()})
				}
				if err := writeJSON(cmd, payload); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Rules source: %s\n", source)
				if len(report) > 0 {
					rows := make([][]string, 0, len(report))
					for _, lineErr := range report {
						rows = append(rows, []string{strconv.Itoa(lineErr.Line), lineErr.Err.Error()})
					}
					fmt.Fprintln(out, renderTable([]string{"Line", "Error"}, rows, 0))
				}
				summary := fmt.Sprintf("%d of %d rules valid", total-len(report), total)
				fmt.Fprintln(out, colorize(out, textutil.Ternary(len(report) > 0, ansiRed, ansiGreen), summary))
			}

			if len(report) > 0 {
				return fmt.Errorf("%d of %d rules failed validation", len(report), total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Mapping rules file (defaults to the configured rules file)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON output")

	return cmd
}

type checkPayload struct {
	Source   string        `json:"source"`
	Rules    int           `json:"rules"`
	Valid    bool          `json:"valid"`
	Failures []skippedRule `json:"failures,omitempty"`
}
