package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rigforge/internal/config"
	"rigforge/internal/mapping"
)

func newMappingsCommand(ctx *commandContext) *cobra.Command {
	mappingsCmd := &cobra.Command{
		Use:   "mappings",
		Short: "Mapping rules utilities",
	}

	mappingsCmd.AddCommand(newMappingsInitCommand(ctx))
	mappingsCmd.AddCommand(newMappingsShowCommand(ctx))

	return mappingsCmd
}

func newMappingsInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in mapping rules to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			target := strings.TrimSpace(targetPath)
			if target == "" {
				target = cfg.Paths.RulesFile
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve rules path: %w", err)
				}
				target = expanded
			}
			if target == "" {
				return fmt.Errorf("no rules file configured; pass --path")
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("rules file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check rules path: %w", err)
				}
			}

			if err := mapping.SaveRules(target, mapping.DefaultRules()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default mapping rules to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the rules file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing rules file if present")
	return cmd
}

func newMappingsShowCommand(ctx *commandContext) *cobra.Command {
	var rulesPath string
	var prefix string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective mapping rules, optionally expanded under a prefix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lines, source, err := resolveRules(cfg, rulesPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			trimmed := strings.TrimSpace(prefix)
			if trimmed == "" {
				// No prefix requested: show the raw rules as-is.
				if jsonOut {
					return writeJSON(cmd, mappingsPayload{Source: source, Lines: lines})
				}
				for _, line := range lines {
					fmt.Fprintln(out, line)
				}
				return nil
			}

			bindings, report := mapping.ExpandAll(lines, trimmed)

			if jsonOut {
				payload := mappingsPayload{Source: source, Prefix: trimmed}
				for _, binding := range bindings {
					payload.Bindings = append(payload.Bindings, bindingPayload{
						OutputName: binding.OutputName,
						Type:       binding.Type.String(),
						Sources:    binding.SourceNames,
					})
				}
				for _, lineErr := range report {
					payload.Failures = append(payload.Failures, skippedRule{Line: lineErr.Line, Error: lineErr.Err.Error()})
				}
				return writeJSON(cmd, payload)
			}

			rows := make([][]string, 0, len(bindings))
			for _, binding := range bindings {
				rows = append(rows, []string{
					binding.OutputName,
					binding.Type.String(),
					strings.Join(binding.SourceNames, ", "),
				})
			}
			fmt.Fprintf(out, "Rules source: %s\n", source)
			fmt.Fprintln(out, renderTable([]string{"Output", "Type", "Sources"}, rows))
			for _, lineErr := range report {
				fmt.Fprintf(out, "Skipped rule line %d: %v\n", lineErr.Line, lineErr.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Mapping rules file (defaults to the configured rules file)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Expand rules under this asset prefix")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON output")

	return cmd
}

type mappingsPayload struct {
	Source   string           `json:"source"`
	Prefix   string           `json:"prefix,omitempty"`
	Lines    []string         `json:"lines,omitempty"`
	Bindings []bindingPayload `json:"bindings,omitempty"`
	Failures []skippedRule    `json:"failures,omitempty"`
}

type bindingPayload struct {
	OutputName string   `json:"output_name"`
	Type       string   `json:"type"`
	Sources    []string `json:"sources"`
}
