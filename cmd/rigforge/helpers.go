package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rigforge/internal/config"
	"rigforge/internal/mapping"
)

// writeJSON renders v to the command's stdout as indented JSON, the shared
// shape behind every --json flag.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// resolveRules returns the effective rule lines and a label describing where
// they came from. An explicit flag path must exist; the configured rules file
// is optional and falls back to the built-in table.
func resolveRules(cfg *config.Config, flagPath string) ([]string, string, error) {
	if trimmed := strings.TrimSpace(flagPath); trimmed != "" {
		path, err := config.ExpandPath(trimmed)
		if err != nil {
			return nil, "", fmt.Errorf("resolve rules path: %w", err)
		}
		lines, err := mapping.LoadRules(path)
		if err != nil {
			return nil, "", err
		}
		return lines, path, nil
	}

	if cfg != nil && strings.TrimSpace(cfg.Paths.RulesFile) != "" {
		lines, err := mapping.LoadRules(cfg.Paths.RulesFile)
		if err == nil {
			return lines, cfg.Paths.RulesFile, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}
	}

	return mapping.DefaultRules(), "built-in defaults", nil
}

// ruleLineCount counts the lines that actually carry a rule, matching the
// skip logic used during expansion.
func ruleLineCount(lines []string) int {
	count := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		count++
	}
	return count
}
