package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rigforge/internal/assets"
	"rigforge/internal/config"
	"rigforge/internal/history"
	"rigforge/internal/logging"
	"rigforge/internal/mapping"
	"rigforge/internal/project"
)

type generateOptions struct {
	scanDir   string
	idle      string
	leftPose  string
	rightPose string
	skeleton  string
	additive  []string
	normal    []string

	outputDir string
	rulesPath string
	prefix    string
	seed      int64
	jsonOut   bool
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Expand mapping rules against collected assets and write a project file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.scanDir, "dir", "d", "", "Directory to scan for animation and skeleton files")
	cmd.Flags().StringVar(&opts.idle, "idle", "", "Idle animation file (overrides scan)")
	cmd.Flags().StringVar(&opts.leftPose, "pose-left", "", "Left hand pose file (overrides scan)")
	cmd.Flags().StringVar(&opts.rightPose, "pose-right", "", "Right hand pose file (overrides scan)")
	cmd.Flags().StringVar(&opts.skeleton, "skeleton", "", "Skeleton file (overrides scan)")
	cmd.Flags().StringArrayVar(&opts.additive, "additive", nil, "Additive clip file (repeatable)")
	cmd.Flags().StringArrayVar(&opts.normal, "normal", nil, "Normal clip file (repeatable)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Destination directory for the project file")
	cmd.Flags().StringVar(&opts.rulesPath, "rules", "", "Mapping rules file (defaults to the configured rules file)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Asset prefix (defaults to the prefix derived from the idle file)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for layer colors (0 uses the current time)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit machine-readable JSON output")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, opts generateOptions) error {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	col, err := assets.Collect(assets.Options{
		Idle:      opts.idle,
		LeftPose:  opts.leftPose,
		RightPose: opts.rightPose,
		Skeleton:  opts.skeleton,
		Additive:  opts.additive,
		Normal:    opts.normal,
		ScanDir:   opts.scanDir,
	})
	if err != nil {
		return fmt.Errorf("collect assets: %w", err)
	}

	prefix := strings.TrimSpace(opts.prefix)
	if prefix == "" {
		prefix, err = col.Prefix()
		if err != nil {
			return fmt.Errorf("derive asset prefix: %w", err)
		}
	}

	lines, rulesSource, err := resolveRules(cfg, opts.rulesPath)
	if err != nil {
		return err
	}

	bindings, report := mapping.ExpandAll(lines, prefix)
	for _, lineErr := range report {
		logger.Warn("mapping rule skipped",
			"source", rulesSource,
			"line", lineErr.Line,
			"error", lineErr.Err.Error(),
		)
	}

	buildCfg, err := project.NewConfig(cfg, col, prefix, opts.outputDir)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	doc, warnings := project.Build(buildCfg, bindings, project.RandomColors(rand.New(rand.NewSource(seed))))

	result, err := project.Write(doc, buildCfg.OutputDir, col.Idle)
	if err != nil {
		return err
	}

	logger.Info("project generated",
		"run_id", result.RunID,
		"path", result.Path,
		"prefix", prefix,
		"entries", result.Entries,
		"skipped_rules", len(report),
		"warnings", len(warnings),
	)

	recordRun(cmd, cfg, logger, result, prefix, len(warnings))

	if opts.jsonOut {
		return writeJSON(cmd, generateResult(result, prefix, report, warnings))
	}

	out := cmd.OutOrStdout()
	for _, lineErr := range report {
		fmt.Fprintf(out, "Skipped rule line %d: %v\n", lineErr.Line, lineErr.Err)
	}
	for _, warning := range warnings {
		fmt.Fprintf(out, "Skipped %s: no additive clip matches %q\n", warning.OutputName, warning.MissingSource)
	}
	fmt.Fprintf(out, "Wrote %s (%d entries)\n", result.Path, result.Entries)
	return nil
}

// recordRun persists the run to history. Failures are logged, never fatal:
// the project file is already on disk.
func recordRun(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, result project.Result, prefix string, warnings int) {
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history unavailable", "error", err.Error())
		return
	}
	defer store.Close()
	if _, err := store.Record(cmd.Context(), history.Record{
		RunID:       result.RunID,
		ProjectPath: result.Path,
		Prefix:      prefix,
		Entries:     result.Entries,
		Warnings:    warnings,
	}); err != nil {
		logger.Warn("record history", "error", err.Error())
	}
}

type generatePayload struct {
	RunID        string           `json:"run_id"`
	Path         string           `json:"path"`
	Prefix       string           `json:"prefix"`
	Entries      int              `json:"entries"`
	SkippedRules []skippedRule    `json:"skipped_rules,omitempty"`
	Warnings     []skippedBinding `json:"warnings,omitempty"`
}

type skippedRule struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type skippedBinding struct {
	OutputName    string `json:"output_name"`
	MissingSource string `json:"missing_source"`
}

func generateResult(result project.Result, prefix string, report mapping.Report, warnings []project.Warning) generatePayload {
	payload := generatePayload{
		RunID:   result.RunID,
		Path:    result.Path,
		Prefix:  prefix,
		Entries: result.Entries,
	}
	for _, lineErr := range report {
		payload.SkippedRules = append(payload.SkippedRules, skippedRule{Line: lineErr.Line, Error: lineErr.Err.Error()})
	}
	for _, warning := range warnings {
		payload.Warnings = append(payload.Warnings, skippedBinding{OutputName: warning.OutputName, MissingSource: warning.MissingSource})
	}
	return payload
}
