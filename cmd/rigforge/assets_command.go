package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rigforge/internal/assets"
)

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "assets <dir>",
		Short: "Scan a directory and show how its files would be classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			col, err := assets.Collect(assets.Options{ScanDir: args[0]})
			if err != nil {
				return fmt.Errorf("collect assets: %w", err)
			}
			prefix, err := col.Prefix()
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, assetsPayload{
					Prefix:    prefix,
					Idle:      col.Idle,
					LeftPose:  col.LeftPose,
					RightPose: col.RightPose,
					Skeleton:  col.Skeleton,
					Additive:  col.Additive,
					Normal:    col.Normal,
				})
			}

			rows := [][]string{
				{"idle", col.Idle},
				{"pose (left)", col.LeftPose},
				{"pose (right)", col.RightPose},
				{"skeleton", col.Skeleton},
			}
			for _, clip := range col.Additive {
				rows = append(rows, []string{"additive", clip})
			}
			for _, clip := range col.Normal {
				rows = append(rows, []string{"normal", clip})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Prefix: %s\n", prefix)
			fmt.Fprintln(out, renderTable([]string{"Role", "File"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON output")

	return cmd
}

type assetsPayload struct {
	Prefix    string   `json:"prefix"`
	Idle      string   `json:"idle"`
	LeftPose  string   `json:"left_pose"`
	RightPose string   `json:"right_pose"`
	Skeleton  string   `json:"skeleton"`
	Additive  []string `json:"additive,omitempty"`
	Normal    []string `json:"normal,omitempty"`
}
