package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	track "github.com/lytkinsa96/101-Digital-Modeling"
	"github.com/lytkinsa96/101-Digital-Modeling/internal/config"
	"github.com/lytkinsa96/101-Digital-Modeling/obj"
)

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Place sleepers along a single path",
	Long: `Reads one OBJ vertex list, smooths it and places sleepers directly along it.
No rails are generated. The terminal profile, if configured, is used for the
last sleeper.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		smooth, _ := cmd.Flags().GetInt("smooth")
		cfg.SmoothIterations = pathSmoothing(cfg, smooth, cmd.Flags().Changed("smooth"))
		in, _ := cmd.Flags().GetString("path")
		out, _ := cmd.Flags().GetString("out")
		png, _ := cmd.Flags().GetString("preview")
		return runPath(cmd.Context(), cfg, in, out, png)
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().StringP("path", "p", "", "OBJ file with the path to follow")
	pathCmd.Flags().StringP("out", "o", "track.json", "Output file (.json, .yaml or .yml)")
	pathCmd.Flags().String("preview", "", "Also write a plan-view PNG to this file")
	pathCmd.Flags().Int("smooth", track.DefaultSmoothIterations, "Smoothing passes applied to the path")
	_ = pathCmd.MarkFlagRequired("path")
}

// pathSmoothing picks the smoothing passes for the path command: an explicit
// --smooth wins, then smooth_iterations from the config (0 disables), then
// the flag default.
func pathSmoothing(cfg config.Config, flag int, flagChanged bool) int {
	if flagChanged || !cfg.SmoothIterationsSet() {
		return flag
	}
	return cfg.SmoothIterations
}

func runPath(ctx context.Context, cfg config.Config, in, out, png string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	pts, err := obj.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read path: %w", err)
	}
	t, err := track.BuildPath(ctx, pts, cfg.Options()...)
	if err != nil {
		return err
	}
	return writeOutputs(t, out, png)
}
