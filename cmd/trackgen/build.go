package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	track "github.com/lytkinsa96/101-Digital-Modeling"
	"github.com/lytkinsa96/101-Digital-Modeling/export"
	"github.com/lytkinsa96/101-Digital-Modeling/internal/config"
	"github.com/lytkinsa96/101-Digital-Modeling/obj"
	"github.com/lytkinsa96/101-Digital-Modeling/preview"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build rails and sleepers from a left and a right rail-edge path",
	Long: `Reads two OBJ vertex lists with the same number of vertices, derives the
centerline, offsets both rails by half the gauge and places sleepers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		left, _ := cmd.Flags().GetString("left")
		right, _ := cmd.Flags().GetString("right")
		out, _ := cmd.Flags().GetString("out")
		png, _ := cmd.Flags().GetString("preview")
		return runBuild(cmd.Context(), cfg, left, right, out, png)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("left", "l", "", "OBJ file with the left rail-edge path")
	buildCmd.Flags().StringP("right", "r", "", "OBJ file with the right rail-edge path")
	buildCmd.Flags().StringP("out", "o", "track.json", "Output file (.json, .yaml or .yml)")
	buildCmd.Flags().String("preview", "", "Also write a plan-view PNG to this file")
	_ = buildCmd.MarkFlagRequired("left")
	_ = buildCmd.MarkFlagRequired("right")
}

func runBuild(ctx context.Context, cfg config.Config, leftPath, rightPath, out, png string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	left, err := obj.ReadFile(leftPath)
	if err != nil {
		return fmt.Errorf("read left path: %w", err)
	}
	right, err := obj.ReadFile(rightPath)
	if err != nil {
		return fmt.Errorf("read right path: %w", err)
	}

	t, err := track.Build(ctx, left, right, cfg.Options()...)
	if err != nil {
		// Stages before the failure may still be useful to the host.
		if t != nil && export.WriteFile(out, t) == nil {
			track.Logger().Warn("partial track written", "path", out, "centerline_anchors", t.Centerline.Len())
		}
		return err
	}
	return writeOutputs(t, out, png)
}

func writeOutputs(t *track.Track, out, png string) error {
	if err := export.WriteFile(out, t); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	track.Logger().Info("track written", "path", out)
	if png != "" {
		if err := preview.SaveFile(png, t, preview.DefaultOptions()); err != nil {
			return fmt.Errorf("write preview %s: %w", png, err)
		}
		track.Logger().Info("preview written", "path", png)
	}
	return nil
}
