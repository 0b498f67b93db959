package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	track "github.com/lytkinsa96/101-Digital-Modeling"
	"github.com/lytkinsa96/101-Digital-Modeling/internal/config"
	"github.com/lytkinsa96/101-Digital-Modeling/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "trackgen",
	Short: "trackgen generates railway track geometry from rail-edge paths",
	Long: `trackgen reads rail-edge polylines from OBJ vertex lists, computes the
centerline and the two rails, and places sleepers along the centerline.
The result is written as JSON or YAML for the host that builds the meshes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		return setupLogging(level, format)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringArray("set", nil, "Override a config value (key=value, repeatable)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
}

func setupLogging(level, format string) error {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, l, format)
	if err != nil {
		return err
	}
	track.SetLogger(logger)
	return nil
}

// loadConfig reads --config and --set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	overrides, _ := cmd.Flags().GetStringArray("set")
	return config.Load(path, overrides)
}
