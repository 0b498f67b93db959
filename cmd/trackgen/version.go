package main

import (
	"fmt"

	"github.com/spf13/cobra"

	track "github.com/lytkinsa96/101-Digital-Modeling"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trackgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "trackgen version %s\n", track.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
