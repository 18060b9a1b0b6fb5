package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/capital/sim"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the capital CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "capital version %s\n", version)
		fmt.Fprintf(out, "snapshot format v%d\n", sim.SnapshotVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
