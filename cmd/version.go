package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goxsec/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goxsec",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "goxsec v%s\n", version.Version)
		fmt.Fprintln(out, "Structural Member Cross Section Extractor")
		fmt.Fprintf(out, "Built %s from commit %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
