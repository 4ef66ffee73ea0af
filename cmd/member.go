package cmd

import (
	"github.com/spf13/cobra"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Build member solid models from section profiles",
	Long: `Build prismatic member solids from a section profile.

The profile is a JSON file with the outer vertices of the section
and optional openings, in the same layout as a section definition
file. Material and reinforcement keys in the file are ignored.

Subcommands:
  extrude  - Sweep a profile along an axis into a face model

Example profile:
{
  "name": "T-Beam Section",
  "vertices": [
    {"x": 0, "y": 0}, {"x": 300, "y": 0}, {"x": 300, "y": 400},
    {"x": 600, "y": 400}, {"x": 600, "y": 500}, {"x": 0, "y": 500}
  ],
  "holes": []
}`,
}

func init() {
	rootCmd.AddCommand(memberCmd)
}
