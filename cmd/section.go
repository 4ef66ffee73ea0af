package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section extraction from member solid models",
	Long: `Extract and inspect the cross section of a structural member
from its solid model.

Supported model files:
  *.json  - planar face model (see below)
  *.stl   - triangle mesh; coplanar triangles are merged into faces

Subcommands:
  analyze  - Select the cross-section face and fit it to a canvas

Example JSON face model:
{
  "name": "Column C1",
  "faces": [
    {
      "label": "base",
      "normal": {"x": 0, "y": 0, "z": -1},
      "rings": [
        [{"x": 0, "y": 0, "z": 0}, {"x": 0, "y": 300, "z": 0},
         {"x": 300, "y": 300, "z": 0}, {"x": 300, "y": 0, "z": 0}]
      ]
    }
  ]
}

The first ring of a face is its outer boundary; further rings are
openings. Normals may be omitted and are then computed from the
outer ring.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
