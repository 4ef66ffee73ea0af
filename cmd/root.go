package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/goxsec/internal/section"
	"github.com/alexiusacademia/goxsec/internal/version"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goxsec",
	Short: "Structural Member Cross Section Extractor",
	Long: `goxsec - Go Cross Section Extractor

A CLI tool that extracts the cross-section contour of a linear
structural member (beam, column, brace) from its solid model.

The tool:
  - Selects the planar face parallel to the view direction
  - Extracts its boundary loops (outer ring and openings)
  - Projects the loops to 2D along the view axis
  - Fits the contour into a fixed-size canvas for inspection

Models are read from JSON face files or STL meshes, or built by
extruding a section profile along the member axis.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			section.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goxsec v%-48s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Cross Section Extractor                              ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Cross-section face selection along any principal view")
		fmt.Fprintln(out, "    • Outer ring and opening extraction")
		fmt.Fprintln(out, "    • Uniform, centered canvas fit with margin")
		fmt.Fprintln(out, "    • ASCII preview and PNG/SVG/PDF/DXF export")
		fmt.Fprintln(out, "    • Member solids from JSON, STL or extruded profiles")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goxsec --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log analysis diagnostics to stderr")
}
