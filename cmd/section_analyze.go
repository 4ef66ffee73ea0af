package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/goxsec/internal/diagram"
	"github.com/alexiusacademia/goxsec/internal/fit"
	"github.com/alexiusacademia/goxsec/internal/geom"
	"github.com/alexiusacademia/goxsec/internal/model"
	"github.com/alexiusacademia/goxsec/internal/section"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	sectionAnalyzeFile        string
	sectionAnalyzeAxis        geom.ViewAxis
	sectionAnalyzeAxisSet     bool
	sectionAnalyzePolicy      section.Policy
	sectionAnalyzeFlipY       bool
	sectionAnalyzeShowDiagram bool
	sectionAnalyzeCols        int
	sectionAnalyzeRows        int
	sectionAnalyzeExportFile  string

	sectionAnalyzeView     = r3.Vec{Z: 1}
	sectionAnalyzeViewText = "z"
	sectionAnalyzeCanvas   = fit.DefaultCanvas
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Extract the cross section of a member and fit it to a canvas",
	Long: `Select the planar face of the member solid that is parallel to the
view direction, extract its boundary loops, project them to 2D and
compute the transform that fits them into the canvas.

The fit uses a single uniform scale (70% of the limiting canvas
dimension) and centers the member on the canvas.

Examples:
  goxsec section analyze --file column.json
  goxsec section analyze -f beam.stl --view x --canvas 640x480
  goxsec section analyze -f beam.json --view -x --policy facing --diagram
  goxsec section analyze -f beam.json --flip-y -o section.svg`,
	Args: cobra.NoArgs,
	RunE: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to model file (.json or .stl) [required]")
	sectionAnalyzeCmd.MarkFlagRequired("file")

	// View options
	sectionAnalyzeCmd.Flags().Var(directionValue{&sectionAnalyzeView, &sectionAnalyzeViewText}, "view", "View direction: x, y, z with optional sign")
	sectionAnalyzeCmd.Flags().Var(axisValue{&sectionAnalyzeAxis, &sectionAnalyzeAxisSet}, "axis", "Coordinate dropped by the projection (default: from view)")
	sectionAnalyzeCmd.Flags().Var(policyValue{&sectionAnalyzePolicy}, "policy", "Face tie-break: first or facing")

	// Canvas options
	sectionAnalyzeCmd.Flags().Var(canvasValue{&sectionAnalyzeCanvas}, "canvas", "Canvas size in pixels")
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeFlipY, "flip-y", false, "Invert Y for screen coordinates")

	// Diagram options
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII section preview")
	sectionAnalyzeCmd.Flags().IntVar(&sectionAnalyzeCols, "cols", 60, "ASCII preview width (characters)")
	sectionAnalyzeCmd.Flags().IntVar(&sectionAnalyzeRows, "rows", 30, "ASCII preview height (lines)")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf, dxf)")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	out := cmd.OutOrStdout()

	// Load model from file
	body, err := model.Load(sectionAnalyzeFile)
	if err != nil {
		return fmt.Errorf("loading model: %w", err)
	}

	// Run analysis
	result, err := section.Analyze(body, section.Options{
		ViewDir: sectionAnalyzeView,
		Axis:    sectionAnalyzeAxis,
		AxisSet: sectionAnalyzeAxisSet,
		Canvas:  sectionAnalyzeCanvas,
		FlipY:   sectionAnalyzeFlipY,
		Policy:  sectionAnalyzePolicy,
	})
	if err != nil {
		return fmt.Errorf("analyzing cross section: %w", err)
	}

	printSectionReport(out, body, result)

	data := diagram.SectionDiagramData{
		Title:     body.Name,
		Loops:     result.Loops,
		Transform: result.Transform,
		Canvas:    result.Canvas,
	}

	// Show diagram if requested
	if sectionAnalyzeShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIISection(data, sectionAnalyzeCols, sectionAnalyzeRows))
	}

	// Export diagram if requested
	if sectionAnalyzeExportFile != "" {
		if err := diagram.Export(data, sectionAnalyzeExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", sectionAnalyzeExportFile)
	}
	return nil
}

func printSectionReport(out io.Writer, body *section.Body, result *section.AnalysisResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     MEMBER CROSS SECTION ANALYSIS")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	if body.Name != "" {
		fmt.Fprintf(out, "  Model: %s\n", body.Name)
		fmt.Fprintln(out)
	}

	// View
	fmt.Fprintln(out, "VIEW:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  View direction:\t(%.4g, %.4g, %.4g)\n", result.ViewDir.X, result.ViewDir.Y, result.ViewDir.Z)
	fmt.Fprintf(w, "  Projection:\tdrop %s, keep %s\n", result.Axis, keptAxes(result.Axis))
	fmt.Fprintf(w, "  Faces in model:\t%d\n", len(body.FaceList))
	fmt.Fprintf(w, "  Parallel faces:\t%d\n", result.Candidates)
	w.Flush()
	fmt.Fprintln(out)

	// Cross section
	width, height := result.Extent()
	fmt.Fprintln(out, "CROSS SECTION:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Face:\t%s\n", faceLabel(result.Face))
	fmt.Fprintf(w, "  Loops:\t%d (%s)\n", len(result.Loops), result.Topology)
	fmt.Fprintf(w, "  Projected extent:\t%.4g x %.4g\n", width, height)
	fmt.Fprintf(w, "  Bounds min:\t(%.4g, %.4g, %.4g)\n", result.Min3.X, result.Min3.Y, result.Min3.Z)
	fmt.Fprintf(w, "  Bounds max:\t(%.4g, %.4g, %.4g)\n", result.Max3.X, result.Max3.Y, result.Max3.Z)
	w.Flush()
	fmt.Fprintln(out)

	// Loops
	fmt.Fprintln(out, "LOOPS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Loop\tRole\tPoints\tMin\tMax\n")
	fmt.Fprintf(w, "  ────\t────\t──────\t───\t───\n")
	for i, loop := range result.Loops {
		role := "outer"
		if i > 0 {
			role = "opening"
		}
		min, max, _ := geom.Bounds2([]geom.Loop2{loop})
		fmt.Fprintf(w, "  %d\t%s\t%d\t(%.4g, %.4g)\t(%.4g, %.4g)\n",
			i+1, role, len(loop), min.X, min.Y, max.X, max.Y)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Fit transform
	tr := result.Transform
	fmt.Fprintln(out, "FIT TRANSFORM:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Canvas:\t%s px\n", result.Canvas)
	fmt.Fprintf(w, "  Margin factor:\t%.2f\n", fit.Margin)
	fmt.Fprintf(w, "  Scale (x, y):\t(%.6g, %.6g)\n", tr.ScaleX, tr.ScaleY)
	fmt.Fprintf(w, "  Translate (x, y):\t(%.6g, %.6g)\n", tr.TranslateX, tr.TranslateY)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("FIT", []string{
		fmt.Sprintf("scale = %.6g px/unit", tr.Scale()),
		fmt.Sprintf("flip Y = %t", tr.FlipY()),
	}))
	fmt.Fprintln(out)

	// Status
	fmt.Fprintln(out, "STATUS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  %s\n", result.Message)
	fmt.Fprintln(out)
}

func keptAxes(a geom.ViewAxis) string {
	switch a {
	case geom.AxisX:
		return "(y, z)"
	case geom.AxisY:
		return "(x, z)"
	default:
		return "(x, y)"
	}
}

func faceLabel(f section.Face) string {
	if pf, ok := f.(*section.PlanarFace); ok && pf.Label != "" {
		return pf.Label
	}
	n := f.Normal()
	return fmt.Sprintf("normal (%.4g, %.4g, %.4g)", n.X, n.Y, n.Z)
}
