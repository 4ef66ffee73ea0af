// Package section extracts the cross-section contour of a structural member
// from its solid model and fits it to an inspection canvas.
package section

import (
	"fmt"

	"github.com/alexiusacademia/goxsec/internal/fit"
	"github.com/alexiusacademia/goxsec/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Options controls a cross-section analysis. The zero value views along +Z,
// drops Z and fits a 400x400 canvas.
type Options struct {
	// ViewDir is the view direction. Zero means +Z.
	ViewDir r3.Vec

	// Axis is the coordinate dropped by the projection. When AxisSet is
	// false it is derived from the dominant component of ViewDir.
	Axis    geom.ViewAxis
	AxisSet bool

	// Canvas is the target size. Zero means fit.DefaultCanvas.
	Canvas fit.Canvas
	FlipY  bool

	Policy Policy
}

// withDefaults fills unset fields and normalizes the view direction.
func (o Options) withDefaults() (Options, error) {
	if o.ViewDir == (r3.Vec{}) {
		o.ViewDir = r3.Vec{Z: 1}
	}
	n := r3.Norm(o.ViewDir)
	if n < geom.Eps {
		return o, &ValidationError{"view direction must be non-zero"}
	}
	o.ViewDir = r3.Scale(1/n, o.ViewDir)
	if !o.AxisSet {
		o.Axis = geom.AxisOf(o.ViewDir)
	}
	if !o.Axis.Valid() {
		return o, &ValidationError{fmt.Sprintf("invalid projection axis %v", o.Axis)}
	}
	if o.Canvas == (fit.Canvas{}) {
		o.Canvas = fit.DefaultCanvas
	}
	return o, nil
}

// AnalysisResult holds the contour and fit of one cross-section analysis.
type AnalysisResult struct {
	// Face is the selected cross-section face
	Face Face

	// Candidates is the number of faces parallel to the view direction
	Candidates int

	// Loops3 are the boundary loops in model coordinates, outer ring first
	Loops3 []geom.Loop3

	// Loops are the projected 2D loops handed to a renderer
	Loops []geom.Loop2

	// Bounding box of Loops3
	Min3 r3.Vec
	Max3 r3.Vec

	ViewDir   r3.Vec
	Axis      geom.ViewAxis
	Canvas    fit.Canvas
	Transform fit.Transform

	// Topology is "open" for a single ring and "closed" with holes
	Topology string
	Message  string
}

// Analyze selects the cross-section face of solid, extracts and projects
// its loops and computes the canvas fit.
func Analyze(solid Solid, opts Options) (*AnalysisResult, error) {
	if solid == nil {
		return nil, &ValidationError{"no solid to analyze"}
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	log := Logger()

	faces := solid.Faces()
	if len(faces) == 0 {
		return nil, fmt.Errorf("solid has no faces: %w", geom.ErrEmptyGeometry)
	}

	face, err := SelectFaceWith(faces, opts.ViewDir, opts.Policy)
	if err != nil {
		return nil, err
	}

	loops3, err := ExtractLoops(face)
	if err != nil {
		return nil, fmt.Errorf("extract loops: %w", err)
	}
	topology := Topology(len(loops3))
	log.Debug(fmt.Sprintf("cross section face has %d loop%s and is thus '%s'",
		len(loops3), PluralSuffix(len(loops3)), topology))

	min3, max3, err := geom.Bounds3(loops3)
	if err != nil {
		return nil, fmt.Errorf("bounds: %w", err)
	}

	loops2 := geom.Project(loops3, opts.Axis)

	tr, err := fit.Solve(fit.Request{
		Loops:  loops2,
		Canvas: opts.Canvas,
		FlipY:  opts.FlipY,
		Min3:   min3,
		Max3:   max3,
		Axis:   opts.Axis,
	})
	if err != nil {
		return nil, err
	}
	if min2, max2, err := geom.Bounds2(loops2); err == nil && (min2.X == max2.X) != (min2.Y == max2.Y) {
		log.Debug("degenerate projected extent corrected",
			"width", max2.X-min2.X,
			"height", max2.Y-min2.Y)
	}
	log.Debug("fit transform",
		"canvas", opts.Canvas.String(),
		"scale", tr.Scale(),
		"flipY", tr.FlipY(),
		"tx", tr.TranslateX,
		"ty", tr.TranslateY)

	result := &AnalysisResult{
		Face:       face,
		Candidates: len(CandidateFaces(faces, opts.ViewDir)),
		Loops3:     loops3,
		Loops:      loops2,
		Min3:       min3,
		Max3:       max3,
		ViewDir:    opts.ViewDir,
		Axis:       opts.Axis,
		Canvas:     opts.Canvas,
		Transform:  tr,
		Topology:   topology,
	}
	result.Message = fmt.Sprintf("Cross section has %d loop%s (%s), fitted at scale %.4g.",
		len(loops3), PluralSuffix(len(loops3)), topology, tr.Scale())
	return result, nil
}

// Extent returns the projected width and height of the contour in model
// units.
func (r *AnalysisResult) Extent() (width, height float64) {
	min, max, err := geom.Bounds2(r.Loops)
	if err != nil {
		return 0, 0
	}
	return max.X - min.X, max.Y - min.Y
}

// CanvasLoops returns the projected loops mapped into canvas coordinates.
func (r *AnalysisResult) CanvasLoops() []geom.Loop2 {
	return r.Transform.ApplyLoops(r.Loops)
}
