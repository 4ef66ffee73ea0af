// Package fit computes the uniform scale and translation that place a
// projected cross-section inside a fixed-size canvas.
package fit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goxsec/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Margin is the fraction of the canvas the content may occupy along its
// limiting axis.
const Margin = 0.7

// ErrInvalidCanvas is returned for a canvas with a non-positive or
// non-finite dimension.
var ErrInvalidCanvas = errors.New("invalid canvas size")

// Canvas is the target size in pixels.
type Canvas struct {
	Width  float64
	Height float64
}

// DefaultCanvas is the 400x400 inspection window.
var DefaultCanvas = Canvas{Width: 400, Height: 400}

// Validate checks that both dimensions are positive and finite.
func (c Canvas) Validate() error {
	if !(c.Width > 0) || !(c.Height > 0) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidCanvas, c.Width, c.Height)
	}
	return nil
}

// Center returns the canvas midpoint.
func (c Canvas) Center() r2.Vec {
	return r2.Vec{X: c.Width / 2, Y: c.Height / 2}
}

func (c Canvas) String() string {
	return strconv.FormatFloat(c.Width, 'g', -1, 64) + "x" + strconv.FormatFloat(c.Height, 'g', -1, 64)
}

// ParseCanvas parses a "WIDTHxHEIGHT" string such as "400x400".
func ParseCanvas(s string) (Canvas, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Canvas{}, fmt.Errorf("%w: %q (want WIDTHxHEIGHT)", ErrInvalidCanvas, s)
	}
	width, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return Canvas{}, fmt.Errorf("%w: width %q", ErrInvalidCanvas, w)
	}
	height, err := strconv.ParseFloat(h, 64)
	if err != nil {
		return Canvas{}, fmt.Errorf("%w: height %q", ErrInvalidCanvas, h)
	}
	c := Canvas{Width: width, Height: height}
	return c, c.Validate()
}

// Transform maps world 2D coordinates to canvas coordinates:
// canvas = world*scale + translate, per axis. ScaleX and ScaleY always have
// the same magnitude; ScaleY is negative when the Y axis is flipped.
type Transform struct {
	ScaleX     float64
	ScaleY     float64
	TranslateX float64
	TranslateY float64
}

// Identity is the unit transform.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// Scale returns the uniform scale magnitude.
func (t Transform) Scale() float64 {
	return math.Abs(t.ScaleX)
}

// FlipY reports whether the transform inverts the Y axis.
func (t Transform) FlipY() bool {
	return t.ScaleY < 0
}

// Apply maps a world point to canvas coordinates.
func (t Transform) Apply(p r2.Vec) r2.Vec {
	return r2.Vec{
		X: p.X*t.ScaleX + t.TranslateX,
		Y: p.Y*t.ScaleY + t.TranslateY,
	}
}

// ApplyLoops maps every point of every loop, returning fresh loops.
func (t Transform) ApplyLoops(loops []geom.Loop2) []geom.Loop2 {
	out := make([]geom.Loop2, len(loops))
	for i, loop := range loops {
		tl := make(geom.Loop2, len(loop))
		for j, p := range loop {
			tl[j] = t.Apply(p)
		}
		out[i] = tl
	}
	return out
}

// Request is the input of Solve.
type Request struct {
	// Loops are the projected cross-section loops.
	Loops  []geom.Loop2
	Canvas Canvas
	// FlipY inverts the Y axis for screen coordinate systems.
	FlipY bool
	// Min3 and Max3 bound the geometry before projection. Their center,
	// projected along Axis, is the point placed at the canvas center.
	Min3, Max3 r3.Vec
	Axis       geom.ViewAxis
}

// Solve computes the centered, margin-padded, uniform fit transform.
//
// A zero extent on one axis is replaced by the other axis's extent. When
// both extents are zero the scale falls back to 1 and the result is a pure
// recentering.
func Solve(req Request) (Transform, error) {
	if err := req.Canvas.Validate(); err != nil {
		return Transform{}, err
	}
	min, max, err := geom.Bounds2(req.Loops)
	if err != nil {
		return Transform{}, fmt.Errorf("fit: %w", err)
	}
	width := max.X - min.X
	height := max.Y - min.Y
	if height == 0 && width != 0 {
		height = width
	}
	if width == 0 && height != 0 {
		width = height
	}

	scale := 1.0
	if width > 0 && height > 0 {
		scaleX := req.Canvas.Width / width * Margin
		scaleY := req.Canvas.Height / height * Margin
		scale = math.Min(scaleX, scaleY)
	}

	t := Transform{ScaleX: scale, ScaleY: scale}
	if req.FlipY {
		t.ScaleY = -t.ScaleY
	}

	origin := geom.ProjectPoint(geom.Center3(req.Min3, req.Max3), req.Axis)
	center := req.Canvas.Center()
	t.TranslateX = center.X - origin.X*t.ScaleX
	t.TranslateY = center.Y - origin.Y*t.ScaleY
	return t, nil
}
