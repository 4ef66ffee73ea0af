package section

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/alexiusacademia/goxsec/internal/fit"
	"github.com/alexiusacademia/goxsec/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

func ring(pts ...r3.Vec) []Edge {
	return RingFromPoints(pts)
}

func face(n r3.Vec, rings ...[]Edge) *PlanarFace {
	return &PlanarFace{N: n, Rings: rings}
}

// box returns a solid spanning [0,w]x[0,h]x[0,l] with faces ordered
// -X, +X, -Y, +Y, -Z, +Z.
func box(w, h, l float64) *Body {
	p := func(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }
	return &Body{
		Name: "box",
		FaceList: []*PlanarFace{
			face(r3.Vec{X: -1}, ring(p(0, 0, 0), p(0, 0, l), p(0, h, l), p(0, h, 0))),
			face(r3.Vec{X: 1}, ring(p(w, 0, 0), p(w, h, 0), p(w, h, l), p(w, 0, l))),
			face(r3.Vec{Y: -1}, ring(p(0, 0, 0), p(w, 0, 0), p(w, 0, l), p(0, 0, l))),
			face(r3.Vec{Y: 1}, ring(p(0, h, 0), p(0, h, l), p(w, h, l), p(w, h, 0))),
			face(r3.Vec{Z: -1}, ring(p(0, 0, 0), p(0, h, 0), p(w, h, 0), p(w, 0, 0))),
			face(r3.Vec{Z: 1}, ring(p(0, 0, l), p(w, 0, l), p(w, h, l), p(0, h, l))),
		},
	}
}

func TestSelectFace(t *testing.T) {
	faces := []Face{
		face(r3.Vec{X: 1}),
		face(r3.Vec{Y: 1}),
		face(r3.Vec{Z: 1}),
	}
	got, err := SelectFace(faces, r3.Vec{Z: 1})
	if err != nil {
		t.Fatalf("SelectFace: %v", err)
	}
	if got != faces[2] {
		t.Errorf("SelectFace picked %v, want the +Z face", got.Normal())
	}
	if c := CandidateFaces(faces, r3.Vec{Z: 1}); len(c) != 1 {
		t.Errorf("CandidateFaces = %d faces, want 1", len(c))
	}
}

func TestSelectFaceNotFound(t *testing.T) {
	faces := []Face{face(r3.Vec{X: 1}), face(r3.Vec{Y: 1})}
	tests := []struct {
		name  string
		faces []Face
	}{
		{"no parallel face", faces},
		{"no faces", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := SelectFace(tt.faces, r3.Vec{Z: 1})
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("SelectFace error = %v, want ErrNotFound", err)
			}
			if f != nil {
				t.Errorf("SelectFace returned face %v on failure", f)
			}
		})
	}
}

func TestSelectFacePolicy(t *testing.T) {
	back := face(r3.Vec{Z: -1})
	front := face(r3.Vec{Z: 1})
	faces := []Face{face(r3.Vec{X: 1}), back, front}

	tests := []struct {
		policy Policy
		want   Face
	}{
		{FirstMatch, back},
		{Facing, front},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			got, err := SelectFaceWith(faces, r3.Vec{Z: 1}, tt.policy)
			if err != nil {
				t.Fatalf("SelectFaceWith: %v", err)
			}
			if got != tt.want {
				t.Errorf("picked normal %v, want %v", got.Normal(), tt.want.Normal())
			}
		})
	}

	// Facing falls back to the first match when nothing faces the viewer.
	got, err := SelectFaceWith([]Face{back}, r3.Vec{Z: 1}, Facing)
	if err != nil || got != back {
		t.Errorf("Facing fallback = %v, %v", got, err)
	}
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]Policy{"": FirstMatch, "first": FirstMatch, "facing": Facing} {
		got, err := ParsePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParsePolicy("last"); err == nil {
		t.Error("ParsePolicy(\"last\") succeeded, want error")
	}
}

func TestExtractLoops(t *testing.T) {
	sq := ring(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}, r3.Vec{Y: 1})
	loops, err := ExtractLoops(face(r3.Vec{Z: 1}, sq))
	if err != nil {
		t.Fatalf("ExtractLoops: %v", err)
	}
	if len(loops) != 1 {
		t.Fatalf("got %d loops, want 1", len(loops))
	}
	if len(loops[0]) != 5 {
		t.Fatalf("loop has %d points, want 5", len(loops[0]))
	}
	for i, e := range sq {
		if loops[0][i] != e.Start() {
			t.Errorf("point %d = %v, want edge start %v", i, loops[0][i], e.Start())
		}
	}
	if !loops[0].Closed() {
		t.Error("loop is not explicitly closed")
	}
}

func TestExtractLoopsWithHoles(t *testing.T) {
	outer := ring(r3.Vec{}, r3.Vec{X: 10}, r3.Vec{X: 10, Y: 10}, r3.Vec{Y: 10})
	hole1 := ring(r3.Vec{X: 2, Y: 2}, r3.Vec{X: 2, Y: 4}, r3.Vec{X: 4, Y: 4}, r3.Vec{X: 4, Y: 2})
	hole2 := ring(r3.Vec{X: 6, Y: 6}, r3.Vec{X: 6, Y: 8}, r3.Vec{X: 8, Y: 7})
	loops, err := ExtractLoops(face(r3.Vec{Z: 1}, outer, hole1, hole2))
	if err != nil {
		t.Fatalf("ExtractLoops: %v", err)
	}
	want := []int{5, 5, 4}
	if len(loops) != len(want) {
		t.Fatalf("got %d loops, want %d", len(loops), len(want))
	}
	for i, n := range want {
		if len(loops[i]) != n {
			t.Errorf("loop %d has %d points, want %d", i, len(loops[i]), n)
		}
	}
	if got := Topology(len(loops)); got != "closed" {
		t.Errorf("Topology(%d) = %q, want closed", len(loops), got)
	}
	if got := Topology(1); got != "open" {
		t.Errorf("Topology(1) = %q, want open", got)
	}
}

func TestExtractLoopsEmptyRing(t *testing.T) {
	_, err := ExtractLoops(face(r3.Vec{Z: 1}, []Edge{}))
	if !errors.Is(err, geom.ErrEmptyGeometry) {
		t.Errorf("error = %v, want ErrEmptyGeometry", err)
	}
}

func TestAnalyzeRectangle(t *testing.T) {
	// 2 x 1 section extruded 10 along Z, viewed along Z.
	res, err := Analyze(box(2, 1, 10), Options{ViewDir: r3.Vec{Z: 1}})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Axis != geom.AxisZ {
		t.Errorf("axis = %v, want z", res.Axis)
	}
	if res.Candidates != 2 {
		t.Errorf("candidates = %d, want 2", res.Candidates)
	}
	if res.Topology != "open" {
		t.Errorf("topology = %q, want open", res.Topology)
	}
	w, h := res.Extent()
	if w != 2 || h != 1 {
		t.Errorf("extent = %g x %g, want 2 x 1", w, h)
	}
	if s := res.Transform.Scale(); math.Abs(s-140) > 1e-9 {
		t.Errorf("scale = %g, want 140", s)
	}
	if res.Transform.ScaleX != res.Transform.ScaleY {
		t.Errorf("non-uniform scale %g / %g", res.Transform.ScaleX, res.Transform.ScaleY)
	}
	for _, loop := range res.CanvasLoops() {
		for _, p := range loop {
			// 2*140 = 280 wide centered on 400: 60..340; 140 tall: 130..270.
			if p.X < 59.999 || p.X > 340.001 || p.Y < 129.999 || p.Y > 270.001 {
				t.Errorf("canvas point %v outside expected margin box", p)
			}
		}
	}
	if !strings.Contains(res.Message, "1 loop ") {
		t.Errorf("message = %q", res.Message)
	}
}

func TestAnalyzeSideView(t *testing.T) {
	// Viewing along -X selects the -X face and drops X.
	res, err := Analyze(box(2, 1, 10), Options{ViewDir: r3.Vec{X: -3}, Canvas: fit.Canvas{Width: 200, Height: 100}})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Axis != geom.AxisX {
		t.Errorf("axis = %v, want x", res.Axis)
	}
	if res.ViewDir != (r3.Vec{X: -1}) {
		t.Errorf("view dir not normalized: %v", res.ViewDir)
	}
	w, h := res.Extent()
	if w != 1 || h != 10 {
		t.Errorf("extent = %g x %g, want 1 x 10", w, h)
	}
	// min(200/1, 100/10) * 0.7
	if s := res.Transform.Scale(); math.Abs(s-7) > 1e-9 {
		t.Errorf("scale = %g, want 7", s)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tilted := &Body{FaceList: []*PlanarFace{face(r3.Vec{X: 1})}}
	tests := []struct {
		name  string
		solid Solid
		opts  Options
		check func(error) bool
	}{
		{"nil solid", nil, Options{}, func(err error) bool {
			var ve *ValidationError
			return errors.As(err, &ve)
		}},
		{"no faces", &Body{}, Options{}, func(err error) bool { return errors.Is(err, geom.ErrEmptyGeometry) }},
		{"no parallel face", tilted, Options{}, func(err error) bool { return errors.Is(err, ErrNotFound) }},
		{"bad canvas", box(1, 1, 1), Options{Canvas: fit.Canvas{Width: -1, Height: 3}}, func(err error) bool {
			return errors.Is(err, fit.ErrInvalidCanvas)
		}},
		{"bad axis", box(1, 1, 1), Options{Axis: geom.ViewAxis(7), AxisSet: true}, func(err error) bool {
			var ve *ValidationError
			return errors.As(err, &ve)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analyze(tt.solid, tt.opts)
			if err == nil || !tt.check(err) {
				t.Errorf("Analyze error = %v", err)
			}
			if res != nil {
				t.Errorf("Analyze returned result on failure")
			}
		})
	}
}

func TestAnalyzeLogsTopology(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := Analyze(box(1, 1, 1), Options{}); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"candidates=2", "is thus 'open'", "scale="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSelectFaceSkipsZeroNormal(t *testing.T) {
	sliver := face(r3.Vec{}, ring(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 2}))
	top := face(r3.Vec{Z: 1}, ring(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: 1, Y: 1}))
	faces := []Face{sliver, top}

	for _, view := range []r3.Vec{{X: 1}, {Y: 1}, {Z: 1}} {
		c := CandidateFaces(faces, view)
		for _, f := range c {
			if f == sliver {
				t.Errorf("view %v: zero-normal face is a candidate", view)
			}
		}
	}
	got, err := SelectFace(faces, r3.Vec{Z: 1})
	if err != nil || got != top {
		t.Errorf("SelectFace = %v, %v; want the +Z face", got, err)
	}
	if _, err := SelectFace(faces, r3.Vec{X: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SelectFace along X error = %v, want ErrNotFound", err)
	}
}

func TestBodyFacesSkipsNil(t *testing.T) {
	b := box(2, 1, 10)
	b.FaceList = append([]*PlanarFace{nil}, b.FaceList...)
	if n := len(b.Faces()); n != 6 {
		t.Fatalf("Faces() = %d faces, want 6", n)
	}
	res, err := Analyze(b, Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Candidates != 2 {
		t.Errorf("Candidates = %d, want 2", res.Candidates)
	}
}

func TestAnalyzeLogsDegenerateExtent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	tests := []struct {
		name string
		pts  []r3.Vec
		want bool
	}{
		{"segment", []r3.Vec{{}, {X: 2}}, true},
		{"point", []r3.Vec{{X: 1, Y: 1}}, false},
		{"square", []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

			b := &Body{FaceList: []*PlanarFace{face(r3.Vec{Z: 1}, ring(tt.pts...))}}
			if _, err := Analyze(b, Options{}); err != nil {
				t.Fatalf("Analyze: %v", err)
			}
			if got := strings.Contains(buf.String(), "degenerate projected extent"); got != tt.want {
				t.Errorf("degenerate log = %v, want %v:\n%s", got, tt.want, buf.String())
			}
		})
	}
}
