package border

import (
	"math"
	"strings"
	"testing"

	"github.com/marcusmichaels/wiggly-border-generator/pkg/errors"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/geometry"
)

func TestGenerate_Deterministic(t *testing.T) {
	p := DefaultParams()

	a, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if a.Space != b.Space {
		t.Errorf("coordinate spaces differ: %v vs %v", a.Space, b.Space)
	}
	if a.PathData() != b.PathData() {
		t.Error("identical params produced different path data")
	}
}

func TestGenerate_SpecScenario(t *testing.T) {
	// amplitude=4, segmentSize=25, strokeInset=4, 400x300 target:
	// coordinate space 400x300, padding 8, working rect [8,392]x[8,292],
	// 15 horizontal segments, top corners exactly (8,8) and (392,8).
	p := Params{Amplitude: 4, SegmentSize: 25, StrokeInset: 4, Width: 400, Height: 300}

	b, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b.Space.Width != 400 || b.Space.Height != 300 {
		t.Errorf("space = %vx%v, want 400x300", b.Space.Width, b.Space.Height)
	}

	pts := outlinePoints(p, b.Space)

	hSegments := 15
	vSegments := 11 // round(284/25)
	wantLen := (hSegments + 1) + vSegments + hSegments + (vSegments - 1)
	if len(pts) != wantLen {
		t.Fatalf("len(points) = %d, want %d", len(pts), wantLen)
	}

	corners := []struct {
		idx  int
		want geometry.Point
	}{
		{0, geometry.Pt(8, 8)},
		{hSegments, geometry.Pt(392, 8)},
		{hSegments + vSegments, geometry.Pt(392, 292)},
		{hSegments + vSegments + hSegments, geometry.Pt(8, 292)},
	}
	for _, c := range corners {
		if pts[c.idx] != c.want {
			t.Errorf("corner at index %d = %v, want %v (corners must be unwaved)", c.idx, pts[c.idx], c.want)
		}
	}
}

func TestGenerate_SquareTarget(t *testing.T) {
	b, err := Generate(Params{Amplitude: 4, SegmentSize: 25, StrokeInset: 4, Width: 300, Height: 300})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b.Space.Width != geometry.BaseSize || b.Space.Height != geometry.BaseSize {
		t.Errorf("square space = %vx%v, want %vx%v",
			b.Space.Width, b.Space.Height, geometry.BaseSize, geometry.BaseSize)
	}
}

func TestGenerate_AspectRatioFidelity(t *testing.T) {
	dims := []struct{ w, h float64 }{
		{400, 300}, {300, 400}, {1920, 1080}, {50, 900}, {7, 13},
	}
	for _, d := range dims {
		b, err := Generate(Params{Amplitude: 4, SegmentSize: 25, StrokeInset: 4, Width: d.w, Height: d.h})
		if err != nil {
			t.Fatalf("Generate(%vx%v): %v", d.w, d.h, err)
		}
		want := d.w / d.h
		if ratio := b.Space.Width / b.Space.Height; math.Abs(ratio-want) > 1e-9 {
			t.Errorf("space ratio for %vx%v = %v, want %v", d.w, d.h, ratio, want)
		}
	}
}

func TestGenerate_ZeroAmplitude(t *testing.T) {
	p := Params{Amplitude: 0, SegmentSize: 25, StrokeInset: 4, Width: 400, Height: 300}
	space := geometry.FitSpace(p.Width, p.Height)
	pad := p.Amplitude + p.StrokeInset

	for i, pt := range outlinePoints(p, space) {
		onRect := nearly(pt.X, pad) || nearly(pt.X, space.Width-pad) ||
			nearly(pt.Y, pad) || nearly(pt.Y, space.Height-pad)
		if !onRect {
			t.Errorf("point %d = %v not on the unwaved rectangle", i, pt)
		}
	}
}

func TestGenerate_OffsetBound(t *testing.T) {
	p := Params{Amplitude: 6, SegmentSize: 10, StrokeInset: 2, Width: 640, Height: 480}
	space := geometry.FitSpace(p.Width, p.Height)
	pad := p.Amplitude + p.StrokeInset
	limit := 1.25*p.Amplitude + 1e-9

	// Every point must stay within 1.25*amplitude of the working
	// rectangle, measured perpendicular to its edge. Points displaced
	// along one axis keep the other axis' interpolated value, so the
	// nearest rectangle side gives the perpendicular distance.
	for i, pt := range outlinePoints(p, space) {
		d := math.Min(
			math.Min(math.Abs(pt.X-pad), math.Abs(pt.X-(space.Width-pad))),
			math.Min(math.Abs(pt.Y-pad), math.Abs(pt.Y-(space.Height-pad))),
		)
		if d > limit {
			t.Errorf("point %d = %v is %v from the working rectangle, limit %v", i, pt, d, limit)
		}
	}
}

func TestGenerate_NoDuplicateJunctions(t *testing.T) {
	p := DefaultParams()
	pts := outlinePoints(p, geometry.FitSpace(p.Width, p.Height))

	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			t.Errorf("duplicate consecutive point at index %d: %v", i, pts[i])
		}
	}
	if pts[0] == pts[len(pts)-1] {
		t.Error("first and last points coincide; closing is the path's job, not the sampler's")
	}
}

func TestGenerate_PathShape(t *testing.T) {
	b, err := Generate(DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, ok := b.Path[0].(geometry.MoveTo); !ok {
		t.Errorf("first element is %T, want MoveTo", b.Path[0])
	}
	if _, ok := b.Path[len(b.Path)-1].(geometry.ClosePath); !ok {
		t.Errorf("last element is %T, want ClosePath", b.Path[len(b.Path)-1])
	}
	for i := 1; i < len(b.Path)-1; i++ {
		if _, ok := b.Path[i].(geometry.CubicTo); !ok {
			t.Errorf("element %d is %T, want CubicTo", i, b.Path[i])
		}
	}
}

func TestGenerate_SeedChangesPath(t *testing.T) {
	base := DefaultParams()
	seeded := base
	seeded.Seed = 7

	a, err := Generate(base)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(seeded)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.PathData() == b.PathData() {
		t.Error("different seeds produced identical paths")
	}
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"negative amplitude", func(p *Params) { p.Amplitude = -1 }},
		{"zero segment size", func(p *Params) { p.SegmentSize = 0 }},
		{"negative segment size", func(p *Params) { p.SegmentSize = -5 }},
		{"negative inset", func(p *Params) { p.StrokeInset = -0.5 }},
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"negative height", func(p *Params) { p.Height = -300 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			_, err := Generate(p)
			if err == nil {
				t.Fatal("Generate accepted invalid params")
			}
			if !errors.Is(err, errors.ErrCodeInvalidParameter) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidParameter)
			}
		})
	}
}

func TestPathData_Format(t *testing.T) {
	b, err := Generate(DefaultParams())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	d := b.PathData()
	if !strings.HasPrefix(d, "M8.00,8.00 ") {
		t.Errorf("path data starts with %q, want move to (8.00,8.00)", d[:min(20, len(d))])
	}
	if !strings.HasSuffix(d, " Z") {
		t.Errorf("path data ends with %q, want close instruction", d[len(d)-5:])
	}
	if strings.Count(d, "C") != len(b.Path)-2 {
		t.Errorf("path data has %d curves, want %d", strings.Count(d, "C"), len(b.Path)-2)
	}
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
