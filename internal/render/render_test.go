package render

import (
	"errors"
	"math"
	"slices"
	"testing"

	"pixelfire/internal/core"
	"pixelfire/internal/sink/memory"
	pcore "pixelfire/pkg/core"

	"github.com/lucasb-eyer/go-colorful"
)

var heatColors = []colorful.Color{
	{R: 0.75, G: 0.0, B: 0.2},
	{R: 1.0, G: 0.0, B: 0.0},
	{R: 1.0, G: 0.5, B: 0.0},
	{R: 1.0, G: 0.7, B: 0.2},
	{R: 1.0, G: 0.9, B: 0.9},
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func sameColor(a, b colorful.Color) bool {
	return almostEqual(a.R, b.R) && almostEqual(a.G, b.G) && almostEqual(a.B, b.B)
}

func TestLookupPositionMatchesClampedHeat(t *testing.T) {
	ramp, err := NewPalette([]colorful.Color{{}, {R: 1, G: 1, B: 1}}, false)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	for h := 0.0; h <= 1000; h += 7.5 {
		want := math.Min(h/HeatCeiling, 1)
		if got := Position(h); !almostEqual(got, want) {
			t.Fatalf("Position(%f) = %f, expected %f", h, got, want)
		}
		c := ramp.Lookup(Position(h))
		if !almostEqual(c.R, want) || !almostEqual(c.G, want) || !almostEqual(c.B, want) {
			t.Fatalf("heat %f resolved to %+v, expected grey %f", h, c, want)
		}
	}
}

func TestLookupClampsToEnds(t *testing.T) {
	p, err := NewPalette(heatColors, false)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	cases := []struct {
		pos  float64
		want colorful.Color
	}{
		{-3, heatColors[0]},
		{0, heatColors[0]},
		{1, heatColors[4]},
		{1.7, heatColors[4]},
		{math.NaN(), heatColors[0]},
		{0.5, heatColors[2]},
		{0.125, heatColors[0].BlendRgb(heatColors[1], 0.5)},
	}
	for _, tc := range cases {
		if got := p.Lookup(tc.pos); !sameColor(got, tc.want) {
			t.Fatalf("Lookup(%v) = %+v, expected %+v", tc.pos, got, tc.want)
		}
	}
}

func TestSingleColorPalette(t *testing.T) {
	only := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
	p, err := NewPalette([]colorful.Color{only}, true)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	for _, pos := range []float64{0, 0.3, 1, 5} {
		if got := p.Lookup(pos); !sameColor(got, only) {
			t.Fatalf("Lookup(%v) = %+v", pos, got)
		}
	}
	if _, err := NewPalette(nil, false); !errors.Is(err, ErrEmptyPalette) {
		t.Fatalf("expected ErrEmptyPalette, got %v", err)
	}
}

func TestExpandLengthAndBoundaries(t *testing.T) {
	for k := 2; k <= len(heatColors); k++ {
		in := heatColors[:k]
		out := Expand(in, GradientSteps)
		if len(out) != GradientSteps*(k-1) {
			t.Fatalf("k=%d expanded to %d colors, expected %d", k, len(out), GradientSteps*(k-1))
		}
		if !sameColor(out[0], in[0]) {
			t.Fatalf("k=%d first color %+v, expected %+v", k, out[0], in[0])
		}
		if !sameColor(out[len(out)-1], in[k-1]) {
			t.Fatalf("k=%d last color %+v, expected final input %+v", k, out[len(out)-1], in[k-1])
		}
		// Each segment ends on the next reference color.
		for seg := 1; seg < k; seg++ {
			if !sameColor(out[seg*GradientSteps-1], in[seg]) {
				t.Fatalf("k=%d segment %d does not end on reference color", k, seg)
			}
		}
	}
}

func TestExpandDeterministic(t *testing.T) {
	a := Expand(heatColors, GradientSteps)
	b := Expand(heatColors, GradientSteps)
	if !slices.Equal(a, b) {
		t.Fatal("expansion differs between runs")
	}
	single := Expand(heatColors[:1], GradientSteps)
	if len(single) != 1 {
		t.Fatalf("single color expanded to %d", len(single))
	}
}

func TestSmoothPaletteUsesExpansion(t *testing.T) {
	p, err := NewPalette(heatColors, true)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	if p.Len() != GradientSteps*(len(heatColors)-1) {
		t.Fatalf("smoothed palette has %d colors", p.Len())
	}
}

func TestAdjustApply(t *testing.T) {
	cases := []struct {
		name string
		adj  Adjustment
		in   colorful.Color
		want core.Packed
	}{
		{"white linear", Adjustment{Gamma: 1, Levels: Levels{1, 1, 1}}, colorful.Color{R: 1, G: 1, B: 1}, 0xffffff},
		{"black", Adjustment{Gamma: DefaultGamma, Levels: DefaultLevels}, colorful.Color{}, core.Off},
		{"levels", Adjustment{Gamma: 1, Levels: Levels{0.5, 0.25, 0}}, colorful.Color{R: 1, G: 1, B: 1}, core.Pack(128, 64, 0)},
		{"gamma", Adjustment{Gamma: 2, Levels: Levels{1, 1, 1}}, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, core.Pack(64, 64, 64)},
		{"out of gamut clamps", Adjustment{Gamma: 1, Levels: Levels{1, 1, 1}}, colorful.Color{R: 1.4, G: -0.2, B: 0.5}, core.Pack(255, 0, 128)},
		{"zero gamma means linear", Adjustment{Levels: Levels{1, 1, 1}}, colorful.Color{R: 0.5}, core.Pack(128, 0, 0)},
	}
	for _, tc := range cases {
		if got := tc.adj.Apply(tc.in); got != tc.want {
			t.Fatalf("%s: Apply = %#06x, expected %#06x", tc.name, uint32(got), uint32(tc.want))
		}
	}
}

func newTestRenderer(t *testing.T, seed int64) *Renderer {
	t.Helper()
	p, err := NewPalette(heatColors, false)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	return NewRenderer(p, Adjustment{Gamma: DefaultGamma, Levels: DefaultLevels}, pcore.NewRNG(seed))
}

func TestRenderWritesEveryPixelThenFlushesOnce(t *testing.T) {
	r := newTestRenderer(t, 3)
	heat := []float64{0, 40, 120, 240, 900, 10}
	sink := memory.New(len(heat))
	if err := r.Render(heat, sink); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if sink.Flushes() != 1 {
		t.Fatalf("flushes = %d, expected 1", sink.Flushes())
	}
	order := sink.WriteOrder()
	sorted := slices.Clone(order)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []int{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("write order %v is not a permutation", order)
	}
	frame := sink.Frame()
	for i, h := range heat {
		if frame[i] != r.Color(h) {
			t.Fatalf("pixel %d = %#06x, expected %#06x", i, uint32(frame[i]), uint32(r.Color(h)))
		}
	}
	if frame[3] != frame[4] {
		t.Fatal("heat above the ceiling must render like the ceiling")
	}
}

func TestRenderReshufflesEachFrame(t *testing.T) {
	r := newTestRenderer(t, 11)
	heat := make([]float64, 60)
	sink := memory.New(len(heat))
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		if err := r.Render(heat, sink); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !slices.Equal(sink.WriteOrder(), r.LastOrder()) {
			t.Fatal("renderer order and sink order disagree")
		}
		seen[fmtOrder(sink.WriteOrder())] = true
	}
	if len(seen) < 2 {
		t.Fatal("write order never changed across frames")
	}
}

func fmtOrder(order []int) string {
	b := make([]byte, 0, len(order)*3)
	for _, v := range order {
		b = append(b, byte(v), ',')
	}
	return string(b)
}

type failingSink struct {
	failOn int
	writes int
	err    error
}

func (s *failingSink) SetPixel(int, core.Packed) error {
	s.writes++
	if s.writes == s.failOn {
		return s.err
	}
	return nil
}
func (s *failingSink) Flush() error { return nil }
func (s *failingSink) Close() error { return nil }

func TestRenderStopsOnSinkError(t *testing.T) {
	r := newTestRenderer(t, 5)
	bus := errors.New("bus fault")
	sink := &failingSink{failOn: 2, err: bus}
	err := r.Render(make([]float64, 8), sink)
	if !errors.Is(err, bus) {
		t.Fatalf("expected bus fault, got %v", err)
	}
	if sink.writes != 2 {
		t.Fatalf("renderer kept writing after failure: %d writes", sink.writes)
	}
}

func TestFillRGBA(t *testing.T) {
	buf := make([]byte, 4*3)
	FillRGBA(buf, []core.Packed{0x102030, 0xffffff})
	want := []byte{0x10, 0x20, 0x30, 0xff, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0}
	if !slices.Equal(buf, want) {
		t.Fatalf("FillRGBA = %v, expected %v", buf, want)
	}
}

func TestStripLayout(t *testing.T) {
	cases := []struct{ n, cols, rows int }{
		{0, 0, 0},
		{1, 1, 1},
		{60, 60, 1},
		{61, 60, 2},
		{150, 60, 3},
	}
	for _, tc := range cases {
		cols, rows := StripLayout(tc.n)
		if cols != tc.cols || rows != tc.rows {
			t.Errorf("StripLayout(%d) = %d,%d expected %d,%d", tc.n, cols, rows, tc.cols, tc.rows)
		}
	}
}
